package types

// ItemSource supplies the immutable per-item raw resolutions that drive
// bucket assignment.
//
// The source is owned by the storage collaborator (image directory scan,
// latent store index, ...). Its contents must be fully populated before the
// first assignment pass runs; after that point the dataset treats the values
// as frozen, and workers share the source by read-only reference.
//
// Implementations should:
//   - Return stable values (same index → same resolution, every call)
//   - Be safe for concurrent reads from multiple workers
//   - Run quickly (Resolution is called once per item per assignment pass)
type ItemSource interface {
	// Len returns the total number of items.
	Len() int

	// Resolution returns the raw (width, height) of item i.
	//
	// Parameters:
	//   - i: Item index in [0, Len())
	//
	// Returns:
	//   - Size: Raw stored resolution, both dimensions positive
	Resolution(i int) Size
}
