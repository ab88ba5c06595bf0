package bucketfeed

import "github.com/arloliu/bucketfeed/types"

// Sentinel errors returned by the Dataset.
//
// These alias the canonical definitions in the types subpackage so that
// errors.Is checks work whichever package the caller imports.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrItemSourceRequired is returned when the item source is nil.
	ErrItemSourceRequired = types.ErrItemSourceRequired

	// ErrEmptyBucketTable is returned when the size bounds admit no bucket.
	ErrEmptyBucketTable = types.ErrEmptyBucketTable

	// ErrRatioOutOfRange is returned when an item's ratio falls outside every
	// bucket's coverage (an invariant violation, never silently clamped).
	ErrRatioOutOfRange = types.ErrRatioOutOfRange

	// ErrNotAssigned is returned when batches are requested before InitWorker.
	ErrNotAssigned = types.ErrNotAssigned

	// ErrBatchIndex is returned when a batch index is out of range.
	ErrBatchIndex = types.ErrBatchIndex

	// ErrItemIndex is returned when an item index is out of range.
	ErrItemIndex = types.ErrItemIndex
)
