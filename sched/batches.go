package sched

import (
	rand "math/rand/v2"
	"slices"
)

// BuildBatches splits every bucket's content into batch-sized groups and
// shuffles the global batch order.
//
// For each non-empty bucket the item list is shuffled (a copy; Content is
// left untouched) and cut into consecutive groups of batchSize. A trailing
// group shorter than batchSize is kept as-is: remainder batches are never
// padded and never dropped. All buckets' groups are then concatenated and
// the order of batches (not their contents) is shuffled with the same
// random source.
//
// Every item appears in exactly one batch, every batch is homogeneous in
// assigned bucket, and per bucket at most one batch is short.
//
// Parameters:
//   - content: Per-bucket item indices, as produced by AssignBuckets
//   - batchSize: Maximum batch length, must be > 0
//   - rng: Random source for both shuffles; same seed → same batch order
//
// Returns:
//   - [][]int: Ordered batch list; each batch owns its backing array
func BuildBatches(content [][]int, batchSize int, rng *rand.Rand) [][]int {
	var batches [][]int
	for _, items := range content {
		if len(items) == 0 {
			continue
		}

		shuffled := slices.Clone(items)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		for start := 0; start < len(shuffled); start += batchSize {
			end := min(start+batchSize, len(shuffled))
			batches = append(batches, shuffled[start:end:end])
		}
	}

	rng.Shuffle(len(batches), func(i, j int) {
		batches[i], batches[j] = batches[j], batches[i]
	})

	return batches
}
