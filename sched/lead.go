package sched

import "slices"

// PromoteLead moves the likeliest out-of-memory batch to position 0.
//
// The representative item is taken from the first non-empty bucket in
// ascending ratio order, falling back to a descending scan — one of the two
// most extreme aspect-ratio buckets with content. Those buckets hold the
// most elongated target resolutions and are the likeliest to exhaust
// accelerator memory, so running their batch first converts a late-epoch
// crash into an immediate one.
//
// The batch containing the representative item is swapped with whatever
// occupies position 0. Callers invoke this once per worker lifetime (a
// first-batch canary, not a per-epoch policy); re-application is neither
// required nor harmful.
//
// Parameters:
//   - content: Per-bucket item indices from the same pass as batches
//   - batches: Batch order to mutate in place
//
// Returns:
//   - int: The position the lead batch was swapped out of, or -1 when there
//     was nothing to promote (no items)
func PromoteLead(content [][]int, batches [][]int) int {
	item, ok := representative(content)
	if !ok {
		return -1
	}

	for i, batch := range batches {
		if slices.Contains(batch, item) {
			batches[0], batches[i] = batches[i], batches[0]
			return i
		}
	}

	return -1
}

func representative(content [][]int) (int, bool) {
	for _, items := range content {
		if len(items) > 0 {
			return items[0], true
		}
	}
	for i := len(content) - 1; i >= 0; i-- {
		if len(content[i]) > 0 {
			return content[i][0], true
		}
	}

	return 0, false
}
