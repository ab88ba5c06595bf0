package sched

import (
	"fmt"
	"slices"

	"github.com/arloliu/bucketfeed/bucket"
	"github.com/arloliu/bucketfeed/types"
)

// Assignment is the disposable derived state of one bucket-assignment pass.
//
// It is rebuilt from scratch on every pass; nothing persists across passes
// beyond the deterministic seeding contract of the caller.
type Assignment struct {
	// Content maps bucket index (in table order) to the item indices
	// assigned to that bucket. Buckets with no items hold a nil slice.
	Content [][]int

	// Ratios holds, per item index, the aspect ratio of the bucket the item
	// was assigned to. Overwritten wholesale by every pass.
	Ratios []float64
}

// AssignBuckets assigns every item to exactly one bucket.
//
// Items are sorted ascending by raw ratio (ties broken by index, so the
// order never depends on sort stability) and split into a landscape group
// (ratio ≤ 1) and a portrait group (ratio > 1). Each group is chunked into
// batch-sized runs and each chunk lands whole in a single bucket:
//
//   - Landscape chunks walk the bucket cursor forward from the most extreme
//     landscape bucket; the chunk's last (most portrait-leaning) member
//     decides how far the cursor advances. The remainder chunk, if any, is
//     the tail of the ascending order and is processed last.
//   - Portrait chunks are symmetric: the cursor walks backward from the most
//     extreme portrait bucket, the chunk's first (most landscape-leaning)
//     member decides the advance, and the remainder chunk is the head of the
//     ascending order, processed last.
//
// The cursor never reverses, which keeps the pass O(items + buckets) and
// guarantees ascending raw ratio maps to non-decreasing bucket rank.
//
// Parameters:
//   - resolutions: Raw (width, height) per item, index-aligned
//   - table: Ratio-sorted bucket table
//   - batchSize: Chunk granularity, must be > 0
//
// Returns:
//   - *Assignment: Bucket content and per-item assigned ratios
//   - error: types.ErrRatioOutOfRange when the cursor runs off the table
//     (internally inconsistent configuration; never silently clamped)
func AssignBuckets(resolutions []types.Size, table *bucket.Table, batchSize int) (*Assignment, error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf("%w: batch size must be > 0, got %d", types.ErrInvalidConfig, batchSize)
	}

	n := len(resolutions)
	raw := make([]float64, n)
	order := make([]int, n)
	for i, res := range resolutions {
		raw[i] = res.Ratio()
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		switch {
		case raw[a] < raw[b]:
			return -1
		case raw[a] > raw[b]:
			return 1
		}

		return a - b
	})

	// The ascending order splits at ratio 1: everything at or below is
	// landscape, everything above is portrait.
	split := len(order)
	for i, idx := range order {
		if raw[idx] > 1 {
			split = i
			break
		}
	}
	landscape, portrait := order[:split], order[split:]

	asg := &Assignment{
		Content: make([][]int, table.Len()),
		Ratios:  make([]float64, n),
	}

	cursor := 0
	for _, chunk := range chunkAscending(landscape, batchSize) {
		decisive := raw[chunk[len(chunk)-1]]
		for cursor < table.Len() && table.Ratio(cursor) < decisive {
			cursor++
		}
		if cursor == table.Len() {
			return nil, fmt.Errorf("%w: landscape ratio %.4f exceeds last bucket", types.ErrRatioOutOfRange, decisive)
		}
		asg.place(cursor, chunk, table.Ratio(cursor))
	}

	cursor = table.Len() - 1
	for _, chunk := range chunkDescending(portrait, batchSize) {
		decisive := raw[chunk[0]]
		for cursor >= 0 && table.Ratio(cursor) > decisive {
			cursor--
		}
		if cursor < 0 {
			return nil, fmt.Errorf("%w: portrait ratio %.4f below first bucket", types.ErrRatioOutOfRange, decisive)
		}
		asg.place(cursor, chunk, table.Ratio(cursor))
	}

	return asg, nil
}

func (a *Assignment) place(bucketIdx int, chunk []int, ratio float64) {
	a.Content[bucketIdx] = append(a.Content[bucketIdx], chunk...)
	for _, item := range chunk {
		a.Ratios[item] = ratio
	}
}

// chunkAscending splits idxs (ascending ratio order) into full batch-sized
// chunks from the front; the remainder, if any, is the tail and comes last.
func chunkAscending(idxs []int, batchSize int) [][]int {
	var chunks [][]int
	for start := 0; start+batchSize <= len(idxs); start += batchSize {
		chunks = append(chunks, idxs[start:start+batchSize])
	}
	if rem := len(idxs) % batchSize; rem > 0 {
		chunks = append(chunks, idxs[len(idxs)-rem:])
	}

	return chunks
}

// chunkDescending splits idxs (ascending ratio order) for the backward
// portrait walk: full chunks taken from the tail first (most portrait-leaning
// chunks before less extreme ones), with the remainder taken from the head
// and processed last.
func chunkDescending(idxs []int, batchSize int) [][]int {
	rem := len(idxs) % batchSize

	var chunks [][]int
	for end := len(idxs); end-batchSize >= rem; end -= batchSize {
		chunks = append(chunks, idxs[end-batchSize:end])
	}
	if rem > 0 {
		chunks = append(chunks, idxs[:rem])
	}

	return chunks
}
