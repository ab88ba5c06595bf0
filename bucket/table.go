package bucket

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/bucketfeed/types"
)

// Table is the immutable, ratio-sorted set of target resolutions.
//
// Tables are computed once at dataset construction and shared by read-only
// reference across workers; nothing mutates a table after Generate returns.
type Table struct {
	sizes  []types.Size
	ratios []float64
}

// Generate computes the bucket table for an area budget and size constraints.
//
// Every bucket (w, h) satisfies: both dimensions divisible by step,
// w*h ≈ targetArea, h ≥ minSize, and for every admitted (w, h) the transposed
// (h, w) is admitted too. Exactly one square bucket is added at the largest
// step-aligned side not exceeding sqrt(targetArea). The table is sorted
// ascending by ratio = w/h with a width tie break, then deduplicated.
//
// Parameters:
//   - targetArea: Area budget in pixels; must be divisible by step*step
//   - minSize: Minimum admitted dimension (inclusive)
//   - maxSize: Maximum admitted dimension (inclusive)
//   - step: Block granularity of the downstream resolution (e.g. 64)
//
// Returns:
//   - *Table: Ratio-sorted bucket table
//   - error: types.ErrInvalidConfig for bad parameters,
//     types.ErrEmptyBucketTable when the bounds admit nothing
//
// Example:
//
//	table, err := bucket.Generate(1024*1024, 512, 2048, 64)
//	if err != nil { /* fatal: configuration error */ }
func Generate(targetArea, minSize, maxSize, step int) (*Table, error) {
	if step <= 0 {
		return nil, fmt.Errorf("%w: step must be > 0, got %d", types.ErrInvalidConfig, step)
	}
	if targetArea <= 0 {
		return nil, fmt.Errorf("%w: target area must be > 0, got %d", types.ErrInvalidConfig, targetArea)
	}
	if targetArea%(step*step) != 0 {
		return nil, fmt.Errorf(
			"%w: target area (%d) must be divisible by step^2 (%d)",
			types.ErrInvalidConfig, targetArea, step*step,
		)
	}
	if minSize <= 0 || maxSize < minSize {
		return nil, fmt.Errorf(
			"%w: size bounds must satisfy 0 < minSize <= maxSize, got [%d, %d]",
			types.ErrInvalidConfig, minSize, maxSize,
		)
	}
	if minSize%step != 0 || maxSize%step != 0 {
		return nil, fmt.Errorf(
			"%w: size bounds [%d, %d] must be multiples of step (%d)",
			types.ErrInvalidConfig, minSize, maxSize, step,
		)
	}

	var sizes []types.Size
	for width := minSize; width <= maxSize; width += step {
		height := (targetArea / width) / step * step
		if height > maxSize {
			height = maxSize
		}
		if height < minSize {
			continue
		}
		s := types.Size{Width: width, Height: height}
		sizes = append(sizes, s, s.Transpose())
	}

	// The single square bucket closest to the budget from below.
	side := int(math.Sqrt(float64(targetArea))) / step * step
	if side >= minSize && side <= maxSize {
		sizes = append(sizes, types.Size{Width: side, Height: side})
	}

	if len(sizes) == 0 {
		return nil, fmt.Errorf("%w: targetArea=%d minSize=%d maxSize=%d step=%d",
			types.ErrEmptyBucketTable, targetArea, minSize, maxSize, step)
	}

	slices.SortFunc(sizes, types.Size.Compare)
	sizes = slices.Compact(sizes)

	ratios := make([]float64, len(sizes))
	for i, s := range sizes {
		ratios[i] = s.Ratio()
	}

	return &Table{sizes: sizes, ratios: ratios}, nil
}

// Len returns the number of buckets.
func (t *Table) Len() int {
	return len(t.sizes)
}

// Size returns the bucket at index i in ratio-sorted order.
func (t *Table) Size(i int) types.Size {
	return t.sizes[i]
}

// Ratio returns the aspect ratio of the bucket at index i.
func (t *Table) Ratio(i int) float64 {
	return t.ratios[i]
}

// Sizes returns a copy of the bucket list in ratio-sorted order.
func (t *Table) Sizes() []types.Size {
	return slices.Clone(t.sizes)
}

// Ratios returns a copy of the parallel ratio array.
func (t *Table) Ratios() []float64 {
	return slices.Clone(t.ratios)
}

// Contains reports whether the table admits the exact (width, height) pair.
func (t *Table) Contains(s types.Size) bool {
	_, ok := slices.BinarySearchFunc(t.sizes, s, types.Size.Compare)
	return ok
}
