package types

// Size is a (width, height) pixel resolution.
//
// It is used both for the raw resolution of a stored item and for a bucket,
// the fixed target resolution a group of items is resized/cropped to
// together. Zero or negative dimensions are never valid.
type Size struct {
	// Width in pixels.
	Width int `yaml:"width" json:"width"`

	// Height in pixels.
	Height int `yaml:"height" json:"height"`
}

// Ratio returns the aspect ratio width/height.
//
// Ratios below 1 are landscape-leaning, above 1 portrait-leaning, exactly 1
// square. The bucket table is totally ordered by this value.
//
// Returns:
//   - float64: Width divided by Height
func (s Size) Ratio() float64 {
	return float64(s.Width) / float64(s.Height)
}

// Area returns the pixel area width*height.
func (s Size) Area() int {
	return s.Width * s.Height
}

// Compare orders sizes by ratio, breaking ties by width then height.
//
// This is the canonical bucket-table order: ascending ratio, with the tie
// break making the order total so table generation and deduplication are
// deterministic regardless of enumeration order.
//
// Returns:
//   - int: -1 if s < q, 0 if equal, +1 if s > q
func (s Size) Compare(q Size) int {
	// Cross-multiplied ratio comparison stays exact where float division
	// would round: s.W/s.H < q.W/q.H <=> s.W*q.H < q.W*s.H for positive
	// heights.
	lhs, rhs := s.Width*q.Height, q.Width*s.Height
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	}

	switch {
	case s.Width < q.Width:
		return -1
	case s.Width > q.Width:
		return 1
	}

	switch {
	case s.Height < q.Height:
		return -1
	case s.Height > q.Height:
		return 1
	}

	return 0
}

// Transpose returns the portrait/landscape dual (height, width).
func (s Size) Transpose() Size {
	return Size{Width: s.Height, Height: s.Width}
}
