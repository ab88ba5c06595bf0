package source

import (
	"sync"

	"github.com/arloliu/bucketfeed/types"
)

// Static implements an item source with a fixed list of raw resolutions.
type Static struct {
	mu          sync.RWMutex
	resolutions []types.Size
}

var _ types.ItemSource = (*Static)(nil)

// NewStatic creates a new static item source.
//
// The source returns a fixed list of resolutions that never changes once
// workers have started. Useful for testing and for stores that scan their
// backing directory once at startup.
//
// Parameters:
//   - resolutions: Raw (width, height) per item, index-aligned with the store
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := source.NewStatic([]types.Size{
//	    {Width: 1920, Height: 1080},
//	    {Width: 768, Height: 1024},
//	})
//	ds, err := bucketfeed.New(&cfg, src)
//	if err != nil { /* handle */ }
func NewStatic(resolutions []types.Size) *Static {
	return &Static{
		resolutions: resolutions,
	}
}

// Len returns the number of items.
func (s *Static) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.resolutions)
}

// Resolution returns the raw resolution of item i.
func (s *Static) Resolution(i int) types.Size {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.resolutions[i]
}

// Update replaces the resolution list.
//
// Only valid before any worker runs its first assignment pass; after workers
// fork the resolutions are shared by read-only reference and must not change.
//
// Parameters:
//   - resolutions: New resolution list
func (s *Static) Update(resolutions []types.Size) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resolutions = resolutions
}
