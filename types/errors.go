package types

import "errors"

// Sentinel errors for the bucketfeed library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap external errors with context using fmt.Errorf("%s: %w", msg, err).

// Configuration errors - fatal at construction, before any worker starts.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrItemSourceRequired is returned when the item source is nil.
	ErrItemSourceRequired = errors.New("item source is required")

	// ErrEmptyBucketTable is returned when the size bounds admit no bucket.
	// A corrupt table would poison every downstream worker identically, so
	// this aborts construction.
	ErrEmptyBucketTable = errors.New("size bounds produce an empty bucket table")
)

// Assignment errors - invariant violations surfaced by the assignment pass.
var (
	// ErrRatioOutOfRange is returned when an item's raw ratio falls outside
	// every bucket's coverage. This indicates an internally inconsistent
	// min/max size configuration, not a recoverable per-item condition;
	// silently clamping the item into a wrong bucket would corrupt training
	// data without detection.
	ErrRatioOutOfRange = errors.New("item ratio outside covered bucket range")
)

// Dataset errors - returned by the serving surface.
var (
	// ErrNotAssigned is returned when batches are requested before the
	// worker-startup hook has run an assignment pass.
	ErrNotAssigned = errors.New("no assignment pass has run; call InitWorker first")

	// ErrBatchIndex is returned when a batch index is out of range.
	ErrBatchIndex = errors.New("batch index out of range")

	// ErrItemIndex is returned when an item index is out of range.
	ErrItemIndex = errors.New("item index out of range")
)
