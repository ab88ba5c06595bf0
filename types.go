package bucketfeed

import "github.com/arloliu/bucketfeed/types"

// Re-export types from the internal types package.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing subpackages
// (bucket, sched, source) to depend on `types` without depending on the root
// bucketfeed package, while still providing a convenient `bucketfeed.Size`,
// `bucketfeed.Logger`, etc. for users.
type (
	Size  = types.Size
	Hooks = types.Hooks
)

// Re-export interfaces from the internal types package for convenience.
type (
	ItemSource = types.ItemSource
	Logger     = types.Logger
)
