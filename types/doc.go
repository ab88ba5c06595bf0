// Package types contains the core types and interfaces shared across the
// bucketfeed library.
//
// This package exists to break import cycles: subpackages (bucket, sched,
// source, internal/logging) depend on types without depending on the root
// bucketfeed package, which re-exports the definitions here for users.
package types
