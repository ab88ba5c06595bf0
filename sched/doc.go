// Package sched implements the bucket-assignment and batch-construction
// algorithms.
//
// The three passes are stateless functions, called per worker in order:
//
//	AssignBuckets → BuildBatches → (first pass only) PromoteLead
//
// AssignBuckets walks items in ratio order against the ratio-sorted bucket
// table with a one-directional cursor, so the whole pass is linear in items
// plus buckets and every bucket receives a contiguous ratio range.
// BuildBatches shuffles within buckets and then shuffles batch order, with
// the random source threaded through explicitly so a pass is a pure function
// of its inputs and seed. PromoteLead moves the likeliest out-of-memory
// candidate batch to the front so a capacity failure surfaces on the very
// first batch instead of deep into an epoch.
package sched
