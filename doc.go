// Package bucketfeed feeds variable-resolution items to a fixed-batch-size
// consumer by grouping them into aspect-ratio buckets.
//
// Instead of resizing every image to one canonical resolution (losing
// composition) or padding heterogeneous batches (wasting accelerator
// memory), bucketfeed partitions the collection into a fixed menu of target
// resolutions sharing one pixel-area budget, then into fixed-size batches
// whose members all resize to the same target. The most memory-demanding
// batch is scheduled first so a capacity failure surfaces immediately, not
// hours into an epoch.
//
// # Quick Start
//
//	cfg := bucketfeed.DefaultConfig()
//	cfg.BatchSize = 8
//
//	src := source.NewStatic(resolutions) // raw (w, h) per stored item
//	ds, err := bucketfeed.New(&cfg, src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// In each dataloader worker:
//	if err := ds.InitWorker(workerID); err != nil {
//	    log.Fatal(err)
//	}
//	for i := 0; i < ds.BatchCount(); i++ {
//	    indices, _ := ds.Batch(i)
//	    ratio, _ := ds.RatioFor(indices[0])
//	    // hand indices + ratio to the storage collaborator
//	}
//
// # Key Properties
//
//   - Homogeneous batches: every batch's items share one target resolution
//   - Monotonic assignment: ascending raw ratio never maps to a lower bucket
//   - Deterministic: a (configuration, worker seed) pair fully determines
//     bucket content and batch order, bit for bit
//   - Lead batch canary: the extreme-ratio batch runs first to probe memory
//
// # Architecture
//
// The immutable bucket table and raw resolutions are built once, before any
// worker starts. Each worker then owns its private derived state:
//
//	New → [per worker] InitWorker → AssignBuckets → BuildBatches → (once) PromoteLead
//
// Algorithms live in the bucket and sched subpackages; shared types in
// types; item sources in source; a gomlx train.Dataset adapter in gomlxds.
package bucketfeed
