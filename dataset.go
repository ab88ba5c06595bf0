package bucketfeed

import (
	"fmt"
	rand "math/rand/v2"
	"slices"

	"github.com/arloliu/bucketfeed/bucket"
	"github.com/arloliu/bucketfeed/internal/logging"
	"github.com/arloliu/bucketfeed/internal/seed"
	"github.com/arloliu/bucketfeed/sched"
	"github.com/arloliu/bucketfeed/types"
)

// Dataset partitions a variable-resolution item collection into fixed-size,
// resolution-homogeneous batches.
//
// The immutable inputs — bucket table and raw resolutions — are captured once
// at construction and shared by every worker by read-only reference. The
// mutable derived state (bucket content, assigned ratios, batch order) is
// private to the Dataset value and rebuilt wholesale by InitWorker; parallel
// workers each hold their own Dataset (or a process-fork copy) and never
// share it, so no locking is needed and none is performed.
type Dataset struct {
	cfg    Config
	logger types.Logger
	hooks  *types.Hooks

	// Immutable after New.
	table       *bucket.Table
	resolutions []types.Size
	length      int

	// Per-worker derived state, rebuilt by InitWorker.
	rng      *rand.Rand
	asg      *sched.Assignment
	batches  [][]int
	leadDone bool
}

// New creates a Dataset for the given configuration and item source.
//
// Construction validates the configuration, generates the bucket table and
// captures every item's raw resolution. All of this happens before any
// worker starts: a configuration error here is fatal, since a corrupt table
// would poison every downstream worker identically.
//
// The advertised length ceil(items / batchSize) is fixed at construction and
// never changes across reassignments.
//
// Parameters:
//   - cfg: Dataset configuration (defaults applied, then validated)
//   - src: Item source supplying raw resolutions; must be fully populated
//   - opts: Optional dependencies (WithLogger, WithHooks)
//
// Returns:
//   - *Dataset: Constructed dataset; call InitWorker before serving batches
//   - error: ErrInvalidConfig, ErrItemSourceRequired or ErrEmptyBucketTable
//
// Example:
//
//	cfg := bucketfeed.DefaultConfig()
//	cfg.BatchSize = 8
//	ds, err := bucketfeed.New(&cfg, source.NewStatic(resolutions))
//	if err != nil {
//	    log.Fatal(err)
//	}
func New(cfg *Config, src ItemSource, opts ...Option) (*Dataset, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config is required", ErrInvalidConfig)
	}
	if src == nil {
		return nil, ErrItemSourceRequired
	}

	SetDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &datasetOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = logging.NewNop()
	}

	table, err := bucket.Generate(cfg.TargetArea, cfg.MinSize, cfg.MaxSize, cfg.Step)
	if err != nil {
		return nil, err
	}

	n := src.Len()
	resolutions := make([]types.Size, n)
	for i := range resolutions {
		resolutions[i] = src.Resolution(i)
	}

	d := &Dataset{
		cfg:         *cfg,
		logger:      options.logger,
		hooks:       options.hooks,
		table:       table,
		resolutions: resolutions,
		length:      (n + cfg.BatchSize - 1) / cfg.BatchSize,
	}

	d.logger.Info("dataset constructed",
		"items", n,
		"buckets", table.Len(),
		"batchSize", cfg.BatchSize,
		"length", d.length,
	)

	return d, nil
}

// Len returns the number of batches per epoch-equivalent.
//
// The value depends only on the item count and batch size, so it is stable
// across reassignments within the same configuration.
func (d *Dataset) Len() int {
	return d.length
}

// Table returns the immutable bucket table.
func (d *Dataset) Table() *bucket.Table {
	return d.table
}

// InitWorker is the worker-startup hook.
//
// Each parallel worker calls it once on startup with a worker-unique
// identifier. The call reseeds the worker's private random source
// deterministically from (Config.Seed, workerID), reruns bucket assignment
// and batch construction, and — on the very first invocation only — promotes
// the lead batch to position 0. Every worker thus serves an independent,
// internally-consistent, reproducible-per-seed stream of batches.
//
// Parameters:
//   - workerID: Worker-unique identifier from the execution environment
//
// Returns:
//   - error: ErrRatioOutOfRange on an assignment invariant violation
func (d *Dataset) InitWorker(workerID uint64) error {
	workerSeed := seed.Derive(d.cfg.Seed, workerID)
	d.rng = rand.New(rand.NewPCG(workerSeed, 0))

	asg, err := sched.AssignBuckets(d.resolutions, d.table, d.cfg.BatchSize)
	if err != nil {
		return fmt.Errorf("assignment pass failed: %w", err)
	}
	d.asg = asg
	d.batches = sched.BuildBatches(asg.Content, d.cfg.BatchSize, d.rng)

	if !d.leadDone {
		d.leadDone = true
		if from := sched.PromoteLead(asg.Content, d.batches); from >= 0 {
			d.logger.Debug("lead batch promoted", "worker", workerID, "from", from)
			d.hooks.EmitLeadPromoted(from)
		}
	}

	d.logger.Debug("assignment pass complete",
		"worker", workerID,
		"workerSeed", workerSeed,
		"batches", len(d.batches),
	)
	d.hooks.EmitAssigned(workerSeed, len(d.batches))

	return nil
}

// Batch returns the ordered item-index sequence for batch i.
//
// The storage collaborator consumes the indices to fetch, crop and resize
// each item to the batch's assigned ratio.
//
// Parameters:
//   - i: Batch index in [0, BatchCount())
//
// Returns:
//   - []int: Copy of the batch's item indices
//   - error: ErrNotAssigned before the first InitWorker, ErrBatchIndex when
//     out of range
func (d *Dataset) Batch(i int) ([]int, error) {
	if d.asg == nil {
		return nil, ErrNotAssigned
	}
	if i < 0 || i >= len(d.batches) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrBatchIndex, i, len(d.batches))
	}

	return slices.Clone(d.batches[i]), nil
}

// BatchCount returns the number of batches built by the last assignment pass.
//
// Unlike Len, this counts actual batches including per-bucket remainder
// batches, so it can exceed Len when items are spread thinly over buckets.
func (d *Dataset) BatchCount() int {
	return len(d.batches)
}

// RatioFor returns the assigned bucket ratio of an item.
//
// The storage collaborator uses this to decide the crop/resize target for
// the item. The value is overwritten on every assignment pass; the raw
// resolution it derives from never changes.
//
// Parameters:
//   - item: Item index in [0, item count)
//
// Returns:
//   - float64: Ratio of the bucket the item was placed in
//   - error: ErrNotAssigned before the first InitWorker, ErrItemIndex when
//     out of range
func (d *Dataset) RatioFor(item int) (float64, error) {
	if d.asg == nil {
		return 0, ErrNotAssigned
	}
	if item < 0 || item >= len(d.asg.Ratios) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrItemIndex, item, len(d.asg.Ratios))
	}

	return d.asg.Ratios[item], nil
}
