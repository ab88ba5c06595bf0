package bucketfeed

// Option configures a Dataset with optional dependencies.
type Option func(*datasetOptions)

// datasetOptions holds optional Dataset configuration.
type datasetOptions struct {
	logger Logger
	hooks  *Hooks
}

// WithLogger sets a logger.
//
// By default the dataset is silent (no-op logger).
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	logger := logging.NewSlogDefault()
//	ds, _ := bucketfeed.New(&cfg, src, bucketfeed.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *datasetOptions) {
		o.logger = logger
	}
}

// WithHooks sets assignment event hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	hooks := &bucketfeed.Hooks{
//	    OnAssigned: func(workerSeed uint64, batches int) {
//	        metrics.RecordAssignment(batches)
//	    },
//	}
//	ds, _ := bucketfeed.New(&cfg, src, bucketfeed.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *datasetOptions) {
		o.hooks = hooks
	}
}
