package types

// Hooks contains optional callbacks invoked during worker assignment.
//
// All fields are optional; nil callbacks are skipped. Hooks are called
// synchronously from InitWorker on the worker's own goroutine, so they must
// not block for long.
type Hooks struct {
	// OnAssigned is called after a worker finishes an assignment pass.
	//
	// Parameters:
	//   - workerSeed: The derived seed the pass was shuffled with
	//   - batches: Number of batches produced by the pass
	OnAssigned func(workerSeed uint64, batches int)

	// OnLeadPromoted is called when the lead batch is moved to position 0
	// on a worker's first assignment pass.
	//
	// Parameters:
	//   - from: The position the lead batch was swapped out of
	OnLeadPromoted func(from int)
}

// EmitAssigned invokes OnAssigned if set.
func (h *Hooks) EmitAssigned(workerSeed uint64, batches int) {
	if h == nil || h.OnAssigned == nil {
		return
	}
	h.OnAssigned(workerSeed, batches)
}

// EmitLeadPromoted invokes OnLeadPromoted if set.
func (h *Hooks) EmitLeadPromoted(from int) {
	if h == nil || h.OnLeadPromoted == nil {
		return
	}
	h.OnLeadPromoted(from)
}
