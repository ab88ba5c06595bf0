package gomlxds

import (
	"io"

	"github.com/gomlx/gomlx/pkg/core/shapes"
	"github.com/gomlx/gomlx/pkg/core/tensors"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"

	"github.com/arloliu/bucketfeed"
	"github.com/arloliu/bucketfeed/types"
)

// BatchStore materializes decoded pixel data for a batch of items.
//
// The store owns all image/latent I/O, cropping and resizing; this package
// only tells it which items travel together and which target ratio they
// were assigned. Implementations must return one contiguous NHWC float32
// buffer covering the whole batch at a single (width, height).
type BatchStore interface {
	// FetchBatch decodes the given items, cropped/resized to the assigned
	// ratio, and returns them as one contiguous NHWC float32 buffer.
	//
	// Parameters:
	//   - indices: Item indices of the batch, in batch order
	//   - ratio: Assigned bucket ratio the items must be fit to
	//
	// Returns:
	//   - data: Contiguous buffer of len(indices)*height*width*channels floats
	//   - width, height, channels: Concrete dimensions of every item in data
	//   - err: Decode or I/O failure
	FetchBatch(indices []int, ratio float64) (data []float32, width, height, channels int, err error)
}

// Dataset adapts a bucketfeed.Dataset to the gomlx train.Dataset interface.
//
// Like the worker state it wraps, a Dataset is single-goroutine: each
// dataloader worker builds its own adapter over its own initialized
// bucketfeed.Dataset.
type Dataset struct {
	name  string
	ds    *bucketfeed.Dataset
	store BatchStore
	next  int
}

// New creates a train.Dataset adapter over an initialized worker dataset.
//
// The worker must have run InitWorker before the first Yield; Yield surfaces
// the dataset's ErrNotAssigned otherwise.
//
// Parameters:
//   - name: Dataset name reported to the gomlx training loop
//   - ds: Worker's bucketfeed dataset
//   - store: Storage collaborator that materializes pixel data
//
// Returns:
//   - *Dataset: Adapter positioned at the first batch
func New(name string, ds *bucketfeed.Dataset, store BatchStore) *Dataset {
	return &Dataset{name: name, ds: ds, store: store}
}

// Name implements train.Dataset.
func (d *Dataset) Name() string {
	return d.name
}

// Yield implements train.Dataset.
//
// It returns the next batch as two input tensors — the NHWC float32 image
// tensor and the int32 item-index vector — with no labels (self-supervised
// consumers derive targets from the inputs). At the end of the epoch it
// returns io.EOF.
func (d *Dataset) Yield() (spec any, inputs []*tensors.Tensor, labels []*tensors.Tensor, err error) {
	if d.next >= d.ds.BatchCount() {
		if d.ds.BatchCount() == 0 {
			// Distinguish "worker never initialized" from "empty epoch".
			if _, err := d.ds.Batch(0); err == types.ErrNotAssigned {
				return nil, nil, nil, err
			}
		}

		return nil, nil, nil, io.EOF
	}

	indices, err := d.ds.Batch(d.next)
	if err != nil {
		return nil, nil, nil, err
	}
	ratio, err := d.ds.RatioFor(indices[0])
	if err != nil {
		return nil, nil, nil, err
	}

	data, width, height, channels, err := d.store.FetchBatch(indices, ratio)
	if err != nil {
		return nil, nil, nil, errors.WithMessagef(err, "fetching batch %d (ratio %.4f)", d.next, ratio)
	}
	if want := len(indices) * height * width * channels; len(data) != want {
		return nil, nil, nil, errors.Errorf(
			"store returned %d floats for batch %d, want %d (%dx%dx%dx%d)",
			len(data), d.next, want, len(indices), height, width, channels,
		)
	}

	images := tensors.FromShape(shapes.Make(dtypes.Float32, len(indices), height, width, channels))
	tensors.MutableFlatData[float32](images, func(flat []float32) {
		copy(flat, data)
	})

	idxVec := make([]int32, len(indices))
	for i, idx := range indices {
		idxVec[i] = int32(idx)
	}

	d.next++

	return nil, []*tensors.Tensor{images, tensors.FromValue(idxVec)}, nil, nil
}

// Reset implements train.Dataset. It rewinds to the first batch; the batch
// order itself only changes when the worker reruns InitWorker.
func (d *Dataset) Reset() {
	d.next = 0
}
