// Package gomlxds exposes a bucketfeed worker as a gomlx train.Dataset.
//
// The adapter walks the worker's batch order, materializes each batch's
// pixel data through a BatchStore collaborator and yields NHWC float32
// tensors plus the batch's item-index vector. It returns io.EOF when the
// epoch-equivalent is exhausted; Reset rewinds for the next pass.
package gomlxds
