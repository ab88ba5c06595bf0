// Package testing provides helpers for tests of code built on bucketfeed.
package testing
