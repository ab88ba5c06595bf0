// Package source provides ItemSource implementations.
//
// An ItemSource supplies the raw per-item resolutions that drive bucket
// assignment. The storage collaborator typically scans its backing store
// once at startup and hands the resolutions over through one of these
// sources before any worker starts.
package source
