// Package bucket generates the fixed menu of target resolutions that items
// are grouped into.
//
// A table is a pure function of its configuration: enumerate admissible
// widths, derive the height that keeps the area at the budget, mirror each
// entry to cover the portrait/landscape dual, and add the single square
// bucket. The result is sorted by aspect ratio and deduplicated explicitly,
// so the table order is defined by this package and not by map iteration.
package bucket
