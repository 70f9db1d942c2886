// Package rtree implements a dynamic, in-memory R-tree: a height-balanced
// spatial index over axis-aligned rectangles that supports interleaved
// insertion, deletion, and overlap search without periodic reorganization.
//
// The design follows A. Guttman (1984), "R-Trees: A Dynamic Index Structure
// for Spatial Searching", using the quadratic-cost split strategy. Node
// fan-out is bounded by the compile-time constants M (max occupants) and m
// (min occupants); there is no runtime configuration.
//
// The tree is not safe for concurrent use. All operations run synchronously
// to completion on the caller's goroutine; a caller sharing a tree across
// goroutines must serialize access itself.
package rtree
