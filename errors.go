package rtree

import "errors"

// ErrNotFound is returned by Delete when no entry's payload matches the
// item given to it.
var ErrNotFound = errors.New("rtree: payload not found")

// ErrOutOfMemory is returned by Insert and Delete when node allocation
// fails. Go's allocator cannot be made to fail deterministically from
// library code, so this is a forward-compatible seam rather than a path
// exercised by any current caller; see DESIGN.md.
var ErrOutOfMemory = errors.New("rtree: allocation failed")
