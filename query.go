package rtree

// Iterator yields the payloads of every entry overlapping a search
// window, found by descending only into subtrees whose mbr overlaps that
// window. It is restartable (Reset) and lazy: nodes are visited on demand
// as Next is called, not all at once up front.
//
// An Iterator reflects the tree's shape at the moment it was built or last
// Reset; mutating the tree while an iterator walks it is not supported
// (the tree itself is not safe for concurrent use regardless).
type Iterator struct {
	root    *node
	window  Rectangle
	stack   []*node
	pending []entry
}

// Search returns a restartable iterator over every entry whose bounding
// rectangle overlaps window.
func (t *RTree) Search(window Rectangle) *Iterator {
	it := &Iterator{root: t.root, window: window}
	it.Reset()
	return it
}

// Reset rewinds the iterator to the state it had when Search created it.
func (it *Iterator) Reset() {
	it.stack = []*node{it.root}
	it.pending = nil
}

// Next advances the iterator, reporting a payload and true, or a zero
// value and false once every match has been produced.
func (it *Iterator) Next() (Item, bool) {
	for {
		if len(it.pending) > 0 {
			e := it.pending[0]
			it.pending = it.pending[1:]
			return e.payload, true
		}
		if len(it.stack) == 0 {
			return nil, false
		}

		n := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]

		if !Overlaps(n.mbr, it.window) {
			continue
		}
		if n.leaf() {
			for _, e := range n.entries {
				if Overlaps(e.bbox, it.window) {
					it.pending = append(it.pending, e)
				}
			}
			continue
		}
		it.stack = append(it.stack, n.children...)
	}
}

// All drains the iterator into a slice, for callers that don't need
// laziness. It returns nil if nothing matched.
func (it *Iterator) All() []Item {
	var out []Item
	for {
		item, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, item)
	}
}
