package rtree

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// Debug controls whether Check performs its invariant assertions. It
// mirrors the source's NDEBUG switch: leave it on during development and
// testing; turn it off where the extra traversal cost isn't wanted.
var Debug = true

// invariantViolation is the value Check panics with when Debug is enabled
// and a structural invariant does not hold. It is never returned from a
// public operation: a caller recovering one is observing a bug in this
// package, not handling an expected condition.
type invariantViolation struct {
	reason string
}

func (e *invariantViolation) Error() string {
	return "rtree: invariant violation: " + e.reason
}

func violate(format string, args ...interface{}) {
	panic(&invariantViolation{reason: fmt.Sprintf(format, args...)})
}

// Check asserts that t satisfies every structural invariant of a
// well-formed R-tree: fan-out within [m, M] for every non-root node,
// equal depth for every leaf, correct parent back-pointers, and mbrs that
// exactly (not just loosely) bound their occupants. It panics with an
// *invariantViolation on the first broken invariant found. When Debug is
// false, Check does nothing.
func (t *RTree) Check() {
	if !Debug {
		return
	}
	checkParent(t.root)
	checkDegree(t.root)
	leafDepth := -1
	checkBalance(t.root, 0, &leafDepth)
	checkMBR(t.root)
}

func checkParent(n *node) {
	if n.leaf() {
		return
	}
	for _, c := range n.children {
		if c.parent != n {
			violate("child does not reference its parent:\n%s", spew.Sdump(c))
		}
		checkParent(c)
	}
}

func checkDegree(n *node) {
	count := n.count()
	if count > M {
		violate("node exceeds max fan-out: %d > %d", count, M)
	}
	if n.parent != nil {
		if count < m {
			violate("non-root node underflows min fan-out: %d < %d", count, m)
		}
	} else if !n.leaf() && count < 2 {
		violate("branch root has fewer than 2 children: %d", count)
	}
	if !n.leaf() {
		for _, c := range n.children {
			checkDegree(c)
		}
	}
}

func checkBalance(n *node, depth int, leafDepth *int) {
	if n.leaf() {
		if *leafDepth == -1 {
			*leafDepth = depth
		} else if depth != *leafDepth {
			violate("leaves at unequal depth: %d != %d", depth, *leafDepth)
		}
		return
	}
	for _, c := range n.children {
		checkBalance(c, depth+1, leafDepth)
	}
}

func checkMBR(n *node) {
	for _, o := range n.occupants() {
		if !IsSubset(o.bounds(), n.mbr) {
			violate("occupant %s is not contained in node mbr %s", o.bounds(), n.mbr)
		}
		if c, ok := o.(*node); ok {
			checkMBR(c)
		}
	}
	if !isExactMBR(n) {
		violate("mbr %s is not the exact bound of its occupants:\n%s", n.mbr, spew.Sdump(n))
	}
}

func isExactMBR(n *node) bool {
	occ := n.occupants()
	if len(occ) == 0 {
		return n.mbr == Rectangle{}
	}
	want := occ[0].bounds()
	for _, o := range occ[1:] {
		want = MBR(want, o.bounds())
	}
	return want == n.mbr
}

// SpewDump renders the tree's full node graph, including parent
// back-pointers, for interactive debugging. It is the idiomatic-Go
// counterpart of the source's preorder printtree().
func (t *RTree) SpewDump() string {
	return spew.Sdump(t.root)
}
