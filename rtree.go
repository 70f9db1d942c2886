package rtree

// M is the maximum number of occupants any node may hold.
// m is the minimum number of occupants any non-root node must hold.
//
// These are compile-time constants rather than constructor parameters: the
// fan-out of this tree is fixed, not tunable per instance. See DESIGN.md
// for why this diverges from the teacher's runtime maxEntries parameter.
const (
	M = 4
	m = 2
)

func init() {
	if m < 1 || m > M/2 {
		panic("rtree: invalid fan-out constants: require 1 <= m <= M/2")
	}
}

// RTree is a height-balanced spatial index over axis-aligned rectangles,
// built per Guttman (1984) with the quadratic-cost split strategy.
//
// The zero value is not usable; construct a tree with New.
type RTree struct {
	boundsFn BoundsFunc
	root     *node

	// scratch is the tree's reusable split-staging buffer: the M+1
	// occupants of an overflowing node are staged here before SplitNode
	// redistributes them. splitNode copies them into a working slice of its
	// own, so a split still allocates that slice and the two halves'
	// occupant slices in addition to the new sibling node.
	scratch [M + 1]occupant
}

// New creates a new, empty R-tree. boundsFn extracts the bounding
// rectangle of an item passed to Insert or Delete; it is called once per
// Insert and once per Delete, and assumed to return a stable result for a
// given item.
func New(boundsFn BoundsFunc) *RTree {
	root, _ := newLeaf()
	return &RTree{
		boundsFn: boundsFn,
		root:     root,
	}
}

// Destroy drops the tree's internal node graph, leaving it equivalent to a
// freshly constructed, empty tree. The tree remains safe to reuse after
// Destroy.
//
// Go's garbage collector reclaims the detached nodes once they become
// unreachable; Destroy's only job is to drop the tree's own root
// reference, unlike a manual-memory implementation that must walk and
// free every node explicitly.
func (t *RTree) Destroy() {
	root, _ := newLeaf()
	t.root = root
}

// Size returns the number of entries currently indexed.
func (t *RTree) Size() int {
	return countEntries(t.root)
}

func countEntries(n *node) int {
	if n.leaf() {
		return len(n.entries)
	}
	total := 0
	for _, c := range n.children {
		total += countEntries(c)
	}
	return total
}

// Height returns the number of levels from the root down to the leaves,
// inclusive. An empty tree has height 1 (just the leaf root).
func (t *RTree) Height() int {
	return levelOf(t.root) + 1
}

// Insert adds item to the tree, under the bounding rectangle boundsFn(item)
// returns. It returns ErrOutOfMemory only if node allocation fails (see
// DESIGN.md); it is otherwise infallible.
func (t *RTree) Insert(item Item) error {
	bbox := t.boundsFn(item)
	e := entry{bbox: bbox, payload: item}
	leaf := t.chooseLeaf(bbox)
	return t.insertOccupant(leaf, e)
}

// chooseLeaf descends to the leaf best suited to hold a new entry with the
// given bounding rectangle.
func (t *RTree) chooseLeaf(bbox Rectangle) *node {
	return t.chooseNodeAtLevel(bbox, 0)
}

// chooseNodeAtLevel descends from the root, at each branch picking the
// child requiring least enlargement (ties broken by smaller area), until
// it reaches a node at the requested distance-from-leaves level. Passing
// level 0 returns a leaf; passing a positive level returns the node whose
// children should receive a reinserted subtree that itself sits at that
// level. Mirrors the teacher's chooseSubtree(bbox, root, level).
func (t *RTree) chooseNodeAtLevel(bbox Rectangle, level int) *node {
	cur := t.root
	for levelOf(cur) > level {
		cur = chooseChild(cur, bbox)
	}
	return cur
}

// chooseChild picks n's child requiring least enlargement to cover bbox,
// breaking ties in favor of the child with smaller area.
func chooseChild(n *node, bbox Rectangle) *node {
	best := n.children[0]
	bestEnlargement := Enlargement(best.mbr, bbox)
	bestArea := best.mbr.Area()
	for _, c := range n.children[1:] {
		d := Enlargement(c.mbr, bbox)
		if d < bestEnlargement || (d == bestEnlargement && c.mbr.Area() < bestArea) {
			best, bestEnlargement, bestArea = c, d, c.mbr.Area()
		}
	}
	return best
}

// insertOccupant places o into target (an entry into a leaf, or a child
// node into a branch), splitting target first if it is already full, then
// propagates the resulting mbr changes (and any split) up to the root.
func (t *RTree) insertOccupant(target *node, o occupant) error {
	if target.count() < M {
		target.addOccupant(o)
		return t.adjustTree(target, nil)
	}

	for i, occ := range target.occupants() {
		t.scratch[i] = occ
	}
	t.scratch[M] = o
	split, err := t.splitNode(target, M+1)
	if err != nil {
		return err
	}
	return t.adjustTree(target, split)
}

// adjustTree ascends from n, recomputing each ancestor's mbr to reflect
// changes below it, and propagating split upward (splitting each
// ancestor in turn if it overflows) until it is absorbed or a new root is
// created.
func (t *RTree) adjustTree(n, split *node) error {
	for {
		p := n.parent
		if p == nil {
			if split != nil {
				newRoot, err := newBranch()
				if err != nil {
					return err
				}
				newRoot.addOccupant(n)
				newRoot.addOccupant(split)
				t.root = newRoot
			}
			return nil
		}

		p.recomputeMBR()

		if split == nil {
			n = p
			continue
		}

		if len(p.children) < M {
			p.addOccupant(split)
			n, split = p, nil
			continue
		}

		for i, occ := range p.occupants() {
			t.scratch[i] = occ
		}
		t.scratch[M] = split
		pSplit, err := t.splitNode(p, M+1)
		if err != nil {
			return err
		}
		n, split = p, pSplit
	}
}
