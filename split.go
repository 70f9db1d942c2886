package rtree

// splitNode distributes the count occupants staged in t.scratch[:count]
// (always M+1: the node's prior M occupants plus the one that overflowed
// it) between n, which is cleared and reused as one half, and a freshly
// allocated sibling of the same kind. It implements Guttman's
// quadratic-cost split: PickSeeds chooses the least compatible pair to
// seed the two groups, then PickNext repeatedly assigns the remaining
// occupant with the strongest preference to the group whose enlargement
// it increases least.
func (t *RTree) splitNode(n *node, count int) (*node, error) {
	buf := append([]occupant(nil), t.scratch[:count]...)

	var nn *node
	var err error
	if n.kind == branchNode {
		nn, err = newBranch()
	} else {
		nn, err = newLeaf()
	}
	if err != nil {
		return nil, err
	}
	n.entries = nil
	n.children = nil
	n.mbr = Rectangle{}

	i, j := pickSeeds(buf)
	seedA, seedB := buf[i], buf[j]
	buf = removeAt(buf, j) // j > i: remove the higher index first
	buf = removeAt(buf, i)
	n.addOccupant(seedA)
	nn.addOccupant(seedB)

	for len(buf) > 0 {
		// If one group is about to fall below the minimum, the remaining
		// occupants must all go to it regardless of preference.
		if n.count()+len(buf) == m {
			for _, o := range buf {
				n.addOccupant(o)
			}
			break
		}
		if nn.count()+len(buf) == m {
			for _, o := range buf {
				nn.addOccupant(o)
			}
			break
		}

		k := pickNext(buf, n.mbr, nn.mbr)
		next := buf[k]
		buf = removeAt(buf, k)

		b := next.bounds()
		d1 := Enlargement(n.mbr, b)
		d2 := Enlargement(nn.mbr, b)
		switch {
		case d1 < d2:
			n.addOccupant(next)
		case d2 < d1:
			nn.addOccupant(next)
		case n.mbr.Area() < nn.mbr.Area():
			n.addOccupant(next)
		case nn.mbr.Area() < n.mbr.Area():
			nn.addOccupant(next)
		case n.count() <= nn.count():
			n.addOccupant(next)
		default:
			nn.addOccupant(next)
		}
	}

	return nn, nil
}

// pickSeeds returns the indexes of the pair of occupants in buf that would
// waste the most area if placed together in a single node: the pair least
// suited to sharing a group.
func pickSeeds(buf []occupant) (int, int) {
	bestI, bestJ := 0, 1
	bestWaste := Waste(buf[0].bounds(), buf[1].bounds())
	for i := 0; i < len(buf); i++ {
		for j := i + 1; j < len(buf); j++ {
			w := Waste(buf[i].bounds(), buf[j].bounds())
			if w > bestWaste {
				bestWaste = w
				bestI, bestJ = i, j
			}
		}
	}
	return bestI, bestJ
}

// pickNext returns the index in buf of the occupant with the strongest
// preference for one group's mbr over the other: the one maximizing
// |enlargement(nMBR, bbox) - enlargement(nnMBR, bbox)|.
func pickNext(buf []occupant, nMBR, nnMBR Rectangle) int {
	best := 0
	bestDiff := -1
	for i, o := range buf {
		b := o.bounds()
		d := Enlargement(nMBR, b) - Enlargement(nnMBR, b)
		if d < 0 {
			d = -d
		}
		if d > bestDiff {
			bestDiff = d
			best = i
		}
	}
	return best
}

// removeAt returns buf with the element at idx removed, preserving the
// relative order of the rest.
func removeAt(buf []occupant, idx int) []occupant {
	out := make([]occupant, 0, len(buf)-1)
	out = append(out, buf[:idx]...)
	out = append(out, buf[idx+1:]...)
	return out
}
