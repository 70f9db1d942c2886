package rtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickSeedsChoosesTheMostWastefulPair(t *testing.T) {
	buf := []occupant{
		entry{bbox: Rect(0, 0, 1, 1)},
		entry{bbox: Rect(1, 1, 2, 2)},
		entry{bbox: Rect(100, 100, 101, 101)}, // far away: wastes the most paired with either of the above
	}
	i, j := pickSeeds(buf)
	assert.ElementsMatch(t, []int{i, j}, []int{0, 2})
}

func TestPickNextMaximizesEnlargementDifference(t *testing.T) {
	nMBR := Rect(0, 0, 10, 10)
	nnMBR := Rect(100, 100, 110, 110)
	buf := []occupant{
		entry{bbox: Rect(4, 4, 6, 6)},     // deep inside nMBR: strong preference for n
		entry{bbox: Rect(50, 50, 51, 51)}, // roughly equidistant: weak preference
	}
	k := pickNext(buf, nMBR, nnMBR)
	assert.Equal(t, 0, k)
}

func TestInsertBeyondCapacitySplitsTheLeaf(t *testing.T) {
	tree := New(testBounds)
	for i := 0; i <= M; i++ { // one more than a single leaf can hold
		require.NoError(t, tree.Insert(randomItem(i)))
	}
	tree.Check()
	assert.False(t, tree.root.leaf())
	assert.Len(t, tree.root.children, 2)
	for _, c := range tree.root.children {
		assert.GreaterOrEqual(t, c.count(), m)
		assert.LessOrEqual(t, c.count(), M)
	}
}

func TestManyInsertsKeepFanOutWithinBounds(t *testing.T) {
	tree, _ := newPrePopulatedTree(2000)
	var walk func(n *node)
	walk = func(n *node) {
		if n != tree.root {
			assert.LessOrEqual(t, n.count(), M)
			assert.GreaterOrEqual(t, n.count(), m)
		}
		if !n.leaf() {
			for _, c := range n.children {
				walk(c)
			}
		}
	}
	walk(tree.root)
	tree.Check()
}
