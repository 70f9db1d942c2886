package rtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCondensesUnderflowingNodes(t *testing.T) {
	tree, items := newPrePopulatedTree(400)

	for i := 0; i < 300; i++ {
		require.NoError(t, tree.Delete(items[i], nil))
		tree.Check()
	}
	assert.Equal(t, len(items)-300, tree.Size())
}

func TestRootContractsWhenOnlyOneChildRemains(t *testing.T) {
	tree, items := newPrePopulatedTree(5)

	for i := 0; i < 4; i++ {
		require.NoError(t, tree.Delete(items[i], nil))
	}
	tree.Check()
	assert.Equal(t, 1, tree.Size())
}

func TestEqualsFuncIsUsedWhenProvided(t *testing.T) {
	tree := New(testBounds)
	a := &testItem{id: 7, bounds: Rect(0, 0, 1, 1)}
	require.NoError(t, tree.Insert(a))

	byID := func(x, y Item) bool {
		return x.(*testItem).id == y.(*testItem).id
	}
	// A distinct pointer with the same id must still be found via eq.
	lookup := &testItem{id: 7, bounds: Rect(0, 0, 1, 1)}
	require.NoError(t, tree.Delete(lookup, byID))
	assert.Equal(t, 0, tree.Size())
}

func TestFindLeafOnEmptyTreeReturnsNotFound(t *testing.T) {
	tree := New(testBounds)
	err := tree.Delete(&testItem{id: 1, bounds: Rect(0, 0, 1, 1)}, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}
