package rtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPassesOnWellFormedTree(t *testing.T) {
	tree, _ := newPrePopulatedTree(1000)
	assert.NotPanics(t, func() { tree.Check() })
}

func TestCheckCatchesAStaleMBR(t *testing.T) {
	tree := New(testBounds)
	require.NoError(t, tree.Insert(&testItem{id: 1, bounds: Rect(0, 0, 1, 1)}))

	tree.root.mbr = Rect(0, 0, 999, 999) // corrupt it directly

	assert.Panics(t, func() { tree.Check() })
}

func TestCheckIsANoOpWhenDebugDisabled(t *testing.T) {
	tree := New(testBounds)
	require.NoError(t, tree.Insert(&testItem{id: 1, bounds: Rect(0, 0, 1, 1)}))
	tree.root.mbr = Rect(0, 0, 999, 999)

	old := Debug
	Debug = false
	defer func() { Debug = old }()

	assert.NotPanics(t, func() { tree.Check() })
}

func TestSpewDumpRendersTheTree(t *testing.T) {
	tree, _ := newPrePopulatedTree(20)
	dump := tree.SpewDump()
	assert.NotEmpty(t, dump)
}
