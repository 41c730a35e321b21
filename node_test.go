// SPDX-License-Identifier: MIT
package hierarchy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/fisherprime/hierarchy/v4/traverse"
)

func items[I any](nodes []*Node[I]) []I { return itemsOf(nodes) }

// A -> {A1 -> {A11, A12}, A2}
func testTree(t *testing.T) (nodes map[string]*Node[string]) {
	t.Helper()

	nodes = make(map[string]*Node[string])
	for _, id := range []string{"A", "A1", "A2", "A11", "A12"} {
		nodes[id] = NewNode(id)
	}

	require.NoError(t, nodes["A"].Attach(nodes["A1"], nodes["A2"]))
	require.NoError(t, nodes["A1"].Attach(nodes["A11"], nodes["A12"]))

	return
}

func TestNode_Accessors(t *testing.T) {
	nodes := testTree(t)

	assert.True(t, nodes["A"].IsRoot())
	assert.False(t, nodes["A"].IsLeaf())
	assert.True(t, nodes["A"].IsInternal())
	assert.True(t, nodes["A11"].IsLeaf())
	assert.True(t, nodes["A11"].IsLinked())
	assert.False(t, NewNode("lone").IsLinked())

	assert.Same(t, nodes["A1"], nodes["A11"].Parent())
	assert.Same(t, nodes["A"], nodes["A11"].Root())
	assert.Equal(t, 2, nodes["A11"].Depth())
	assert.Equal(t, []string{"A1", "A2"}, items(nodes["A"].Children()))
}

func TestNode_ChildrenIsACopy(t *testing.T) {
	nodes := testTree(t)

	children := nodes["A"].Children()
	children[0] = NewNode("changed")
	_ = append(children, NewNode("appended"))

	assert.Equal(t, []string{"A1", "A2"}, items(nodes["A"].Children()))
}

func TestNode_Attach(t *testing.T) {
	token := uuid.New()

	tests := []struct {
		name     string
		children func(parent *Node[string]) []*Node[string]
		wantErr  error
	}{
		{
			name:     "no nodes",
			children: func(*Node[string]) []*Node[string] { return nil },
			wantErr:  ErrNoNodes,
		},
		{
			name:     "self",
			children: func(parent *Node[string]) []*Node[string] { return []*Node[string]{parent} },
			wantErr:  ErrSelfLink,
		},
		{
			name: "not a root",
			children: func(*Node[string]) []*Node[string] {
				other, child := NewNode("other"), NewNode("child")
				_ = other.Attach(child)
				return []*Node[string]{child}
			},
			wantErr: ErrNotRoot,
		},
		{
			name: "incompatible brand",
			children: func(*Node[string]) []*Node[string] {
				child := NewNode("child")
				_, _ = child.Brand(token)
				return []*Node[string]{child}
			},
			wantErr: ErrBrandIncompatible,
		},
		{
			name: "duplicates are attached once",
			children: func(*Node[string]) []*Node[string] {
				child := NewNode("child")
				return []*Node[string]{child, child}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parent := NewNode("parent")
			children := tt.children(parent)

			err := parent.Attach(children...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, parent.IsLeaf(), "nothing is attached on failure")
				return
			}

			require.NoError(t, err)
			assert.Len(t, parent.Children(), 1)
			assert.Same(t, parent, children[0].Parent())
		})
	}
}

func TestNode_AttachSameBrand(t *testing.T) {
	token := uuid.New()
	parent, child := NewNode("parent"), NewNode("child")
	_, _ = parent.Brand(token)
	_, _ = child.Brand(token)

	assert.NoError(t, parent.Attach(child))
}

func TestNode_Detach(t *testing.T) {
	nodes := testTree(t)

	assert.ErrorIs(t, nodes["A"].Detach(), ErrNoNodes)
	assert.ErrorIs(t, nodes["A"].Detach(nodes["A11"]), ErrNotChild)

	unbrand, err := nodes["A2"].Brand(uuid.New())
	require.NoError(t, err)
	assert.ErrorIs(t, nodes["A"].Detach(nodes["A2"]), ErrBranded)
	unbrand()

	unbrand, err = nodes["A"].Brand(uuid.New())
	require.NoError(t, err)
	assert.ErrorIs(t, nodes["A"].Detach(nodes["A2"]), ErrBranded, "a branded parent keeps its children")
	unbrand()

	require.NoError(t, nodes["A"].Detach(nodes["A2"]))
	assert.True(t, nodes["A2"].IsRoot())
	assert.Equal(t, []string{"A1"}, items(nodes["A"].Children()))
}

func TestNode_DetachSelf(t *testing.T) {
	nodes := testTree(t)

	assert.ErrorIs(t, nodes["A"].DetachSelf(), ErrIsRoot)

	require.NoError(t, nodes["A1"].DetachSelf())
	assert.True(t, nodes["A1"].IsRoot())
	assert.Equal(t, []string{"A11", "A12"}, items(nodes["A1"].Children()), "the subtree is kept")
}

func TestNode_Dismantle(t *testing.T) {
	t.Run("subtree", func(t *testing.T) {
		nodes := testTree(t)
		require.NoError(t, nodes["A1"].Dismantle(false))

		assert.Same(t, nodes["A"], nodes["A1"].Parent(), "the node keeps its parent")
		assert.True(t, nodes["A1"].IsLeaf())
		assert.False(t, nodes["A11"].IsLinked())
		assert.False(t, nodes["A12"].IsLinked())
		assert.Same(t, nodes["A"], nodes["A2"].Parent())
	})

	t.Run("including ancestry", func(t *testing.T) {
		nodes := testTree(t)
		require.NoError(t, nodes["A1"].Dismantle(true))

		for id, node := range nodes {
			assert.False(t, node.IsLinked(), "(%s) is linked", id)
		}
	})

	t.Run("branded", func(t *testing.T) {
		nodes := testTree(t)
		_, err := nodes["A12"].Brand(uuid.New())
		require.NoError(t, err)

		assert.ErrorIs(t, nodes["A"].Dismantle(false), ErrBranded)
		assert.Same(t, nodes["A"], nodes["A1"].Parent(), "nothing is unlinked")
	})
}

func TestNode_AncestorsAndDescendants(t *testing.T) {
	nodes := testTree(t)

	assert.Equal(t, []string{"A1", "A"}, items(nodes["A11"].Ancestors(false)))
	assert.Equal(t, []string{"A11", "A1", "A"}, items(nodes["A11"].Ancestors(true)))

	assert.Equal(t, []string{"A1", "A2", "A11", "A12"}, items(nodes["A"].Descendants(false)))
	assert.Equal(t, []string{"A", "A1", "A11", "A12", "A2"},
		items(nodes["A"].Descendants(true, traverse.WithOrder(traverse.DepthFirst))))
}

func TestNode_Brand(t *testing.T) {
	a, b := NewNode("a"), NewNode("b")
	x, y := uuid.New(), uuid.New()

	_, err := a.Brand(uuid.Nil)
	assert.ErrorIs(t, err, ErrInvalidBrand)

	unbrand, err := a.Brand(x)
	require.NoError(t, err)
	assert.Equal(t, x, a.BrandToken())

	_, err = a.Brand(y)
	assert.ErrorIs(t, err, ErrAlreadyBranded)

	assert.False(t, a.IsBrandCompatible(b), "unbranded other")
	unbrandB, err := b.Brand(y)
	require.NoError(t, err)
	assert.False(t, a.IsBrandCompatible(b), "other brand")
	unbrandB()
	_, err = b.Brand(x)
	require.NoError(t, err)
	assert.True(t, a.IsBrandCompatible(b), "same brand")

	unbrand()
	assert.False(t, a.IsBranded())
	assert.False(t, a.IsBrandCompatible(b), "branded other after unbranding")

	unbrand()
	assert.False(t, a.IsBranded(), "unbranding twice")
	assert.True(t, a.IsBrandCompatible(NewNode("c")))
}

func TestNode_StaleUnbrand(t *testing.T) {
	node := NewNode("node")
	x := uuid.New()

	unbrand, err := node.Brand(x)
	require.NoError(t, err)
	unbrand()

	_, err = node.Brand(x)
	require.NoError(t, err)

	unbrand()
	assert.True(t, node.IsBranded(), "a released unbrand must not clear a later brand")
}

func TestNode_Cycle(t *testing.T) {
	nodes := testTree(t)
	d := NewNode("D")
	require.NoError(t, nodes["A12"].Attach(d))

	// A is D's ancestor.
	require.NoError(t, d.Attach(nodes["A"]))

	got := items(nodes["A"].Descendants(true, traverse.WithCycleDetection(true)))
	assert.ElementsMatch(t, []string{"A", "A1", "A2", "A11", "A12", "D"}, got)
	assert.Len(t, got, 6)

	assert.Len(t, nodes["A11"].Ancestors(true), 5, "ancestor walks stop at the loop")

	require.NoError(t, d.Dismantle(true))
	for id, node := range nodes {
		assert.False(t, node.IsLinked(), "(%s) is linked", id)
	}
	assert.False(t, d.IsLinked())
}
