// SPDX-License-Identifier: MIT
package hierarchy

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"gitlab.com/fisherprime/hierarchy/v4/traverse"
	"gitlab.com/fisherprime/hierarchy/v4/types"
)

type (
	// Node defines a doubly-linked graph node wrapping one item.
	//
	// Synchronization is unnecessary, the type is designed for single write multiple read.
	Node[I any] struct {
		// item contains the node's data.
		item I

		// parent contains a reference to the upper Node, nil for roots.
		parent *Node[I]

		// children holds references to nodes at a lower level, in attach order.
		children *types.OrderedSet[*Node[I]]

		// brand locks the node to an owner, uuid.Nil when unowned.
		brand uuid.UUID
	}
)

const (
	nodeFmt     = "(%v) %w"
	relationFmt = "(%v) %w (%v)"
)

// Errors encountered when linking nodes.
var (
	ErrNoNodes           = errors.New("no nodes given")
	ErrNotRoot           = errors.New("is not a root, it has parent")
	ErrBrandIncompatible = errors.New("has a brand incompatible with")
	ErrSelfLink          = errors.New("can not be linked to itself")
	ErrNotChild          = errors.New("is not a child of")
	ErrBranded           = errors.New("is branded")
	ErrIsRoot            = errors.New("is a root")
)

// NewNode instantiates an unlinked, unbranded Node.
func NewNode[I any](item I) *Node[I] {
	return &Node[I]{item: item, children: types.NewOrderedSet[*Node[I]]()}
}

// Item retrieves the Node's data.
func (n *Node[I]) Item() I { return n.item }

// Parent retrieves the Node's parent reference, nil for roots.
func (n *Node[I]) Parent() *Node[I] { return n.parent }

// Children lists the immediate children; the slice is a copy.
func (n *Node[I]) Children() []*Node[I] { return n.children.Values() }

// IsRoot checks whether the Node lacks a parent.
func (n *Node[I]) IsRoot() bool { return n.parent == nil }

// IsLeaf checks whether the Node lacks children.
func (n *Node[I]) IsLeaf() bool { return n.children.Len() == 0 }

// IsInternal checks whether the Node has children.
func (n *Node[I]) IsInternal() bool { return !n.IsLeaf() }

// IsLinked checks whether the Node has a parent or a child.
func (n *Node[I]) IsLinked() bool { return !n.IsRoot() || !n.IsLeaf() }

// Attach links children under the Node.
//
// Every child must be a root whose brand is compatible with the Node's. Repeated children are
// attached once.
func (n *Node[I]) Attach(children ...*Node[I]) (err error) {
	if len(children) < 1 {
		return ErrNoNodes
	}

	for _, child := range children {
		switch {
		case child == n:
			return fmt.Errorf(nodeFmt, n.item, ErrSelfLink)
		case !child.IsRoot():
			return fmt.Errorf(relationFmt, child.item, ErrNotRoot, child.parent.item)
		case !n.IsBrandCompatible(child):
			return fmt.Errorf(relationFmt, child.item, ErrBrandIncompatible, n.item)
		}
	}

	n.link(children...)

	return
}

// Detach unlinks children from the Node.
//
// Neither the Node nor the children may be branded.
func (n *Node[I]) Detach(children ...*Node[I]) (err error) {
	if len(children) < 1 {
		return ErrNoNodes
	}

	if n.IsBranded() {
		return fmt.Errorf(nodeFmt, n.item, ErrBranded)
	}
	for _, child := range children {
		if child.parent != n {
			return fmt.Errorf(relationFmt, child.item, ErrNotChild, n.item)
		}
		if child.IsBranded() {
			return fmt.Errorf(nodeFmt, child.item, ErrBranded)
		}
	}

	n.unlink(children...)

	return
}

// DetachSelf unlinks the Node from its parent.
func (n *Node[I]) DetachSelf() error {
	if n.IsRoot() {
		return fmt.Errorf(nodeFmt, n.item, ErrIsRoot)
	}

	return n.parent.Detach(n)
}

// Dismantle unlinks every node below the Node.
//
// With includeAncestry, the Node's ancestry & every node linked to it are unlinked too, leaving the
// whole connected structure in pieces. Nothing is unlinked if an affected node is branded.
func (n *Node[I]) Dismantle(includeAncestry bool) error {
	start := n
	if includeAncestry {
		start = n.Root()
	}

	affected := traverse.FlattenGraph([]*Node[I]{start}, (*Node[I]).Children, traverse.WithCycleDetection(true))
	for _, node := range affected {
		if node.IsBranded() {
			return fmt.Errorf(nodeFmt, node.item, ErrBranded)
		}
	}

	for _, node := range affected {
		node.unlink(node.children.Values()...)
	}

	return nil
}

// Root retrieves the outermost ancestor, the Node itself for roots.
//
// In a cyclic structure, the last ancestor before the chain repeats is returned.
func (n *Node[I]) Root() *Node[I] {
	ancestors := n.Ancestors(true)
	return ancestors[len(ancestors)-1]
}

// Depth is the number of ancestors of the Node.
func (n *Node[I]) Depth() int { return len(n.Ancestors(false)) }

// Ancestors lists the Node's ancestors, the immediate parent first.
func (n *Node[I]) Ancestors(includeSelf bool) []*Node[I] {
	return traverse.FlattenSequence(n, (*Node[I]).parentOf,
		traverse.WithIncludeSelf(includeSelf), traverse.WithCycleDetection(true))
}

// Descendants lists the Node's descendants, breadth-first unless configured otherwise.
func (n *Node[I]) Descendants(includeSelf bool, opts ...traverse.Option) []*Node[I] {
	opts = append(opts, traverse.WithIncludeSelf(includeSelf))
	return traverse.FlattenDescendants([]*Node[I]{n}, (*Node[I]).Children, opts...)
}

// Walk lazily traverses the Node & its descendants.
func (n *Node[I]) Walk(opts ...traverse.Option) *traverse.Iterator[*Node[I]] {
	return traverse.Graph([]*Node[I]{n}, (*Node[I]).Children, opts...)
}

func (n *Node[I]) parentOf() (*Node[I], bool) { return n.parent, n.parent != nil }

// link attaches children without checks.
func (n *Node[I]) link(children ...*Node[I]) {
	for _, child := range children {
		if n.children.Add(child) > 0 {
			child.parent = n
		}
	}
}

// unlink detaches children without checks.
func (n *Node[I]) unlink(children ...*Node[I]) {
	for _, child := range children {
		if n.children.Delete(child) > 0 && child.parent == n {
			child.parent = nil
		}
	}
}

func (n *Node[I]) String() string { return fmt.Sprint(n.item) }
