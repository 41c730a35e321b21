// SPDX-License-Identifier: MIT
package hierarchy

import (
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"gitlab.com/fisherprime/hierarchy/v4/childmap"
	"gitlab.com/fisherprime/hierarchy/v4/traverse"
)

// Assembly errors.
var (
	ErrMissingItem = errors.New("lacks an item")
	ErrUnreachable = errors.New("is unreachable from every root")
)

// AssembleIDs links a forest of id nodes described by m.
//
// Roots are returned in the order m records them.
func AssembleIDs[K comparable](m *childmap.ChildMap[K]) ([]*Node[K], error) {
	return assemble(m, func(id K) (K, bool) { return id, true })
}

// Assemble links a forest of item nodes described by m.
//
// Items whose ids m does not mention are dropped; ids lacking an item fail with ErrMissingItem.
func Assemble[I any, K comparable](items []I, identify func(I) K, m *childmap.ChildMap[K]) ([]*Node[I], error) {
	byID := make(map[K]I, len(items))
	for _, item := range items {
		byID[identify(item)] = item
	}

	return assemble(m, func(id K) (item I, ok bool) {
		item, ok = byID[id]
		return
	})
}

// AssembleHierarchy creates a Hierarchy over the forest Assemble links.
func AssembleHierarchy[I any, K comparable](items []I, identify func(I) K, m *childmap.ChildMap[K], opts ...Option) (h *Hierarchy[I, K], err error) {
	roots, err := Assemble(items, identify, m)
	if err != nil {
		return
	}

	return fromRoots(roots, identify, opts)
}

// AssembleIDHierarchy creates a Hierarchy over the forest AssembleIDs links.
func AssembleIDHierarchy[K comparable](m *childmap.ChildMap[K], opts ...Option) (h *Hierarchy[K, K], err error) {
	roots, err := AssembleIDs(m)
	if err != nil {
		return
	}

	return fromRoots(roots, identity[K], opts)
}

// ForestChildMap records the parents reachable from roots with their children.
//
// Entries follow breadth-first order. Only roots lacking children are recorded as empty entries;
// other leaves appear as children alone.
func ForestChildMap[I any, K comparable](roots []*Node[I], identify func(I) K) *childmap.ChildMap[K] {
	m := childmap.New[K]()
	for _, node := range traverse.FlattenGraph(roots, (*Node[I]).Children, traverse.WithCycleDetection(true)) {
		switch {
		case node.IsInternal():
			for child := range node.children.All() {
				m.Add(identify(node.item), identify(child.item))
			}
		case node.IsRoot():
			m.Add(identify(node.item))
		}
	}

	return m
}

func fromRoots[I any, K comparable](roots []*Node[I], identify func(I) K, opts []Option) (h *Hierarchy[I, K], err error) {
	h = New(identify, opts...)
	if len(roots) < 1 {
		return
	}

	if err = h.AttachRoot(roots...); err != nil {
		h = nil
	}

	return
}

func assemble[I any, K comparable](m *childmap.ChildMap[K], itemOf func(K) (I, bool)) (roots []*Node[I], err error) {
	defer func() {
		if err != nil {
			fLogger.Debugf("assembly failed: %v\nsource: %s", err, spew.Sdump(m))
		}
	}()

	nodes := make(map[K]*Node[I])
	for _, id := range m.IDs() {
		item, ok := itemOf(id)
		if !ok {
			return nil, fmt.Errorf(nodeFmt, id, ErrMissingItem)
		}
		nodes[id] = NewNode(item)
	}

	for parentID, children := range m.All() {
		parent := nodes[parentID]
		for _, childID := range children {
			child := nodes[childID]
			if child == parent {
				return nil, fmt.Errorf(nodeFmt, childID, ErrSelfLink)
			}
			if !child.IsRoot() {
				return nil, fmt.Errorf(relationFmt, childID, ErrNotRoot, parentID)
			}
			parent.link(child)
		}
	}

	roots = make([]*Node[I], 0)
	for _, id := range m.RootIDs() {
		roots = append(roots, nodes[id])
	}

	reached := traverse.FlattenGraph(roots, (*Node[I]).Children, traverse.WithCycleDetection(true))
	if len(reached) == len(nodes) {
		return
	}

	visited := make(map[*Node[I]]struct{}, len(reached))
	for _, node := range reached {
		visited[node] = struct{}{}
	}
	for _, id := range m.IDs() {
		if _, ok := visited[nodes[id]]; !ok {
			return nil, fmt.Errorf(nodeFmt, id, ErrUnreachable)
		}
	}

	return
}

// ToChildMap records the indexed parents & their children; childless roots are empty entries.
func (h *Hierarchy[I, K]) ToChildMap() *childmap.ChildMap[K] { return ForestChildMap(h.Roots(), h.identify) }

// ToDescendantMap maps every id to its descendants, breadth-first.
func (h *Hierarchy[I, K]) ToDescendantMap() *childmap.ChildMap[K] {
	return childmap.DescendantMap(h.ToChildMap())
}

// ToAncestorMap maps every id to its ancestors, innermost first.
func (h *Hierarchy[I, K]) ToAncestorMap() *childmap.ChildMap[K] {
	return childmap.AncestorMap(h.ToChildMap())
}

// ToParentMap maps every id to its parent, roots to an empty entry.
func (h *Hierarchy[I, K]) ToParentMap() *childmap.ChildMap[K] {
	return childmap.ParentMap(h.ToChildMap())
}

// ToRelations lists the Hierarchy's edges & isolated roots.
func (h *Hierarchy[I, K]) ToRelations() []childmap.Relation[K] {
	return childmap.ToRelations(h.ToChildMap())
}
