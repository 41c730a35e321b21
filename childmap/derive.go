// SPDX-License-Identifier: MIT
package childmap

import (
	"gitlab.com/fisherprime/hierarchy/v4/traverse"
	"gitlab.com/fisherprime/hierarchy/v4/types"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// ParentMap maps every id in m to its parents, in discovery order.
//
// Roots map to an empty entry. Trees hold at most one parent per id.
func ParentMap[K comparable](m *ChildMap[K]) *ChildMap[K] {
	parents := New[K]()
	for _, id := range m.IDs() {
		parents.Add(id)
	}

	for parent, set := range m.entries.All() {
		for child := range set.All() {
			parents.Add(child, parent)
		}
	}

	return parents
}

// DescendantMap maps every id in m to its descendants in breadth-first order.
//
// Cycles are tolerated, each descendant is listed once.
func DescendantMap[K comparable](m *ChildMap[K], opts ...traverse.Option) *ChildMap[K] {
	return closure(m, m.next, opts)
}

// AncestorMap maps every id in m to its ancestors, innermost first.
func AncestorMap[K comparable](m *ChildMap[K]) *ChildMap[K] {
	parents := ParentMap(m)
	return closure(m, parents.next, nil)
}

func closure[K comparable](m *ChildMap[K], next traverse.NextFunc[K], opts []traverse.Option) *ChildMap[K] {
	opts = append([]traverse.Option{traverse.WithCycleDetection(true)}, opts...)

	derived := New[K]()
	for _, id := range m.IDs() {
		derived.Add(id, traverse.FlattenDescendants([]K{id}, next, opts...)...)
	}

	return derived
}

// next is the children getter of the map, usable as a traverse.NextFunc.
func (m *ChildMap[K]) next(parent K) []K {
	set, ok := m.entries.Get(parent)
	if !ok {
		return nil
	}

	return set.Values()
}

// Next exposes the map as a children getter for the traverse package.
func (m *ChildMap[K]) Next() traverse.NextFunc[K] { return m.next }

// Sorted creates a copy of m with its entries sorted by key.
//
// Children keep their order.
func Sorted[K constraints.Ordered](m *ChildMap[K]) *ChildMap[K] {
	keys := m.Keys()
	slices.Sort(keys)

	sorted := New[K]()
	for _, key := range keys {
		set, _ := m.entries.Get(key)
		sorted.entries.Set(key, set.Clone())
	}

	return sorted
}

// Subset creates a child map holding the entries for ids, keeping only children within ids.
func Subset[K comparable](m *ChildMap[K], ids ...K) *ChildMap[K] {
	include := types.NewOrderedSet(ids...)

	subset := New[K]()
	for parent, set := range m.entries.All() {
		if !include.Has(parent) {
			continue
		}

		subset.Add(parent)
		for child := range set.All() {
			if include.Has(child) {
				subset.Add(parent, child)
			}
		}
	}

	return subset
}
