// SPDX-License-Identifier: MIT

// Package childmap defines the adjacency representation of a forest (or graph): a mapping of
// parent ids to their ordered, unique child ids.
//
// A key with no children is a recorded leaf, distinct from an id the map never mentions.
package childmap

import (
	"iter"

	"gitlab.com/fisherprime/hierarchy/v4/types"
)

// ChildMap maps parent ids to ordered, duplicate free child ids.
//
// Keys iterate in insertion order. The zero value is not usable, use New.
type ChildMap[K comparable] struct {
	entries *types.OrderedMap[K, *types.OrderedSet[K]]
}

// New instantiates an empty ChildMap.
func New[K comparable]() *ChildMap[K] {
	return &ChildMap[K]{entries: types.NewOrderedMap[K, *types.OrderedSet[K]]()}
}

// Add records parent and appends the children it does not yet hold.
//
// Calling Add without children records parent as an (empty) entry.
func (m *ChildMap[K]) Add(parent K, children ...K) {
	set, ok := m.entries.Get(parent)
	if !ok {
		set = types.NewOrderedSet[K]()
		m.entries.Set(parent, set)
	}
	set.Add(children...)
}

// Delete removes the entry for parent, reporting whether it was present.
func (m *ChildMap[K]) Delete(parent K) bool { return m.entries.Delete(parent) }

// Children retrieves a copy of the child ids recorded for parent.
func (m *ChildMap[K]) Children(parent K) (children []K, ok bool) {
	set, ok := m.entries.Get(parent)
	if !ok {
		return
	}
	children = set.Values()

	return
}

// Has checks whether id is recorded as a key.
func (m *ChildMap[K]) Has(id K) bool { return m.entries.Has(id) }

// Len is the number of entries.
func (m *ChildMap[K]) Len() int { return m.entries.Len() }

// Keys lists the entry keys in insertion order.
func (m *ChildMap[K]) Keys() []K { return m.entries.Keys() }

// IDs lists every id the map mentions, as a key or as a child, in first-seen order.
func (m *ChildMap[K]) IDs() []K {
	seen := types.NewOrderedSet[K]()
	for parent, children := range m.entries.All() {
		seen.Add(parent)
		for child := range children.All() {
			seen.Add(child)
		}
	}

	return seen.Values()
}

// All iterates over the entries in insertion order.
//
// The yielded slices are copies.
func (m *ChildMap[K]) All() iter.Seq2[K, []K] {
	return func(yield func(K, []K) bool) {
		for parent, children := range m.entries.All() {
			if !yield(parent, children.Values()) {
				return
			}
		}
	}
}

// RootIDs lists the keys never recorded as a child, in insertion order.
func (m *ChildMap[K]) RootIDs() (roots []K) {
	children := make(map[K]struct{})
	for _, set := range m.entries.All() {
		for child := range set.All() {
			children[child] = struct{}{}
		}
	}

	roots = []K{}
	for parent := range m.entries.All() {
		if _, ok := children[parent]; !ok {
			roots = append(roots, parent)
		}
	}

	return
}

// Equal reports whether both maps hold the same entries.
//
// Entry order is ignored, children order is not.
func (m *ChildMap[K]) Equal(other *ChildMap[K]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.Len() != other.Len() {
		return false
	}

	for parent, set := range m.entries.All() {
		otherSet, ok := other.entries.Get(parent)
		if !ok || set.Len() != otherSet.Len() {
			return false
		}

		want := otherSet.Values()
		i := 0
		for child := range set.All() {
			if child != want[i] {
				return false
			}
			i++
		}
	}

	return true
}

// Clone creates an independent copy of the map.
func (m *ChildMap[K]) Clone() *ChildMap[K] {
	clone := New[K]()
	for parent, set := range m.entries.All() {
		clone.entries.Set(parent, set.Clone())
	}

	return clone
}

// String renders the map in the default text format, ignoring invalid ids.
func (m *ChildMap[K]) String() string {
	s, _ := render(m, nil, false)
	return s
}
