// SPDX-License-Identifier: MIT
package childmap

import "fmt"

// Relation is either a (parent, child) edge or an isolated id.
type Relation[K comparable] struct {
	Parent K
	Child  K

	// Isolated marks a single id relation, held in Parent.
	Isolated bool
}

// Pair creates a (parent, child) relation.
func Pair[K comparable](parent, child K) Relation[K] { return Relation[K]{Parent: parent, Child: child} }

// Isolated creates a relation recording id without children.
func Isolated[K comparable](id K) Relation[K] { return Relation[K]{Parent: id, Isolated: true} }

func (r Relation[K]) String() string {
	if r.Isolated {
		return fmt.Sprintf("(%v)", r.Parent)
	}

	return fmt.Sprintf("(%v, %v)", r.Parent, r.Child)
}

// ToRelations lists the relations described by m.
//
// Every edge becomes a pair; every empty entry becomes an isolated relation.
func ToRelations[K comparable](m *ChildMap[K]) (relations []Relation[K]) {
	relations = []Relation[K]{}
	for parent, set := range m.entries.All() {
		if set.Len() == 0 {
			relations = append(relations, Isolated(parent))
			continue
		}

		for child := range set.All() {
			relations = append(relations, Pair(parent, child))
		}
	}

	return
}

// FromRelations builds the ChildMap described by relations.
func FromRelations[K comparable](relations []Relation[K]) *ChildMap[K] {
	m := New[K]()
	for _, r := range relations {
		if r.Isolated {
			m.Add(r.Parent)
			continue
		}
		m.Add(r.Parent, r.Child)
	}

	return m
}
