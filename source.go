// SPDX-License-Identifier: MIT
package hierarchy

import (
	"errors"
	"fmt"

	"gitlab.com/fisherprime/hierarchy/v4/childmap"
	"gitlab.com/fisherprime/hierarchy/v4/traverse"
)

type (
	// Source describes a forest in one of the supported shapes.
	//
	// The variants are ChildMapSource, RelationSource, ChildrenSource, ParentSource &
	// HierarchySource.
	Source[K comparable] interface {
		source()
	}

	// ChildMapSource describes a forest through a child-map.
	ChildMapSource[K comparable] struct {
		Map *childmap.ChildMap[K]
	}

	// RelationSource describes a forest through relations.
	RelationSource[K comparable] struct {
		Relations []childmap.Relation[K]
	}

	// ChildrenSource describes a forest through its roots & a children getter.
	ChildrenSource[K comparable] struct {
		Roots    []K
		Children func(K) []K
	}

	// ParentSource describes a forest through its ids & a parent getter.
	ParentSource[K comparable] struct {
		IDs    []K
		Parent func(K) (K, bool)
	}

	// HierarchySource describes a forest through an existing Hierarchy.
	HierarchySource[K comparable] struct {
		Hierarchy interface {
			ToChildMap() *childmap.ChildMap[K]
		}
	}
)

// ErrInvalidSource is returned for unknown or incomplete sources.
var ErrInvalidSource = errors.New("invalid hierarchy source")

func (ChildMapSource[K]) source()  {}
func (RelationSource[K]) source()  {}
func (ChildrenSource[K]) source()  {}
func (ParentSource[K]) source()    {}
func (HierarchySource[K]) source() {}

// ResolveChildMap derives the child-map described by src.
func ResolveChildMap[K comparable](src Source[K]) (m *childmap.ChildMap[K], err error) {
	switch s := src.(type) {
	case ChildMapSource[K]:
		if s.Map == nil {
			break
		}
		return s.Map.Clone(), nil
	case RelationSource[K]:
		return childmap.FromRelations(s.Relations), nil
	case ChildrenSource[K]:
		if s.Children == nil {
			break
		}

		m = childmap.New[K]()
		for id, depth := range traverse.Graph(s.Roots, s.Children, traverse.WithCycleDetection(true)).All() {
			if children := s.Children(id); len(children) > 0 || depth == 0 {
				m.Add(id, children...)
			}
		}
		return m, nil
	case ParentSource[K]:
		if s.Parent == nil {
			break
		}

		m = childmap.New[K]()
		for _, id := range s.IDs {
			if parent, ok := s.Parent(id); ok {
				m.Add(parent, id)
				continue
			}
			m.Add(id)
		}
		return m, nil
	case HierarchySource[K]:
		if s.Hierarchy == nil {
			break
		}
		return s.Hierarchy.ToChildMap(), nil
	}

	return nil, fmt.Errorf("%w: %T", ErrInvalidSource, src)
}

// FromSource creates an id Hierarchy over the forest src describes.
func FromSource[K comparable](src Source[K], opts ...Option) (*Hierarchy[K, K], error) {
	m, err := ResolveChildMap[K](src)
	if err != nil {
		return nil, err
	}

	return AssembleIDHierarchy(m, opts...)
}

// FromSourceItems creates an item Hierarchy over the forest src describes.
func FromSourceItems[I any, K comparable](items []I, identify func(I) K, src Source[K], opts ...Option) (*Hierarchy[I, K], error) {
	m, err := ResolveChildMap[K](src)
	if err != nil {
		return nil, err
	}

	return AssembleHierarchy(items, identify, m, opts...)
}
