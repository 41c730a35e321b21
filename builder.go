// SPDX-License-Identifier: MIT
package hierarchy

import (
	"context"
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"gitlab.com/fisherprime/hierarchy/v4/childmap"
)

type (
	// Builder defines an interface for entities that can be read into a Hierarchy.
	//
	// A zero Parent marks a root.
	Builder[K comparable] interface {
		// Value obtains the id stored by the Builder.
		Value() K
		// Parent obtains the parent id stored by the Builder.
		Parent() K
	}

	// BuilderList is a wrapper type for []Builder.
	BuilderList[K comparable] []Builder[K]

	// DefaultBuilder is a sample Builder interface implementation.
	DefaultBuilder[K comparable] struct {
		value  K
		parent K
	}
)

// Hierarchy building errors.
var (
	ErrBuildHierarchy = errors.New("failed to build hierarchy")

	ErrMissingRootNode   = errors.New("missing root node")
	ErrEmptyHierarchySrc = errors.New("empty hierarchy source")

	ErrLocateParents = errors.New("unable to locate parents(s)")

	ErrPanicked = errors.New("recovery from panic")
)

// NewDefaultBuilder instantiates a DefaultBuilder; a zero parent marks a root.
func NewDefaultBuilder[K comparable](value, parent K) *DefaultBuilder[K] {
	return &DefaultBuilder[K]{value: value, parent: parent}
}

// Value obtains the id stored by the DefaultBuilder.
func (d *DefaultBuilder[K]) Value() K { return d.value }

// Parent obtains the parent id stored by the DefaultBuilder
func (d *DefaultBuilder[K]) Parent() K { return d.parent }

// Cut a value at some index from the BuilderList.
func (b *BuilderList[K]) Cut(index int) {
	if index < 0 || index >= len(*b) {
		return
	}

	*b = append((*b)[:index], (*b)[index+1:]...)
}

// ChildMap derives the child-map described by the BuilderList.
//
// Entries may be listed in any order, a child before its parent included. Every root must be
// listed; an entry whose parent never appears fails with ErrLocateParents. The receiver is left
// untouched.
func (b BuilderList[K]) ChildMap(ctx context.Context) (m *childmap.ChildMap[K], err error) {
	// Work on a copy, Cut consumes entries.
	src := append(BuilderList[K]{}, b...)

	defer func() {
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrBuildHierarchy, err)
		}
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanicked, r)
		}

		if err != nil {
			fLogger.Debugf("current child map: %s \nsource remnants: %s", spew.Sprint(m), spew.Sprint(src))
		}
	}()

	select {
	case <-ctx.Done():
		err = ctx.Err()
		return
	default:
	}

	if len(src) < 1 {
		err = ErrEmptyHierarchySrc
		return
	}

	var zero K
	m = childmap.New[K]()

	// placed holds the ids linked so far; only childless roots stay empty entries in m.
	placed := make(map[K]struct{})

	// Collect the roots.
	for index := 0; index < len(src); {
		if src[index].Parent() != zero {
			index++
			continue
		}

		m.Add(src[index].Value())
		placed[src[index].Value()] = struct{}{}
		src.Cut(index)
	}
	if m.Len() < 1 {
		err = ErrMissingRootNode
		return
	}

	for prevLen := -1; len(src) > 0; {
		if len(src) == prevLen {
			err = fmt.Errorf("%w for: %s", ErrLocateParents, spew.Sprint(src))
			return
		}
		prevLen = len(src)

		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		default:
		}

		// Allow for unordered BuilderLists: every pass attaches the entries whose parents are known.
		for index := 0; index < len(src); {
			node := src[index]
			if _, ok := placed[node.Parent()]; !ok {
				index++
				continue
			}

			m.Add(node.Parent(), node.Value())
			placed[node.Value()] = struct{}{}
			src.Cut(index)
		}
	}

	return
}

// NewHierarchy generates an id Hierarchy from a BuilderList.
func (b BuilderList[K]) NewHierarchy(ctx context.Context, opts ...Option) (h *Hierarchy[K, K], err error) {
	m, err := b.ChildMap(ctx)
	if err != nil {
		return
	}

	if h, err = AssembleIDHierarchy(m, opts...); err != nil {
		err = fmt.Errorf("%w: %w", ErrBuildHierarchy, err)
	}

	return
}
