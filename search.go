// SPDX-License-Identifier: MIT
package hierarchy

import (
	"errors"

	"gitlab.com/fisherprime/hierarchy/v4/childmap"
	"gitlab.com/fisherprime/hierarchy/v4/types"
)

// Facet selects the parts of a Hierarchy a search result holds.
type Facet uint8

const (
	// FacetMatches includes the matched nodes.
	FacetMatches Facet = 1 << iota
	// FacetAncestors includes the ancestors of the matched nodes.
	FacetAncestors
	// FacetDescendants includes the descendants of the matched nodes.
	FacetDescendants

	// FacetAll includes matches, ancestors & descendants.
	FacetAll = FacetMatches | FacetAncestors | FacetDescendants
)

// ErrNoFacet is returned by searches without a facet.
var ErrNoFacet = errors.New("no search facet requested")

// Search creates an independent Hierarchy over the nodes selected by search.
//
// Without facets, FacetAll is used. The result holds fresh nodes sharing the items; an edge is kept
// only when both its ends are included, so included nodes may become isolated roots.
func (h *Hierarchy[I, K]) Search(search Search[I, K], facets ...Facet) (*Hierarchy[I, K], error) {
	include := FacetAll
	if len(facets) > 0 {
		include = 0
		for _, facet := range facets {
			include |= facet
		}
	}
	if include&FacetAll == 0 {
		return nil, ErrNoFacet
	}

	matches := h.Find(search)

	included := types.NewOrderedSet[*Node[I]]()
	if include&FacetMatches != 0 {
		included.Add(matches...)
	}
	if include&FacetAncestors != 0 {
		included.Add(ancestorsOf(matches, false)...)
	}
	if include&FacetDescendants != 0 {
		included.Add(descendantsOf(matches, false, nil)...)
	}

	if h.cfg.Debug {
		h.cfg.Logger.Debugf("search matched %v, including %d nodes", h.IDsOf(matches), included.Len())
	}

	return h.rebuild(included, h.cfg)
}

// Clone creates a structural copy of the Hierarchy with fresh nodes sharing the items.
func (h *Hierarchy[I, K]) Clone() (*Hierarchy[I, K], error) {
	return h.rebuild(types.NewOrderedSet(h.nodes.Values()...), h.cfg)
}

// CloneIDs creates a structural copy of the Hierarchy holding the ids as items.
func (h *Hierarchy[I, K]) CloneIDs() (*Hierarchy[K, K], error) {
	return AssembleIDHierarchy(h.ToChildMap(), WithConfig(*h.cfg))
}

// rebuild assembles the included nodes, in index order, into a new Hierarchy.
func (h *Hierarchy[I, K]) rebuild(included *types.OrderedSet[*Node[I]], cfg *Config) (*Hierarchy[I, K], error) {
	m := childmap.New[K]()
	items := make([]I, 0, included.Len())

	for _, node := range h.nodes.All() {
		if !included.Has(node) {
			continue
		}

		id := h.identify(node.item)
		items = append(items, node.item)

		linked := node.parent != nil && included.Has(node.parent)
		for child := range node.children.All() {
			if included.Has(child) {
				m.Add(id, h.identify(child.item))
				linked = true
			}
		}

		// Included nodes without included kin are isolated roots.
		if !linked {
			m.Add(id)
		}
	}

	return AssembleHierarchy(items, h.identify, m, WithConfig(*cfg))
}
