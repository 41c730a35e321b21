// SPDX-License-Identifier: MIT
package hierarchy

import (
	"gitlab.com/fisherprime/hierarchy/v4/traverse"
	"gitlab.com/fisherprime/hierarchy/v4/types"
)

type (
	// Search selects nodes, either by id or by predicate.
	//
	// Build one with [Hierarchy.Match], [Hierarchy.MatchFunc] or [Hierarchy.MatchItems].
	Search[I any, K comparable] struct {
		ids   []K
		match func(*Node[I]) bool
	}

	// Entry pairs an item with its id.
	Entry[I any, K comparable] struct {
		ID   K
		Item I
	}
)

// Match selects the nodes for ids.
//
// Finds return them in the given order, omitting ids that are not indexed.
func (h *Hierarchy[I, K]) Match(ids ...K) Search[I, K] { return Search[I, K]{ids: ids} }

// MatchFunc selects the nodes fn accepts.
//
// Finds return them in index order.
func (h *Hierarchy[I, K]) MatchFunc(fn func(*Node[I]) bool) Search[I, K] {
	return Search[I, K]{match: fn}
}

// MatchItems selects the nodes whose items fn accepts.
func (h *Hierarchy[I, K]) MatchItems(fn func(I) bool) Search[I, K] {
	return Search[I, K]{match: func(n *Node[I]) bool { return fn(n.item) }}
}

// matcher normalizes the search into a node predicate.
func (s Search[I, K]) matcher(h *Hierarchy[I, K]) func(*Node[I]) bool {
	if s.match != nil {
		return s.match
	}

	ids := types.NewOrderedSet(s.ids...)
	return func(n *Node[I]) bool { return ids.Has(h.identify(n.item)) }
}

// Find lists the nodes selected by search.
func (h *Hierarchy[I, K]) Find(search Search[I, K]) (nodes []*Node[I]) {
	nodes = []*Node[I]{}

	if search.match == nil {
		for id := range types.NewOrderedSet(search.ids...).All() {
			if node, ok := h.nodes.Get(id); ok {
				nodes = append(nodes, node)
			}
		}

		return
	}

	for _, node := range h.nodes.All() {
		if search.match(node) {
			nodes = append(nodes, node)
		}
	}

	return
}

// FindIDs lists the ids selected by search.
func (h *Hierarchy[I, K]) FindIDs(search Search[I, K]) []K { return h.IDsOf(h.Find(search)) }

// FindItems lists the items selected by search.
func (h *Hierarchy[I, K]) FindItems(search Search[I, K]) []I { return itemsOf(h.Find(search)) }

// FindEntries lists the id & item pairs selected by search.
func (h *Hierarchy[I, K]) FindEntries(search Search[I, K]) (entries []Entry[I, K]) {
	nodes := h.Find(search)

	entries = make([]Entry[I, K], len(nodes))
	for index, node := range nodes {
		entries[index] = Entry[I, K]{ID: h.identify(node.item), Item: node.item}
	}

	return
}

// Ancestors lists the ancestors of the nodes for ids, innermost first.
//
// Each id's chain is walked fully before the next; repeated ancestors are listed once.
func (h *Hierarchy[I, K]) Ancestors(ids []K, includeSelf bool) ([]*Node[I], error) {
	starts, err := h.GetSome(ids...)
	if err != nil {
		return nil, err
	}

	return ancestorsOf(starts, includeSelf), nil
}

// AncestorIDs lists the ids of the ancestors of the nodes for ids.
func (h *Hierarchy[I, K]) AncestorIDs(ids []K, includeSelf bool) ([]K, error) {
	nodes, err := h.Ancestors(ids, includeSelf)
	return h.IDsOf(nodes), err
}

// AncestorItems lists the items of the ancestors of the nodes for ids.
func (h *Hierarchy[I, K]) AncestorItems(ids []K, includeSelf bool) ([]I, error) {
	nodes, err := h.Ancestors(ids, includeSelf)
	return itemsOf(nodes), err
}

// Descendants lists the descendants of the nodes for ids, breadth-first unless configured
// otherwise.
//
// Repeated descendants are listed once.
func (h *Hierarchy[I, K]) Descendants(ids []K, includeSelf bool, opts ...traverse.Option) ([]*Node[I], error) {
	starts, err := h.GetSome(ids...)
	if err != nil {
		return nil, err
	}

	return descendantsOf(starts, includeSelf, opts), nil
}

// DescendantIDs lists the ids of the descendants of the nodes for ids.
func (h *Hierarchy[I, K]) DescendantIDs(ids []K, includeSelf bool, opts ...traverse.Option) ([]K, error) {
	nodes, err := h.Descendants(ids, includeSelf, opts...)
	return h.IDsOf(nodes), err
}

// DescendantItems lists the items of the descendants of the nodes for ids.
func (h *Hierarchy[I, K]) DescendantItems(ids []K, includeSelf bool, opts ...traverse.Option) ([]I, error) {
	nodes, err := h.Descendants(ids, includeSelf, opts...)
	return itemsOf(nodes), err
}

// FindAncestor finds the first ancestor of the nodes for ids selected by search.
//
// Ids that are not indexed are ignored.
func (h *Hierarchy[I, K]) FindAncestor(ids []K, search Search[I, K], includeSelf bool) (node *Node[I], ok bool) {
	return first(h.findAncestors(ids, search, includeSelf, false))
}

// FindAncestors lists the ancestors of the nodes for ids selected by search, in ancestor order.
func (h *Hierarchy[I, K]) FindAncestors(ids []K, search Search[I, K], includeSelf bool) []*Node[I] {
	return h.findAncestors(ids, search, includeSelf, true)
}

// FindAncestorID finds the id of the first ancestor selected by search.
func (h *Hierarchy[I, K]) FindAncestorID(ids []K, search Search[I, K], includeSelf bool) (id K, ok bool) {
	node, ok := h.FindAncestor(ids, search, includeSelf)
	if ok {
		id = h.identify(node.item)
	}

	return
}

// FindAncestorIDs lists the ids of the ancestors selected by search.
func (h *Hierarchy[I, K]) FindAncestorIDs(ids []K, search Search[I, K], includeSelf bool) []K {
	return h.IDsOf(h.FindAncestors(ids, search, includeSelf))
}

// FindDescendant finds the first descendant of the nodes for ids selected by search.
//
// Ids that are not indexed are ignored.
func (h *Hierarchy[I, K]) FindDescendant(ids []K, search Search[I, K], includeSelf bool, opts ...traverse.Option) (node *Node[I], ok bool) {
	opts = append(opts, traverse.WithIncludeSelf(includeSelf), traverse.WithCycleDetection(true))

	match := search.matcher(h)
	for _, start := range h.known(ids) {
		if node, ok = traverse.SearchGraph([]*Node[I]{start}, (*Node[I]).Children, match, opts...); ok {
			return
		}
	}

	return
}

// FindDescendants lists the descendants of the nodes for ids selected by search, in traversal
// order.
func (h *Hierarchy[I, K]) FindDescendants(ids []K, search Search[I, K], includeSelf bool, opts ...traverse.Option) []*Node[I] {
	matches := []*Node[I]{}
	match := search.matcher(h)

	for _, node := range descendantsOf(h.known(ids), includeSelf, opts) {
		if match(node) {
			matches = append(matches, node)
		}
	}

	return matches
}

// FindDescendantID finds the id of the first descendant selected by search.
func (h *Hierarchy[I, K]) FindDescendantID(ids []K, search Search[I, K], includeSelf bool, opts ...traverse.Option) (id K, ok bool) {
	node, ok := h.FindDescendant(ids, search, includeSelf, opts...)
	if ok {
		id = h.identify(node.item)
	}

	return
}

// FindDescendantIDs lists the ids of the descendants selected by search.
func (h *Hierarchy[I, K]) FindDescendantIDs(ids []K, search Search[I, K], includeSelf bool, opts ...traverse.Option) []K {
	return h.IDsOf(h.FindDescendants(ids, search, includeSelf, opts...))
}

// FindCommonAncestor finds the closest ancestor shared by the nodes for ids.
//
// The ancestor chains, innermost first, are intersected; the first remaining node wins. ok is false
// without ids, for unknown ids & for nodes lacking a shared ancestor.
func (h *Hierarchy[I, K]) FindCommonAncestor(ids []K, includeSelf bool) (node *Node[I], ok bool) {
	if len(ids) < 1 {
		return
	}

	var common *types.OrderedSet[*Node[I]]
	for _, id := range ids {
		start, found := h.nodes.Get(id)
		if !found {
			return nil, false
		}

		chain := types.NewOrderedSet(start.Ancestors(includeSelf)...)
		if common == nil {
			common = chain
			continue
		}
		common.Intersect(chain)
	}

	if h.cfg.Debug {
		h.cfg.Logger.Debugf("common ancestors of %v: %v", ids, common.Values())
	}

	return common.First()
}

// FindCommonAncestorID finds the id of the closest ancestor shared by the nodes for ids.
func (h *Hierarchy[I, K]) FindCommonAncestorID(ids []K, includeSelf bool) (id K, ok bool) {
	node, ok := h.FindCommonAncestor(ids, includeSelf)
	if ok {
		id = h.identify(node.item)
	}

	return
}

func (h *Hierarchy[I, K]) findAncestors(ids []K, search Search[I, K], includeSelf, all bool) (matches []*Node[I]) {
	matches = []*Node[I]{}
	match := search.matcher(h)

	seen := types.NewOrderedSet[*Node[I]]()
	for _, start := range h.known(ids) {
		it := traverse.Sequence(start, (*Node[I]).parentOf,
			traverse.WithIncludeSelf(includeSelf), traverse.WithCycleDetection(true))

		for node := range it.Values() {
			if seen.Add(node) < 1 || !match(node) {
				continue
			}

			matches = append(matches, node)
			if !all {
				return
			}
		}
	}

	return
}

// known retrieves the nodes for the indexed ids.
func (h *Hierarchy[I, K]) known(ids []K) (nodes []*Node[I]) {
	for _, id := range ids {
		if node, ok := h.nodes.Get(id); ok {
			nodes = append(nodes, node)
		}
	}

	return
}

func ancestorsOf[I any](starts []*Node[I], includeSelf bool) []*Node[I] {
	seen := types.NewOrderedSet[*Node[I]]()
	for _, start := range starts {
		seen.Add(start.Ancestors(includeSelf)...)
	}

	return seen.Values()
}

// descendantsOf walks each start's descendants fully before the next start's.
func descendantsOf[I any](starts []*Node[I], includeSelf bool, opts []traverse.Option) []*Node[I] {
	opts = append(opts, traverse.WithCycleDetection(true))

	seen := types.NewOrderedSet[*Node[I]]()
	for _, start := range starts {
		seen.Add(start.Descendants(includeSelf, opts...)...)
	}

	return seen.Values()
}

func first[T any](matches []T) (match T, ok bool) {
	if len(matches) < 1 {
		return
	}

	return matches[0], true
}
