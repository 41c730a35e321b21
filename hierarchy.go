// SPDX-License-Identifier: MIT

// Package hierarchy provides an id indexed container over a forest of doubly-linked nodes.
//
// Nodes are linked through [Node.Attach], then handed to a [Hierarchy] which brands them, locking
// their structure to it. Queries (ancestors, descendants, searches, common ancestors) run over the
// traverse package.
package hierarchy

import (
	"errors"
	"fmt"
	"iter"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"gitlab.com/fisherprime/hierarchy/v4/traverse"
	"gitlab.com/fisherprime/hierarchy/v4/types"
)

type (
	// Hierarchy indexes a forest of nodes by id.
	//
	// Every indexed node is branded with the Hierarchy's token, structural changes go through
	// [Hierarchy.Attach] & [Hierarchy.Detach]. Not safe for concurrent use.
	Hierarchy[I any, K comparable] struct {
		cfg *Config

		identify func(I) K
		brand    uuid.UUID

		// nodes holds every node reachable from the roots, in attach order.
		nodes *types.OrderedMap[K, *Node[I]]
		roots *types.OrderedSet[K]

		unbrand map[K]func()
	}
)

// Errors encountered when handling a Hierarchy.
var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicateID  = errors.New("duplicate id")
	ErrNotMember    = errors.New("is not a member of the hierarchy")
	ErrNilIdentify  = errors.New("nil identify function")
	ErrInconsistent = errors.New("inconsistent with the hierarchy index")
)

// New instantiates an empty Hierarchy.
//
// identify must be deterministic & produce unique ids within the Hierarchy.
func New[I any, K comparable](identify func(I) K, opts ...Option) *Hierarchy[I, K] {
	if identify == nil {
		panic(ErrNilIdentify)
	}

	return &Hierarchy[I, K]{
		cfg:      newConfig(opts),
		identify: identify,
		brand:    uuid.New(),
		nodes:    types.NewOrderedMap[K, *Node[I]](),
		roots:    types.NewOrderedSet[K](),
		unbrand:  make(map[K]func()),
	}
}

// NewIDs instantiates an empty Hierarchy whose items are their own ids.
func NewIDs[K comparable](opts ...Option) *Hierarchy[K, K] {
	return New[K, K](identity[K], opts...)
}

// Config obtains the Hierarchy's configuration.
func (h *Hierarchy[I, K]) Config() *Config { return h.cfg }

// Brand obtains the token branding the Hierarchy's nodes.
func (h *Hierarchy[I, K]) Brand() uuid.UUID { return h.brand }

// Identify projects item to its id.
func (h *Hierarchy[I, K]) Identify(item I) K { return h.identify(item) }

// Len is the number of indexed nodes.
func (h *Hierarchy[I, K]) Len() int { return h.nodes.Len() }

// Has checks whether id is indexed.
func (h *Hierarchy[I, K]) Has(id K) bool { return h.nodes.Has(id) }

// HasEvery checks whether every id is indexed; true without ids.
func (h *Hierarchy[I, K]) HasEvery(ids ...K) bool {
	for _, id := range ids {
		if !h.nodes.Has(id) {
			return false
		}
	}

	return true
}

// HasSome checks whether any id is indexed; false without ids.
func (h *Hierarchy[I, K]) HasSome(ids ...K) bool {
	for _, id := range ids {
		if h.nodes.Has(id) {
			return true
		}
	}

	return false
}

// Get retrieves the node for id.
func (h *Hierarchy[I, K]) Get(id K) (node *Node[I], err error) {
	node, ok := h.nodes.Get(id)
	if !ok {
		err = fmt.Errorf(nodeFmt, id, ErrNotFound)
	}

	return
}

// GetItem retrieves the item for id.
func (h *Hierarchy[I, K]) GetItem(id K) (item I, err error) {
	node, err := h.Get(id)
	if err != nil {
		return
	}
	item = node.item

	return
}

// GetSome retrieves the nodes for ids, in order.
func (h *Hierarchy[I, K]) GetSome(ids ...K) (nodes []*Node[I], err error) {
	nodes = make([]*Node[I], len(ids))
	for index, id := range ids {
		if nodes[index], err = h.Get(id); err != nil {
			return nil, err
		}
	}

	return
}

// GetItems retrieves the items for ids, in order.
func (h *Hierarchy[I, K]) GetItems(ids ...K) (items []I, err error) {
	nodes, err := h.GetSome(ids...)
	if err != nil {
		return
	}

	return itemsOf(nodes), nil
}

// IDs lists the indexed ids in attach order.
func (h *Hierarchy[I, K]) IDs() []K { return h.nodes.Keys() }

// Nodes lists the indexed nodes in attach order.
func (h *Hierarchy[I, K]) Nodes() []*Node[I] { return h.nodes.Values() }

// Items lists the indexed items in attach order.
func (h *Hierarchy[I, K]) Items() []I { return itemsOf(h.nodes.Values()) }

// All iterates over the indexed ids & nodes in attach order.
func (h *Hierarchy[I, K]) All() iter.Seq2[K, *Node[I]] { return h.nodes.All() }

// RootIDs lists the ids of the roots.
func (h *Hierarchy[I, K]) RootIDs() []K { return h.roots.Values() }

// Roots lists the root nodes.
func (h *Hierarchy[I, K]) Roots() (roots []*Node[I]) {
	roots = make([]*Node[I], 0, h.roots.Len())
	for id := range h.roots.All() {
		node, _ := h.nodes.Get(id)
		roots = append(roots, node)
	}

	return
}

// IDOf projects node to its id.
func (h *Hierarchy[I, K]) IDOf(node *Node[I]) K { return h.identify(node.item) }

// IDsOf projects nodes to their ids.
func (h *Hierarchy[I, K]) IDsOf(nodes []*Node[I]) (ids []K) {
	ids = make([]K, len(nodes))
	for index, node := range nodes {
		ids[index] = h.identify(node.item)
	}

	return
}

// ItemsOf projects nodes to their items.
func (h *Hierarchy[I, K]) ItemsOf(nodes []*Node[I]) []I { return itemsOf(nodes) }

// IsMember checks whether node is the one indexed under its id.
func (h *Hierarchy[I, K]) IsMember(node *Node[I]) bool {
	indexed, ok := h.nodes.Get(h.identify(node.item))
	return ok && indexed == node
}

// AttachRoot indexes nodes & their descendants, registering nodes as roots.
//
// Every node must be a root and no node in the subtrees may be branded or share an id with an
// indexed node. Nothing is indexed when a check fails.
func (h *Hierarchy[I, K]) AttachRoot(nodes ...*Node[I]) (err error) {
	subtree, err := h.prepare(nodes)
	if err != nil {
		return
	}

	if err = h.index(subtree); err != nil {
		return
	}
	for _, node := range nodes {
		h.roots.Add(h.identify(node.item))
	}

	if h.cfg.Debug {
		h.cfg.Logger.Debugf("attached roots: %v", h.IDsOf(nodes))
	}

	return
}

// Attach indexes children & their descendants, linking children under the node for parentID.
func (h *Hierarchy[I, K]) Attach(parentID K, children ...*Node[I]) (err error) {
	parent, err := h.Get(parentID)
	if err != nil {
		return fmt.Errorf("parent %w", err)
	}

	subtree, err := h.prepare(children)
	if err != nil {
		return
	}

	if err = h.index(subtree); err != nil {
		return
	}
	parent.link(children...)

	if h.cfg.Debug {
		h.cfg.Logger.Debugf("attached %v under (%v)", h.IDsOf(children), parentID)
	}

	return
}

// Detach removes nodes & their descendants from the Hierarchy.
//
// Removed nodes are unbranded and unlinked from their parents, becoming roots usable elsewhere.
// Links within the removed subtrees are kept.
func (h *Hierarchy[I, K]) Detach(nodes ...*Node[I]) error {
	if len(nodes) < 1 {
		return ErrNoNodes
	}
	for _, node := range nodes {
		if !h.IsMember(node) {
			return fmt.Errorf(nodeFmt, node.item, ErrNotMember)
		}
	}

	for _, node := range nodes {
		for _, descendant := range node.Descendants(true, traverse.WithCycleDetection(true)) {
			h.deindex(descendant)
		}

		if parent := node.parent; parent != nil {
			parent.unlink(node)
		}
	}

	if h.cfg.Debug {
		h.cfg.Logger.Debugf("detached %v", h.IDsOf(nodes))
	}

	return nil
}

// DetachIDs removes the nodes for ids & their descendants from the Hierarchy.
func (h *Hierarchy[I, K]) DetachIDs(ids ...K) error {
	nodes, err := h.GetSome(ids...)
	if err != nil {
		return err
	}

	return h.Detach(nodes...)
}

// prepare validates nodes for indexing, listing every node in their subtrees.
func (h *Hierarchy[I, K]) prepare(nodes []*Node[I]) (subtree []*Node[I], err error) {
	if len(nodes) < 1 {
		return nil, ErrNoNodes
	}

	var result *multierror.Error
	for _, node := range nodes {
		if !node.IsRoot() {
			result = multierror.Append(result, fmt.Errorf(relationFmt, node.item, ErrNotRoot, node.parent.item))
		}
	}

	subtree = traverse.FlattenGraph(nodes, (*Node[I]).Children, traverse.WithCycleDetection(true))

	seen := make(map[K]struct{}, len(subtree))
	for _, node := range subtree {
		id := h.identify(node.item)

		if node.IsBranded() {
			result = multierror.Append(result, fmt.Errorf(nodeFmt, id, ErrAlreadyBranded))
		}

		_, repeated := seen[id]
		if repeated || h.nodes.Has(id) {
			result = multierror.Append(result, fmt.Errorf("%w (%v)", ErrDuplicateID, id))
		}
		seen[id] = struct{}{}
	}

	if err = result.ErrorOrNil(); err != nil {
		subtree = nil
	}

	return
}

// index brands & indexes prepared nodes.
func (h *Hierarchy[I, K]) index(subtree []*Node[I]) error {
	for index, node := range subtree {
		unbrand, err := node.Brand(h.brand)
		if err != nil {
			// Prepared nodes are unbranded; roll back regardless.
			for _, indexed := range subtree[:index] {
				h.deindex(indexed)
			}
			return fmt.Errorf("%w: %v", ErrInconsistent, err)
		}

		id := h.identify(node.item)
		h.nodes.Set(id, node)
		h.unbrand[id] = unbrand
	}

	return nil
}

// deindex unbrands node before removing it from the index.
func (h *Hierarchy[I, K]) deindex(node *Node[I]) {
	id := h.identify(node.item)
	if indexed, ok := h.nodes.Get(id); !ok || indexed != node {
		return
	}

	if unbrand, ok := h.unbrand[id]; ok {
		unbrand()
		delete(h.unbrand, id)
	}
	h.nodes.Delete(id)
	h.roots.Delete(id)
}

// String renders the Hierarchy as child-map text.
func (h *Hierarchy[I, K]) String() string { return h.ToChildMap().String() }

func identity[K any](id K) K { return id }

func itemsOf[I any](nodes []*Node[I]) (items []I) {
	items = make([]I, len(nodes))
	for index, node := range nodes {
		items[index] = node.item
	}

	return
}
