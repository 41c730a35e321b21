// SPDX-License-Identifier: MIT
package traverse

import "iter"

type (
	// Iterator is a lazy, single-pass traversal.
	//
	// Each call to Next visits nodes until one is yielded; the traversal is suspended in between.
	// An exhausted Iterator can not be restarted, create a new one from the original roots.
	Iterator[T comparable] struct {
		cfg   config
		visit VisitFunc[T]
		store store[entry[T]]
		limit int

		// visited is nil unless cycle detection is enabled.
		visited map[T]struct{}

		current entry[T]
		err     error
		done    bool
	}

	entry[T any] struct {
		node  T
		depth int

		// hidden entries are visited but never yielded; used for excluded roots.
		hidden bool
	}
)

func newIterator[T comparable](roots []T, visit VisitFunc[T], limit int, cfg config) *Iterator[T] {
	it := &Iterator[T]{
		cfg:   cfg,
		visit: visit,
		store: newStore[entry[T]](cfg.order),
		limit: limit,
	}
	if cfg.detectCycles {
		it.visited = make(map[T]struct{})
	}

	it.push(roots, 0, !cfg.includeSelf)

	return it
}

// push queues nodes in sibling order.
func (it *Iterator[T]) push(nodes []T, depth int, hidden bool) {
	lenNodes := len(nodes)
	if lenNodes < 1 {
		return
	}

	entries := make([]entry[T], lenNodes)
	for index, node := range nodes {
		target := index
		if it.cfg.reverse {
			target = lenNodes - 1 - index
		}
		entries[target] = entry[T]{node: node, depth: depth, hidden: hidden}
	}

	it.store.Push(entries...)
}

// Next advances to the next yielded node, reporting false once the traversal ends or fails.
func (it *Iterator[T]) Next() bool {
	for !it.done {
		front, ok := it.store.Pop()
		if !ok {
			it.done = true
			break
		}

		if it.visited != nil {
			if _, seen := it.visited[front.node]; seen {
				continue
			}
			it.visited[front.node] = struct{}{}
		}

		signal := &Signal[T]{node: front.node, depth: front.depth, limit: it.limit}
		it.visit(signal)

		if signal.err != nil {
			it.err = signal.err
			it.finish()
			break
		}

		if signal.stopped {
			it.finish()
		} else if signal.descent != descentPruned {
			it.push(signal.pending, front.depth+1, false)
		}

		if front.hidden || signal.output == outputSkipped {
			continue
		}

		it.current = front
		return true
	}

	return false
}

func (it *Iterator[T]) finish() {
	it.store.Clear()
	it.done = true
}

// Value retrieves the node yielded by the last call to Next.
func (it *Iterator[T]) Value() T { return it.current.node }

// Depth retrieves the depth of the node yielded by the last call to Next.
func (it *Iterator[T]) Depth() int { return it.current.depth }

// Err retrieves the error that ended the traversal, if any.
func (it *Iterator[T]) Err() error { return it.err }

// All adapts the Iterator to a range-over-func sequence of node and depth pairs.
func (it *Iterator[T]) All() iter.Seq2[T, int] {
	return func(yield func(T, int) bool) {
		for it.Next() {
			if !yield(it.Value(), it.Depth()) {
				return
			}
		}
	}
}

// Values adapts the Iterator to a range-over-func sequence of nodes.
func (it *Iterator[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Collect drains the Iterator.
func (it *Iterator[T]) Collect() (nodes []T, err error) {
	nodes = make([]T, 0)
	for it.Next() {
		nodes = append(nodes, it.Value())
	}
	err = it.Err()

	return
}

// search drains the Iterator until a match, or collects every match when all is set.
func (it *Iterator[T]) search(match func(T) bool, all bool) (matches []T, err error) {
	for it.Next() {
		node := it.Value()
		if !match(node) {
			continue
		}

		matches = append(matches, node)
		if !all {
			break
		}
	}
	err = it.Err()

	return
}
