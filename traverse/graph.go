// SPDX-License-Identifier: MIT

// Package traverse walks graphs described by a children getter, or by a per-node signal callback.
//
// Breadth-first traversal is backed by a queue, depth-first traversal by a stack. Every
// traversal comes in three shapes: a lazy [Iterator], an eagerly flattened slice and a
// short-circuiting search.
package traverse

type (
	// NextFunc obtains the nodes following node, i.e. its children.
	NextFunc[T any] func(node T) []T

	// VisitFunc is invoked once per visited node, the Signal directs the traversal.
	VisitFunc[T any] func(signal *Signal[T])
)

// expand adapts a NextFunc to the signal protocol.
func expand[T any](next NextFunc[T]) VisitFunc[T] {
	return func(s *Signal[T]) { _ = s.Next(next(s.Node())...) }
}

// Graph lazily traverses the graph reachable from roots, roots included.
func Graph[T comparable](roots []T, next NextFunc[T], opts ...Option) *Iterator[T] {
	return newIterator(roots, expand(next), 0, newConfig(true, opts))
}

// GraphSignal lazily traverses from roots, descending only where the VisitFunc calls
// [Signal.Next].
func GraphSignal[T comparable](roots []T, visit VisitFunc[T], opts ...Option) *Iterator[T] {
	return newIterator(roots, visit, 0, newConfig(true, opts))
}

// FlattenGraph lists the nodes Graph yields.
func FlattenGraph[T comparable](roots []T, next NextFunc[T], opts ...Option) []T {
	// A NextFunc can not violate the signal protocol.
	nodes, _ := Graph(roots, next, opts...).Collect()
	return nodes
}

// FlattenGraphSignal lists the nodes GraphSignal yields.
func FlattenGraphSignal[T comparable](roots []T, visit VisitFunc[T], opts ...Option) ([]T, error) {
	return GraphSignal(roots, visit, opts...).Collect()
}

// SearchGraph finds the first node matching, stopping the traversal there.
func SearchGraph[T comparable](roots []T, next NextFunc[T], match func(T) bool, opts ...Option) (node T, ok bool) {
	return first(Graph(roots, next, opts...).search(match, false))
}

// SearchGraphAll lists every node matching.
func SearchGraphAll[T comparable](roots []T, next NextFunc[T], match func(T) bool, opts ...Option) []T {
	matches, _ := Graph(roots, next, opts...).search(match, true)
	return matches
}

// Descendants lazily traverses the graph below roots, roots excluded unless
// WithIncludeSelf(true) is set.
func Descendants[T comparable](roots []T, next NextFunc[T], opts ...Option) *Iterator[T] {
	return newIterator(roots, expand(next), 0, newConfig(false, opts))
}

// DescendantsSignal is the signal mode counterpart of Descendants.
//
// The VisitFunc is still invoked for the excluded roots so it can queue their children.
func DescendantsSignal[T comparable](roots []T, visit VisitFunc[T], opts ...Option) *Iterator[T] {
	return newIterator(roots, visit, 0, newConfig(false, opts))
}

// FlattenDescendants lists the nodes Descendants yields.
func FlattenDescendants[T comparable](roots []T, next NextFunc[T], opts ...Option) []T {
	nodes, _ := Descendants(roots, next, opts...).Collect()
	return nodes
}

// SearchDescendants finds the first descendant matching.
func SearchDescendants[T comparable](roots []T, next NextFunc[T], match func(T) bool, opts ...Option) (node T, ok bool) {
	return first(Descendants(roots, next, opts...).search(match, false))
}

// SearchDescendantsAll lists every descendant matching.
func SearchDescendantsAll[T comparable](roots []T, next NextFunc[T], match func(T) bool, opts ...Option) []T {
	matches, _ := Descendants(roots, next, opts...).search(match, true)
	return matches
}

func first[T any](matches []T, _ error) (node T, ok bool) {
	if len(matches) < 1 {
		return
	}

	return matches[0], true
}
