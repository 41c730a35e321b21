// SPDX-License-Identifier: MIT
package traverse

// SuccessorFunc obtains the element following element; ok is false at the end of the chain.
type SuccessorFunc[T any] func(element T) (next T, ok bool)

func follow[T any](next SuccessorFunc[T]) VisitFunc[T] {
	return func(s *Signal[T]) {
		if successor, ok := next(s.Node()); ok {
			_ = s.Next(successor)
		}
	}
}

// Sequence lazily walks the chain starting at start, start included.
//
// Depth reports the position in the chain. A chain that loops back on itself only terminates
// with WithCycleDetection(true).
func Sequence[T comparable](start T, next SuccessorFunc[T], opts ...Option) *Iterator[T] {
	return newIterator([]T{start}, follow(next), 1, newConfig(true, opts))
}

// SequenceSignal lazily walks a chain directed by visit; [Signal.Next] accepts one element.
func SequenceSignal[T comparable](start T, visit VisitFunc[T], opts ...Option) *Iterator[T] {
	return newIterator([]T{start}, visit, 1, newConfig(true, opts))
}

// FlattenSequence lists the elements Sequence yields.
func FlattenSequence[T comparable](start T, next SuccessorFunc[T], opts ...Option) []T {
	elements, _ := Sequence(start, next, opts...).Collect()
	return elements
}

// FlattenSequenceSignal lists the elements SequenceSignal yields.
func FlattenSequenceSignal[T comparable](start T, visit VisitFunc[T], opts ...Option) ([]T, error) {
	return SequenceSignal(start, visit, opts...).Collect()
}

// SearchSequence finds the first element matching.
func SearchSequence[T comparable](start T, next SuccessorFunc[T], match func(T) bool, opts ...Option) (element T, ok bool) {
	return first(Sequence(start, next, opts...).search(match, false))
}

// SearchSequenceAll lists every element matching.
func SearchSequenceAll[T comparable](start T, next SuccessorFunc[T], match func(T) bool, opts ...Option) []T {
	matches, _ := Sequence(start, next, opts...).search(match, true)
	return matches
}
