// SPDX-License-Identifier: MIT
package traverse

type (
	// store holds the nodes pending a visit.
	store[T any] interface {
		// Push adds values in the order they should be popped.
		Push(values ...T)
		Pop() (value T, ok bool)
		Len() int
		Clear()
	}

	// queue is a FIFO store, it drives breadth-first traversal.
	queue[T any] struct {
		values []T
		front  int
	}

	// stack is a LIFO store, it drives depth-first traversal.
	stack[T any] struct {
		values []T
	}
)

func newStore[T any](order Order) store[T] {
	if order == DepthFirst {
		return &stack[T]{}
	}

	return &queue[T]{}
}

func (q *queue[T]) Push(values ...T) { q.values = append(q.values, values...) }

func (q *queue[T]) Pop() (value T, ok bool) {
	if q.front >= len(q.values) {
		return
	}

	var zero T
	value, q.values[q.front] = q.values[q.front], zero
	q.front++
	ok = true

	// Reclaim the consumed prefix once it dominates the backing array.
	if q.front > 32 && q.front*2 > len(q.values) {
		q.values = append(q.values[:0], q.values[q.front:]...)
		q.front = 0
	}

	return
}

func (q *queue[T]) Len() int { return len(q.values) - q.front }

func (q *queue[T]) Clear() { q.values, q.front = nil, 0 }

// Push adds values so that the first value is popped first.
func (s *stack[T]) Push(values ...T) {
	for index := len(values) - 1; index >= 0; index-- {
		s.values = append(s.values, values[index])
	}
}

func (s *stack[T]) Pop() (value T, ok bool) {
	last := len(s.values) - 1
	if last < 0 {
		return
	}

	var zero T
	value, s.values[last] = s.values[last], zero
	s.values = s.values[:last]
	ok = true

	return
}

func (s *stack[T]) Len() int { return len(s.values) }

func (s *stack[T]) Clear() { s.values = nil }
