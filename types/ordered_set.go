// SPDX-License-Identifier: MIT
package types

import "iter"

// OrderedSet is a duplicate-free collection iterated in insertion order.
type OrderedSet[T comparable] struct {
	m *OrderedMap[T, struct{}]
}

// NewOrderedSet instantiates an OrderedSet holding values.
func NewOrderedSet[T comparable](values ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{m: NewOrderedMap[T, struct{}]()}
	s.Add(values...)

	return s
}

// Len is the number of values in the set.
func (s *OrderedSet[T]) Len() int { return s.m.Len() }

// Has checks for the existence of a value.
func (s *OrderedSet[T]) Has(value T) bool { return s.m.Has(value) }

// Add appends the values not yet present, returning the number added.
func (s *OrderedSet[T]) Add(values ...T) (added int) {
	for _, value := range values {
		if s.m.Has(value) {
			continue
		}

		s.m.Set(value, struct{}{})
		added++
	}

	return
}

// Delete removes the values, returning the number removed.
func (s *OrderedSet[T]) Delete(values ...T) (removed int) {
	for _, value := range values {
		if s.m.Delete(value) {
			removed++
		}
	}

	return
}

// Values lists the set content in insertion order.
//
// The slice is a copy.
func (s *OrderedSet[T]) Values() []T { return s.m.Keys() }

// All iterates over the set in insertion order.
func (s *OrderedSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for value := range s.m.All() {
			if !yield(value) {
				return
			}
		}
	}
}

// Intersect retains the values also present in other, keeping the receiver's order.
func (s *OrderedSet[T]) Intersect(other *OrderedSet[T]) {
	for value := range s.All() {
		if !other.Has(value) {
			s.m.Delete(value)
		}
	}
}

// First retrieves the earliest inserted value.
func (s *OrderedSet[T]) First() (value T, ok bool) {
	for value = range s.All() {
		return value, true
	}

	return
}

// Clone creates an independent copy of the set.
func (s *OrderedSet[T]) Clone() *OrderedSet[T] { return NewOrderedSet(s.Values()...) }

// Clear removes every value.
func (s *OrderedSet[T]) Clear() { s.m.Clear() }
