// SPDX-License-Identifier: MIT
package types

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// OrderedMap is a map that remembers key insertion order.
//
// Re-setting an existing key keeps its position. Not safe for concurrent use.
type OrderedMap[K comparable, V any] struct {
	inner *orderedmap.OrderedMap[K, V]
}

// NewOrderedMap instantiates an OrderedMap.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{inner: orderedmap.New[K, V]()}
}

// Len is the number of entries in the map.
func (m *OrderedMap[K, V]) Len() int { return m.inner.Len() }

// Has checks for the existence of a key.
func (m *OrderedMap[K, V]) Has(key K) (ok bool) {
	_, ok = m.inner.Get(key)
	return
}

// Get retrieves the value stored for key.
func (m *OrderedMap[K, V]) Get(key K) (value V, ok bool) { return m.inner.Get(key) }

// Set stores value for key, appending the key if it is new.
func (m *OrderedMap[K, V]) Set(key K, value V) { m.inner.Set(key, value) }

// Delete removes key, reporting whether it was present.
func (m *OrderedMap[K, V]) Delete(key K) (ok bool) {
	_, ok = m.inner.Delete(key)
	return
}

// Keys lists the keys in insertion order.
func (m *OrderedMap[K, V]) Keys() (keys []K) {
	keys = make([]K, 0, m.Len())
	for pair := m.inner.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}

	return
}

// Values lists the values in key insertion order.
func (m *OrderedMap[K, V]) Values() (values []V) {
	values = make([]V, 0, m.Len())
	for pair := m.inner.Oldest(); pair != nil; pair = pair.Next() {
		values = append(values, pair.Value)
	}

	return
}

// All iterates over the entries in insertion order.
//
// Deleting the entry being visited is allowed.
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for pair := m.inner.Oldest(); pair != nil; {
			next := pair.Next()

			if !yield(pair.Key, pair.Value) {
				return
			}

			pair = next
		}
	}
}

// Clear removes every entry.
func (m *OrderedMap[K, V]) Clear() { m.inner = orderedmap.New[K, V]() }
