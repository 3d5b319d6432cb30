package alias

import (
	"reflect"
	"sort"
)

// OrderedMap is a string-keyed map that preserves insertion order. Entry
// order is semantically significant: it drives display order and keeps
// re-serialization of the configuration file stable.
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

// NewOrderedMap creates an empty OrderedMap.
func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{values: make(map[string]V)}
}

// Len returns the number of entries.
func (m *OrderedMap[V]) Len() int {
	return len(m.keys)
}

// Has reports whether key is present.
func (m *OrderedMap[V]) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Get returns the value stored under key.
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Set stores value under key. A new key is appended at the end; an
// existing key keeps its position.
func (m *OrderedMap[V]) Set(key string, value V) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Delete removes key, shifting later entries forward. It reports whether
// the key was present.
func (m *OrderedMap[V]) Delete(key string) bool {
	if _, ok := m.values[key]; !ok {
		return false
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

// Clear removes every entry.
func (m *OrderedMap[V]) Clear() {
	m.keys = nil
	m.values = make(map[string]V)
}

// Keys returns the keys in order. The returned slice is a copy.
func (m *OrderedMap[V]) Keys() []string {
	return append([]string(nil), m.keys...)
}

// SortKeys reorders all entries lexicographically by key.
func (m *OrderedMap[V]) SortKeys() {
	sort.Strings(m.keys)
}

// ReorderWithin sorts, by key, only the entries selected by match. The
// selected entries are reassigned into the index positions they already
// occupied, so every other entry keeps its exact place and the selected
// entries are not made contiguous.
func (m *OrderedMap[V]) ReorderWithin(match func(key string, value V) bool) {
	var positions []int
	var selected []string
	for i, k := range m.keys {
		if match(k, m.values[k]) {
			positions = append(positions, i)
			selected = append(selected, k)
		}
	}
	sort.Strings(selected)
	for i, pos := range positions {
		m.keys[pos] = selected[i]
	}
}

// Equal reports whether both maps hold the same entries in the same
// order. Values are compared with reflect.DeepEqual.
func (m *OrderedMap[V]) Equal(other *OrderedMap[V]) bool {
	if other == nil || len(m.keys) != len(other.keys) {
		return false
	}
	for i, k := range m.keys {
		if other.keys[i] != k {
			return false
		}
		if !reflect.DeepEqual(m.values[k], other.values[k]) {
			return false
		}
	}
	return true
}
