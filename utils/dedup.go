package utils

// OrderedMap is an insertion-ordered map with last-write-wins semantics:
// setting an existing key replaces its value but keeps the position of the
// first insertion. Used to deduplicate listing rows by report number.
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

// NewOrderedMap creates an empty OrderedMap
func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{values: make(map[string]V)}
}

// Set inserts or replaces the value under key
func (m *OrderedMap[V]) Set(key string, value V) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Values returns all values in first-insertion order
func (m *OrderedMap[V]) Values() []V {
	out := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.values[k])
	}
	return out
}

// Len returns the number of distinct keys
func (m *OrderedMap[V]) Len() int {
	return len(m.keys)
}
