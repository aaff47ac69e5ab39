// Package hashset provides thin set and map adapters over the host's
// general-purpose hash map. Storage lives in the host map; the adapters
// consume the allocation contract only when snapshotting their contents
// into allocator-owned memory.
package hashset

import "github.com/mwhitfield/corekit/alloc"

// Set is an unordered collection of unique keys.
type Set[K comparable] struct {
	m map[K]struct{}
}

// NewSet returns an empty set.
func NewSet[K comparable]() *Set[K] {
	return &Set[K]{m: make(map[K]struct{})}
}

// Add inserts key, reporting whether it was absent.
func (s *Set[K]) Add(key K) bool {
	if _, ok := s.m[key]; ok {
		return false
	}
	s.m[key] = struct{}{}
	return true
}

// Remove deletes key, reporting whether it was present.
func (s *Set[K]) Remove(key K) bool {
	if _, ok := s.m[key]; !ok {
		return false
	}
	delete(s.m, key)
	return true
}

// Has reports whether key is present.
func (s *Set[K]) Has(key K) bool {
	_, ok := s.m[key]
	return ok
}

// Len reports the number of keys held.
func (s *Set[K]) Len() int {
	return len(s.m)
}

// Values snapshots the keys into memory from a, in unspecified order.
// Returns nil when the set is empty.
func (s *Set[K]) Values(a alloc.Allocator) []K {
	if len(s.m) == 0 {
		return nil
	}
	out := alloc.MakeSlice[K](a, len(s.m))
	i := 0
	for k := range s.m {
		out[i] = k
		i++
	}
	return out
}

// Map is a key/value adapter with the same snapshotting behavior as Set.
type Map[K comparable, V any] struct {
	m map[K]V
}

// NewMap returns an empty map adapter.
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{m: make(map[K]V)}
}

// Put stores value under key, replacing any previous entry.
func (m *Map[K, V]) Put(key K, value V) {
	m.m[key] = value
}

// Get looks up key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.m[key]
	return v, ok
}

// Delete removes key, reporting whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	if _, ok := m.m[key]; !ok {
		return false
	}
	delete(m.m, key)
	return true
}

// Len reports the number of entries held.
func (m *Map[K, V]) Len() int {
	return len(m.m)
}

// Keys snapshots the keys into memory from a, in unspecified order.
// Returns nil when the map is empty.
func (m *Map[K, V]) Keys(a alloc.Allocator) []K {
	if len(m.m) == 0 {
		return nil
	}
	out := alloc.MakeSlice[K](a, len(m.m))
	i := 0
	for k := range m.m {
		out[i] = k
		i++
	}
	return out
}
