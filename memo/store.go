package memo

import (
	"sort"
	"sync"
)

// Stats is a snapshot of store activity counters. Counters track
// caller-visible lookups: under single-flight, each caller joining an
// in-flight evaluation records its own miss, so Misses can exceed
// Evaluations without the duplicate-invocation race having fired.
type Stats struct {
	// Hits counts lookups that returned a cached result.
	Hits uint64

	// Misses counts lookups that found no entry.
	Misses uint64

	// Evaluations counts target invocations that stored a result.
	Evaluations uint64
}

// Store is the mutable result cache owned by a Memoizer.
//
// Contract:
// - Concurrency: safe for concurrent use.
// - Growth: unbounded; entries are never evicted or expired. Callers
//   invalidate with Delete or Clear.
// - Ownership: one Store per Memoizer, never shared across memoizers.
type Store[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
	stats   Stats
}

// NewStore creates an empty store.
func NewStore[V any]() *Store[V] {
	return &Store[V]{entries: make(map[string]V)}
}

// Get retrieves a cached value. Returns (zero, false) on miss.
func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.entries[key]
	if ok {
		s.stats.Hits++
	} else {
		s.stats.Misses++
	}
	return v, ok
}

// Set stores a value under the given key, replacing any previous entry.
func (s *Store[V]) Set(key string, value V) {
	s.mu.Lock()
	s.entries[key] = value
	s.mu.Unlock()
}

// Delete removes a cached value. Idempotent - no-op on miss.
func (s *Store[V]) Delete(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// Clear removes all entries. Counters are preserved.
func (s *Store[V]) Clear() {
	s.mu.Lock()
	s.entries = make(map[string]V)
	s.mu.Unlock()
}

// Len returns the number of cached entries.
func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Keys returns all cached keys in sorted order.
func (s *Store[V]) Keys() []string {
	s.mu.RLock()
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	s.mu.RUnlock()

	sort.Strings(keys)
	return keys
}

// Stats returns a consistent snapshot of the activity counters.
func (s *Store[V]) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// peek looks up a key without touching the hit/miss counters.
func (s *Store[V]) peek(key string) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	return v, ok
}

func (s *Store[V]) noteEvaluation() {
	s.mu.Lock()
	s.stats.Evaluations++
	s.mu.Unlock()
}
