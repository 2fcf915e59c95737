// Package concurrent provides a generic lock-striped map used as the shared
// backing store for per-key state that many goroutines update concurrently.
//
// The design follows the striping idea in Carmen's NWaysCache
// (common/nways_cache.go): instead of one mutex guarding the whole
// structure, keys are distributed across a fixed number of independently
// locked buckets by taking the key modulo the bucket count, so unrelated
// keys almost never contend. Carmen pads an array of mutexes to keep
// adjacent locks off the same cache line; here each bucket is its own heap
// allocation (one *bucket per slot) instead, which gets the same
// false-sharing avoidance without a padding constant, since Go doesn't lay
// out a slice of mutex-holding structs contiguously the way an array of
// plain integers is laid out.
package concurrent

import (
	"sync"

	"golang.org/x/exp/constraints"
)

const defaultStripes = 256

type bucket[K constraints.Integer, V any] struct {
	mu    sync.Mutex
	items map[K]V
}

// StripedMap is a concurrent map keyed by an integer type, safe for use by
// multiple goroutines without a single global lock.
type StripedMap[K constraints.Integer, V any] struct {
	buckets []*bucket[K, V]
}

// NewStripedMap constructs a StripedMap with the given number of lock
// stripes. A non-positive count is treated as defaultStripes.
func NewStripedMap[K constraints.Integer, V any](stripes int) *StripedMap[K, V] {
	if stripes <= 0 {
		stripes = defaultStripes
	}
	buckets := make([]*bucket[K, V], stripes)
	for i := range buckets {
		buckets[i] = &bucket[K, V]{items: make(map[K]V)}
	}
	return &StripedMap[K, V]{buckets: buckets}
}

func (s *StripedMap[K, V]) bucketFor(key K) *bucket[K, V] {
	idx := uint64(key) % uint64(len(s.buckets))
	return s.buckets[idx]
}

// Get returns the value stored for key, if present.
func (s *StripedMap[K, V]) Get(key K) (V, bool) {
	b := s.bucketFor(key)
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.items[key]
	return v, ok
}

// Put unconditionally stores val under key, overwriting any existing entry.
func (s *StripedMap[K, V]) Put(key K, val V) {
	b := s.bucketFor(key)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items[key] = val
}

// Contains reports whether key has an entry.
func (s *StripedMap[K, V]) Contains(key K) bool {
	b := s.bucketFor(key)
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.items[key]
	return ok
}

// WithLock performs an atomic read-modify-write on the entry for key. fn
// receives the current value (the zero value if absent) and whether it was
// present, and returns the value to commit plus whether to commit it at
// all. If fn returns a non-nil error, the map is left unchanged and the
// error is returned to the caller; no partial state is ever observed by a
// concurrent reader.
func (s *StripedMap[K, V]) WithLock(key K, fn func(existing V, present bool) (newVal V, commit bool, err error)) error {
	b := s.bucketFor(key)
	b.mu.Lock()
	defer b.mu.Unlock()
	existing, present := b.items[key]
	newVal, commit, err := fn(existing, present)
	if err != nil {
		return err
	}
	if commit {
		b.items[key] = newVal
	}
	return nil
}

// ForEach invokes fn once per stored entry. Each bucket is locked only for
// the duration of its own iteration, so ForEach never holds more than one
// bucket's lock at a time.
func (s *StripedMap[K, V]) ForEach(fn func(key K, val V)) {
	for _, b := range s.buckets {
		b.mu.Lock()
		for k, v := range b.items {
			fn(k, v)
		}
		b.mu.Unlock()
	}
}

// Len returns the total number of stored entries across all buckets. The
// result is only a snapshot: concurrent writers may change it immediately
// after this call returns.
func (s *StripedMap[K, V]) Len() int {
	total := 0
	for _, b := range s.buckets {
		b.mu.Lock()
		total += len(b.items)
		b.mu.Unlock()
	}
	return total
}
