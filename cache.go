// cache.go: bounded least-frequently-accessed cache
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package oblivio

import (
	"sync"
)

// entry is a single cached key with its access bookkeeping.
type entry[K comparable, V any] struct {
	key       K
	value     V
	frequency uint64 // successful lookups since the entry was created
	sequence  uint64 // insertion order, fixed at first insert
}

// FrequencyCache is a bounded map that, when full, evicts the entry with the
// fewest lookups. Among entries with the same count, the one inserted first
// is evicted.
//
// Every operation, including Len and the other read-only accessors, runs
// under a single mutex for its whole body: Lookup mutates the frequency of
// the entry it finds, so there is no cheaper read path to offer.
type FrequencyCache[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*entry[K, V]
	capacity int
	nextSeq  uint64

	config  Config
	logger  Logger
	clock   TimeProvider
	metrics MetricsCollector

	hits      uint64
	misses    uint64
	inserts   uint64
	updates   uint64
	removes   uint64
	evictions uint64
}

// New creates a cache holding at most capacity entries, with default
// collaborators. It fails with OBLIVIO_INVALID_CAPACITY if capacity <= 0.
func New[K comparable, V any](capacity int) (*FrequencyCache[K, V], error) {
	return NewFrequencyCache[K, V](Config{Capacity: capacity})
}

// NewFrequencyCache creates a cache from cfg. The configuration is validated
// first; see Config.Validate.
func NewFrequencyCache[K comparable, V any](cfg Config) (*FrequencyCache[K, V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &FrequencyCache[K, V]{
		entries:  make(map[K]*entry[K, V], cfg.Capacity),
		capacity: cfg.Capacity,
		config:   cfg,
		logger:   cfg.Logger,
		clock:    cfg.TimeProvider,
		metrics:  cfg.MetricsCollector,
	}

	c.logger.Info("cache created", "capacity", cfg.Capacity)
	return c, nil
}

// Insert stores value under key and returns key.
//
// A new key gets frequency 0 and the next insertion sequence; if the cache is
// full, one entry is evicted first. An existing key only has its value
// replaced: its frequency and insertion position are kept and nothing is
// evicted.
func (c *FrequencyCache[K, V]) Insert(key K, value V) K {
	start := c.clock.Now()

	var evicted *entry[K, V]

	c.mu.Lock()
	if e, exists := c.entries[key]; exists {
		e.value = value
		c.updates++
	} else {
		if len(c.entries) >= c.capacity {
			evicted = c.evictLocked()
		}
		c.entries[key] = &entry[K, V]{
			key:      key,
			value:    value,
			sequence: c.nextSeq,
		}
		c.nextSeq++
		c.inserts++
	}
	c.mu.Unlock()

	if evicted != nil {
		c.notifyEvicted(evicted)
	}
	c.metrics.RecordSet(c.clock.Now() - start)
	return key
}

// Lookup returns the value stored under key and counts the access.
// The boolean is false when the key is absent; a miss has no side effect on
// the stored entries.
func (c *FrequencyCache[K, V]) Lookup(key K) (V, bool) {
	start := c.clock.Now()

	c.mu.Lock()
	value, found := c.lookupLocked(key)
	c.mu.Unlock()

	c.metrics.RecordGet(c.clock.Now()-start, found)
	return value, found
}

// Remove deletes key and returns the value it held.
// It behaves as a Lookup followed by a delete, so a removal is counted as a
// hit (or a miss when the key is absent).
func (c *FrequencyCache[K, V]) Remove(key K) (V, bool) {
	start := c.clock.Now()

	c.mu.Lock()
	value, found := c.lookupLocked(key)
	if found {
		delete(c.entries, key)
		c.removes++
	}
	c.mu.Unlock()

	c.metrics.RecordDelete(c.clock.Now() - start)
	return value, found
}

// Len returns the current number of entries.
func (c *FrequencyCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Capacity returns the maximum number of entries.
func (c *FrequencyCache[K, V]) Capacity() int {
	return c.capacity
}

// Contains reports whether key is present. Unlike Lookup it does not count
// as an access.
func (c *FrequencyCache[K, V]) Contains(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, exists := c.entries[key]
	return exists
}

// Frequency returns the number of lookups recorded for key, without
// recording another one.
func (c *FrequencyCache[K, V]) Frequency(key K) (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, exists := c.entries[key]
	if !exists {
		return 0, false
	}
	return e.frequency, true
}

// Clear removes all entries. Statistics and the insertion sequence keep
// counting from where they were.
func (c *FrequencyCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*entry[K, V], c.capacity)
}

// Stats returns cache statistics.
func (c *FrequencyCache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Hits:      c.hits,
		Misses:    c.misses,
		Inserts:   c.inserts,
		Updates:   c.updates,
		Removes:   c.removes,
		Evictions: c.evictions,
		Size:      len(c.entries),
		Capacity:  c.capacity,
	}
}

// Rebuild returns a new cache with the same configuration but the given
// capacity, holding this cache's entries in their insertion order and with
// their frequencies. If the new capacity is smaller, entries are evicted by
// the usual rule until they fit, and reported through the new cache's
// OnEvict and metrics. The receiver is not modified.
func (c *FrequencyCache[K, V]) Rebuild(capacity int) (*FrequencyCache[K, V], error) {
	cfg := c.config
	cfg.Capacity = capacity

	next, err := NewFrequencyCache[K, V](cfg)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	ordered := c.orderedLocked()
	c.mu.Unlock()

	var evicted []*entry[K, V]

	next.mu.Lock()
	for _, e := range ordered {
		next.entries[e.key] = &entry[K, V]{
			key:       e.key,
			value:     e.value,
			frequency: e.frequency,
			sequence:  next.nextSeq,
		}
		next.nextSeq++
	}
	for len(next.entries) > next.capacity {
		evicted = append(evicted, next.evictLocked())
	}
	next.mu.Unlock()

	for _, e := range evicted {
		next.notifyEvicted(e)
	}

	c.logger.Info("cache rebuilt",
		"old_capacity", c.capacity,
		"new_capacity", capacity,
		"migrated", len(ordered)-len(evicted),
		"evicted", len(evicted))
	return next, nil
}

// lookupLocked finds key and counts the access. Caller must hold c.mu.
func (c *FrequencyCache[K, V]) lookupLocked(key K) (V, bool) {
	e, exists := c.entries[key]
	if !exists {
		c.misses++
		var zero V
		return zero, false
	}

	e.frequency++
	c.hits++
	return e.value, true
}

// evictLocked removes and returns the entry with the lowest frequency,
// preferring the lowest sequence on ties. Caller must hold c.mu and the
// cache must not be empty.
func (c *FrequencyCache[K, V]) evictLocked() *entry[K, V] {
	var victim *entry[K, V]
	for _, e := range c.entries {
		if victim == nil ||
			e.frequency < victim.frequency ||
			(e.frequency == victim.frequency && e.sequence < victim.sequence) {
			victim = e
		}
	}

	delete(c.entries, victim.key)
	c.evictions++
	return victim
}

// notifyEvicted reports an eviction to metrics, the logger and OnEvict.
// It must be called without holding c.mu.
func (c *FrequencyCache[K, V]) notifyEvicted(e *entry[K, V]) {
	c.metrics.RecordEviction()
	c.logger.Debug("entry evicted",
		"key", e.key,
		"frequency", e.frequency,
		"sequence", e.sequence)

	if c.config.OnEvict == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("eviction callback panicked",
				"error", NewErrPanicRecovered("OnEvict", r))
		}
	}()
	c.config.OnEvict(e.key, e.value)
}
