// Package oblivio provides a bounded, thread-safe, in-memory cache that
// forgets the least frequently accessed entry when it runs out of room.
//
// # Overview
//
// A FrequencyCache holds at most Capacity entries. Each entry counts how
// many times it has been found by Lookup. When a new key arrives and the
// cache is full, the entry with the lowest count is evicted; if several
// share that count, the one inserted first goes.
//
//   - Insert of a new key starts it at frequency 0.
//   - Insert of an existing key replaces the value only: the frequency and
//     the position in insertion order are kept, and nothing is evicted.
//   - Lookup increments the frequency of the entry it finds.
//   - Remove is a Lookup followed by a delete.
//
// # Quick Start
//
//	cache, err := oblivio.New[string, User](10_000)
//	if err != nil {
//	    log.Fatal(err) // capacity <= 0
//	}
//
//	cache.Insert("user:123", User{ID: 123, Name: "Alice"})
//
//	if user, found := cache.Lookup("user:123"); found {
//	    fmt.Printf("User: %s\n", user.Name)
//	}
//
// # Configuration
//
// NewFrequencyCache takes a Config. Capacity is mandatory; a non-positive
// value is rejected with an OBLIVIO_INVALID_CAPACITY error. Logger,
// TimeProvider and MetricsCollector default to no-op or cached-clock
// implementations. OnEvict receives every evicted key and value:
//
//	cache, err := oblivio.NewFrequencyCache[string, []byte](oblivio.Config{
//	    Capacity: 512,
//	    OnEvict: func(key, value interface{}) {
//	        log.Printf("evicted %v", key)
//	    },
//	})
//
// The capacity of a running cache never changes. Rebuild produces a new
// cache at another capacity with the same contents, and HotConfig does this
// automatically when a watched configuration file changes.
//
// # Concurrency
//
// All methods are safe for concurrent use. Every operation takes the same
// mutex for its whole duration, Len and Lookup included, so concurrent
// callers observe a single linear history. The eviction scan is O(n) in the
// number of entries.
//
// # Diagnostics
//
// Entries returns the contents in insertion order with their frequencies,
// and String renders them as {key=value=frequency, ...}. Stats reports
// hit, miss, insert, update, remove and eviction counts. The otel
// sub-package exports the same events as OpenTelemetry metrics.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package oblivio
