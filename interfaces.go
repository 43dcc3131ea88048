// interfaces.go: public interfaces for oblivio
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package oblivio

// Stats provides statistics about cache activity.
type Stats struct {
	// Hits is the number of lookups (including those made by Remove) that found their key
	Hits uint64

	// Misses is the number of lookups that did not find their key
	Misses uint64

	// Inserts is the number of new keys added
	Inserts uint64

	// Updates is the number of value replacements on existing keys
	Updates uint64

	// Removes is the number of entries deleted by Remove
	Removes uint64

	// Evictions is the number of entries dropped to make room for new keys
	Evictions uint64

	// Size is the current number of entries in the cache
	Size int

	// Capacity is the maximum number of entries the cache can hold
	Capacity int
}

// HitRatio returns the cache hit ratio as a percentage (0-100).
// Returns 0.0 if no lookups have been performed yet.
func (s Stats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// Logger defines a minimal structured logging interface.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keyvals ...interface{})

	// Info logs an info message with optional key-value pairs.
	Info(msg string, keyvals ...interface{})

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keyvals ...interface{})

	// Error logs an error message with optional key-value pairs.
	Error(msg string, keyvals ...interface{})
}

// NoOpLogger is a logger that does nothing. Used as default to avoid nil checks.
type NoOpLogger struct{}

// Debug does nothing (no-op implementation).
func (NoOpLogger) Debug(msg string, keyvals ...interface{}) {}

// Info does nothing (no-op implementation).
func (NoOpLogger) Info(msg string, keyvals ...interface{}) {}

// Warn does nothing (no-op implementation).
func (NoOpLogger) Warn(msg string, keyvals ...interface{}) {}

// Error does nothing (no-op implementation).
func (NoOpLogger) Error(msg string, keyvals ...interface{}) {}

// TimeProvider provides the current time used to measure operation latency.
type TimeProvider interface {
	// Now returns the current time in nanoseconds since epoch.
	Now() int64
}

// MetricsCollector receives per-operation measurements from the cache.
// Implementations can forward them to Prometheus, OpenTelemetry or any
// other monitoring system.
//
// Methods are called after the cache lock has been released, from whichever
// goroutine performed the operation, so they must be safe for concurrent use.
type MetricsCollector interface {
	// RecordGet records a Lookup with its latency and hit/miss result.
	RecordGet(latencyNs int64, hit bool)

	// RecordSet records an Insert with its latency.
	RecordSet(latencyNs int64)

	// RecordDelete records a Remove with its latency.
	RecordDelete(latencyNs int64)

	// RecordEviction records one evicted entry.
	RecordEviction()
}

// NoOpMetricsCollector is a metrics collector that does nothing.
type NoOpMetricsCollector struct{}

// RecordGet does nothing.
func (NoOpMetricsCollector) RecordGet(latencyNs int64, hit bool) {}

// RecordSet does nothing.
func (NoOpMetricsCollector) RecordSet(latencyNs int64) {}

// RecordDelete does nothing.
func (NoOpMetricsCollector) RecordDelete(latencyNs int64) {}

// RecordEviction does nothing.
func (NoOpMetricsCollector) RecordEviction() {}
