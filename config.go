// config.go: configuration for oblivio
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package oblivio

import (
	"github.com/agilira/go-timecache"
)

// Config holds configuration parameters for the cache.
type Config struct {
	// Capacity is the maximum number of entries the cache can hold.
	// Must be > 0; there is no implicit default.
	Capacity int

	// Logger is used for debugging and monitoring.
	// If nil, NoOpLogger is used.
	Logger Logger

	// TimeProvider is used to time operations reported to MetricsCollector.
	// If nil, a go-timecache backed clock is used.
	TimeProvider TimeProvider

	// MetricsCollector receives operation latencies, hit/miss results and
	// eviction events. If nil, NoOpMetricsCollector is used.
	MetricsCollector MetricsCollector

	// OnEvict is called for every entry evicted to make room for a new key.
	// It runs after the cache lock is released, so it may call back into the
	// cache. A panic inside OnEvict is recovered and logged.
	OnEvict func(key, value interface{})
}

// Validate checks configuration parameters and applies defaults for the
// pluggable collaborators.
//
// A non-positive Capacity is reported as an OBLIVIO_INVALID_CAPACITY error
// rather than replaced with a default: a cache that silently holds a
// different number of entries than requested is a misconfiguration.
//
// Default values applied:
//   - Logger: NoOpLogger{} if nil
//   - TimeProvider: systemTimeProvider{} if nil
//   - MetricsCollector: NoOpMetricsCollector{} if nil
func (c *Config) Validate() error {
	if c.Capacity <= 0 {
		return NewErrInvalidCapacity(c.Capacity)
	}

	if c.Logger == nil {
		c.Logger = NoOpLogger{}
	}

	if c.TimeProvider == nil {
		c.TimeProvider = &systemTimeProvider{}
	}

	if c.MetricsCollector == nil {
		c.MetricsCollector = NoOpMetricsCollector{}
	}

	return nil
}

// DefaultConfig returns a configuration with DefaultCapacity and no-op collaborators.
func DefaultConfig() Config {
	return Config{
		Capacity:         DefaultCapacity,
		Logger:           NoOpLogger{},
		TimeProvider:     &systemTimeProvider{},
		MetricsCollector: NoOpMetricsCollector{},
	}
}

// systemTimeProvider is the default time provider using go-timecache.
type systemTimeProvider struct{}

func (t *systemTimeProvider) Now() int64 {
	return timecache.CachedTimeNano()
}
