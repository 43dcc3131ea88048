// collector.go: OpenTelemetry implementation of oblivio.MetricsCollector
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package otel

import (
	"context"
	"errors"

	"github.com/agilira/oblivio"
	"go.opentelemetry.io/otel/metric"
)

// OTelMetricsCollector records cache operations as OpenTelemetry metrics.
// Safe for concurrent use; the underlying instruments are.
type OTelMetricsCollector struct {
	lookupLatency metric.Int64Histogram
	insertLatency metric.Int64Histogram
	removeLatency metric.Int64Histogram
	hits          metric.Int64Counter
	misses        metric.Int64Counter
	evictions     metric.Int64Counter
}

// Options for configuring OTelMetricsCollector.
type Options struct {
	// MeterName is the name of the OpenTelemetry meter.
	// Default: "github.com/agilira/oblivio"
	MeterName string
}

// Option is a functional option for configuring OTelMetricsCollector.
type Option func(*Options)

// WithMeterName sets a custom meter name, e.g. to tell several caches apart.
func WithMeterName(name string) Option {
	return func(o *Options) {
		o.MeterName = name
	}
}

// NewOTelMetricsCollector creates a collector whose instruments are
// registered on a meter from provider. It fails if provider is nil or an
// instrument cannot be created.
func NewOTelMetricsCollector(provider metric.MeterProvider, opts ...Option) (*OTelMetricsCollector, error) {
	if provider == nil {
		return nil, errors.New("meter provider cannot be nil")
	}

	options := Options{
		MeterName: "github.com/agilira/oblivio",
	}
	for _, opt := range opts {
		opt(&options)
	}

	meter := provider.Meter(options.MeterName)
	collector := &OTelMetricsCollector{}

	histograms := []struct {
		target      *metric.Int64Histogram
		name        string
		description string
	}{
		{&collector.lookupLatency, "oblivio_lookup_latency_ns", "Latency of Lookup operations in nanoseconds"},
		{&collector.insertLatency, "oblivio_insert_latency_ns", "Latency of Insert operations in nanoseconds"},
		{&collector.removeLatency, "oblivio_remove_latency_ns", "Latency of Remove operations in nanoseconds"},
	}
	for _, h := range histograms {
		instrument, err := meter.Int64Histogram(h.name,
			metric.WithDescription(h.description),
			metric.WithUnit("ns"),
		)
		if err != nil {
			return nil, err
		}
		*h.target = instrument
	}

	counters := []struct {
		target      *metric.Int64Counter
		name        string
		description string
	}{
		{&collector.hits, "oblivio_lookup_hits_total", "Total number of lookups that found their key"},
		{&collector.misses, "oblivio_lookup_misses_total", "Total number of lookups that missed"},
		{&collector.evictions, "oblivio_evictions_total", "Total number of evictions"},
	}
	for _, c := range counters {
		instrument, err := meter.Int64Counter(c.name, metric.WithDescription(c.description))
		if err != nil {
			return nil, err
		}
		*c.target = instrument
	}

	return collector, nil
}

// RecordGet records a Lookup latency and counts it as a hit or a miss.
func (c *OTelMetricsCollector) RecordGet(latencyNs int64, hit bool) {
	ctx := context.Background()

	c.lookupLatency.Record(ctx, latencyNs)
	if hit {
		c.hits.Add(ctx, 1)
	} else {
		c.misses.Add(ctx, 1)
	}
}

// RecordSet records an Insert latency.
func (c *OTelMetricsCollector) RecordSet(latencyNs int64) {
	c.insertLatency.Record(context.Background(), latencyNs)
}

// RecordDelete records a Remove latency.
func (c *OTelMetricsCollector) RecordDelete(latencyNs int64) {
	c.removeLatency.Record(context.Background(), latencyNs)
}

// RecordEviction counts one eviction.
func (c *OTelMetricsCollector) RecordEviction() {
	c.evictions.Add(context.Background(), 1)
}

// Compile-time interface check
var _ oblivio.MetricsCollector = (*OTelMetricsCollector)(nil)
