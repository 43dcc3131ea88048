// Package otel provides OpenTelemetry integration for oblivio cache metrics.
//
// OTelMetricsCollector implements oblivio.MetricsCollector. Latencies go to
// Int64Histograms so the backend can compute percentiles; hits, misses and
// evictions go to Int64Counters.
//
// # Usage
//
//	exporter, _ := prometheus.New()
//	provider := metric.NewMeterProvider(metric.WithReader(exporter))
//	defer provider.Shutdown(context.Background())
//
//	collector, err := obliviootel.NewOTelMetricsCollector(provider)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cache, err := oblivio.NewFrequencyCache[string, User](oblivio.Config{
//	    Capacity:         10_000,
//	    MetricsCollector: collector,
//	})
//
// # Metrics Exposed
//
// Histograms:
//   - oblivio_lookup_latency_ns: Lookup() latency in nanoseconds
//   - oblivio_insert_latency_ns: Insert() latency in nanoseconds
//   - oblivio_remove_latency_ns: Remove() latency in nanoseconds
//
// Counters:
//   - oblivio_lookup_hits_total: lookups that found their key
//   - oblivio_lookup_misses_total: lookups that did not
//   - oblivio_evictions_total: entries evicted to make room
//
// Hit ratio over five minutes, in PromQL:
//
//	rate(oblivio_lookup_hits_total[5m]) /
//	(rate(oblivio_lookup_hits_total[5m]) + rate(oblivio_lookup_misses_total[5m]))
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package otel
