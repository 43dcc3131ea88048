// hot-reload.go: capacity reconfiguration with Argus integration
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package oblivio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/agilira/argus"
)

// HotConfig watches a configuration file and rebuilds the cache when its
// capacity changes.
//
// A cache's capacity is fixed for its lifetime, so a reload builds a new
// cache with Rebuild and swaps it in atomically. Callers must fetch the live
// instance through Cache() rather than keep their own reference. Writes made
// to the previous instance while a reload is copying it may not carry over.
type HotConfig[K comparable, V any] struct {
	current atomic.Pointer[FrequencyCache[K, V]]
	watcher *argus.Watcher
	logger  Logger

	// reloadMu serializes reloads so two file events cannot both rebuild
	// from the same instance.
	reloadMu sync.Mutex

	// OnReload is called after a new cache has been swapped in.
	// This callback is optional and must be fast and non-blocking.
	OnReload func(oldConfig, newConfig Config)
}

// HotConfigOptions configures hot reload behavior.
type HotConfigOptions struct {
	// ConfigPath is the path to the configuration file to watch.
	// Supports JSON, YAML, TOML, HCL, INI, Properties formats.
	ConfigPath string

	// PollInterval is how often to check for configuration changes.
	// Default: 1 second. Minimum: 100ms.
	PollInterval time.Duration

	// OnReload is called after configuration is successfully reloaded.
	OnReload func(oldConfig, newConfig Config)

	// Logger for hot reload operations.
	// If nil, uses the cache's logger.
	Logger Logger
}

// NewHotConfig creates a hot-reloadable holder for cache and prepares a
// watcher on opts.ConfigPath. Call Start to begin watching.
//
// Example configuration file (YAML):
//
//	cache:
//	  capacity: 10000
//
// A top-level "capacity" key is accepted as well.
func NewHotConfig[K comparable, V any](cache *FrequencyCache[K, V], opts HotConfigOptions) (*HotConfig[K, V], error) {
	if cache == nil {
		return nil, NewErrInvalidConfig("cache is required")
	}
	if opts.ConfigPath == "" {
		return nil, NewErrInvalidConfig("config_path is required")
	}

	if opts.PollInterval == 0 {
		opts.PollInterval = 1 * time.Second
	} else if opts.PollInterval < 100*time.Millisecond {
		opts.PollInterval = 100 * time.Millisecond
	}

	if opts.Logger == nil {
		opts.Logger = cache.logger
	}

	hc := &HotConfig[K, V]{
		logger:   opts.Logger,
		OnReload: opts.OnReload,
	}
	hc.current.Store(cache)

	argusConfig := argus.Config{
		PollInterval: opts.PollInterval,
	}

	watcher, err := argus.UniversalConfigWatcherWithConfig(opts.ConfigPath, hc.handleConfigChange, argusConfig)
	if err != nil {
		return nil, NewErrWatcherFailed(opts.ConfigPath, err)
	}
	hc.watcher = watcher

	return hc, nil
}

// Start begins watching the configuration file for changes.
func (hc *HotConfig[K, V]) Start() error {
	if hc.watcher.IsRunning() {
		return nil
	}
	return hc.watcher.Start()
}

// Stop stops watching the configuration file.
func (hc *HotConfig[K, V]) Stop() error {
	return hc.watcher.Stop()
}

// Cache returns the live cache instance.
func (hc *HotConfig[K, V]) Cache() *FrequencyCache[K, V] {
	return hc.current.Load()
}

// GetConfig returns the configuration of the live cache.
func (hc *HotConfig[K, V]) GetConfig() Config {
	return hc.current.Load().config
}

// handleConfigChange is called by Argus when configuration changes.
func (hc *HotConfig[K, V]) handleConfigChange(configData map[string]interface{}) {
	capacity, ok := parseCapacity(configData)
	if !ok {
		return
	}

	hc.reloadMu.Lock()
	old := hc.current.Load()
	if capacity == old.Capacity() {
		hc.reloadMu.Unlock()
		return
	}

	next, err := old.Rebuild(capacity)
	if err != nil {
		hc.reloadMu.Unlock()
		hc.logger.Warn("capacity reload rejected", "capacity", capacity, "error", err)
		return
	}
	hc.current.Store(next)
	hc.reloadMu.Unlock()

	hc.logger.Info("capacity reloaded", "old_capacity", old.Capacity(), "new_capacity", capacity)

	if hc.OnReload != nil {
		hc.OnReload(old.config, next.config)
	}
}

// parseCapacity finds the capacity setting, either under a "cache" section
// or at the top level. YAML and JSON decoders disagree on numeric types, so
// every integer-valued representation is accepted.
func parseCapacity(data map[string]interface{}) (int, bool) {
	section, ok := data["cache"].(map[string]interface{})
	if !ok {
		section = data
	}

	switch v := section["capacity"].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v != float64(int(v)) {
			return 0, false
		}
		return int(v), true
	}
	return 0, false
}
