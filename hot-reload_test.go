// hot-reload_test.go: tests for capacity hot reload
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package oblivio

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
}

func newTestHotConfig(t *testing.T, cache *FrequencyCache[string, int], opts HotConfigOptions) *HotConfig[string, int] {
	t.Helper()

	if opts.ConfigPath == "" {
		opts.ConfigPath = filepath.Join(t.TempDir(), "cache.yaml")
		writeConfig(t, opts.ConfigPath, "cache:\n  capacity: 3\n")
	}
	if opts.PollInterval == 0 {
		opts.PollInterval = 100 * time.Millisecond
	}

	hc, err := NewHotConfig(cache, opts)
	if err != nil {
		t.Fatalf("NewHotConfig failed: %v", err)
	}
	t.Cleanup(func() { _ = hc.Stop() })
	return hc
}

func TestNewHotConfig(t *testing.T) {
	cache := newTestCache[string, int](t, 3)
	hc := newTestHotConfig(t, cache, HotConfigOptions{})

	if hc.Cache() != cache {
		t.Error("HotConfig should start with the given cache")
	}
	if hc.watcher == nil {
		t.Error("Expected non-nil watcher")
	}
	if hc.GetConfig().Capacity != 3 {
		t.Errorf("Expected capacity 3, got %d", hc.GetConfig().Capacity)
	}
}

func TestNewHotConfig_InvalidOptions(t *testing.T) {
	cache := newTestCache[string, int](t, 3)

	if _, err := NewHotConfig(cache, HotConfigOptions{}); !IsConfigError(err) {
		t.Errorf("Expected config error for empty path, got %v", err)
	}
	if _, err := NewHotConfig[string, int](nil, HotConfigOptions{ConfigPath: "cache.yaml"}); !IsConfigError(err) {
		t.Errorf("Expected config error for nil cache, got %v", err)
	}
}

func TestHotConfig_HandleConfigChange(t *testing.T) {
	cache := newTestCache[string, int](t, 3)
	cache.Insert("a", 1)
	cache.Insert("b", 2)
	cache.Insert("c", 3)
	cache.Lookup("a")
	cache.Lookup("c")

	var reloads []Config
	hc := newTestHotConfig(t, cache, HotConfigOptions{
		OnReload: func(oldConfig, newConfig Config) {
			reloads = append(reloads, oldConfig, newConfig)
		},
	})

	hc.handleConfigChange(map[string]interface{}{
		"cache": map[string]interface{}{"capacity": 2},
	})

	live := hc.Cache()
	if live == cache {
		t.Fatal("Expected a rebuilt cache to be swapped in")
	}
	if live.Capacity() != 2 {
		t.Errorf("Expected capacity 2, got %d", live.Capacity())
	}
	if live.Contains("b") || !live.Contains("a") || !live.Contains("c") {
		t.Errorf("Expected b evicted on shrink, got %s", live)
	}
	if len(reloads) != 2 || reloads[0].Capacity != 3 || reloads[1].Capacity != 2 {
		t.Errorf("Unexpected OnReload calls: %+v", reloads)
	}
}

func TestHotConfig_HandleConfigChange_Ignored(t *testing.T) {
	tests := []struct {
		name string
		data map[string]interface{}
	}{
		{name: "same capacity", data: map[string]interface{}{"capacity": 3}},
		{name: "no capacity key", data: map[string]interface{}{"cache": map[string]interface{}{"other": 1}}},
		{name: "non numeric", data: map[string]interface{}{"capacity": "ten"}},
		{name: "fractional", data: map[string]interface{}{"capacity": 2.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := newTestCache[string, int](t, 3)
			hc := newTestHotConfig(t, cache, HotConfigOptions{})

			hc.handleConfigChange(tt.data)

			if hc.Cache() != cache {
				t.Error("Cache should not have been replaced")
			}
		})
	}
}

func TestHotConfig_HandleConfigChange_InvalidCapacity(t *testing.T) {
	logger := &recordingLogger{}
	cache := newTestCache[string, int](t, 3)
	hc := newTestHotConfig(t, cache, HotConfigOptions{Logger: logger})

	hc.handleConfigChange(map[string]interface{}{"capacity": float64(0)})

	if hc.Cache() != cache {
		t.Error("Invalid capacity must keep the current cache")
	}
	warnings := logger.byLevel("WARN")
	if len(warnings) != 1 {
		t.Fatalf("Expected 1 warning, got %d", len(warnings))
	}
	if err, _ := warnings[0].field("error").(error); !IsConfigError(err) {
		t.Errorf("Expected config error in warning, got %v", warnings[0].field("error"))
	}
}

func TestParseCapacity(t *testing.T) {
	tests := []struct {
		name   string
		data   map[string]interface{}
		want   int
		wantOK bool
	}{
		{"nested int", map[string]interface{}{"cache": map[string]interface{}{"capacity": 10}}, 10, true},
		{"nested float", map[string]interface{}{"cache": map[string]interface{}{"capacity": float64(10)}}, 10, true},
		{"top level int64", map[string]interface{}{"capacity": int64(7)}, 7, true},
		{"negative passes through", map[string]interface{}{"capacity": -1}, -1, true},
		{"fraction rejected", map[string]interface{}{"capacity": 1.5}, 0, false},
		{"missing", map[string]interface{}{}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseCapacity(tt.data)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("parseCapacity() = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

// TestHotConfig_FileReload exercises the Argus watcher end to end.
func TestHotConfig_FileReload(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping file watcher test in short mode")
	}

	configPath := filepath.Join(t.TempDir(), "cache.yaml")
	writeConfig(t, configPath, "cache:\n  capacity: 3\n")

	cache := newTestCache[string, int](t, 3)
	cache.Insert("kept", 1)

	var mu sync.Mutex
	var newCapacity int
	hc := newTestHotConfig(t, cache, HotConfigOptions{
		ConfigPath:   configPath,
		PollInterval: 100 * time.Millisecond,
		OnReload: func(oldConfig, newConfig Config) {
			mu.Lock()
			newCapacity = newConfig.Capacity
			mu.Unlock()
		},
	})

	if err := hc.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := hc.Start(); err != nil {
		t.Errorf("Second Start should be a no-op, got %v", err)
	}

	// Make sure the modification time moves forward.
	time.Sleep(200 * time.Millisecond)
	writeConfig(t, configPath, "cache:\n  capacity: 8\n")

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if hc.Cache().Capacity() == 8 {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}

	if got := hc.Cache().Capacity(); got != 8 {
		t.Fatalf("Expected capacity 8 after reload, got %d", got)
	}
	if !hc.Cache().Contains("kept") {
		t.Error("Expected entries to carry over into the rebuilt cache")
	}
	mu.Lock()
	defer mu.Unlock()
	if newCapacity != 8 {
		t.Errorf("Expected OnReload with capacity 8, got %d", newCapacity)
	}
}
