// debug.go: ordered snapshots of cache contents for diagnostics and tests
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package oblivio

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Entry is a point-in-time copy of one cached entry.
type Entry[K comparable, V any] struct {
	Key       K
	Value     V
	Frequency uint64
}

// Entries returns a copy of every entry in insertion order.
func (c *FrequencyCache[K, V]) Entries() []Entry[K, V] {
	c.mu.Lock()
	ordered := c.orderedLocked()
	c.mu.Unlock()

	out := make([]Entry[K, V], len(ordered))
	for i, e := range ordered {
		out[i] = Entry[K, V]{
			Key:       e.key,
			Value:     e.value,
			Frequency: e.frequency,
		}
	}
	return out
}

// String renders the cache as {key=value=frequency, ...} in insertion order.
func (c *FrequencyCache[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range c.Entries() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v=%v=%d", e.Key, e.Value, e.Frequency)
	}
	b.WriteByte('}')
	return b.String()
}

// orderedLocked returns copies of the entries sorted by sequence.
// Caller must hold c.mu.
func (c *FrequencyCache[K, V]) orderedLocked() []entry[K, V] {
	ordered := make([]entry[K, V], 0, len(c.entries))
	for _, e := range c.entries {
		ordered = append(ordered, *e)
	}
	slices.SortFunc(ordered, func(a, b entry[K, V]) int {
		return cmp.Compare(a.sequence, b.sequence)
	})
	return ordered
}
