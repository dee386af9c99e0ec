// SPDX-License-Identifier: MIT

package container

import (
	"fmt"
	"slices"
	"unicode/utf16"

	"github.com/katalvlaran/stepwise/core"
)

// Hash returns Σ code(key[i])·(i+1) mod buckets over the UTF-16 code units of
// key, reduced at every step. Bucket assignment is a pure function of key.
// Returns 0 when buckets < 1.
func Hash(key string, buckets int) int {
	if buckets < 1 {
		return 0
	}
	h := 0
	for i, cu := range utf16.Encode([]rune(key)) {
		h = (h + int(cu)*(i+1)) % buckets
	}

	return h
}

// Entry is one key/value pair.
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Bucket is the display view of one bucket index.
type Bucket struct {
	Index   int     `json:"index"`
	Entries []Entry `json:"entries"`
}

// HashTable maps string keys to string values with no duplicate keys.
// Buckets are not physical chains: the bucket view filters the whole mapping
// by Hash, in insertion order.
type HashTable struct {
	cfg     config
	entries map[string]string
	order   []string
}

// NewHashTable returns an empty table (DefaultBuckets unless overridden).
func NewHashTable(opts ...Option) *HashTable {
	return &HashTable{cfg: newConfig(0, opts...), entries: make(map[string]string)}
}

// Insert stores value under key, overwriting silently, and returns the bucket.
// Returns core.ErrInvalidInput if key or value is empty.
func (h *HashTable) Insert(key, value string) (int, error) {
	key, err := requireName("hash: insert", "key", key)
	if err != nil {
		return -1, err
	}
	if value, err = requireName("hash: insert", "value", value); err != nil {
		return -1, err
	}
	if _, ok := h.entries[key]; !ok {
		h.order = append(h.order, key)
	}
	h.entries[key] = value
	b := h.Hash(key)

	return b, h.cfg.emitter().Emit(core.Event{
		Kind:    core.Insert,
		Indices: []int{b},
		Key:     key,
		Message: fmt.Sprintf("Stored '%s: %s' (hash: %d)", key, value, b),
	})
}

// Search reports the value stored under key. Absence is an outcome, not an
// error: found is false and a NotFound event is emitted.
func (h *HashTable) Search(key string) (value string, found bool, err error) {
	if key, err = requireName("hash: search", "key", key); err != nil {
		return "", false, err
	}
	b := h.Hash(key)
	value, found = h.entries[key]
	ev := core.Event{Kind: core.NotFound, Indices: []int{b}, Key: key,
		Message: fmt.Sprintf("'%s' not found (hash: %d)", key, b)}
	if found {
		ev.Kind = core.Found
		ev.Message = fmt.Sprintf("Found '%s': %s (hash: %d)", key, value, b)
	}

	return value, found, h.cfg.emitter().Emit(ev)
}

// Delete removes key and returns its value. An absent key emits NotFound,
// leaves the table untouched and returns core.ErrNotFound.
func (h *HashTable) Delete(key string) (string, error) {
	key, err := requireName("hash: delete", "key", key)
	if err != nil {
		return "", err
	}
	b := h.Hash(key)
	em := h.cfg.emitter()
	value, ok := h.entries[key]
	if !ok {
		if err := em.Emit(core.Event{
			Kind:    core.NotFound,
			Indices: []int{b},
			Key:     key,
			Message: fmt.Sprintf("'%s' not found (hash: %d)", key, b),
		}); err != nil {
			return "", err
		}

		return "", fmt.Errorf("hash: delete %q: %w", key, core.ErrNotFound)
	}
	delete(h.entries, key)
	h.order = slices.DeleteFunc(h.order, func(k string) bool { return k == key })

	return value, em.Emit(core.Event{
		Kind:    core.Delete,
		Indices: []int{b},
		Key:     key,
		Message: fmt.Sprintf("Removed '%s': %s", key, value),
	})
}

// Reset clears the mapping.
func (h *HashTable) Reset() {
	clear(h.entries)
	h.order = h.order[:0]
}

// Hash returns the bucket of key in this table.
func (h *HashTable) Hash(key string) int { return Hash(key, h.cfg.buckets) }

// Len returns the number of stored keys.
func (h *HashTable) Len() int { return len(h.entries) }

// BucketCount returns the number of buckets.
func (h *HashTable) BucketCount() int { return h.cfg.buckets }

// Entries returns all pairs in insertion order.
func (h *HashTable) Entries() []Entry {
	out := make([]Entry, 0, len(h.order))
	for _, k := range h.order {
		out = append(out, Entry{Key: k, Value: h.entries[k]})
	}

	return out
}

// Buckets returns one Bucket per index, each listing the entries whose key
// hashes there, in insertion order.
func (h *HashTable) Buckets() []Bucket {
	out := make([]Bucket, h.cfg.buckets)
	for i := range out {
		out[i].Index = i
	}
	for _, e := range h.Entries() {
		b := h.Hash(e.Key)
		out[b].Entries = append(out[b].Entries, e)
	}

	return out
}
