// SPDX-License-Identifier: MIT

package container

import (
	"fmt"

	"github.com/katalvlaran/stepwise/core"
)

// Array is a fixed-capacity row of optional named items. An empty string
// marks an empty slot; Len always equals the number of occupied slots.
type Array struct {
	cfg   config
	slots []string
	count int
}

// NewArray returns an empty Array (DefaultArrayCapacity slots unless overridden).
func NewArray(opts ...Option) *Array {
	cfg := newConfig(DefaultArrayCapacity, opts...)

	return &Array{cfg: cfg, slots: make([]string, cfg.capacity)}
}

// Add places item in the first empty slot.
func (a *Array) Add(item string) (int, error) { return a.AddAt(item, -1) }

// AddAt places item at index. An out-of-bounds index (including -1) falls
// back to the first empty slot in ascending order.
//
// Errors:
//   - core.ErrInvalidInput if item is empty.
//   - core.ErrFull if no slot is free.
//   - core.ErrSlotOccupied if index is valid but taken (no mutation).
func (a *Array) AddAt(item string, index int) (int, error) {
	item, err := requireName("array: add", "item", item)
	if err != nil {
		return -1, err
	}
	if index < 0 || index >= len(a.slots) {
		index = a.firstEmpty()
		if index < 0 {
			return -1, fmt.Errorf("array: add %q: %w", item, core.ErrFull)
		}
	} else if a.slots[index] != "" {
		return -1, fmt.Errorf("array: add %q at %d held by %q: %w", item, index, a.slots[index], core.ErrSlotOccupied)
	}

	a.slots[index] = item
	a.count++

	return index, a.cfg.emitter().Emit(core.Event{
		Kind:    core.Insert,
		Indices: []int{index},
		Key:     item,
		Message: fmt.Sprintf("Added '%s' at position %d", item, index),
	})
}

// Remove clears the slot at index and returns the item it held.
//
// Errors:
//   - core.ErrOutOfRange if index is outside [0, Cap).
//   - core.ErrAlreadyEmpty if the slot holds nothing.
func (a *Array) Remove(index int) (string, error) {
	if index < 0 || index >= len(a.slots) {
		return "", fmt.Errorf("array: remove %d (valid 0-%d): %w", index, len(a.slots)-1, core.ErrOutOfRange)
	}
	item := a.slots[index]
	if item == "" {
		return "", fmt.Errorf("array: remove %d: %w", index, core.ErrAlreadyEmpty)
	}
	a.slots[index] = ""
	a.count--

	return item, a.cfg.emitter().Emit(core.Event{
		Kind:    core.Delete,
		Indices: []int{index},
		Key:     item,
		Message: fmt.Sprintf("Removed '%s' from position %d", item, index),
	})
}

// Search visits slots in ascending order, emitting a Highlight per visited
// index, then Found at the first match or NotFound after the last slot.
func (a *Array) Search(item string) (int, bool, error) {
	item, err := requireName("array: search", "item", item)
	if err != nil {
		return -1, false, err
	}
	em := a.cfg.emitter()
	for i, v := range a.slots {
		if err := em.Emit(core.Event{
			Kind:    core.Highlight,
			Indices: []int{i},
			Key:     item,
			Message: fmt.Sprintf("Checking position %d", i),
		}); err != nil {
			return -1, false, err
		}
		if v == item {
			return i, true, em.Emit(core.Event{
				Kind:    core.Found,
				Indices: []int{i},
				Key:     item,
				Message: fmt.Sprintf("Found '%s' at position %d", item, i),
			})
		}
	}

	return -1, false, em.Emit(core.Event{
		Kind:    core.NotFound,
		Key:     item,
		Message: fmt.Sprintf("'%s' not found", item),
	})
}

// Reset empties every slot.
func (a *Array) Reset() {
	clear(a.slots)
	a.count = 0
}

// Slots returns a copy of the slots; empty slots are "".
func (a *Array) Slots() []string { return append([]string(nil), a.slots...) }

// Len returns the number of occupied slots.
func (a *Array) Len() int { return a.count }

// Cap returns the number of slots.
func (a *Array) Cap() int { return len(a.slots) }

// Status summarises occupancy, e.g. "3/10 positions filled".
func (a *Array) Status() string {
	return fmt.Sprintf("%d/%d positions filled", a.count, len(a.slots))
}

func (a *Array) firstEmpty() int {
	for i, v := range a.slots {
		if v == "" {
			return i
		}
	}

	return -1
}
