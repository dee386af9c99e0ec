// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/katalvlaran/stepwise/core"
)

var (
	// ErrTraceNotFound indicates an unknown trace ID.
	ErrTraceNotFound = errors.New("store: trace not found")

	// ErrNoID indicates a trace without an ID was saved.
	ErrNoID = errors.New("store: trace has no id")
)

// Store persists traces by ID.
type Store interface {
	// Save inserts or replaces t.
	Save(ctx context.Context, t *core.Trace) error
	// Load returns the trace with id or ErrTraceNotFound.
	Load(ctx context.Context, id string) (*core.Trace, error)
	// List returns all traces, newest first.
	List(ctx context.Context) ([]*core.Trace, error)
	// Delete removes id. Deleting an unknown id is ErrTraceNotFound.
	Delete(ctx context.Context, id string) error
	// Close releases backend resources.
	Close() error
}

// NotFound wraps ErrTraceNotFound with the offending id.
func NotFound(id string) error {
	return fmt.Errorf("%w: %s", ErrTraceNotFound, id)
}

// Memory is an in-process Store. Traces are deep-copied on the way in and
// out so callers never share state with the store.
type Memory struct {
	mu     sync.RWMutex
	traces map[string]*core.Trace
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{traces: make(map[string]*core.Trace)}
}

// Save implements Store.
func (m *Memory) Save(ctx context.Context, t *core.Trace) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if t == nil || t.ID == "" {
		return ErrNoID
	}
	m.mu.Lock()
	m.traces[t.ID] = clone(t)
	m.mu.Unlock()

	return nil
}

// Load implements Store.
func (m *Memory) Load(ctx context.Context, id string) (*core.Trace, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	t, ok := m.traces[id]
	m.mu.RUnlock()
	if !ok {
		return nil, NotFound(id)
	}

	return clone(t), nil
}

// List implements Store.
func (m *Memory) List(ctx context.Context) ([]*core.Trace, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	out := make([]*core.Trace, 0, len(m.traces))
	for _, t := range m.traces {
		out = append(out, clone(t))
	}
	m.mu.RUnlock()
	SortNewestFirst(out)

	return out, nil
}

// Delete implements Store.
func (m *Memory) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.traces[id]; !ok {
		return NotFound(id)
	}
	delete(m.traces, id)

	return nil
}

// Close implements Store.
func (m *Memory) Close() error { return nil }

// SortNewestFirst orders traces by CreatedAt descending, ties by ID.
func SortNewestFirst(ts []*core.Trace) {
	slices.SortFunc(ts, func(a, b *core.Trace) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}

		return 0
	})
}

func clone(t *core.Trace) *core.Trace {
	c := *t
	c.Events = make([]core.Event, len(t.Events))
	for i, ev := range t.Events {
		ev.Indices = slices.Clone(ev.Indices)
		ev.Values = slices.Clone(ev.Values)
		ev.Snapshot = slices.Clone(ev.Snapshot)
		c.Events[i] = ev
	}
	if t.Params != nil {
		c.Params = make(map[string]any, len(t.Params))
		for k, v := range t.Params {
			c.Params[k] = v
		}
	}
	if t.Summary != nil {
		c.Summary = make(map[string]any, len(t.Summary))
		for k, v := range t.Summary {
			c.Summary[k] = v
		}
	}

	return &c
}
