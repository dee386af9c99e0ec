// SPDX-License-Identifier: MIT

package container

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/stepwise/core"
)

// Default sizes, matching the original demo panels.
const (
	DefaultArrayCapacity = 10
	DefaultStackDepth    = 8
	DefaultQueueCapacity = 10
	DefaultBuckets       = 10
)

// Option configures a container at construction time.
type Option func(*config)

type config struct {
	sink     core.Sink
	capacity int
	buckets  int
}

func newConfig(capacity int, opts ...Option) config {
	c := config{sink: core.Discard, capacity: capacity, buckets: DefaultBuckets}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithSink routes the container's events to s. A nil sink is ignored.
func WithSink(s core.Sink) Option {
	return func(c *config) {
		if s != nil {
			c.sink = s
		}
	}
}

// WithCapacity overrides the slot count (Array), depth (Stack) or logical
// capacity (Queue). Panics if n < 1.
func WithCapacity(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("container: WithCapacity(%d)", n))
	}

	return func(c *config) { c.capacity = n }
}

// WithBuckets overrides the HashTable bucket count. Panics if n < 1.
func WithBuckets(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("container: WithBuckets(%d)", n))
	}

	return func(c *config) { c.buckets = n }
}

// emitter returns a fresh per-operation emitter; Seq restarts at 0 for every
// operation so a failing subscriber never wedges the container.
func (c config) emitter() *core.Emitter {
	return core.NewEmitter(context.Background(), c.sink)
}

// requireName trims s and rejects empty names with core.ErrInvalidInput.
func requireName(method, what, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%s: %s is empty: %w", method, what, core.ErrInvalidInput)
	}

	return s, nil
}
