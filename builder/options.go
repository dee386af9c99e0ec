// SPDX-License-Identifier: MIT
// Package: stepwise/builder
//
// options.go: functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs; generators
// themselves return errors.

package builder

import (
	"fmt"
	"math/rand"
)

// Option customizes a generator by mutating its config.
type Option func(*config)

// WithRand provides an explicit RNG for stochastic generators. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithSeed creates a seeded RNG; the same seed yields the same dataset.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRange sets the half-open value range [lo, hi). Panics if hi <= lo.
func WithRange(lo, hi int) Option {
	if hi <= lo {
		panic(fmt.Sprintf("builder: WithRange(%d, %d)", lo, hi))
	}

	return func(c *config) { c.lo, c.hi = lo, hi }
}
