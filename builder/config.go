// SPDX-License-Identifier: MIT
// Package: stepwise/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng = nil      (stochastic generators refuse to run without one)
//   • lo  = DefaultLo
//   • hi  = DefaultHi

package builder

import "math/rand"

// config aggregates all knobs used by generators. It is passed by value.
type config struct {
	rng *rand.Rand
	lo  int
	hi  int
}

// newConfig applies opts in order over the defaults; last wins.
func newConfig(opts ...Option) config {
	cfg := config{lo: DefaultLo, hi: DefaultHi}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// span returns the number of distinct values in [lo, hi).
func (c config) span() int { return c.hi - c.lo }
