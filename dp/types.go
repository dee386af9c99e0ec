// SPDX-License-Identifier: MIT

package dp

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/stepwise/core"
)

// Accepted input range.
const (
	MinN = 1
	MaxN = 20
)

// Phi is the golden-ratio approximation used by the work-saved estimate.
const Phi = 1.618

// Strategy selects how Fibonacci is computed.
type Strategy uint8

// Strategies.
const (
	Recursive Strategy = iota + 1
	Tabulation
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case Recursive:
		return "recursive"
	case Tabulation:
		return "tabulation"
	default:
		return fmt.Sprintf("strategy(%d)", uint8(s))
	}
}

// ParseStrategy accepts "recursive"/"naive" and "tabulation"/"dp".
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "recursive", "naive":
		return Recursive, nil
	case "tabulation", "dp":
		return Tabulation, nil
	default:
		return 0, fmt.Errorf("dp: unknown strategy %q: %w", s, core.ErrInvalidInput)
	}
}

// Option configures a run.
type Option func(*Options)

// Options holds per-run settings.
type Options struct {
	// Sink receives every step; defaults to core.Discard.
	Sink core.Sink
}

// DefaultOptions returns Options with a discarding sink.
func DefaultOptions() Options {
	return Options{Sink: core.Discard}
}

// WithSink routes the run's events to s. A nil sink is ignored.
func WithSink(s core.Sink) Option {
	return func(o *Options) {
		if s != nil {
			o.Sink = s
		}
	}
}

// Result is the outcome of one strategy.
type Result struct {
	Strategy     Strategy `json:"strategy"`
	N            int      `json:"n"`
	Value        int      `json:"value"`
	Calculations int      `json:"calculations"`
	// MaxDepth is the deepest recursive frame (Recursive only).
	MaxDepth int `json:"max_depth,omitempty"`
	// Table holds F(0..n) (Tabulation only).
	Table []int `json:"table,omitempty"`
}

// Comparison reports both strategies side by side.
type Comparison struct {
	N         int    `json:"n"`
	Naive     Result `json:"naive"`
	Tabulated Result `json:"tabulated"`
	WorkSaved int    `json:"work_saved"`
}

// Validate reports whether n is an accepted input.
func Validate(n int) error {
	if n < MinN || n > MaxN {
		return fmt.Errorf("dp: fibonacci(%d): n must be in [%d, %d]: %w", n, MinN, MaxN, core.ErrInvalidInput)
	}

	return nil
}

// WorkSaved estimates the percentage of work calcs saves relative to
// φⁿ/√5 calls, clamped at 0.
func WorkSaved(n, calcs int) int {
	naive := math.Pow(Phi, float64(n)) / math.Sqrt(5)
	pct := math.Round((naive - float64(calcs)) / naive * 100)

	return max(0, int(pct))
}
