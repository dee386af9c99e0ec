// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/stepwise/core"
)

// Algorithm selects a sorting strategy.
type Algorithm uint8

// Supported algorithms.
const (
	Bubble Algorithm = iota + 1
	Quick
	Merge
	Selection
)

var algorithmNames = [...]string{
	Bubble:    "bubble",
	Quick:     "quick",
	Merge:     "merge",
	Selection: "selection",
}

// Algorithms lists every supported algorithm.
func Algorithms() []Algorithm { return []Algorithm{Bubble, Quick, Merge, Selection} }

// Valid reports whether a names a supported algorithm.
func (a Algorithm) Valid() bool { return a >= Bubble && a <= Selection }

// String returns the lower-case algorithm name.
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("algorithm(%d)", uint8(a))
	}

	return algorithmNames[a]
}

// Complexity returns the time-complexity label shown next to a run.
func (a Algorithm) Complexity() string {
	switch a {
	case Quick, Merge:
		return "O(n log n)"
	case Bubble, Selection:
		return "O(n²)"
	default:
		return ""
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("sorting: marshal %s: %w", a, core.ErrInvalidInput)
	}

	return []byte(algorithmNames[a]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(b []byte) error {
	v, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = v

	return nil
}

// ParseAlgorithm maps a name ("bubble", "Quick", " merge ") to an Algorithm.
// Returns core.ErrInvalidInput for anything else.
func ParseAlgorithm(s string) (Algorithm, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, a := range Algorithms() {
		if algorithmNames[a] == name {
			return a, nil
		}
	}

	return 0, fmt.Errorf("sorting: unknown algorithm %q: %w", s, core.ErrInvalidInput)
}

// Option configures a sort run.
type Option func(*Options)

// Options holds per-run settings.
type Options struct {
	// Sink receives every step; defaults to core.Discard.
	Sink core.Sink
	// FaultAt makes the run panic right before delivering event FaultAt.
	// Negative disables it. Test hook for the Failed path.
	FaultAt int
}

// DefaultOptions returns Options with a discarding sink and no fault.
func DefaultOptions() Options {
	return Options{Sink: core.Discard, FaultAt: -1}
}

// WithSink routes the run's events to s. A nil sink is ignored.
func WithSink(s core.Sink) Option {
	return func(o *Options) {
		if s != nil {
			o.Sink = s
		}
	}
}

// WithFault injects a panic before the n-th event (0-based) of the run.
// Panics if n < 0.
func WithFault(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("sorting: WithFault(%d)", n))
	}

	return func(o *Options) { o.FaultAt = n }
}

// Result is the outcome of a sort run.
//   - Sorted: the working copy; fully sorted only when State is Completed.
//   - Comparisons, Swaps: counters for this run.
//   - Complexity: the algorithm's label, e.g. "O(n²)".
type Result struct {
	Algorithm   Algorithm  `json:"algorithm"`
	Sorted      []int      `json:"sorted"`
	Comparisons int        `json:"comparisons"`
	Swaps       int        `json:"swaps"`
	State       core.State `json:"state"`
	Complexity  string     `json:"complexity"`
}
