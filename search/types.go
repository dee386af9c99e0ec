// SPDX-License-Identifier: MIT

package search

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/stepwise/core"
)

// Option configures a search run.
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

// Result is the outcome of a linear search.
//   - Index: position of the first match, -1 when absent.
//   - Found: whether the target was found.
//   - Steps: number of comparisons performed.
type Result struct {
	Index int  `json:"index"`
	Found bool `json:"found"`
	Steps int  `json:"steps"`
}

// ParseTarget validates a caller-supplied search target.
// Returns core.ErrInvalidInput for empty or non-numeric text.
func ParseTarget(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("search: target %q is not a number: %w", s, core.ErrInvalidInput)
	}

	return v, nil
}
