// SPDX-License-Identifier: MIT

package recursion

import (
	"fmt"

	"github.com/katalvlaran/stepwise/core"
)

// Accepted input range for Factorial.
const (
	MinN = 1
	MaxN = 10
)

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

// CallNode is one frame of the call tree. A parent owns its children; Result
// is set once, when the frame returns.
type CallNode struct {
	N        int         `json:"n"`
	Depth    int         `json:"depth"`
	Index    int         `json:"index"`
	Result   int         `json:"result"`
	Returned bool        `json:"returned"`
	Children []*CallNode `json:"children,omitempty"`
}

// resolve records the frame's return value. Later calls are ignored.
func (c *CallNode) resolve(v int) {
	if c.Returned {
		return
	}
	c.Result, c.Returned = v, true
}

// Walk visits the tree in pre-order. Returning false from fn prunes the subtree.
func (c *CallNode) Walk(fn func(*CallNode) bool) {
	if c == nil || !fn(c) {
		return
	}
	for _, ch := range c.Children {
		ch.Walk(fn)
	}
}

// String renders the frame like "factorial(3) = 6".
func (c *CallNode) String() string {
	if !c.Returned {
		return fmt.Sprintf("factorial(%d)", c.N)
	}

	return fmt.Sprintf("factorial(%d) = %d", c.N, c.Result)
}

// Result is the outcome of a factorial run.
//   - Value: n!, valid only when the run completed.
//   - Calls: frames entered; equals n for a completed run.
//   - MaxDepth: deepest frame reached.
//   - Root: the call tree, possibly partial after an interrupted run.
type Result struct {
	N        int       `json:"n"`
	Value    int       `json:"value"`
	Calls    int       `json:"calls"`
	MaxDepth int       `json:"max_depth"`
	Root     *CallNode `json:"root,omitempty"`
}

// Validate reports whether n is an accepted input.
func Validate(n int) error {
	if n < MinN || n > MaxN {
		return fmt.Errorf("recursion: factorial(%d): n must be in [%d, %d]: %w", n, MinN, MaxN, core.ErrInvalidInput)
	}

	return nil
}
