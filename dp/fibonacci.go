// SPDX-License-Identifier: MIT

package dp

import (
	"context"
	"fmt"

	"github.com/katalvlaran/stepwise/core"
)

// Engine runs Fibonacci strategies, one at a time.
type Engine struct {
	runner core.Runner
}

// New returns an idle Engine.
func New() *Engine { return &Engine{} }

// State reports the lifecycle state of the last (or active) run.
func (e *Engine) State() core.State { return e.runner.State() }

// Naive computes F(n) by plain double recursion.
func (e *Engine) Naive(ctx context.Context, n int, opts ...Option) (Result, error) {
	return e.run(ctx, Recursive, n, opts)
}

// Tabulate computes F(n) by filling F(0..n) in increasing order.
func (e *Engine) Tabulate(ctx context.Context, n int, opts ...Option) (Result, error) {
	return e.run(ctx, Tabulation, n, opts)
}

// Run dispatches to the given strategy.
func (e *Engine) Run(ctx context.Context, s Strategy, n int, opts ...Option) (Result, error) {
	return e.run(ctx, s, n, opts)
}

// Compare runs Naive then Tabulate on the same sink and checks they agree.
// Disagreement is reported as core.ErrRunFailed.
func (e *Engine) Compare(ctx context.Context, n int, opts ...Option) (Comparison, error) {
	cmp := Comparison{N: n}
	var err error
	if cmp.Naive, err = e.Naive(ctx, n, opts...); err != nil {
		return cmp, err
	}
	if cmp.Tabulated, err = e.Tabulate(ctx, n, opts...); err != nil {
		return cmp, err
	}
	if cmp.Naive.Value != cmp.Tabulated.Value {
		return cmp, fmt.Errorf("dp: fibonacci(%d): recursive %d != tabulated %d: %w",
			n, cmp.Naive.Value, cmp.Tabulated.Value, core.ErrRunFailed)
	}
	cmp.WorkSaved = WorkSaved(n, cmp.Tabulated.Calculations)

	return cmp, nil
}

// Steps returns a Cursor that yields the events of one strategy.
func (e *Engine) Steps(ctx context.Context, s Strategy, n int) *core.Cursor {
	c, err := newCalc(s, n)
	if err != nil {
		return core.NewCursor(func(core.Sink) error { return err })
	}

	return e.runner.Steps(ctx, c.body)
}

// Naive is a convenience wrapper around a fresh Engine.
func Naive(ctx context.Context, n int, opts ...Option) (Result, error) {
	return New().Naive(ctx, n, opts...)
}

// Tabulate is a convenience wrapper around a fresh Engine.
func Tabulate(ctx context.Context, n int, opts ...Option) (Result, error) {
	return New().Tabulate(ctx, n, opts...)
}

// Compare is a convenience wrapper around a fresh Engine.
func Compare(ctx context.Context, n int, opts ...Option) (Comparison, error) {
	return New().Compare(ctx, n, opts...)
}

func (e *Engine) run(ctx context.Context, s Strategy, n int, opts []Option) (Result, error) {
	c, err := newCalc(s, n)
	if err != nil {
		return Result{}, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	err = e.runner.Execute(ctx, o.Sink, c.body)

	return c.res, err
}

type calc struct {
	em  *core.Emitter
	res Result
}

func newCalc(s Strategy, n int) (*calc, error) {
	if s != Recursive && s != Tabulation {
		return nil, fmt.Errorf("dp: run %s: %w", s, core.ErrInvalidInput)
	}
	if err := Validate(n); err != nil {
		return nil, err
	}

	return &calc{res: Result{Strategy: s, N: n}}, nil
}

func (c *calc) body(em *core.Emitter) error {
	c.em = em
	c.res.Calculations = 0
	if c.res.Strategy == Recursive {
		v, err := c.naive(c.res.N, 0)
		c.res.Value = v

		return err
	}

	return c.tabulate()
}

func (c *calc) naive(n, depth int) (int, error) {
	c.res.Calculations++
	c.res.MaxDepth = max(c.res.MaxDepth, depth)
	if err := c.em.Emit(core.Event{
		Kind:    core.RecurseCall,
		Indices: []int{c.res.Calculations},
		Values:  []int{n},
		Depth:   depth,
		Message: fmt.Sprintf("fib(%d) at depth %d", n, depth),
	}); err != nil {
		return 0, err
	}
	if n <= 1 {
		return n, nil
	}
	a, err := c.naive(n-1, depth+1)
	if err != nil {
		return 0, err
	}
	b, err := c.naive(n-2, depth+1)
	if err != nil {
		return 0, err
	}

	return a + b, nil
}

func (c *calc) tabulate() error {
	n := c.res.N
	t := make([]int, n+1)
	c.res.Table = t
	t[1] = 1
	for i := 0; i <= 1 && i <= n; i++ {
		c.res.Calculations++
		if err := c.em.Emit(core.Event{
			Kind:     core.Highlight,
			Indices:  []int{i},
			Result:   t[i],
			Snapshot: t[:i+1],
			Message:  fmt.Sprintf("Base case F(%d)=%d", i, t[i]),
		}); err != nil {
			return err
		}
	}
	for i := 2; i <= n; i++ {
		t[i] = t[i-1] + t[i-2]
		c.res.Calculations++
		if err := c.em.Emit(core.Event{
			Kind:     core.DPCompute,
			Indices:  []int{i, i - 1, i - 2},
			Values:   []int{t[i-1], t[i-2]},
			Result:   t[i],
			Snapshot: t[:i+1],
			Message: fmt.Sprintf("Computed F(%d) = F(%d) + F(%d) = %d + %d = %d",
				i, i-1, i-2, t[i-1], t[i-2], t[i]),
		}); err != nil {
			return err
		}
	}
	c.res.Value = t[n]

	return nil
}
