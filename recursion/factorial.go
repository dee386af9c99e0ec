// SPDX-License-Identifier: MIT

package recursion

import (
	"context"
	"fmt"

	"github.com/katalvlaran/stepwise/core"
)

// Engine runs traced factorials, one at a time.
type Engine struct {
	runner core.Runner
}

// New returns an idle Engine.
func New() *Engine { return &Engine{} }

// State reports the lifecycle state of the last (or active) run.
func (e *Engine) State() core.State { return e.runner.State() }

// Factorial computes n! recursively, tracing every call and return.
//
// Errors:
//   - core.ErrInvalidInput if n is outside [MinN, MaxN].
//   - core.ErrRunInProgress if the Engine is busy.
//   - the context or sink error if the run was interrupted.
func (e *Engine) Factorial(ctx context.Context, n int, opts ...Option) (Result, error) {
	if err := Validate(n); err != nil {
		return Result{}, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	t := &tracer{res: Result{N: n}}
	err := e.runner.Execute(ctx, o.Sink, t.body)

	return t.res, err
}

// Steps returns a Cursor that yields the same events as Factorial.
func (e *Engine) Steps(ctx context.Context, n int) *core.Cursor {
	if err := Validate(n); err != nil {
		return core.NewCursor(func(core.Sink) error { return err })
	}
	t := &tracer{res: Result{N: n}}

	return e.runner.Steps(ctx, t.body)
}

// Factorial is a convenience wrapper around a fresh Engine.
func Factorial(ctx context.Context, n int, opts ...Option) (Result, error) {
	return New().Factorial(ctx, n, opts...)
}

type tracer struct {
	em  *core.Emitter
	res Result
}

func (t *tracer) body(em *core.Emitter) error {
	t.em = em
	t.res.Root = &CallNode{N: t.res.N}
	v, err := t.call(t.res.Root)
	if err != nil {
		return err
	}
	t.res.Value = v

	return nil
}

// call enters frame c, recursing on n-1 above the base case.
func (t *tracer) call(c *CallNode) (int, error) {
	t.res.Calls++
	c.Index = t.res.Calls
	t.res.MaxDepth = max(t.res.MaxDepth, c.Depth)
	if err := t.em.Emit(core.Event{
		Kind:    core.RecurseCall,
		Indices: []int{c.Index},
		Values:  []int{c.N},
		Depth:   c.Depth,
		Message: fmt.Sprintf("Call %d: factorial(%d) at depth %d", c.Index, c.N, c.Depth),
	}); err != nil {
		return 0, err
	}

	if c.N <= 1 {
		c.resolve(1)

		return 1, t.em.Emit(core.Event{
			Kind:    core.RecurseReturn,
			Indices: []int{c.Index},
			Values:  []int{c.N},
			Depth:   c.Depth,
			Result:  1,
			Message: fmt.Sprintf("Base case: factorial(%d) = 1", c.N),
		})
	}

	child := &CallNode{N: c.N - 1, Depth: c.Depth + 1}
	c.Children = append(c.Children, child)
	sub, err := t.call(child)
	if err != nil {
		return 0, err
	}
	v := c.N * sub
	c.resolve(v)

	return v, t.em.Emit(core.Event{
		Kind:    core.RecurseReturn,
		Indices: []int{c.Index},
		Values:  []int{c.N},
		Depth:   c.Depth,
		Result:  v,
		Message: fmt.Sprintf("Calculated: factorial(%d) = %d × %d = %d", c.N, c.N, sub, v),
	})
}
