// SPDX-License-Identifier: MIT

package search

import (
	"context"
	"fmt"

	"github.com/katalvlaran/stepwise/core"
)

// Searcher runs linear searches, one at a time.
type Searcher struct {
	runner core.Runner
}

// New returns an idle Searcher.
func New() *Searcher { return &Searcher{} }

// State reports the lifecycle state of the last (or active) run.
func (s *Searcher) State() core.State { return s.runner.State() }

// Linear scans seq for target and pushes every step to the configured sink.
// Returns core.ErrRunInProgress if the Searcher is busy, or the context/sink
// error if the run was interrupted; res then reflects the steps taken so far.
func (s *Searcher) Linear(ctx context.Context, seq []int, target int, opts ...Option) (res Result, err error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	res = Result{Index: -1}
	err = s.runner.Execute(ctx, o.Sink, func(em *core.Emitter) error {
		return linear(em, seq, target, &res)
	})

	return res, err
}

// Steps returns a Cursor that yields the same events as Linear, one per Next.
func (s *Searcher) Steps(ctx context.Context, seq []int, target int) *core.Cursor {
	data := append([]int(nil), seq...)

	return s.runner.Steps(ctx, func(em *core.Emitter) error {
		var res Result
		return linear(em, data, target, &res)
	})
}

// Linear is a convenience wrapper around a fresh Searcher.
func Linear(ctx context.Context, seq []int, target int, opts ...Option) (Result, error) {
	return New().Linear(ctx, seq, target, opts...)
}

// linear is the algorithm body; res is updated as the scan proceeds so that an
// interrupted run still reports its progress.
func linear(em *core.Emitter, seq []int, target int, res *Result) error {
	for i, v := range seq {
		res.Steps++
		if err := em.Emit(core.Event{
			Kind:    core.Compare,
			Indices: []int{i},
			Values:  []int{v, target},
			Message: fmt.Sprintf("Checking position %d: %d vs target %d", i, v, target),
		}); err != nil {
			return err
		}
		if v == target {
			res.Index, res.Found = i, true

			return em.Emit(core.Event{
				Kind:    core.Found,
				Indices: []int{i},
				Values:  []int{target},
				Result:  res.Steps,
				Message: fmt.Sprintf("Found %d at position %d in %d steps", target, i, res.Steps),
			})
		}
	}

	return em.Emit(core.Event{
		Kind:    core.NotFound,
		Values:  []int{target},
		Result:  res.Steps,
		Message: fmt.Sprintf("%d was not found after checking all %d positions", target, res.Steps),
	})
}
