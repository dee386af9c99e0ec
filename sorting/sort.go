// SPDX-License-Identifier: MIT

package sorting

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/stepwise/core"
)

// Sorter runs sorts, one at a time.
type Sorter struct {
	runner core.Runner
}

// New returns an idle Sorter.
func New() *Sorter { return &Sorter{} }

// State reports the lifecycle state of the last (or active) run.
func (s *Sorter) State() core.State { return s.runner.State() }

// Sort orders a private copy of data with algo, pushing every step to the
// configured sink.
//
// Errors:
//   - core.ErrInvalidInput for an unknown algorithm.
//   - core.ErrRunInProgress if the Sorter is busy.
//   - core.ErrRunFailed if the run panicked.
//   - the context or sink error if the run was interrupted; res.Sorted then
//     holds the partially sorted working copy.
func (s *Sorter) Sort(ctx context.Context, algo Algorithm, data []int, opts ...Option) (res Result, err error) {
	if !algo.Valid() {
		return Result{}, fmt.Errorf("sorting: sort with %s: %w", algo, core.ErrInvalidInput)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := newRun(algo, data, o.FaultAt)
	err = s.runner.Execute(ctx, o.Sink, r.body)
	if errors.Is(err, core.ErrRunInProgress) {
		return Result{}, err
	}
	r.res.State = core.StateOf(err)

	return r.res, err
}

// Steps returns a Cursor that yields the same events as Sort, one per Next.
// An unknown algorithm yields no events and the Cursor reports
// core.ErrInvalidInput.
func (s *Sorter) Steps(ctx context.Context, algo Algorithm, data []int, opts ...Option) *core.Cursor {
	if !algo.Valid() {
		return core.NewCursor(func(core.Sink) error {
			return fmt.Errorf("sorting: steps with %s: %w", algo, core.ErrInvalidInput)
		})
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := newRun(algo, data, o.FaultAt)

	return s.runner.Steps(ctx, r.body)
}

// Sort is a convenience wrapper around a fresh Sorter.
func Sort(ctx context.Context, algo Algorithm, data []int, opts ...Option) (Result, error) {
	return New().Sort(ctx, algo, data, opts...)
}

// run carries the working copy and counters of a single sort.
type run struct {
	em      *core.Emitter
	data    []int
	res     Result
	faultAt int
}

func newRun(algo Algorithm, data []int, faultAt int) *run {
	work := append([]int{}, data...)

	return &run{
		data:    work,
		faultAt: faultAt,
		res: Result{
			Algorithm:  algo,
			Sorted:     work,
			Complexity: algo.Complexity(),
		},
	}
}

func (r *run) body(em *core.Emitter) error {
	r.em = em
	r.res.Comparisons, r.res.Swaps = 0, 0

	var err error
	switch r.res.Algorithm {
	case Bubble:
		err = r.bubble()
	case Quick:
		err = r.quick(0, len(r.data)-1)
	case Merge:
		err = r.mergeSort(0, len(r.data)-1)
	case Selection:
		err = r.selection()
	}
	if err != nil {
		return err
	}

	all := make([]int, len(r.data))
	for i := range all {
		all[i] = i
	}

	return r.emit(core.Event{
		Kind:     core.Highlight,
		Indices:  all,
		Snapshot: r.data,
		Message:  fmt.Sprintf("Sorting completed! Final array: %v", r.data),
	})
}

func (r *run) emit(ev core.Event) error {
	if r.faultAt >= 0 && r.em.Emitted() == r.faultAt {
		panic(fmt.Sprintf("sorting: injected fault before event %d", r.faultAt))
	}

	return r.em.Emit(ev)
}

// compare counts one comparison of the values at positions i and j and emits it.
func (r *run) compare(i, j, a, b int, msg string) error {
	r.res.Comparisons++

	return r.emit(core.Event{
		Kind:    core.Compare,
		Indices: []int{i, j},
		Values:  []int{a, b},
		Message: msg,
	})
}

// swap exchanges positions i and j, counts it and emits the new snapshot.
func (r *run) swap(i, j int, msg string) error {
	r.data[i], r.data[j] = r.data[j], r.data[i]
	r.res.Swaps++

	return r.emit(core.Event{
		Kind:     core.Swap,
		Indices:  []int{i, j},
		Values:   []int{r.data[i], r.data[j]},
		Snapshot: r.data,
		Message:  msg,
	})
}
