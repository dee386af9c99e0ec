// SPDX-License-Identifier: MIT
//
// File: runner.go
// Role: run lifecycle guard (Ready → Running → Completed | Failed | Cancelled).
// Concurrency:
//   - State transitions are guarded by a mutex so that a busy Runner rejects a
//     second Execute even when callers share it across goroutines.

package core

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// State is the lifecycle state of a Runner.
type State uint8

// Lifecycle states.
const (
	Ready State = iota
	Running
	Completed
	Failed
	Cancelled
)

var stateNames = [...]string{
	Ready:     "ready",
	Running:   "running",
	Completed: "completed",
	Failed:    "error",
	Cancelled: "cancelled",
}

// String returns the state name.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}

	return fmt.Sprintf("state(%d)", uint8(s))
}

// Terminal reports whether s ends a run.
func (s State) Terminal() bool { return s == Completed || s == Failed || s == Cancelled }

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(b []byte) error {
	for i, name := range stateNames {
		if name == string(b) {
			*s = State(i)
			return nil
		}
	}

	return fmt.Errorf("core: unknown state %q: %w", b, ErrInvalidInput)
}

// Body is the algorithm executed by a Runner. It must return as soon as
// em.Emit fails and must not emit afterwards.
type Body func(em *Emitter) error

// Runner admits one run at a time and records how the last run ended.
// The zero value is Ready.
type Runner struct {
	mu    sync.Mutex
	state State
	err   error
}

// State returns the current lifecycle state.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.state
}

// Err returns the error that ended the last run, or nil.
func (r *Runner) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.err
}

// Busy reports whether a run is active.
func (r *Runner) Busy() bool { return r.State() == Running }

// Execute runs body with an Emitter bound to ctx and sink.
//
// Errors:
//   - ErrRunInProgress if another run is active (the active run is unaffected).
//   - ErrRunFailed wrapping the panic value if body panics.
//   - ctx.Err() if the context is cancelled mid-run.
//   - any error returned by body or by the sink.
func (r *Runner) Execute(ctx context.Context, sink Sink, body Body) (err error) {
	if err = r.begin(); err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrRunFailed, p)
		}
		r.finish(err)
	}()

	return body(NewEmitter(ctx, sink))
}

// Steps returns a Cursor that executes body lazily, one event per Next.
// The run begins on the first Next; a busy Runner yields no events and the
// Cursor's Err reports ErrRunInProgress.
func (r *Runner) Steps(ctx context.Context, body Body) *Cursor {
	return NewCursor(func(sink Sink) error {
		return r.Execute(ctx, sink, body)
	})
}

func (r *Runner) begin() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == Running {
		return ErrRunInProgress
	}
	r.state = Running
	r.err = nil

	return nil
}

func (r *Runner) finish(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
	r.state = StateOf(err)
}

// StateOf classifies the error that ended a run into its terminal state.
func StateOf(err error) State {
	switch {
	case err == nil:
		return Completed
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, ErrStopped):
		return Cancelled
	default:
		return Failed
	}
}
