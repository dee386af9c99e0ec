// SPDX-License-Identifier: MIT
//
// File: emitter.go
// Role: the single path through which engines publish steps.
// Invariants:
//   - Seq is assigned here, starting at 0 and increasing by one per delivered event.
//   - Slices are copied before delivery; emitted events never alias engine state.
//   - The first failure (cancelled context or sink error) is sticky: later Emit
//     calls return it without touching the sink.

package core

import "context"

// Emitter stamps, copies and delivers events to a Sink, checking the context
// before each delivery.
type Emitter struct {
	ctx  context.Context
	sink Sink
	seq  int
	err  error
}

// NewEmitter returns an Emitter bound to ctx and sink. A nil ctx means
// context.Background(); a nil sink means Discard.
func NewEmitter(ctx context.Context, sink Sink) *Emitter {
	if ctx == nil {
		ctx = context.Background()
	}
	if sink == nil {
		sink = Discard
	}

	return &Emitter{ctx: ctx, sink: sink}
}

// Emit delivers ev. It returns the context error if the run was cancelled or
// the sink's error if the subscriber rejected the event.
func (e *Emitter) Emit(ev Event) error {
	if e.err != nil {
		return e.err
	}
	if err := e.ctx.Err(); err != nil {
		e.err = err
		return err
	}
	ev = ev.clone()
	ev.Seq = e.seq
	if err := e.sink.Emit(ev); err != nil {
		e.err = err
		return err
	}
	e.seq++

	return nil
}

// Emitted returns the number of events delivered so far.
func (e *Emitter) Emitted() int { return e.seq }

// Err returns the sticky failure, if any.
func (e *Emitter) Err() error { return e.err }

// Context returns the context the emitter checks.
func (e *Emitter) Context() context.Context { return e.ctx }
