// SPDX-License-Identifier: MIT
//
// File: cursor.go
// Role: pull-based, non-restartable step sequences built on iter.Pull.

package core

import (
	"errors"
	"iter"
)

// RunFunc executes an engine, delivering its events to sink.
type RunFunc func(sink Sink) error

// Cursor yields the events of one run, one at a time. The run is suspended
// between calls to Next, so the consumer controls pacing. A Cursor is finite
// and cannot be restarted once exhausted or stopped.
//
// A Cursor is not safe for concurrent use.
type Cursor struct {
	next func() (Event, bool)
	stop func()
	err  error
	done bool
}

// NewCursor wraps run into a Cursor. run does not start until the first Next.
func NewCursor(run RunFunc) *Cursor {
	c := &Cursor{}
	seq := func(yield func(Event) bool) {
		c.err = run(SinkFunc(func(ev Event) error {
			if !yield(ev) {
				return ErrStopped
			}

			return nil
		}))
	}
	c.next, c.stop = iter.Pull(seq)

	return c
}

// Next resumes the run until it emits its next event. ok is false once the
// run has finished or the cursor was stopped.
func (c *Cursor) Next() (ev Event, ok bool) {
	if c.done {
		return Event{}, false
	}
	ev, ok = c.next()
	if !ok {
		c.done = true
	}

	return ev, ok
}

// Stop halts the run. No further events are produced; the engine's working
// state is left as it was after the last delivered event. Stop is idempotent.
func (c *Cursor) Stop() {
	c.done = true
	c.stop()
}

// Done reports whether the cursor is exhausted or stopped.
func (c *Cursor) Done() bool { return c.done }

// Err returns the error that ended the run. Stopping the cursor is not an error.
func (c *Cursor) Err() error {
	if errors.Is(c.err, ErrStopped) {
		return nil
	}

	return c.err
}

// Drain pulls every remaining event into a slice and returns Err.
func (c *Cursor) Drain() ([]Event, error) {
	var out []Event
	for ev, ok := c.Next(); ok; ev, ok = c.Next() {
		out = append(out, ev)
	}

	return out, c.Err()
}

// Seq adapts run to a range-over-func sequence. Breaking out of the loop
// stops the run; run errors are discarded, use a Cursor when they matter.
func Seq(run RunFunc) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		_ = run(SinkFunc(func(ev Event) error {
			if !yield(ev) {
				return ErrStopped
			}

			return nil
		}))
	}
}
