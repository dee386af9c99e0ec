// SPDX-License-Identifier: MIT
//
// File: sink.go
// Role: Sink subscriber interface and the stock sinks (Discard, SinkFunc, Recorder, Fanout).

package core

import "sync"

// Sink receives step events in execution order. Returning a non-nil error
// aborts the run that emitted the event; the engine returns that error.
type Sink interface {
	Emit(Event) error
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(Event) error

// Emit calls f(ev).
func (f SinkFunc) Emit(ev Event) error { return f(ev) }

type discard struct{}

func (discard) Emit(Event) error { return nil }

// Discard is a Sink that drops every event.
var Discard Sink = discard{}

// Recorder collects every event it receives. The zero value is ready to use
// and safe for concurrent Emit/Events calls.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Emit appends ev.
func (r *Recorder) Emit(ev Event) error {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()

	return nil
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)

	return out
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.events)
}

// Count returns how many recorded events have kind k.
func (r *Recorder) Count(k Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for i := range r.events {
		if r.events[i].Kind == k {
			n++
		}
	}

	return n
}

// Kinds returns the kinds of the recorded events in order.
func (r *Recorder) Kinds() []Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Kind, len(r.events))
	for i := range r.events {
		out[i] = r.events[i].Kind
	}

	return out
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}

// Fanout delivers each event to every non-nil sink in order and stops at the
// first error.
func Fanout(sinks ...Sink) Sink {
	live := make([]Sink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			live = append(live, s)
		}
	}
	switch len(live) {
	case 0:
		return Discard
	case 1:
		return live[0]
	}

	return SinkFunc(func(ev Event) error {
		for _, s := range live {
			if err := s.Emit(ev); err != nil {
				return err
			}
		}

		return nil
	})
}
