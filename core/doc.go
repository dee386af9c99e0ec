// SPDX-License-Identifier: MIT

// Package core defines the step-event model shared by every stepwise engine:
// the Event and Kind types, the Sink subscriber interface, the Emitter that
// engines push steps through, the Runner lifecycle guard, the pull-based
// Cursor, and the sentinel error taxonomy.
//
// An engine never renders anything. It performs its algorithm and pushes an
// ordered stream of immutable Events into a Sink; renderers, loggers, metric
// collectors and test recorders are all just Sinks.
//
//	engine ──Emit──▶ Emitter ──▶ Sink (Recorder | Fanout | LogSink | Terminal …)
//
// Run lifecycle (Runner):
//
//	Ready ──Execute──▶ Running ──▶ Completed
//	                           ├──▶ Failed     (error or recovered panic → ErrRunFailed)
//	                           └──▶ Cancelled  (ctx cancelled or Cursor.Stop)
//
// A Runner admits one run at a time; a second Execute while Running returns
// ErrRunInProgress and leaves the active run untouched.
//
// Push vs. pull:
//
//	// push: run to completion, events delivered to a sink
//	rec := &core.Recorder{}
//	err := runner.Execute(ctx, rec, body)
//
//	// pull: one step at a time, consumer decides pacing
//	cur := runner.Steps(ctx, body)
//	defer cur.Stop()
//	for ev, ok := cur.Next(); ok; ev, ok = cur.Next() {
//	    render(ev)
//	    time.Sleep(delay)
//	}
//
// Errors:
//
//	ErrInvalidInput   - non-numeric or out-of-range caller input.
//	ErrFull           - array container has no free slot.
//	ErrOverflow       - stack/queue capacity exceeded.
//	ErrEmpty          - peek on an empty container.
//	ErrUnderflow      - pop/dequeue on an empty container.
//	ErrOutOfRange     - index outside container bounds.
//	ErrSlotOccupied   - explicit insert into an occupied slot.
//	ErrAlreadyEmpty   - removal from an empty slot.
//	ErrNotFound       - key absent on delete (a reported outcome, never fatal).
//	ErrRunInProgress  - re-entrant run rejected.
//	ErrRunFailed      - unexpected failure inside a run.
package core
