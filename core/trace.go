// SPDX-License-Identifier: MIT
//
// File: trace.go
// Role: Trace, the transportable record of one run, and its stable text form.

package core

import (
	"bytes"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Trace is the persisted form of a run: what ran, with which parameters, the
// ordered events it produced and how it ended.
type Trace struct {
	ID        string         `json:"id"`
	Engine    string         `json:"engine"`
	Params    map[string]any `json:"params,omitempty"`
	Events    []Event        `json:"events"`
	State     State          `json:"state"`
	Error     string         `json:"error,omitempty"`
	ErrorKind string         `json:"error_kind,omitempty"`
	Summary   map[string]any `json:"summary,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// NewTrace returns a Ready trace with a fresh random ID.
func NewTrace(engine string, params map[string]any) *Trace {
	return &Trace{
		ID:        uuid.NewString(),
		Engine:    engine,
		Params:    params,
		State:     Ready,
		CreatedAt: time.Now().UTC(),
	}
}

// Finish records the events and the terminal outcome of the run.
func (t *Trace) Finish(events []Event, err error) {
	t.Events = events
	t.State = StateOf(err)
	if err != nil {
		t.Error = err.Error()
		t.ErrorKind = ErrorKind(err)
	}
}

// Count returns how many events of kind k the trace holds.
func (t *Trace) Count(k Kind) int {
	n := 0
	for i := range t.Events {
		if t.Events[i].Kind == k {
			n++
		}
	}

	return n
}

// FormatEvents renders events one per line in a stable, diff-friendly form:
//
//	003 swap idx=[0 1] vals=[1 3] snap=[1 3 2] | Swapped 3 and 1
//
// Only populated fields are printed.
func FormatEvents(events []Event) []byte {
	var b bytes.Buffer
	for _, ev := range events {
		fmt.Fprintf(&b, "%03d %s", ev.Seq, ev.Kind)
		if len(ev.Indices) > 0 {
			fmt.Fprintf(&b, " idx=%v", ev.Indices)
		}
		if ev.Key != "" {
			fmt.Fprintf(&b, " key=%s", ev.Key)
		}
		if len(ev.Values) > 0 {
			fmt.Fprintf(&b, " vals=%v", ev.Values)
		}
		if len(ev.Snapshot) > 0 {
			fmt.Fprintf(&b, " snap=%v", ev.Snapshot)
		}
		if ev.Depth != 0 {
			fmt.Fprintf(&b, " depth=%d", ev.Depth)
		}
		if ev.Result != 0 {
			fmt.Fprintf(&b, " result=%d", ev.Result)
		}
		if ev.Message != "" {
			fmt.Fprintf(&b, " | %s", ev.Message)
		}
		b.WriteByte('\n')
	}

	return b.Bytes()
}
