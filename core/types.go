// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Event and Kind declarations plus the sentinel error taxonomy.
// Policy:
//   - Events are values; slices are copied by the Emitter before delivery.
//   - Kind names are the stable wire form (MarshalText/UnmarshalText).

package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared by all engines. Engines wrap them with context via %w;
// callers branch with errors.Is.
var (
	// ErrInvalidInput indicates non-numeric or out-of-range input.
	ErrInvalidInput = errors.New("core: invalid input")

	// ErrFull indicates an array container has no free slot.
	ErrFull = errors.New("core: container full")

	// ErrOverflow indicates a bounded stack or queue is at capacity.
	ErrOverflow = errors.New("core: capacity exceeded")

	// ErrEmpty indicates a peek on an empty container.
	ErrEmpty = errors.New("core: container empty")

	// ErrUnderflow indicates a pop or dequeue on an empty container.
	ErrUnderflow = errors.New("core: container underflow")

	// ErrOutOfRange indicates an index outside container bounds.
	ErrOutOfRange = errors.New("core: index out of range")

	// ErrSlotOccupied indicates an explicit insert into an occupied slot.
	ErrSlotOccupied = errors.New("core: slot occupied")

	// ErrAlreadyEmpty indicates removal from a slot that holds nothing.
	ErrAlreadyEmpty = errors.New("core: slot already empty")

	// ErrNotFound indicates an absent key. It is reported, never fatal.
	ErrNotFound = errors.New("core: not found")

	// ErrRunInProgress indicates a second run was started on a busy engine.
	ErrRunInProgress = errors.New("core: run already in progress")

	// ErrRunFailed indicates an unexpected failure during a multi-step run.
	ErrRunFailed = errors.New("core: run failed")

	// ErrStopped is returned to an engine when the consumer stops pulling steps.
	ErrStopped = errors.New("core: stopped by consumer")
)

// errorKinds maps sentinels to their taxonomy names, most specific first.
var errorKinds = []struct {
	err  error
	name string
}{
	{ErrInvalidInput, "InvalidInput"},
	{ErrFull, "Full"},
	{ErrOverflow, "Overflow"},
	{ErrEmpty, "Empty"},
	{ErrUnderflow, "Underflow"},
	{ErrOutOfRange, "OutOfRange"},
	{ErrSlotOccupied, "SlotOccupied"},
	{ErrAlreadyEmpty, "AlreadyEmpty"},
	{ErrNotFound, "NotFound"},
	{ErrRunInProgress, "RunInProgress"},
	{ErrStopped, "Stopped"},
	{ErrRunFailed, "RunError"},
}

// ErrorKind returns the taxonomy name of err ("Overflow", "NotFound", ...),
// "RunError" for unrecognised failures and "" for a nil error.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}

	return "RunError"
}

// Kind tags an Event with the atomic action it describes.
type Kind uint8

// Event kinds. The zero value is deliberately invalid.
const (
	Compare Kind = iota + 1
	Swap
	Highlight
	Found
	NotFound
	Partition
	Merge
	Push
	Pop
	Enqueue
	Dequeue
	Insert
	Delete
	RecurseCall
	RecurseReturn
	DPCompute
)

var kindNames = [...]string{
	Compare:       "compare",
	Swap:          "swap",
	Highlight:     "highlight",
	Found:         "found",
	NotFound:      "not_found",
	Partition:     "partition",
	Merge:         "merge",
	Push:          "push",
	Pop:           "pop",
	Enqueue:       "enqueue",
	Dequeue:       "dequeue",
	Insert:        "insert",
	Delete:        "delete",
	RecurseCall:   "recurse_call",
	RecurseReturn: "recurse_return",
	DPCompute:     "dp_compute",
}

// Kinds lists every valid Kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindNames)-1)
	for k := Compare; k <= DPCompute; k++ {
		out = append(out, k)
	}

	return out
}

// Valid reports whether k is a declared kind.
func (k Kind) Valid() bool { return k >= Compare && k <= DPCompute }

// String returns the snake_case wire name of k.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}

	return kindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("core: cannot marshal %s", k)
	}

	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	kk, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = kk

	return nil
}

// ParseKind resolves a wire name (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k := Compare; k <= DPCompute; k++ {
		if kindNames[k] == s {
			return k, nil
		}
	}

	return 0, fmt.Errorf("core: unknown kind %q: %w", s, ErrInvalidInput)
}

// Event is one discrete, emitted notification describing an atomic action
// taken during a run. Which fields are populated depends on Kind:
//
//	Compare        Indices, Values (compared values; target last for search)
//	Swap           Indices, Values (post-swap values), Snapshot
//	Highlight      Indices and/or Key
//	Found/NotFound Indices, Key, Values, Result (steps taken for search)
//	Partition      Indices (range), Values (pivot, when any)
//	Merge          Indices (left, mid, right)
//	Push/Pop/...   Indices (slot), Key (item)
//	Insert/Delete  Indices (slot or bucket), Key, Values
//	RecurseCall    Indices (call index), Values (n), Depth
//	RecurseReturn  Indices (call index), Values (n), Depth, Result (return value)
//	DPCompute      Indices (cell), Values (two sources), Result (sum)
type Event struct {
	Seq      int    `json:"seq"`
	Kind     Kind   `json:"kind"`
	Indices  []int  `json:"indices,omitempty"`
	Key      string `json:"key,omitempty"`
	Values   []int  `json:"values,omitempty"`
	Snapshot []int  `json:"snapshot,omitempty"`
	Depth    int    `json:"depth,omitempty"`
	Result   int    `json:"result,omitempty"`
	Message  string `json:"message,omitempty"`
}

// clone returns a deep copy of e so the emitted value never aliases engine state.
func (e Event) clone() Event {
	e.Indices = cloneInts(e.Indices)
	e.Values = cloneInts(e.Values)
	e.Snapshot = cloneInts(e.Snapshot)

	return e
}

func cloneInts(s []int) []int {
	if s == nil {
		return nil
	}
	out := make([]int, len(s))
	copy(out, s)

	return out
}
