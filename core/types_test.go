// SPDX-License-Identifier: MIT
// Package core_test verifies the event model, error taxonomy and stock sinks.

package core_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepwise/core"
)

// TestKind_TextRoundTrip ensures every kind survives JSON by name.
func TestKind_TextRoundTrip(t *testing.T) {
	for _, k := range core.Kinds() {
		b, err := json.Marshal(k)
		require.NoError(t, err)
		var back core.Kind
		require.NoError(t, json.Unmarshal(b, &back))
		require.Equal(t, k, back, "kind %s", k)
	}
	require.Len(t, core.Kinds(), 16)

	_, err := core.ParseKind("teleport")
	require.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = core.Kind(0).MarshalText()
	require.Error(t, err)
	assert.Equal(t, "kind(0)", core.Kind(0).String())
}

// TestErrorKind maps wrapped sentinels onto taxonomy names.
func TestErrorKind(t *testing.T) {
	cases := map[string]error{
		"":              nil,
		"Overflow":      fmt.Errorf("stack: push: %w", core.ErrOverflow),
		"Underflow":     core.ErrUnderflow,
		"NotFound":      fmt.Errorf("x: %w", core.ErrNotFound),
		"RunInProgress": core.ErrRunInProgress,
		"RunError":      errors.New("something else"),
		"InvalidInput":  core.ErrInvalidInput,
		"SlotOccupied":  core.ErrSlotOccupied,
	}
	for want, err := range cases {
		assert.Equal(t, want, core.ErrorKind(err))
	}
}

// TestFanout delivers to all sinks and stops at the first failure.
func TestFanout(t *testing.T) {
	a, b := &core.Recorder{}, &core.Recorder{}
	require.NoError(t, core.Fanout(a, nil, b).Emit(core.Event{Kind: core.Push}))
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 1, b.Len())

	boom := errors.New("boom")
	failing := core.SinkFunc(func(core.Event) error { return boom })
	c := &core.Recorder{}
	require.ErrorIs(t, core.Fanout(failing, c).Emit(core.Event{Kind: core.Pop}), boom)
	assert.Zero(t, c.Len())

	assert.NoError(t, core.Fanout().Emit(core.Event{}))
}

// TestEmitter_CopiesAndSequences checks Seq stamping and slice isolation.
func TestEmitter_CopiesAndSequences(t *testing.T) {
	rec := &core.Recorder{}
	em := core.NewEmitter(nil, rec)
	data := []int{3, 1}
	require.NoError(t, em.Emit(core.Event{Kind: core.Swap, Snapshot: data}))
	data[0] = 99
	require.NoError(t, em.Emit(core.Event{Kind: core.Swap, Snapshot: data}))

	evs := rec.Events()
	require.Len(t, evs, 2)
	assert.Equal(t, 0, evs[0].Seq)
	assert.Equal(t, 1, evs[1].Seq)
	assert.Equal(t, []int{3, 1}, evs[0].Snapshot, "emitted event must not alias engine state")
	assert.Equal(t, 2, em.Emitted())
}

// TestEmitter_StickyError stops delivery after the first sink failure.
func TestEmitter_StickyError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	em := core.NewEmitter(nil, core.SinkFunc(func(core.Event) error {
		calls++
		return boom
	}))
	require.ErrorIs(t, em.Emit(core.Event{Kind: core.Compare}), boom)
	require.ErrorIs(t, em.Emit(core.Event{Kind: core.Compare}), boom)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, em.Emitted())
}

// TestFormatEvents pins the text layout used by golden files.
func TestFormatEvents(t *testing.T) {
	out := core.FormatEvents([]core.Event{
		{Seq: 0, Kind: core.Compare, Indices: []int{0, 1}, Values: []int{3, 1}},
		{Seq: 1, Kind: core.Insert, Indices: []int{5}, Key: "A", Message: "Stored 'A'"},
		{Seq: 2, Kind: core.RecurseCall, Values: []int{2}, Depth: 1, Result: 2},
	})
	want := "000 compare idx=[0 1] vals=[3 1]\n" +
		"001 insert idx=[5] key=A | Stored 'A'\n" +
		"002 recurse_call vals=[2] depth=1 result=2\n"
	assert.Equal(t, want, string(out))
}

// TestTrace_Finish records outcome and error taxonomy.
func TestTrace_Finish(t *testing.T) {
	tr := core.NewTrace("sort", map[string]any{"algorithm": "bubble"})
	require.NotEmpty(t, tr.ID)
	assert.Equal(t, core.Ready, tr.State)

	tr.Finish([]core.Event{{Kind: core.Compare}}, fmt.Errorf("sorting: %w: boom", core.ErrRunFailed))
	assert.Equal(t, core.Failed, tr.State)
	assert.Equal(t, "RunError", tr.ErrorKind)
	assert.Equal(t, 1, tr.Count(core.Compare))

	b, err := json.Marshal(tr)
	require.NoError(t, err)
	var back core.Trace
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, core.Failed, back.State)
	assert.Equal(t, core.Compare, back.Events[0].Kind)
}
