// SPDX-License-Identifier: MIT

package search_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/search"
)

// TestLinear_FoundAtIndex checks the k+1 Compare events followed by Found(k).
func TestLinear_FoundAtIndex(t *testing.T) {
	seq := []int{15, 3, 8, 12, 9, 1, 7, 20, 4, 11}
	for k, target := range seq {
		rec := &core.Recorder{}
		res, err := search.Linear(context.Background(), seq, target, search.WithSink(rec))
		require.NoError(t, err)
		require.True(t, res.Found)
		require.Equal(t, k, res.Index)
		require.Equal(t, k+1, res.Steps)

		evs := rec.Events()
		require.Len(t, evs, k+2)
		require.Equal(t, k+1, rec.Count(core.Compare))
		last := evs[len(evs)-1]
		assert.Equal(t, core.Found, last.Kind)
		assert.Equal(t, []int{k}, last.Indices)
		assert.Equal(t, k+1, last.Result)
	}
}

// TestLinear_NotFound checks len(A) comparisons followed by NotFound.
func TestLinear_NotFound(t *testing.T) {
	seq := []int{4, 5, 6}
	rec := &core.Recorder{}
	res, err := search.Linear(context.Background(), seq, 99, search.WithSink(rec))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, -1, res.Index)
	assert.Equal(t, len(seq), res.Steps)
	assert.Equal(t, []core.Kind{core.Compare, core.Compare, core.Compare, core.NotFound}, rec.Kinds())
}

// TestLinear_Empty reports NotFound after zero steps.
func TestLinear_Empty(t *testing.T) {
	rec := &core.Recorder{}
	res, err := search.Linear(context.Background(), nil, 1, search.WithSink(rec))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Steps)
	assert.Equal(t, []core.Kind{core.NotFound}, rec.Kinds())
}

// TestLinear_RandomProperty cross-checks the event count against a plain scan.
func TestLinear_RandomProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 200; iter++ {
		n := rng.Intn(15)
		seq := make([]int, n)
		for i := range seq {
			seq[i] = rng.Intn(10)
		}
		target := rng.Intn(12)
		want := -1
		for i, v := range seq {
			if v == target {
				want = i
				break
			}
		}

		rec := &core.Recorder{}
		res, err := search.Linear(context.Background(), seq, target, search.WithSink(rec))
		require.NoError(t, err)
		require.Equal(t, want, res.Index)
		if want >= 0 {
			require.Equal(t, want+1, rec.Count(core.Compare))
		} else {
			require.Equal(t, n, rec.Count(core.Compare))
		}
	}
}

// TestSearcher_Steps pulls the run one event at a time and rejects a second run.
func TestSearcher_Steps(t *testing.T) {
	s := search.New()
	cur := s.Steps(context.Background(), []int{1, 2, 3}, 3)

	ev, ok := cur.Next()
	require.True(t, ok)
	assert.Equal(t, core.Compare, ev.Kind)
	assert.Equal(t, 0, ev.Seq)
	assert.Equal(t, core.Running, s.State())

	_, err := s.Linear(context.Background(), []int{1}, 1)
	require.ErrorIs(t, err, core.ErrRunInProgress)

	rest, err := cur.Drain()
	require.NoError(t, err)
	require.Len(t, rest, 3)
	assert.Equal(t, core.Found, rest[2].Kind)
	assert.Equal(t, core.Completed, s.State())

	_, ok = cur.Next()
	assert.False(t, ok, "cursor must not restart after exhaustion")
}

// TestSearcher_StopHaltsRun verifies Stop ends production and marks the run cancelled.
func TestSearcher_StopHaltsRun(t *testing.T) {
	s := search.New()
	cur := s.Steps(context.Background(), []int{1, 2, 3, 4}, 4)
	_, ok := cur.Next()
	require.True(t, ok)
	cur.Stop()

	_, ok = cur.Next()
	assert.False(t, ok)
	assert.NoError(t, cur.Err())
	assert.Equal(t, core.Cancelled, s.State())

	// the engine is free again
	_, err := s.Linear(context.Background(), []int{1}, 1)
	assert.NoError(t, err)
}

// TestLinear_SinkAbort propagates a sink error and stops emitting.
func TestLinear_SinkAbort(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	sink := core.SinkFunc(func(core.Event) error {
		calls++
		if calls == 2 {
			return boom
		}
		return nil
	})
	res, err := search.Linear(context.Background(), []int{1, 2, 3}, 3, search.WithSink(sink))
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, res.Steps)
}

// TestLinear_Cancelled returns the context error before the first step.
func TestLinear_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := search.New()
	_, err := s.Linear(ctx, []int{1, 2}, 2)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, core.Cancelled, s.State())
}

func TestParseTarget(t *testing.T) {
	v, err := search.ParseTarget(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, 12, v)

	for _, in := range []string{"", "abc", "1.5"} {
		_, err := search.ParseTarget(in)
		assert.ErrorIs(t, err, core.ErrInvalidInput, in)
	}
}

// TestLinear_Golden pins the narration of a small run.
func TestLinear_Golden(t *testing.T) {
	rec := &core.Recorder{}
	_, err := search.Linear(context.Background(), []int{15, 3, 8, 12}, 8, search.WithSink(rec))
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "linear_found", core.FormatEvents(rec.Events()))
}
