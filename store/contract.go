// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepwise/core"
)

// RunContract exercises the behavior every Store must share. newStore is
// called once per subtest and must return an empty store.
func RunContract(t *testing.T, newStore func(t *testing.T) Store) {
	t.Helper()
	ctx := context.Background()

	sample := func(id string, at time.Time) *core.Trace {
		tr := core.NewTrace("sort", map[string]any{"algorithm": "bubble"})
		tr.ID = id
		tr.CreatedAt = at
		tr.Finish([]core.Event{
			{Seq: 0, Kind: core.Compare, Indices: []int{0, 1}, Values: []int{3, 1}, Message: "Comparing 3 and 1"},
			{Seq: 1, Kind: core.Swap, Indices: []int{0, 1}, Values: []int{3, 1}, Snapshot: []int{1, 3}, Message: "Swapped 3 and 1"},
		}, nil)
		tr.Summary = map[string]any{"swaps": 1}

		return tr
	}
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("SaveLoad", func(t *testing.T) {
		s := newStore(t)
		in := sample("a", base)
		require.NoError(t, s.Save(ctx, in))

		got, err := s.Load(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, in.ID, got.ID)
		assert.Equal(t, in.Engine, got.Engine)
		assert.Equal(t, core.Completed, got.State)
		assert.True(t, in.CreatedAt.Equal(got.CreatedAt))
		require.Len(t, got.Events, 2)
		assert.Equal(t, core.Swap, got.Events[1].Kind)
		assert.Equal(t, []int{1, 3}, got.Events[1].Snapshot)
		assert.Equal(t, "Swapped 3 and 1", got.Events[1].Message)
	})

	t.Run("LoadUnknown", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Load(ctx, "missing")
		assert.True(t, errors.Is(err, ErrTraceNotFound), "got %v", err)
	})

	t.Run("SaveReplaces", func(t *testing.T) {
		s := newStore(t)
		tr := sample("a", base)
		require.NoError(t, s.Save(ctx, tr))
		tr.Engine = "search"
		require.NoError(t, s.Save(ctx, tr))

		got, err := s.Load(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "search", got.Engine)

		all, err := s.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("ListNewestFirst", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Save(ctx, sample("old", base)))
		require.NoError(t, s.Save(ctx, sample("new", base.Add(time.Hour))))
		require.NoError(t, s.Save(ctx, sample("mid", base.Add(time.Minute))))

		all, err := s.List(ctx)
		require.NoError(t, err)
		ids := make([]string, len(all))
		for i, tr := range all {
			ids[i] = tr.ID
		}
		assert.Equal(t, []string{"new", "mid", "old"}, ids)
	})

	t.Run("Delete", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Save(ctx, sample("a", base)))
		require.NoError(t, s.Delete(ctx, "a"))

		_, err := s.Load(ctx, "a")
		assert.True(t, errors.Is(err, ErrTraceNotFound))
		assert.True(t, errors.Is(s.Delete(ctx, "a"), ErrTraceNotFound))

		all, err := s.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("RejectsMissingID", func(t *testing.T) {
		s := newStore(t)
		assert.True(t, errors.Is(s.Save(ctx, &core.Trace{}), ErrNoID))
	})
}
