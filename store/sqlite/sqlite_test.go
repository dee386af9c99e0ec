// SPDX-License-Identifier: MIT

package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/store"
	"github.com/katalvlaran/stepwise/store/sqlite"
)

func TestSQLiteStore_Contract(t *testing.T) {
	store.RunContract(t, func(t *testing.T) store.Store {
		s, err := sqlite.Open(filepath.Join(t.TempDir(), "traces.db"))
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })

		return s
	})
}

func TestSQLiteStore_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "traces.db")

	s, err := sqlite.Open(path)
	require.NoError(t, err)
	tr := core.NewTrace("fibonacci", map[string]any{"n": 10})
	tr.Finish([]core.Event{{Kind: core.DPCompute, Indices: []int{2, 1, 0}, Values: []int{1, 0}, Result: 1}}, nil)
	require.NoError(t, s.Save(ctx, tr))
	require.NoError(t, s.Close())

	s, err = sqlite.Open(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Load(ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, core.DPCompute, got.Events[0].Kind)
	assert.Equal(t, 1, got.Events[0].Result)
}

func TestSQLiteStore_CountByState(t *testing.T) {
	ctx := context.Background()
	s, err := sqlite.Open(sqlite.Memory)
	require.NoError(t, err)
	defer s.Close()

	ok := core.NewTrace("sort", nil)
	ok.Finish(nil, nil)
	bad := core.NewTrace("sort", nil)
	bad.Finish(nil, errors.New("boom"))
	stopped := core.NewTrace("sort", nil)
	stopped.Finish(nil, context.Canceled)
	for _, tr := range []*core.Trace{ok, bad, stopped} {
		require.NoError(t, s.Save(ctx, tr))
	}

	counts, err := s.CountByState(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"completed": 1, "error": 1, "cancelled": 1}, counts)
}
