// SPDX-License-Identifier: MIT

package playback_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/playback"
	"github.com/katalvlaran/stepwise/recursion"
	"github.com/katalvlaran/stepwise/search"
)

func TestLogSink_Levels(t *testing.T) {
	obs, logs := observer.New(zapcore.InfoLevel)
	sink := playback.LogSink(zap.New(obs))

	_, err := search.Linear(context.Background(), []int{1, 2}, 2, search.WithSink(sink))
	require.NoError(t, err)

	// Compare is debug-only; Found is narrated
	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Found 2 at position 1 in 2 steps", entries[0].Message)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "found", ctx["kind"])
	assert.EqualValues(t, 2, ctx["result"])
}

func TestLogSink_Depth(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	_, err := recursion.Factorial(context.Background(), 2, recursion.WithSink(playback.LogSink(zap.New(obs))))
	require.NoError(t, err)

	calls := logs.FilterField(zap.Stringer("kind", core.RecurseCall)).All()
	require.Len(t, calls, 2)
	assert.EqualValues(t, 1, calls[1].ContextMap()["depth"])
}

func TestLogSink_Nil(t *testing.T) {
	assert.Equal(t, core.Discard, playback.LogSink(nil))
}
