// SPDX-License-Identifier: MIT

package playback_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/playback"
	"github.com/katalvlaran/stepwise/search"
	"github.com/katalvlaran/stepwise/sorting"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPlayer_DeliversEverything(t *testing.T) {
	rec := &core.Recorder{}
	p := playback.New(playback.WithDelay(0), playback.WithSink(rec))
	s := search.New()

	n, err := p.Play(context.Background(), s.Steps(context.Background(), []int{4, 5, 6}, 6))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, 4, rec.Len())
	assert.Equal(t, core.Completed, s.State())
}

func TestPlayer_Paces(t *testing.T) {
	const step = 5 * time.Millisecond
	p := playback.New(playback.WithDelay(step))
	start := time.Now()
	n, err := p.Play(context.Background(), search.New().Steps(context.Background(), []int{1, 2, 3}, 3))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.GreaterOrEqual(t, time.Since(start), 4*step)
}

func TestPlayer_DelayFor(t *testing.T) {
	p := playback.New(playback.WithDelay(200 * time.Millisecond))
	assert.Equal(t, 200*time.Millisecond, p.DelayFor(core.Compare))
	assert.Equal(t, 100*time.Millisecond, p.DelayFor(core.Partition))

	p = playback.New(playback.WithDelay(100*time.Millisecond), playback.WithScale(core.Compare, 0))
	assert.Zero(t, p.DelayFor(core.Compare))
	assert.Equal(t, 50*time.Millisecond, p.DelayFor(core.Partition), "defaults survive WithScale")
}

// TestPlayer_CancelStopsEngine cancels during the pause after the second event.
func TestPlayer_CancelStopsEngine(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	seen := 0
	sink := core.SinkFunc(func(core.Event) error {
		seen++
		if seen == 2 {
			cancel()
		}
		return nil
	})
	s := sorting.New()
	p := playback.New(playback.WithDelay(time.Hour), playback.WithSink(sink))

	n, err := p.Play(ctx, s.Steps(context.Background(), sorting.Bubble, []int{5, 4, 3, 2, 1}))
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, n)
	assert.Equal(t, core.Cancelled, s.State())
}

func TestPlayer_SinkErrorStopsEngine(t *testing.T) {
	boom := errors.New("screen gone")
	s := sorting.New()
	p := playback.New(playback.WithDelay(0), playback.WithSink(core.SinkFunc(func(core.Event) error { return boom })))

	n, err := p.Play(context.Background(), s.Steps(context.Background(), sorting.Quick, []int{2, 1}))
	require.ErrorIs(t, err, boom)
	assert.Zero(t, n)
	assert.Equal(t, core.Cancelled, s.State())
}

func TestSlider(t *testing.T) {
	cases := []struct {
		v     int
		delay time.Duration
		label string
	}{
		{100, 1000 * time.Millisecond, "Slow"},
		{299, 801 * time.Millisecond, "Slow"},
		{300, 800 * time.Millisecond, "Medium"},
		{700, 400 * time.Millisecond, "Fast"},
		{1000, 100 * time.Millisecond, "Fast"},
		{1200, 0, "Fast"},
	}
	for _, c := range cases {
		d := playback.DelayFromSlider(c.v)
		assert.Equal(t, c.delay, d, "v=%d", c.v)
		assert.Equal(t, c.label, playback.SpeedLabel(d), "v=%d", c.v)
	}
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { playback.WithDelay(-time.Second) })
	assert.Panics(t, func() { playback.WithScale(core.Swap, -1) })
}
