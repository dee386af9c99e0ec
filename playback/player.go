// SPDX-License-Identifier: MIT

package playback

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/stepwise/core"
)

// DefaultDelay is the pause between steps when no slider value is given.
const DefaultDelay = 300 * time.Millisecond

// Option configures a Player.
type Option func(*Options)

// Options holds Player settings.
type Options struct {
	// Delay is the base pause after each event.
	Delay time.Duration
	// Scale multiplies Delay per event kind; kinds absent from the map use 1.
	Scale map[core.Kind]float64
	// Sink receives every event; defaults to core.Discard.
	Sink core.Sink
}

// DefaultOptions returns DefaultDelay with Partition events paced at half.
func DefaultOptions() Options {
	return Options{
		Delay: DefaultDelay,
		Scale: map[core.Kind]float64{core.Partition: 0.5},
		Sink:  core.Discard,
	}
}

// WithDelay sets the base pause. Panics if d < 0.
func WithDelay(d time.Duration) Option {
	if d < 0 {
		panic(fmt.Sprintf("playback: WithDelay(%s)", d))
	}

	return func(o *Options) { o.Delay = d }
}

// WithScale sets the pacing factor for kind k. Panics if f < 0.
func WithScale(k core.Kind, f float64) Option {
	if f < 0 {
		panic(fmt.Sprintf("playback: WithScale(%s, %v)", k, f))
	}

	return func(o *Options) {
		o.Scale = cloneScale(o.Scale)
		o.Scale[k] = f
	}
}

// WithSink routes played events to s. A nil sink is ignored.
func WithSink(s core.Sink) Option {
	return func(o *Options) {
		if s != nil {
			o.Sink = s
		}
	}
}

// Player forwards cursor events to a sink at a human pace.
type Player struct {
	opts Options
}

// New returns a Player configured by opts.
func New(opts ...Option) *Player {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Player{opts: o}
}

// DelayFor returns the pause that follows an event of kind k.
func (p *Player) DelayFor(k core.Kind) time.Duration {
	f, ok := p.opts.Scale[k]
	if !ok {
		return p.opts.Delay
	}

	return time.Duration(float64(p.opts.Delay) * f)
}

// Play drains cur, delivering each event and pausing after it. It returns the
// number of delivered events and the first error: the sink's, the context's
// or the run's own.
func (p *Player) Play(ctx context.Context, cur *core.Cursor) (int, error) {
	n := 0
	for {
		if err := ctx.Err(); err != nil {
			cur.Stop()
			return n, err
		}
		ev, ok := cur.Next()
		if !ok {
			return n, cur.Err()
		}
		if err := p.opts.Sink.Emit(ev); err != nil {
			cur.Stop()
			return n, err
		}
		n++

		d := p.DelayFor(ev.Kind)
		if d <= 0 {
			continue
		}
		if err := wait(ctx, d); err != nil {
			cur.Stop()
			return n, err
		}
	}
}

// DelayFromSlider maps a speed slider value to a delay: higher is faster.
func DelayFromSlider(v int) time.Duration {
	return time.Duration(max(0, 1100-v)) * time.Millisecond
}

// SpeedLabel names a delay the way the speed slider does.
func SpeedLabel(d time.Duration) string {
	switch {
	case d > 800*time.Millisecond:
		return "Slow"
	case d > 400*time.Millisecond:
		return "Medium"
	default:
		return "Fast"
	}
}

func wait(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func cloneScale(m map[core.Kind]float64) map[core.Kind]float64 {
	out := make(map[core.Kind]float64, len(m)+1)
	for k, v := range m {
		out[k] = v
	}

	return out
}
