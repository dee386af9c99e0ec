// SPDX-License-Identifier: MIT

package playback_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/playback"
	"github.com/katalvlaran/stepwise/search"
)

func ExampleDelayFromSlider() {
	for _, v := range []int{200, 500, 900} {
		d := playback.DelayFromSlider(v)
		fmt.Println(d, playback.SpeedLabel(d))
	}
	// Output:
	// 900ms Slow
	// 600ms Medium
	// 200ms Fast
}

func ExamplePlayer_Play() {
	p := playback.New(playback.WithDelay(0), playback.WithSink(core.SinkFunc(func(ev core.Event) error {
		fmt.Println(ev.Message)
		return nil
	})))
	cur := search.New().Steps(context.Background(), []int{7, 3}, 3)
	n, err := p.Play(context.Background(), cur)
	fmt.Println(n, err)
	// Output:
	// Checking position 0: 7 vs target 3
	// Checking position 1: 3 vs target 3
	// Found 3 at position 1 in 2 steps
	// 3 <nil>
}
