// SPDX-License-Identifier: MIT

package core_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/stepwise/core"
)

// ExampleRunner_Steps drives a tiny engine one step at a time.
func ExampleRunner_Steps() {
	var r core.Runner
	cur := r.Steps(context.Background(), func(em *core.Emitter) error {
		for _, item := range []string{"oxygen", "water"} {
			if err := em.Emit(core.Event{Kind: core.Push, Key: item}); err != nil {
				return err
			}
		}
		return nil
	})
	defer cur.Stop()

	for ev, ok := cur.Next(); ok; ev, ok = cur.Next() {
		fmt.Println(ev.Seq, ev.Kind, ev.Key)
	}
	fmt.Println(r.State())
	// Output:
	// 0 push oxygen
	// 1 push water
	// completed
}
