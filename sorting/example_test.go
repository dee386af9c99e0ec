// SPDX-License-Identifier: MIT

package sorting_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/sorting"
)

func ExampleSort() {
	res, _ := sorting.Sort(context.Background(), sorting.Bubble, []int{64, 34, 25, 12})
	fmt.Println(res.Sorted, res.Comparisons, res.Swaps, res.Complexity, res.State)
	// Output:
	// [12 25 34 64] 6 6 O(n²) completed
}

// ExampleSorter_Steps pulls only the swaps of a quicksort.
func ExampleSorter_Steps() {
	cur := sorting.New().Steps(context.Background(), sorting.Quick, []int{3, 1, 2})
	for ev, ok := cur.Next(); ok; ev, ok = cur.Next() {
		if ev.Kind == core.Swap {
			fmt.Println(ev.Message)
		}
	}
	// Output:
	// Moved 1 before pivot
	// Placed pivot 2 at position 1
}
