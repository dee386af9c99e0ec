// SPDX-License-Identifier: MIT

package dp_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/dp"
)

func ExampleTabulate() {
	sink := core.SinkFunc(func(ev core.Event) error {
		if ev.Kind == core.DPCompute {
			fmt.Println(ev.Message)
		}
		return nil
	})
	res, _ := dp.Tabulate(context.Background(), 4, dp.WithSink(sink))
	fmt.Println(res.Value, res.Calculations)
	// Output:
	// Computed F(2) = F(1) + F(0) = 1 + 0 = 1
	// Computed F(3) = F(2) + F(1) = 1 + 1 = 2
	// Computed F(4) = F(3) + F(2) = 2 + 1 = 3
	// 3 5
}

func ExampleCompare() {
	cmp, _ := dp.Compare(context.Background(), 10)
	fmt.Printf("F(10)=%d naive=%d tabulated=%d saved=%d%%\n",
		cmp.Tabulated.Value, cmp.Naive.Calculations, cmp.Tabulated.Calculations, cmp.WorkSaved)
	// Output:
	// F(10)=55 naive=177 tabulated=11 saved=80%
}
