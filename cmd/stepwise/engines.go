// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepwise/builder"
	"github.com/katalvlaran/stepwise/complexity"
	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/dp"
	"github.com/katalvlaran/stepwise/recursion"
	"github.com/katalvlaran/stepwise/search"
	"github.com/katalvlaran/stepwise/sorting"
)

func newSearchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Linear search for --target, one comparison at a time",
		Example: `  stepwise search --target 9
  stepwise search --data 4,8,15,16 --target 16`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetString("target")
			target, err := search.ParseTarget(raw)
			if err != nil {
				return err
			}
			data, params, err := inputData(cmd)
			if err != nil {
				return err
			}
			params["target"] = target

			var res search.Result
			_, err = a.play(cmd, "search", params, func(sink core.Sink) error {
				var err error
				res, err = search.Linear(cmd.Context(), data, target, search.WithSink(sink))
				return err
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.Found {
				fmt.Fprintf(out, "found %d at index %d after %d steps (%.0f%% of %d)\n",
					target, res.Index, res.Steps, complexity.Ratio(len(data), res.Steps), len(data))
			} else {
				fmt.Fprintf(out, "%d not found after %d steps\n", target, res.Steps)
			}

			return nil
		},
	}
	cmd.Flags().String("target", "", "Value to search for (required)")
	_ = cmd.MarkFlagRequired("target")
	addDataFlags(cmd, builder.DatasetLab)

	return cmd
}

func newSortCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort with bubble, quick, merge or selection sort",
		Example: `  stepwise sort --algorithm quick --seed 42
  stepwise sort --algorithm merge --data 5,2,4,6,1,3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("algorithm")
			algo, err := sorting.ParseAlgorithm(name)
			if err != nil {
				return err
			}
			data, params, err := inputData(cmd)
			if err != nil {
				return err
			}
			params["algorithm"] = algo.String()

			var res sorting.Result
			_, err = a.play(cmd, "sort", params, func(sink core.Sink) error {
				var err error
				res, err = sorting.Sort(cmd.Context(), algo, data, sorting.WithSink(sink))
				return err
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s sort: %v comparisons=%d swaps=%d complexity=%s\n",
				algo, res.Sorted, res.Comparisons, res.Swaps, res.Complexity)

			return nil
		},
	}
	cmd.Flags().StringP("algorithm", "a", sorting.Bubble.String(), "bubble, quick, merge or selection")
	addDataFlags(cmd, builder.DatasetRandom)

	return cmd
}

func newFactorialCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "factorial N",
		Short: fmt.Sprintf("Trace recursive factorial(N), %d ≤ N ≤ %d", recursion.MinN, recursion.MaxN),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseN(args[0])
			if err != nil {
				return err
			}

			var res recursion.Result
			_, err = a.play(cmd, "factorial", map[string]any{"n": n}, func(sink core.Sink) error {
				var err error
				res, err = recursion.Factorial(cmd.Context(), n, recursion.WithSink(sink))
				return err
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "call tree:")
			res.Root.Walk(func(c *recursion.CallNode) bool {
				fmt.Fprintf(out, "  %s%s\n", strings.Repeat("  ", c.Depth), c)
				return true
			})
			fmt.Fprintf(out, "factorial(%d) = %d in %d calls, max depth %d\n", n, res.Value, res.Calls, res.MaxDepth)

			return nil
		},
	}

	return cmd
}

func newFibCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fib N",
		Short: fmt.Sprintf("Fibonacci by naive recursion and tabulation, %d ≤ N ≤ %d", dp.MinN, dp.MaxN),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseN(args[0])
			if err != nil {
				return err
			}
			name, _ := cmd.Flags().GetString("strategy")
			out := cmd.OutOrStdout()

			if strings.EqualFold(name, "compare") {
				var cmp dp.Comparison
				_, err = a.play(cmd, "fibonacci", map[string]any{"n": n, "strategy": "compare"}, func(sink core.Sink) error {
					var err error
					cmp, err = dp.Compare(cmd.Context(), n, dp.WithSink(sink))
					return err
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "fib(%d) = %d\n", n, cmp.Tabulated.Value)
				fmt.Fprintf(out, "recursive:  %d calculations, max depth %d\n", cmp.Naive.Calculations, cmp.Naive.MaxDepth)
				fmt.Fprintf(out, "tabulation: %d calculations, table %v\n", cmp.Tabulated.Calculations, cmp.Tabulated.Table)
				fmt.Fprintf(out, "work saved: %d%%\n", cmp.WorkSaved)
				return nil
			}

			strategy, err := dp.ParseStrategy(name)
			if err != nil {
				return err
			}
			var res dp.Result
			_, err = a.play(cmd, "fibonacci", map[string]any{"n": n, "strategy": strategy.String()}, func(sink core.Sink) error {
				var err error
				res, err = dp.New().Run(cmd.Context(), strategy, n, dp.WithSink(sink))
				return err
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "fib(%d) = %d (%s, %d calculations)\n", n, res.Value, strategy, res.Calculations)

			return nil
		},
	}
	cmd.Flags().StringP("strategy", "s", "compare", "compare, recursive or tabulation")

	return cmd
}

func parseN(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("N %q is not a number: %w", s, core.ErrInvalidInput)
	}

	return n, nil
}
