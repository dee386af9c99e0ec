// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepwise/builder"
	"github.com/katalvlaran/stepwise/complexity"
	"github.com/katalvlaran/stepwise/playback"
)

func newChartCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Plot the O(1), O(log n), O(n) and O(n²) growth curves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			maxX, _ := f.GetInt("max-x")
			rows, _ := f.GetInt("rows")
			mark, _ := f.GetInt("mark")

			series, err := complexity.Curves(maxX)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, complexity.Plot(series, rows, mark))
			if mark >= 1 && mark <= maxX {
				for _, s := range series {
					fmt.Fprintf(out, "%-8s n=%d → %.1f\n", s.Name, mark, s.Class.Eval(float64(mark)))
				}
			}

			return nil
		},
	}
	cmd.Flags().Int("max-x", complexity.DefaultMaxX, "Largest input size plotted")
	cmd.Flags().Int("rows", 20, "Chart height in rows")
	cmd.Flags().Int("mark", 0, "Draw a marker at this input size (0 disables)")

	return cmd
}

func newDatasetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "dataset NAME",
		Short:     "Print a generated input dataset",
		Long:      "Datasets: " + strings.Join(builder.Datasets(), ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: builder.Datasets(),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			size, _ := f.GetInt("size")
			seed, _ := f.GetInt64("seed")
			lo, _ := f.GetInt("lo")
			hi, _ := f.GetInt("hi")
			if hi <= lo {
				return fmt.Errorf("--hi %d must exceed --lo %d", hi, lo)
			}

			data, err := builder.Generate(args[0], size, builder.WithSeed(seed), builder.WithRange(lo, hi))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Trim(fmt.Sprint(data), "[]"))

			return nil
		},
	}
	f := cmd.Flags()
	f.Int("size", builder.DefaultSize, "Number of values")
	f.Int64("seed", 1, "Seed for random datasets")
	f.Int("lo", builder.DefaultLo, "Smallest value (inclusive)")
	f.Int("hi", builder.DefaultHi, "Largest value (exclusive)")

	return cmd
}

func newSpeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "speed [SLIDER]",
		Short: "Show the playback delay, or the delay of a slider value (100-1000)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := a.cfg.GetDelay()
			if len(args) == 1 {
				v, err := parseN(args[0])
				if err != nil {
					return err
				}
				d = playback.DelayFromSlider(v)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", d, playback.SpeedLabel(d))

			return nil
		},
	}
}
