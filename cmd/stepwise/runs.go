// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/render"
)

func newRunsCmd(a *app) *cobra.Command {
	runs := &cobra.Command{
		Use:   "runs",
		Short: "Inspect traces saved with --save",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List saved traces, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			traces, err := st.List(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, t := range traces {
				fmt.Fprintf(out, "%s  %-9s %-9s %4d events  %s\n",
					t.ID, t.Engine, t.State, len(t.Events), t.CreatedAt.Local().Format("2006-01-02 15:04:05"))
			}

			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show ID",
		Short: "Show a saved trace as a report, or its raw events with --events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			t, err := st.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if events, _ := cmd.Flags().GetBool("events"); events {
				_, err = out.Write(core.FormatEvents(t.Events))
				return err
			}

			md := render.Report(t)
			style := "notty"
			if !a.noColor && isTerminal(out) {
				style = ""
			}
			styled, err := render.RenderMarkdown(md, style, render.DefaultWrap)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				styled = md
			}
			fmt.Fprint(out, styled)

			return nil
		},
	}
	show.Flags().Bool("events", false, "Print every event instead of the report")

	del := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a saved trace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			return st.Delete(cmd.Context(), args[0])
		},
	}

	runs.AddCommand(list, show, del)

	return runs
}
