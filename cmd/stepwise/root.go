// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/internal/config"
	"github.com/katalvlaran/stepwise/internal/logging"
	"github.com/katalvlaran/stepwise/playback"
	"github.com/katalvlaran/stepwise/render"
)

// app carries the flags and the state built from them in PersistentPreRunE.
type app struct {
	cfgPath  string
	logLevel string
	delay    string
	noColor  bool
	save     bool

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "stepwise",
		Short:         "Step through classic algorithms event by event",
		Long:          `stepwise runs search, sorting, recursion, dynamic programming and container engines and narrates every step they take.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgPath, "config", "c", "stepwise.yaml", "Path to the configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	pf.StringVar(&a.delay, "delay", "", "Pause between steps, e.g. 250ms (default: config, only on a terminal)")
	pf.BoolVar(&a.noColor, "no-color", false, "Disable colored output")
	pf.BoolVar(&a.save, "save", false, "Persist the run's trace in the configured store")

	root.AddCommand(
		newSearchCmd(a),
		newSortCmd(a),
		newFactorialCmd(a),
		newFibCmd(a),
		newOpsCmd(a),
		newChartCmd(a),
		newDatasetCmd(a),
		newSpeedCmd(a),
		newRunsCmd(a),
		newServeCmd(a),
	)

	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.delay != "" {
		if _, err := time.ParseDuration(a.delay); err != nil {
			return fmt.Errorf("invalid --delay %q: %w", a.delay, err)
		}
		cfg.Playback.Delay = a.delay
		cfg.Playback.Slider = 0
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, logger
	a.log.Debug("config loaded", zap.String("path", a.cfgPath), zap.String("store", cfg.Store.Backend))

	return nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// profile picks the color profile for w.
func (a *app) profile(w io.Writer) termenv.Profile {
	if a.noColor || !isTerminal(w) {
		return termenv.Ascii
	}

	return termenv.NewOutput(w).EnvColorProfile()
}

// sink narrates to the command's output and, at debug level, to the log.
func (a *app) sink(cmd *cobra.Command) core.Sink {
	out := cmd.OutOrStdout()
	terminal := render.NewTerminal(out, render.WithProfile(a.profile(out)))
	if a.log.Core().Enabled(zap.DebugLevel) {
		return core.Fanout(terminal, playback.LogSink(a.log))
	}

	return terminal
}

// player paces at the configured delay on a terminal or when --delay is set;
// piped output is never paced.
func (a *app) player(cmd *cobra.Command, sink core.Sink) *playback.Player {
	delay := time.Duration(0)
	if a.delay != "" || isTerminal(cmd.OutOrStdout()) {
		delay = a.cfg.GetDelay()
	}

	return playback.New(playback.WithDelay(delay), playback.WithSink(sink))
}
