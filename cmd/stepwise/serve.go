// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/stepwise/internal/metrics"
	"github.com/katalvlaran/stepwise/server"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the engines over HTTP",
		Long:  `Starts the JSON API (runs, container sessions, /metrics) and stops gracefully on SIGINT or SIGTERM.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
				a.cfg.Server.Addr = addr
			}
			st, err := openStore(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			srv := server.New(st,
				server.WithLogger(a.log),
				server.WithMetrics(metrics.New(nil)),
				server.WithContainers(a.cfg.Containers),
				server.WithMaxInput(a.cfg.Server.MaxInput),
			)

			return serve(cmd.Context(), a, &http.Server{
				Addr:              a.cfg.Server.Addr,
				Handler:           srv.Handler(),
				ReadHeaderTimeout: a.cfg.GetReadTimeout(),
				ReadTimeout:       a.cfg.GetReadTimeout(),
			})
		},
	}
	cmd.Flags().String("addr", "", "Listen address (default: config server.addr)")

	return cmd
}

// serve runs hs until ctx is cancelled, then shuts it down within the
// configured timeout.
func serve(ctx context.Context, a *app, hs *http.Server) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Info("listening",
			zap.String("addr", hs.Addr),
			zap.String("store", a.cfg.Store.Backend),
		)
		if err := hs.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		a.log.Info("shutting down", zap.Duration("timeout", a.cfg.GetShutdownTimeout()))
		sctx, cancel := context.WithTimeout(context.Background(), a.cfg.GetShutdownTimeout())
		defer cancel()
		if err := hs.Shutdown(sctx); err != nil {
			a.log.Warn("graceful shutdown failed", zap.Error(err))
			return hs.Close()
		}
		return nil
	})

	return g.Wait()
}
