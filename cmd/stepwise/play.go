// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/stepwise/builder"
	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/internal/config"
	"github.com/katalvlaran/stepwise/store"
	redisstore "github.com/katalvlaran/stepwise/store/redis"
	sqlitestore "github.com/katalvlaran/stepwise/store/sqlite"
)

// play drives run behind a cursor so the player can pace it, narrating each
// event. The returned trace holds every delivered event and the outcome.
func (a *app) play(cmd *cobra.Command, engine string, params map[string]any, run core.RunFunc) (*core.Trace, error) {
	rec := &core.Recorder{}
	cur := core.NewCursor(run)
	n, err := a.player(cmd, core.Fanout(a.sink(cmd), rec)).Play(cmd.Context(), cur)

	trace := core.NewTrace(engine, params)
	trace.Finish(rec.Events(), err)
	a.log.Debug("run finished",
		zap.String("engine", engine),
		zap.Int("events", n),
		zap.Stringer("state", trace.State),
	)
	if a.save {
		if serr := a.saveTrace(cmd.Context(), trace); serr != nil {
			return trace, serr
		}
		fmt.Fprintf(cmd.OutOrStdout(), "saved trace %s\n", trace.ID)
	}

	return trace, err
}

func (a *app) saveTrace(ctx context.Context, t *core.Trace) error {
	if a.cfg.Store.Backend == config.BackendMemory {
		a.log.Warn("--save with the memory store keeps the trace only until exit")
	}
	st, err := openStore(ctx, a.cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	return st.Save(ctx, t)
}

// openStore opens the configured trace store.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Backend {
	case config.BackendRedis:
		r := cfg.Store.Redis
		st := redisstore.New(r.Addr, r.Password, r.DB,
			redisstore.WithPrefix(r.Prefix),
			redisstore.WithTTL(cfg.GetRedisTTL()),
		)
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := st.Ping(pingCtx); err != nil {
			st.Close()
			return nil, fmt.Errorf("redis store at %s: %w", r.Addr, err)
		}
		return st, nil
	case config.BackendSQLite:
		return sqlitestore.Open(cfg.Store.SQLite.Path)
	default:
		return store.NewMemory(), nil
	}
}

// addDataFlags registers the input array flags shared by search and sort.
func addDataFlags(cmd *cobra.Command, defaultDataset string) {
	f := cmd.Flags()
	f.IntSlice("data", nil, "Explicit input values, e.g. 5,3,8")
	f.String("dataset", defaultDataset, "Generated dataset: random, ascending, reversed, few-unique, lab")
	f.Int("size", builder.DefaultSize, "Generated dataset size")
	f.Int64("seed", 0, "Seed for random datasets (default: time based)")
}

// inputData resolves --data or the generated dataset and reports the params
// needed to reproduce it.
func inputData(cmd *cobra.Command) ([]int, map[string]any, error) {
	f := cmd.Flags()
	data, _ := f.GetIntSlice("data")
	if len(data) > 0 {
		return data, map[string]any{"data": data}, nil
	}
	name, _ := f.GetString("dataset")
	size, _ := f.GetInt("size")
	seed, _ := f.GetInt64("seed")
	if !f.Changed("seed") {
		seed = time.Now().UnixNano()
	}
	data, err := builder.Generate(name, size, builder.WithSeed(seed))
	if err != nil {
		return nil, nil, err
	}

	return data, map[string]any{"data": data, "dataset": name, "size": size, "seed": seed}, nil
}
