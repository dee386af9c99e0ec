// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/katalvlaran/stepwise/builder"
	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/dp"
	"github.com/katalvlaran/stepwise/recursion"
	"github.com/katalvlaran/stepwise/search"
	"github.com/katalvlaran/stepwise/sorting"
)

// Engine names accepted by POST /v1/runs.
const (
	EngineSearch    = "search"
	EngineSort      = "sort"
	EngineFactorial = "factorial"
	EngineFibonacci = "fibonacci"
)

// limits bounds what a single run request may ask for.
type limits struct {
	maxInput int
}

// engineFunc runs one engine against sink. It returns the run summary and
// the parameters actually used (defaults and seeds filled in).
type engineFunc func(ctx context.Context, raw map[string]any, lim limits, sink core.Sink) (summary, used map[string]any, err error)

var engines = map[string]engineFunc{
	EngineSearch:    runSearch,
	EngineSort:      runSort,
	EngineFactorial: runFactorial,
	EngineFibonacci: runFibonacci,
}

// Engines lists the engine names in sorted order.
func Engines() []string {
	out := make([]string, 0, len(engines))
	for name := range engines {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// dataParams selects an input array: explicit Data wins, then a generated
// Dataset of Size values.
type dataParams struct {
	Data    []int  `mapstructure:"data"`
	Dataset string `mapstructure:"dataset"`
	Size    int    `mapstructure:"size"`
	Seed    *int64 `mapstructure:"seed"`
}

// resolve returns the input array. Arrays longer than lim.maxInput, given or
// requested, are core.ErrInvalidInput.
func (p *dataParams) resolve(defaultDataset string, lim limits) ([]int, error) {
	if len(p.Data) > 0 {
		if len(p.Data) > lim.maxInput {
			return nil, fmt.Errorf("server: data has %d values, max %d: %w", len(p.Data), lim.maxInput, core.ErrInvalidInput)
		}
		return p.Data, nil
	}
	if p.Dataset == "" {
		p.Dataset = defaultDataset
	}
	if p.Size == 0 {
		p.Size = builder.DefaultSize
	}
	if p.Size > lim.maxInput {
		return nil, fmt.Errorf("server: size %d exceeds max %d: %w", p.Size, lim.maxInput, core.ErrInvalidInput)
	}
	if p.Seed == nil {
		seed := time.Now().UnixNano()
		p.Seed = &seed
	}
	data, err := builder.Generate(p.Dataset, p.Size, builder.WithSeed(*p.Seed))
	if err != nil {
		return nil, err
	}
	p.Data = data

	return data, nil
}

func (p dataParams) used() map[string]any {
	m := map[string]any{"data": p.Data}
	if p.Dataset != "" {
		m["dataset"] = p.Dataset
		m["size"] = p.Size
	}
	if p.Seed != nil {
		m["seed"] = *p.Seed
	}

	return m
}

type searchParams struct {
	dataParams `mapstructure:",squash"`
	Target     *int `mapstructure:"target"`
}

type sortParams struct {
	dataParams `mapstructure:",squash"`
	Algorithm  string `mapstructure:"algorithm"`
}

type factorialParams struct {
	N int `mapstructure:"n"`
}

type fibonacciParams struct {
	N        int    `mapstructure:"n"`
	Strategy string `mapstructure:"strategy"`
}

// decodeParams fills out from raw. Unknown keys and mistyped values are
// core.ErrInvalidInput.
func decodeParams(raw map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return fmt.Errorf("server: params decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("server: params: %v: %w", err, core.ErrInvalidInput)
	}

	return nil
}

func runSearch(ctx context.Context, raw map[string]any, lim limits, sink core.Sink) (map[string]any, map[string]any, error) {
	var p searchParams
	if err := decodeParams(raw, &p); err != nil {
		return nil, nil, err
	}
	if p.Target == nil {
		return nil, nil, fmt.Errorf("server: search: target is required: %w", core.ErrInvalidInput)
	}
	data, err := p.resolve(builder.DatasetLab, lim)
	if err != nil {
		return nil, nil, err
	}
	used := p.used()
	used["target"] = *p.Target

	res, err := search.Linear(ctx, data, *p.Target, search.WithSink(sink))

	return map[string]any{
		"index": res.Index,
		"found": res.Found,
		"steps": res.Steps,
	}, used, err
}

func runSort(ctx context.Context, raw map[string]any, lim limits, sink core.Sink) (map[string]any, map[string]any, error) {
	var p sortParams
	if err := decodeParams(raw, &p); err != nil {
		return nil, nil, err
	}
	if p.Algorithm == "" {
		p.Algorithm = sorting.Bubble.String()
	}
	algo, err := sorting.ParseAlgorithm(p.Algorithm)
	if err != nil {
		return nil, nil, err
	}
	data, err := p.resolve(builder.DatasetRandom, lim)
	if err != nil {
		return nil, nil, err
	}
	used := p.used()
	used["algorithm"] = algo.String()

	res, err := sorting.Sort(ctx, algo, data, sorting.WithSink(sink))

	return map[string]any{
		"sorted":      res.Sorted,
		"comparisons": res.Comparisons,
		"swaps":       res.Swaps,
		"complexity":  res.Complexity,
	}, used, err
}

func runFactorial(ctx context.Context, raw map[string]any, _ limits, sink core.Sink) (map[string]any, map[string]any, error) {
	var p factorialParams
	if err := decodeParams(raw, &p); err != nil {
		return nil, nil, err
	}
	res, err := recursion.Factorial(ctx, p.N, recursion.WithSink(sink))

	return map[string]any{
		"value":     res.Value,
		"calls":     res.Calls,
		"max_depth": res.MaxDepth,
	}, map[string]any{"n": p.N}, err
}

func runFibonacci(ctx context.Context, raw map[string]any, _ limits, sink core.Sink) (map[string]any, map[string]any, error) {
	var p fibonacciParams
	if err := decodeParams(raw, &p); err != nil {
		return nil, nil, err
	}
	used := map[string]any{"n": p.N}

	if p.Strategy == "" || strings.EqualFold(p.Strategy, "compare") {
		used["strategy"] = "compare"
		cmp, err := dp.Compare(ctx, p.N, dp.WithSink(sink))

		return map[string]any{
			"value":                  cmp.Tabulated.Value,
			"naive_calculations":     cmp.Naive.Calculations,
			"tabulated_calculations": cmp.Tabulated.Calculations,
			"work_saved":             cmp.WorkSaved,
		}, used, err
	}

	strategy, err := dp.ParseStrategy(p.Strategy)
	if err != nil {
		return nil, nil, err
	}
	used["strategy"] = strategy.String()
	res, err := dp.New().Run(ctx, strategy, p.N, dp.WithSink(sink))

	return map[string]any{
		"value":        res.Value,
		"calculations": res.Calculations,
	}, used, err
}
