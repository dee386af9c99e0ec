// Package stepwise is a set of instrumented algorithm engines: classic
// algorithms that narrate every comparison, swap, push and recursive call as
// a deterministic, replayable stream of step events.
//
// 🚀 What is stepwise?
//
//	A small family of engines that share one event model:
//		• Search: linear search with per-position comparisons
//		• Sorting: bubble, quick (Lomuto), merge (stable) and selection sort
//		• Containers: fixed array, bounded stack, windowed queue, hash table
//		• Recursion: factorial with its call tree
//		• Dynamic programming: naive vs. tabulated Fibonacci
//		• Complexity: O(1), O(log n), O(n) and O(n²) growth curves
//
// ✨ Why stepwise?
//
//   - Engines never render, sleep or log: they emit events to a core.Sink
//   - Every run is a core.Cursor too, so a consumer can pull one step at a time
//   - Traces are plain data (core.Trace) that store/ persists and server/ serves
//   - Errors are sentinels (core.ErrOverflow, core.ErrInvalidInput, ...) checked with errors.Is
//
// Under the hood, everything is organized into packages:
//
//	core/        Event, Kind, Sink, Emitter, Runner (lifecycle), Cursor, Trace
//	search/      linear search engine
//	sorting/     sorting engine and Algorithm enum
//	container/   Array, Stack, Queue, HashTable
//	recursion/   factorial engine and CallNode tree
//	dp/          Fibonacci engine (Recursive, Tabulation, Compare)
//	builder/     seedable input datasets
//	complexity/  growth curves and the text chart
//	playback/    pacing Player and the zap narration sink
//	render/      terminal sink, ASCII bars, markdown reports
//	store/       trace stores: memory, redis, sqlite
//	server/      HTTP API (runs, container sessions, metrics)
//	cmd/stepwise the command-line front end
//
// Quick start:
//
//	rec := &core.Recorder{}
//	res, err := sorting.Sort(ctx, sorting.Quick, []int{5, 2, 9, 1}, sorting.WithSink(rec))
//	fmt.Print(string(core.FormatEvents(rec.Events())))
package stepwise
