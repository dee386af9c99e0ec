// SPDX-License-Identifier: MIT

// Package container implements the four instrumented containers of the
// data-structure demos: a fixed-capacity slot Array, a bounded LIFO Stack, a
// windowed FIFO Queue and a display-oriented HashTable.
//
// Every mutating or inspecting operation validates its input, applies the
// change and emits core.Events to the configured sink. Capacity and emptiness
// violations are returned as wrapped core sentinels (core.ErrOverflow,
// core.ErrUnderflow, …) and never corrupt the container. Searches report
// Found/NotFound as ordinary outcomes, not errors.
//
// Defaults follow the demo panels:
//
//	Array      10 slots
//	Stack      depth 8
//	Queue      10 logical slots over a [front, rear) window
//	HashTable  10 buckets, hash(key) = Σ code(key[i])·(i+1) mod buckets
//
// Containers are plain values with no internal locking; share one between
// goroutines only behind your own mutex (the HTTP server keeps one set per
// session behind a session lock).
package container
