// SPDX-License-Identifier: MIT

// Package search provides an instrumented linear search that reports every
// probe as a core.Event.
//
// For i = 0..len-1 the engine emits Compare(i, seq[i], target); on the first
// match it emits Found(i, steps) and stops, otherwise it finishes with
// NotFound(steps). The step count always equals the number of Compare events.
//
// Complexity:
//
//	– Time:  O(n) comparisons, n = len(seq)
//	– Space: O(1) beyond the emitted events
//
// Example:
//
//	res, err := search.Linear(ctx, []int{15, 3, 8}, 8, search.WithSink(rec))
//	// res.Index == 2, res.Steps == 3, rec holds 3 Compare + 1 Found
package search
