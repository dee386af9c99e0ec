// SPDX-License-Identifier: MIT

// Package sorting provides four instrumented comparison sorts (bubble,
// quick, merge and selection) that narrate every comparison, exchange and
// placement as a core.Event.
//
// Every run works on a private copy of the input; the caller's slice is never
// touched. Comparisons and Swaps are counted per run, and a finished run ends
// with a Highlight over all indices carrying the sorted snapshot.
//
// Algorithms:
//
//	Bubble     adjacent passes, inner bound n-i-1, swap on '>'       O(n²)  stable
//	Quick      Lomuto partition, last element as pivot               O(n log n) avg
//	Merge      top-down split at ⌊(l+r)/2⌋, '<=' two-pointer merge    O(n log n) stable
//	Selection  strict '<' minimum scan, swap only when it moved      O(n²)
//
// Counting rules worth knowing when reading a trace:
//
//   - Quick exchanges elements (and counts a swap) only when i != j, but the
//     final pivot placement is always counted.
//   - Merge writes are emitted as Swap-kind "placed" events and are not
//     counted as swaps.
//
// Lifecycle:
//
//	Ready → Running → Completed | Failed | Cancelled
//
// A Sorter admits one run at a time; a second Sort or Steps while busy fails
// with core.ErrRunInProgress. A panic inside a run (including the WithFault
// test hook) is reported as core.ErrRunFailed and the run is not retried.
package sorting
