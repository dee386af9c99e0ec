// SPDX-License-Identifier: MIT

// Package complexity provides the Big-O growth curves of the classroom chart
// and a text plot for terminals.
//
// The curves are illustrative shapes scaled to share one 0..100 axis over
// x = 1..50, not exact operation counts:
//
//	O(1)      5
//	O(log n)  8·log2(x+1)
//	O(n)      0.8·x
//	O(n²)     x²/25
//
// Ratio reports how far a linear scan has progressed through its input, the
// indicator shown under the search panel.
package complexity
