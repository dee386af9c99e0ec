// SPDX-License-Identifier: MIT

// Package dp contrasts two Fibonacci strategies: naive recursion, which
// re-derives every subproblem, and bottom-up tabulation, which fills each cell
// of a table exactly once.
//
// Naive emits one RecurseCall per invocation (base cases included) and counts
// each as a calculation. Tabulate seeds F(0) and F(1) with a Highlight each
// and then emits one DPCompute per cell i = 2..n carrying the two source
// values and their sum, so a run for n holds exactly n-1 DPCompute events.
//
// Compare runs both and reports a work-saved percentage against the
// closed-form estimate φⁿ/√5 of the naive call count. The figure is
// illustrative; it mirrors the classroom panel rather than measuring anything.
//
// n must lie in [MinN, MaxN]; anything else fails with core.ErrInvalidInput.
package dp
