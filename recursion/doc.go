// SPDX-License-Identifier: MIT

// Package recursion traces a recursive factorial as a call tree.
//
// Factorial(n) emits RecurseCall on entry to every frame and RecurseReturn on
// exit, depth-first: calls in pre-order, returns in post-order. Each call gets
// a run-wide call index starting at 1; depth is the distance from the root
// (root depth 0). The run also builds the call tree, so a finished Result can
// be rendered without replaying the events.
//
//	factorial(3)          call #1 depth 0
//	└─ factorial(2)       call #2 depth 1
//	   └─ factorial(1)    call #3 depth 2, base case = 1
//
// n must lie in [MinN, MaxN]; anything else fails with core.ErrInvalidInput
// before a single event is emitted.
package recursion
