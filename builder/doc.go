// SPDX-License-Identifier: MIT

// Package builder produces the integer datasets the engines run on: random
// bar charts for the sorting panel, shuffled lab rows for the search panel
// and the ordered or low-cardinality inputs used to show best and worst
// cases.
//
// The package follows the functional-options style:
//
//   - Option mutates a config before generation.
//   - Option constructors validate and panic on meaningless values
//     (WithRand(nil), WithRange(lo >= hi)); generators never panic.
//   - Randomness is explicit: stochastic generators need WithSeed or
//     WithRand and otherwise fail with ErrNeedRandSource.
//
// Generators:
//
//	RandomInts(n)     n values uniform in [lo, hi)            stochastic
//	Shuffled(values)  Fisher-Yates permutation of a copy      stochastic
//	FewUnique(n, k)   n values drawn from k distinct levels   stochastic
//	Ascending(n)      n evenly spaced values in [lo, hi)      deterministic
//	Reversed(n)       Ascending(n) in descending order        deterministic
//	LabEquipment()    the canonical search row                deterministic
//
// Errors are returned wrapped with the generator name; every validation
// failure also matches core.ErrInvalidInput so transports can classify it.
package builder
