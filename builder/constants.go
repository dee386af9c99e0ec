// SPDX-License-Identifier: MIT

package builder

// Method names prefixed to errors for context.
const (
	MethodRandomInts = "RandomInts"
	MethodShuffled   = "Shuffled"
	MethodFewUnique  = "FewUnique"
	MethodAscending  = "Ascending"
	MethodReversed   = "Reversed"
	MethodGenerate   = "Generate"
)

// Sorting panel defaults: twelve bars with heights in [10, 90).
const (
	DefaultSize = 12
	DefaultLo   = 10
	DefaultHi   = 90
)

// MinSize is the smallest dataset a generator accepts.
const MinSize = 1

// Dataset names understood by Generate.
const (
	DatasetRandom    = "random"
	DatasetAscending = "ascending"
	DatasetReversed  = "reversed"
	DatasetFewUnique = "few-unique"
	DatasetLab       = "lab"
)

// labEquipment is the search panel's starting row.
var labEquipment = [...]int{15, 3, 8, 12, 9, 1, 7, 20, 4, 11}
