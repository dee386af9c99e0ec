// SPDX-License-Identifier: MIT

package builder

import (
	"slices"
	"strings"
)

// RandomInts returns n values drawn uniformly from [lo, hi).
// Complexity: O(n).
func RandomInts(n int, opts ...Option) ([]int, error) {
	cfg := newConfig(opts...)
	if err := validateSize(MethodRandomInts, n); err != nil {
		return nil, err
	}
	if err := validateRNG(MethodRandomInts, cfg); err != nil {
		return nil, err
	}
	out := make([]int, n)
	for i := range out {
		out[i] = cfg.lo + cfg.rng.Intn(cfg.span())
	}

	return out, nil
}

// Shuffled returns a Fisher-Yates permutation of a copy of values.
// An empty input yields an empty result. Complexity: O(n).
func Shuffled(values []int, opts ...Option) ([]int, error) {
	cfg := newConfig(opts...)
	if err := validateRNG(MethodShuffled, cfg); err != nil {
		return nil, err
	}
	out := slices.Clone(values)
	for i := len(out) - 1; i > 0; i-- {
		j := cfg.rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}

	return out, nil
}

// FewUnique returns n values drawn from k evenly spaced levels in [lo, hi),
// which produces many ties for stability demonstrations.
// Returns ErrBadRange if the range holds fewer than k distinct values.
func FewUnique(n, k int, opts ...Option) ([]int, error) {
	cfg := newConfig(opts...)
	if err := validateSize(MethodFewUnique, n); err != nil {
		return nil, err
	}
	if err := validateSize(MethodFewUnique, k); err != nil {
		return nil, err
	}
	if k > cfg.span() {
		return nil, builderErrorf(MethodFewUnique, ErrBadRange, "%d levels do not fit in [%d, %d)", k, cfg.lo, cfg.hi)
	}
	if err := validateRNG(MethodFewUnique, cfg); err != nil {
		return nil, err
	}
	levels := spaced(k, cfg)
	out := make([]int, n)
	for i := range out {
		out[i] = levels[cfg.rng.Intn(k)]
	}

	return out, nil
}

// Ascending returns n evenly spaced, non-decreasing values in [lo, hi).
func Ascending(n int, opts ...Option) ([]int, error) {
	cfg := newConfig(opts...)
	if err := validateSize(MethodAscending, n); err != nil {
		return nil, err
	}

	return spaced(n, cfg), nil
}

// Reversed returns Ascending(n) in descending order: the worst case for
// bubble and a degenerate pivot sequence for quick.
func Reversed(n int, opts ...Option) ([]int, error) {
	cfg := newConfig(opts...)
	if err := validateSize(MethodReversed, n); err != nil {
		return nil, err
	}
	out := spaced(n, cfg)
	slices.Reverse(out)

	return out, nil
}

// LabEquipment returns a fresh copy of the search panel's starting row.
func LabEquipment() []int { return slices.Clone(labEquipment[:]) }

// Datasets lists the names Generate understands.
func Datasets() []string {
	return []string{DatasetRandom, DatasetAscending, DatasetReversed, DatasetFewUnique, DatasetLab}
}

// Generate builds a dataset by name. n is ignored for DatasetLab; the
// few-unique dataset uses max(2, n/4) levels.
func Generate(name string, n int, opts ...Option) ([]int, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case DatasetRandom:
		return RandomInts(n, opts...)
	case DatasetAscending:
		return Ascending(n, opts...)
	case DatasetReversed:
		return Reversed(n, opts...)
	case DatasetFewUnique:
		return FewUnique(n, max(2, n/4), opts...)
	case DatasetLab:
		return LabEquipment(), nil
	default:
		return nil, builderErrorf(MethodGenerate, ErrUnknownDataset, "%q (want one of %s)", name, strings.Join(Datasets(), ", "))
	}
}

// spaced returns n values lo + i·span/n, i = 0..n-1.
func spaced(n int, cfg config) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = cfg.lo + i*cfg.span()/n
	}

	return out
}
