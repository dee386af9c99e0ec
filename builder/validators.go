// SPDX-License-Identifier: MIT

package builder

// validateSize ensures n ≥ MinSize.
func validateSize(method string, n int) error {
	if n < MinSize {
		return builderErrorf(method, ErrBadSize, "length must be ≥ %d, got %d", MinSize, n)
	}

	return nil
}

// validateRNG ensures a stochastic generator has a random source.
func validateRNG(method string, cfg config) error {
	if cfg.rng == nil {
		return builderErrorf(method, ErrNeedRandSource, "use WithSeed or WithRand")
	}

	return nil
}
