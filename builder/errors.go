// SPDX-License-Identifier: MIT
// Package: stepwise/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Sentinels are never formatted at the definition site; context is
//     attached with builderErrorf.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stepwise/core"
)

// ErrBadSize indicates a dataset length (or level count) below the minimum.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrNeedRandSource indicates a stochastic generator was called without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadRange indicates a value range that cannot hold the requested data.
var ErrBadRange = errors.New("builder: invalid value range")

// ErrUnknownDataset indicates an unrecognised dataset name passed to Generate.
var ErrUnknownDataset = errors.New("builder: unknown dataset")

// builderErrorf returns "<method>: <message>: <sentinel>" matching both the
// sentinel and core.ErrInvalidInput.
func builderErrorf(method string, sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w (%w)", method, fmt.Sprintf(format, args...), sentinel, core.ErrInvalidInput)
}
