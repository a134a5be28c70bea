// SPDX-License-Identifier: MIT
package adjacency

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Numeric policy shared by all transformations.
const (
	// SplitThreshold separates genuine stoichiometric coefficients from
	// numeric noise: entries in [-SplitThreshold, +SplitThreshold] belong to
	// neither the producing nor the consuming part of the matrix.
	SplitThreshold = 1e-3

	// Epsilon guards every division in the pipeline. Adding it to a
	// denominator maps all-zero rows to all-zero output instead of NaN and
	// is lost to rounding for any denominator of realistic magnitude.
	Epsilon = 1e-20
)

// Sentinel errors returned by Transform and the exported helpers.
var (
	// ErrNilMatrix is returned when the stoichiometric matrix is nil.
	ErrNilMatrix = errors.New("adjacency: stoichiometric matrix is nil")

	// ErrEmptyMatrix is returned when the stoichiometric matrix has no rows
	// or no columns.
	ErrEmptyMatrix = errors.New("adjacency: stoichiometric matrix has zero dimensions")

	// ErrReversibilityLength is returned when the reversibility slice does
	// not have one entry per reaction column.
	ErrReversibilityLength = errors.New("adjacency: reversibility count must equal reaction count")

	// ErrExpressionLength is returned when the expression slice does not
	// have one entry per reaction column.
	ErrExpressionLength = errors.New("adjacency: expression length must equal reaction count")
)

// Transformer converts a stoichiometric matrix into a directed,
// row-stochastic metabolite-adjacency matrix.
//
// stoich is m×r with consumption negative and production positive;
// reversible and expression carry one entry per reaction column (length r,
// before reversibility expansion). The result is m×m. Implementations must
// not mutate their inputs.
type Transformer interface {
	Transform(stoich *mat.Dense, reversible []bool, expression []float64) (*mat.Dense, error)
}

// Compile-time checks: every policy satisfies Transformer.
var (
	_ Transformer = PureAdjacency{}
	_ Transformer = HalfStoich{}
	_ Transformer = FullStoich{}
)
