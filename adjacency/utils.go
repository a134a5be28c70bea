// SPDX-License-Identifier: MIT
package adjacency

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// validateInputs enforces the shared Transform contract: non-nil, non-empty
// stoichiometry with one reversibility flag and one expression score per
// reaction column.
func validateInputs(stoich *mat.Dense, reversible []bool, expression []float64) error {
	if stoich == nil {
		return ErrNilMatrix
	}
	m, r := stoich.Dims()
	if m == 0 || r == 0 {
		return ErrEmptyMatrix
	}
	if len(reversible) != r {
		return fmt.Errorf("adjacency: %d reversibility flags for %d reactions: %w",
			len(reversible), r, ErrReversibilityLength)
	}
	if len(expression) != r {
		return fmt.Errorf("adjacency: %d expression scores for %d reactions: %w",
			len(expression), r, ErrExpressionLength)
	}
	return nil
}

// MakeUnidirectional expands reversible reactions: for every column j with
// reversible[j] == true, a sign-flipped copy of that column is appended, so
// the reverse direction participates as an independent unidirectional
// reaction. Appended columns keep the relative order of their originals.
// The input is never mutated; with no reversible reactions the result is a
// plain copy.
func MakeUnidirectional(stoich *mat.Dense, reversible []bool) (*mat.Dense, error) {
	if stoich == nil {
		return nil, ErrNilMatrix
	}
	m, r := stoich.Dims()
	if len(reversible) != r {
		return nil, fmt.Errorf("adjacency: %d reversibility flags for %d reactions: %w",
			len(reversible), r, ErrReversibilityLength)
	}

	var k int
	for _, rev := range reversible {
		if rev {
			k++
		}
	}
	if k == 0 {
		return mat.DenseCopyOf(stoich), nil
	}

	flipped := mat.NewDense(m, k, nil)
	col := 0
	for j, rev := range reversible {
		if !rev {
			continue
		}
		for i := 0; i < m; i++ {
			flipped.Set(i, col, -stoich.At(i, j))
		}
		col++
	}

	out := mat.NewDense(m, r+k, nil)
	out.Augment(stoich, flipped)
	return out, nil
}

// SplitPosNeg splits a matrix into its producing and consuming parts. The
// positive part keeps entries > +SplitThreshold, the negative part keeps
// entries < -SplitThreshold; everything in between is treated as numeric
// noise and lands in neither part. The input is never mutated.
func SplitPosNeg(m *mat.Dense) (pos, neg *mat.Dense) {
	var p, n mat.Dense
	p.Apply(func(_, _ int, v float64) float64 {
		if v > SplitThreshold {
			return v
		}
		return 0
	}, m)
	n.Apply(func(_, _ int, v float64) float64 {
		if v < -SplitThreshold {
			return v
		}
		return 0
	}, m)
	return &p, &n
}

// ScaleColumns multiplies column j of m by expression[j], in place. This is
// right-multiplication by diag(expression): each reaction's coefficients are
// weighted by that reaction's activity score.
func ScaleColumns(m *mat.Dense, expression []float64) {
	rows, cols := m.Dims()
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			m.Set(i, j, m.At(i, j)*expression[j])
		}
	}
}

// signNormalize collapses every coefficient to its sign: v / |v + Epsilon|
// is ±1 for any |v| > Epsilon and exactly 0 for zero entries.
func signNormalize(stoich *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 {
		return v / math.Abs(v+Epsilon)
	}, stoich)
	return &out
}

// consumerIndicator flattens the consuming part to a 0/1 mask. Every kept
// entry sits below -SplitThreshold, so v/(v+Epsilon) evaluates to 1 within
// floating-point accuracy; zeros stay zero.
func consumerIndicator(neg *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 {
		return v / (v + Epsilon)
	}, neg)
	return &out
}

// negMagnitude replaces the consuming part by its absolute values.
func negMagnitude(neg *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 {
		return math.Abs(v)
	}, neg)
	return &out
}

// normalizeRows divides every row by its sum plus Epsilon, in place. Rows
// with a positive sum become stochastic; all-zero rows stay all-zero.
func normalizeRows(a *mat.Dense) {
	rows, cols := a.Dims()
	for i := 0; i < rows; i++ {
		sum := Epsilon
		for j := 0; j < cols; j++ {
			sum += a.At(i, j)
		}
		for j := 0; j < cols; j++ {
			a.Set(i, j, a.At(i, j)/sum)
		}
	}
}
