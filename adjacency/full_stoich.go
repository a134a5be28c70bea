// SPDX-License-Identifier: MIT
//
// full_stoich.go — the FullStoich policy: magnitudes on both sides.
//
// Contract:
//   - both the consuming and the producing side keep their stoichiometric
//     coefficients (the consuming side by absolute value)
//   - an edge i→j therefore scales with consumed × produced amounts summed
//     over the reactions linking i to j
//   - result rows sum to 1, or to 0 for dead-end metabolites
//
// Complexity: O(m·r) pipeline + O(m²·r) product.

package adjacency

import "gonum.org/v1/gonum/mat"

// FullStoich weights edges by the full stoichiometry of both endpoints:
// |consumed(i)| × produced(j), summed over shared reactions.
type FullStoich struct{}

// Transform implements Transformer.
func (FullStoich) Transform(stoich *mat.Dense, reversible []bool, expression []float64) (*mat.Dense, error) {
	if err := validateInputs(stoich, reversible, expression); err != nil {
		return nil, err
	}

	// 1) Scale reaction columns by expression, magnitudes intact.
	scaled := mat.DenseCopyOf(stoich)
	ScaleColumns(scaled, expression)

	// 2) Expand reversible reactions into forward + reverse columns.
	uni, err := MakeUnidirectional(scaled, reversible)
	if err != nil {
		return nil, err
	}

	// 3) Split producing/consuming parts; keep magnitudes on both sides.
	pos, neg := SplitPosNeg(uni)
	consumed := negMagnitude(neg)

	// 4) |consumer|×producer product, then row normalization.
	var adj mat.Dense
	adj.Mul(consumed, pos.T())
	normalizeRows(&adj)
	return &adj, nil
}
