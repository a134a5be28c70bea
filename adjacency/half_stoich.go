// SPDX-License-Identifier: MIT
//
// half_stoich.go — the HalfStoich policy: producer magnitudes only.
//
// Contract:
//   - the consuming side is binarized exactly as in PureAdjacency
//   - the producing side keeps its stoichiometric coefficients, so an edge
//     i→j grows with how much of j the shared reactions produce
//   - result rows sum to 1, or to 0 for dead-end metabolites
//
// Complexity: O(m·r) pipeline + O(m²·r) product.

package adjacency

import "gonum.org/v1/gonum/mat"

// HalfStoich weights edges by producer-side stoichiometry: consumption is a
// 0/1 participation mask while production keeps its coefficients.
type HalfStoich struct{}

// Transform implements Transformer.
func (HalfStoich) Transform(stoich *mat.Dense, reversible []bool, expression []float64) (*mat.Dense, error) {
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

	// 3) Split producing/consuming parts; binarize the consuming side only.
	pos, neg := SplitPosNeg(uni)
	consuming := consumerIndicator(neg)

	// 4) Consumer×producer product, then row normalization.
	var adj mat.Dense
	adj.Mul(consuming, pos.T())
	normalizeRows(&adj)
	return &adj, nil
}
