// SPDX-License-Identifier: MIT
//
// pure.go — the PureAdjacency policy: topology only.
//
// Contract:
//   - coefficients are collapsed to ±1 before anything else, so the amount
//     of a metabolite a reaction moves never weights an edge
//   - expression scores still scale columns — a silent reaction (score
//     below SplitThreshold) contributes no edges at all
//   - result rows sum to 1, or to 0 for dead-end metabolites
//
// Complexity: O(m·r) pipeline + O(m²·r) product.

package adjacency

import "gonum.org/v1/gonum/mat"

// PureAdjacency derives adjacency from reaction topology alone. It is the
// default policy: an edge i→j is the expression-weighted count of reactions
// that consume i and produce j, independent of stoichiometric magnitudes.
type PureAdjacency struct{}

// Transform implements Transformer.
func (PureAdjacency) Transform(stoich *mat.Dense, reversible []bool, expression []float64) (*mat.Dense, error) {
	if err := validateInputs(stoich, reversible, expression); err != nil {
		return nil, err
	}

	// 1) Collapse coefficients to unit sign so magnitudes carry no weight.
	signed := signNormalize(stoich)

	// 2) Scale reaction columns by expression.
	ScaleColumns(signed, expression)

	// 3) Expand reversible reactions into forward + reverse columns.
	uni, err := MakeUnidirectional(signed, reversible)
	if err != nil {
		return nil, err
	}

	// 4) Split producing/consuming parts; binarize the consuming side.
	pos, neg := SplitPosNeg(uni)
	consuming := consumerIndicator(neg)

	// 5) Consumer×producer co-participation, then row normalization.
	var adj mat.Dense
	adj.Mul(consuming, pos.T())
	normalizeRows(&adj)
	return &adj, nil
}
