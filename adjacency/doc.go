// Package adjacency derives directed metabolite-adjacency matrices from
// stoichiometric matrices.
//
// A stoichiometric matrix S (metabolites × reactions, consumption negative,
// production positive) is turned into a square matrix A (metabolites ×
// metabolites) in which A[i][j] > 0 means "reaction flux can carry mass from
// metabolite i to metabolite j". Every policy follows the same pipeline:
//
//  1. scale reaction columns by per-reaction expression scores,
//  2. expand each reversible reaction into an extra sign-flipped column
//     (MakeUnidirectional), so both directions count as ordinary
//     unidirectional reactions,
//  3. split the matrix into its producing and consuming parts
//     (SplitPosNeg), discarding entries within ±SplitThreshold as noise,
//  4. combine consuming rows with producing columns into A,
//  5. normalize each row by its sum, yielding a row-stochastic matrix.
//
// The policies differ only in step 4 — in how much of the stoichiometry
// they let through:
//
//   - PureAdjacency: pure topology. Coefficients are collapsed to ±1 before
//     scaling, so only reaction structure and expression weight the edges.
//   - HalfStoich: the consuming side is binarized, the producing side keeps
//     its coefficients. Edge weight reflects how much of j each reaction
//     produces, not how much of i it eats.
//   - FullStoich: both sides keep their magnitudes.
//
// Rows of the result sum to 1, or to 0 for dead-end metabolites that no
// active reaction consumes. Zero rows are valid output and are handled
// downstream as dangling nodes during ranking.
//
// All transformations are pure: inputs are never mutated, results are
// freshly allocated, and the same inputs always produce the same matrix.
//
// Complexity: O(m·r) for the pipeline stages plus O(m²·r) for the final
// matrix product, with m metabolites and r reactions (post-expansion).
package adjacency
