// Package rank propagates metabolite scores over an adjacency matrix via
// personalized PageRank.
//
// The adjacency matrix (as produced by package adjacency) is interpreted as
// a weighted directed graph: every row index is a node, every nonzero entry
// a directed edge. Scores then flow along edges in a damped power iteration:
//
//	x ← α·xᵀP + α·(dangling mass)·p + (1−α)·p
//
// where P is the out-weight-normalized transition matrix, p the
// personalization vector, and α the damping factor. Rows of the input that
// sum to zero (dead-end metabolites) are dangling nodes; their mass is
// redistributed according to p each step, so the result stays stochastic.
//
// Personalization: with no seeds every node receives the uniform prior
// 1/n. Non-empty seeds must supply one non-negative weight per node; they
// are normalized to sum 1 and bias both the dangling redistribution and the
// teleport term, pulling rank toward the seeded metabolites.
//
// Convergence follows the L1 criterion Σ|x−xlast| < n·tol; exceeding
// MaxIter without meeting it returns ErrNotConverged (fatal, never
// retried). Iteration order is fixed by row index, so identical inputs
// yield bit-identical scores.
//
// ⚙️ Usage:
//
//	pr := rank.NewPageRank(rank.WithDamping(0.9))
//	scores, err := pr.Propagate(adj, nil, names)
//	if err != nil { ... }
//
// Complexity: O(E) per iteration after an O(n²) scan of the matrix, with
// E the number of nonzero entries.
package rank
