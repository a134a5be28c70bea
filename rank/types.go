// SPDX-License-Identifier: MIT
package rank

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Solver defaults, matching the conventional PageRank parameterization.
const (
	// DefaultDamping is the probability of following an edge rather than
	// teleporting to the personalization vector.
	DefaultDamping = 0.85

	// DefaultTol is the per-node L1 convergence tolerance; the iteration
	// stops once Σ|x−xlast| < n·DefaultTol.
	DefaultTol = 1e-6

	// DefaultMaxIter caps the power iteration before ErrNotConverged.
	DefaultMaxIter = 100
)

// Sentinel errors returned by Propagate and Graph.
var (
	// ErrNilMatrix is returned when the adjacency matrix is nil.
	ErrNilMatrix = errors.New("rank: adjacency matrix is nil")

	// ErrNonSquare is returned when the adjacency matrix is not square.
	ErrNonSquare = errors.New("rank: adjacency matrix must be square")

	// ErrBadWeight is returned when the matrix holds a negative or
	// non-finite entry; edge weights are flux shares and must be finite
	// and non-negative.
	ErrBadWeight = errors.New("rank: edge weights must be finite and non-negative")

	// ErrSelfLoop is returned on a nonzero diagonal entry. Metabolite
	// adjacency is loop-free by construction (a reaction column cannot
	// both consume and produce the same metabolite), so a self edge
	// signals a foreign or corrupted matrix.
	ErrSelfLoop = errors.New("rank: self edges are not supported")

	// ErrSeedCount is returned when the seed count does not equal the
	// node count.
	ErrSeedCount = errors.New("rank: seed count must equal node count")

	// ErrSeedValue is returned when seeds are negative or sum to zero;
	// a personalization vector needs at least one positive weight.
	ErrSeedValue = errors.New("rank: seeds must be non-negative with a positive sum")

	// ErrNameCount is returned when the name count does not equal the
	// node count.
	ErrNameCount = errors.New("rank: name count must equal node count")

	// ErrNotConverged is returned when the power iteration exhausts
	// MaxIter without meeting the L1 tolerance.
	ErrNotConverged = errors.New("rank: power iteration failed to converge")
)

// Ranker propagates scores over a metabolite adjacency matrix.
//
// adj is the m×m row-stochastic (or zero-row) adjacency matrix; seeds is
// either empty (uniform personalization) or one non-negative weight per
// node; names annotate nodes and must match the node count when supplied.
// The result holds one score per node in row order, each ≥ 0, summing to
// ≈1. Implementations must not mutate their inputs.
type Ranker interface {
	Propagate(adj *mat.Dense, seeds []float64, names []string) ([]float64, error)
}

// Compile-time check: PageRank satisfies Ranker.
var _ Ranker = (*PageRank)(nil)

// Stable panic messages for nonsensical option values (programmer errors).
const (
	panicDampingInvalid = "rank: WithDamping: damping must be in (0, 1)"
	panicTolInvalid     = "rank: WithTol: tol must be positive"
	panicMaxIterInvalid = "rank: WithMaxIter: maxIter must be at least 1"
)

// Option configures a PageRank instance at construction time.
type Option func(*PageRank)

// WithDamping sets the damping factor α. Panics unless 0 < damping < 1.
func WithDamping(damping float64) Option {
	if !(damping > 0 && damping < 1) {
		panic(panicDampingInvalid)
	}
	return func(p *PageRank) { p.damping = damping }
}

// WithTol sets the L1 convergence tolerance. Panics unless tol > 0.
func WithTol(tol float64) Option {
	if !(tol > 0) {
		panic(panicTolInvalid)
	}
	return func(p *PageRank) { p.tol = tol }
}

// WithMaxIter caps the number of power iterations. Panics unless ≥ 1.
func WithMaxIter(maxIter int) Option {
	if maxIter < 1 {
		panic(panicMaxIterInvalid)
	}
	return func(p *PageRank) { p.maxIter = maxIter }
}
