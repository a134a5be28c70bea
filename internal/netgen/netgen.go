// SPDX-License-Identifier: MIT

// Package netgen generates synthetic metabolic networks for tests and
// benchmarks: deterministic stoichiometric matrices at arbitrary scale,
// plus row-stochastic adjacencies for exercising the ranking stage alone.
//
// Every generator is deterministic. The seed defaults to a fixed value and
// only changes through WithSeed, so two runs with equal parameters always
// produce identical fixtures.
package netgen

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by the generators. Branch with errors.Is;
// option constructors panic on invalid arguments instead (programmer
// error, caught at build time of the fixture).
var (
	// ErrTooFewMetabolites is returned when a topology needs more rows.
	ErrTooFewMetabolites = errors.New("netgen: metabolite count too small")

	// ErrTooFewReactions is returned when a topology needs more columns.
	ErrTooFewReactions = errors.New("netgen: reaction count too small")

	// ErrBadOutDegree is returned for non-positive out-degrees.
	ErrBadOutDegree = errors.New("netgen: out-degree must be positive")
)

// Network is a generated stoichiometric fixture, index-aligned the same
// way a loaded model is: Metabolites with rows, Reversible with columns.
type Network struct {
	Stoich      *mat.Dense
	Metabolites []string
	Reversible  []bool
}

const (
	defaultSeed     = int64(1)
	defaultMaxCoeff = 3
)

type config struct {
	seed            int64
	reversibleEvery int // every k-th reaction reversible; 0 disables
	maxCoeff        int // random coefficients drawn from [-maxCoeff, maxCoeff]
}

func defaultConfig() config {
	return config{seed: defaultSeed, maxCoeff: defaultMaxCoeff}
}

// Option adjusts fixture generation.
type Option func(*config)

// WithSeed reseeds the generator. Equal seeds reproduce equal fixtures.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithReversibleEvery marks every k-th reaction reversible (k ≥ 1).
// Zero, the default, keeps all reactions irreversible. Panics on k < 0.
func WithReversibleEvery(k int) Option {
	if k < 0 {
		panic(fmt.Sprintf("netgen: WithReversibleEvery(%d): interval must be non-negative", k))
	}
	return func(c *config) { c.reversibleEvery = k }
}

// WithMaxCoefficient bounds random stoichiometric coefficients to
// [-c, c] (c ≥ 1). Panics on smaller bounds.
func WithMaxCoefficient(c int) Option {
	if c < 1 {
		panic(fmt.Sprintf("netgen: WithMaxCoefficient(%d): bound must be at least 1", c))
	}
	return func(cfg *config) { cfg.maxCoeff = c }
}

// metabolite names rows "M0", "M1", ... in matrix order.
func metabolite(i int) string { return "M" + strconv.Itoa(i) }

func resolve(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func names(m int) []string {
	out := make([]string, m)
	for i := range out {
		out[i] = metabolite(i)
	}
	return out
}

func flags(r int, cfg config) []bool {
	out := make([]bool, r)
	if cfg.reversibleEvery > 0 {
		for j := 0; j < r; j += cfg.reversibleEvery {
			out[j] = true
		}
	}
	return out
}

// Chain builds a linear pathway: metabolites ≥ 2 rows and one reaction
// per adjacent pair, reaction j converting M{j} into M{j+1}.
func Chain(metabolites int, opts ...Option) (*Network, error) {
	if metabolites < 2 {
		return nil, fmt.Errorf("%w: chain needs 2 metabolites, got %d", ErrTooFewMetabolites, metabolites)
	}
	cfg := resolve(opts)

	r := metabolites - 1
	stoich := mat.NewDense(metabolites, r, nil)
	for j := 0; j < r; j++ {
		stoich.Set(j, j, -1)
		stoich.Set(j+1, j, 1)
	}
	return &Network{
		Stoich:      stoich,
		Metabolites: names(metabolites),
		Reversible:  flags(r, cfg),
	}, nil
}

// Random builds a dense random stoichiometry: every cell an integer
// coefficient in [-maxCoeff, maxCoeff], so most metabolites take part in
// most reactions. This is deliberately denser than a real model to give
// transforms a worst case.
func Random(metabolites, reactions int, opts ...Option) (*Network, error) {
	if metabolites < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewMetabolites, metabolites)
	}
	if reactions < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewReactions, reactions)
	}
	cfg := resolve(opts)
	rng := rand.New(rand.NewSource(cfg.seed))

	stoich := mat.NewDense(metabolites, reactions, nil)
	span := 2*cfg.maxCoeff + 1
	for i := 0; i < metabolites; i++ {
		for j := 0; j < reactions; j++ {
			stoich.Set(i, j, float64(rng.Intn(span)-cfg.maxCoeff))
		}
	}
	return &Network{
		Stoich:      stoich,
		Metabolites: names(metabolites),
		Reversible:  flags(reactions, cfg),
	}, nil
}

// RowStochastic builds an n×n adjacency whose nonzero rows sum to one,
// with roughly outDegree off-diagonal edges per row. Rows that happen to
// draw only self-targets stay empty, which models dangling metabolites.
func RowStochastic(nodes, outDegree int, opts ...Option) (*mat.Dense, error) {
	if nodes < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewMetabolites, nodes)
	}
	if outDegree < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadOutDegree, outDegree)
	}
	cfg := resolve(opts)
	rng := rand.New(rand.NewSource(cfg.seed))

	adj := mat.NewDense(nodes, nodes, nil)
	for i := 0; i < nodes; i++ {
		var sum float64
		for k := 0; k < outDegree; k++ {
			j := rng.Intn(nodes)
			if j == i {
				continue
			}
			w := rng.Float64()
			adj.Set(i, j, adj.At(i, j)+w)
			sum += w
		}
		if sum == 0 {
			continue
		}
		for j := 0; j < nodes; j++ {
			if v := adj.At(i, j); v != 0 {
				adj.Set(i, j, v/sum)
			}
		}
	}
	return adj, nil
}
