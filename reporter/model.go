// SPDX-License-Identifier: MIT
package reporter

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/mat"

	"github.com/gemrank/gemrank/adjacency"
	"github.com/gemrank/gemrank/expression"
	"github.com/gemrank/gemrank/rank"
	"github.com/gemrank/gemrank/series"
)

// Model binds a stoichiometric matrix to the ranking pipeline.
//
// The zero value is not usable; construct with New.
type Model struct {
	stoich     *mat.Dense // m metabolites × r reactions, never mutated
	names      []string   // metabolite names, len == m
	reversible []bool     // reaction reversibility flags, len == r

	transformer adjacency.Transformer
	ranker      rank.Ranker

	expr  []float64 // per-reaction expression weights, len == r
	integ expression.Integration
	seeds []float64 // personalization seeds, len == m or nil

	adj    *mat.Dense // cached adjacency, valid only while fresh
	fresh  bool
	scores []float64 // raw scores from the last Calculate

	log *slog.Logger

	// construction-time staging for WithSeeds, validated by New.
	pendingSeeds []float64
	seedsSet     bool
}

// New validates the model inputs and assembles a Model in the Stale state.
//
// stoich must be a non-empty m×r matrix, names must hold m unique
// metabolite names and reversible must hold r flags. Expression defaults
// to all-ones, so an expression-free Calculate ranks pure topology.
func New(stoich *mat.Dense, names []string, reversible []bool, opts ...Option) (*Model, error) {
	if stoich == nil {
		return nil, ErrNilMatrix
	}
	m, r := stoich.Dims()
	if m == 0 || r == 0 {
		return nil, ErrEmptyMatrix
	}
	if len(names) != m {
		return nil, fmt.Errorf("%w: %d names for %d rows", ErrNameCount, len(names), m)
	}
	seen := make(map[string]struct{}, m)
	for _, name := range names {
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		seen[name] = struct{}{}
	}
	if len(reversible) != r {
		return nil, fmt.Errorf("%w: %d flags for %d columns", ErrReversibilityCount, len(reversible), r)
	}

	expr := make([]float64, r)
	for i := range expr {
		expr[i] = 1
	}

	model := &Model{
		stoich:      mat.DenseCopyOf(stoich),
		names:       append([]string(nil), names...),
		reversible:  append([]bool(nil), reversible...),
		transformer: adjacency.PureAdjacency{},
		ranker:      rank.NewPageRank(),
		expr:        expr,
		log:         slog.Default(),
	}
	for _, opt := range opts {
		opt(model)
	}
	if model.seedsSet {
		if err := model.LoadSeeds(model.pendingSeeds); err != nil {
			return nil, err
		}
		model.pendingSeeds = nil
		model.seedsSet = false
	}
	return model, nil
}

// Dims returns the metabolite and reaction counts.
func (m *Model) Dims() (metabolites, reactions int) {
	return m.stoich.Dims()
}

// Names returns a copy of the metabolite names in matrix row order.
func (m *Model) Names() []string {
	return append([]string(nil), m.names...)
}

// Seeds returns a copy of the current seed vector, or nil when unseeded.
func (m *Model) Seeds() []float64 {
	if m.seeds == nil {
		return nil
	}
	return append([]float64(nil), m.seeds...)
}

// Scores returns a copy of the raw score vector from the most recent
// Calculate, or nil when Calculate has not run yet.
func (m *Model) Scores() []float64 {
	if m.scores == nil {
		return nil
	}
	return append([]float64(nil), m.scores...)
}

// LoadSeeds replaces the personalization seed vector. A nil vector clears
// the seeds (uniform personalization); otherwise the length must equal the
// metabolite count.
//
// Seeds bias the ranking only, so the adjacency cache stays valid.
func (m *Model) LoadSeeds(seeds []float64) error {
	if seeds == nil {
		m.seeds = nil
		return nil
	}
	rows, _ := m.stoich.Dims()
	if len(seeds) != rows {
		return fmt.Errorf("%w: %d seeds for %d metabolites", ErrSeedCount, len(seeds), rows)
	}
	m.seeds = append([]float64(nil), seeds...)
	return nil
}

// LoadExpression installs per-reaction expression weights from integ and
// invalidates the adjacency cache. The mapped vector length must equal the
// reaction count.
//
// Loading over existing expression data is allowed (baseline/comparison
// workflows do exactly that) and logs a warning rather than failing.
func (m *Model) LoadExpression(integ expression.Integration) error {
	if integ == nil {
		return ErrNilExpression
	}
	mapped := integ.MappedValues()
	_, r := m.stoich.Dims()
	if len(mapped) != r {
		return fmt.Errorf("%w: %d values for %d reactions", ErrExpressionLength, len(mapped), r)
	}
	if m.integ != nil {
		m.log.Warn("reporter: previous expression data overwritten")
	}
	m.integ = integ
	m.expr = append([]float64(nil), mapped...)
	m.fresh = false
	return nil
}

// Calculate ranks the metabolites and returns the scores as a
// name-indexed series.
//
// The adjacency matrix is rebuilt only when stale; while it stays fresh,
// repeated calls return bit-identical scores.
func (m *Model) Calculate() (*series.Series, error) {
	if err := m.ensureAdjacency(); err != nil {
		return nil, err
	}
	scores, err := m.ranker.Propagate(m.adj, m.seeds, m.names)
	if err != nil {
		return nil, err
	}
	m.scores = scores
	return series.New(m.names, append([]float64(nil), scores...))
}

// Adjacency returns a copy of the metabolite-to-metabolite adjacency
// matrix, rebuilding it first if stale. Mutating the copy does not affect
// the model.
func (m *Model) Adjacency() (*mat.Dense, error) {
	if err := m.ensureAdjacency(); err != nil {
		return nil, err
	}
	return mat.DenseCopyOf(m.adj), nil
}

// ensureAdjacency performs the Stale → Fresh transition: a wholesale
// transform of the stoichiometric matrix under the current expression
// weights. Fresh models return immediately.
func (m *Model) ensureAdjacency() error {
	if m.fresh {
		return nil
	}
	adj, err := m.transformer.Transform(m.stoich, m.reversible, m.expr)
	if err != nil {
		return err
	}
	m.adj = adj
	m.fresh = true
	m.log.Debug("reporter: adjacency cache rebuilt")
	return nil
}
