// SPDX-License-Identifier: MIT
package reporter

import (
	"errors"
	"log/slog"

	"github.com/gemrank/gemrank/adjacency"
	"github.com/gemrank/gemrank/rank"
)

var (
	// ErrNilMatrix is returned by New when the stoichiometric matrix is nil.
	ErrNilMatrix = errors.New("reporter: stoichiometric matrix is nil")

	// ErrEmptyMatrix is returned by New when the stoichiometric matrix has
	// zero rows or zero columns.
	ErrEmptyMatrix = errors.New("reporter: stoichiometric matrix is empty")

	// ErrNameCount is returned by New when the number of metabolite names
	// differs from the number of matrix rows.
	ErrNameCount = errors.New("reporter: metabolite name count must equal row count")

	// ErrDuplicateName is returned by New when two metabolites share a name.
	ErrDuplicateName = errors.New("reporter: duplicate metabolite name")

	// ErrReversibilityCount is returned by New when the number of
	// reversibility flags differs from the number of matrix columns.
	ErrReversibilityCount = errors.New("reporter: reversibility count must equal reaction count")

	// ErrSeedCount is returned by LoadSeeds when the seed vector length
	// differs from the number of metabolites.
	ErrSeedCount = errors.New("reporter: seed count must equal metabolite count")

	// ErrNilExpression is returned by LoadExpression on a nil integration.
	ErrNilExpression = errors.New("reporter: expression integration is nil")

	// ErrExpressionLength is returned by LoadExpression when the mapped
	// expression vector length differs from the number of reactions.
	ErrExpressionLength = errors.New("reporter: mapped expression length must equal reaction count")
)

// Option adjusts Model construction.
type Option func(*Model)

// WithTransformer replaces the default PureAdjacency stoichiometry
// transform. A nil transformer is ignored.
func WithTransformer(t adjacency.Transformer) Option {
	return func(m *Model) {
		if t != nil {
			m.transformer = t
		}
	}
}

// WithRanker replaces the default PageRank ranker. A nil ranker is ignored.
func WithRanker(r rank.Ranker) Option {
	return func(m *Model) {
		if r != nil {
			m.ranker = r
		}
	}
}

// WithSeeds sets the initial seed vector. It is validated by New exactly
// like LoadSeeds, so a wrong-length vector fails construction.
func WithSeeds(seeds []float64) Option {
	return func(m *Model) {
		m.pendingSeeds = seeds
		m.seedsSet = true
	}
}

// WithLogger routes Model diagnostics to log. A nil logger is ignored.
func WithLogger(log *slog.Logger) Option {
	return func(m *Model) {
		if log != nil {
			m.log = log
		}
	}
}
