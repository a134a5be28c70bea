// SPDX-License-Identifier: MIT
package expression

import (
	"math"

	"github.com/gemrank/gemrank/gpr"
	"github.com/gemrank/gemrank/series"
)

// SingleAverage scores each reaction with the arithmetic mean of its
// associated genes' expression values. Genes absent from the data count
// as 0; a reaction with no associated genes scores NaN and is patched by
// the fill policy. The rule's AND/OR structure is ignored — use
// GeometricAndAverage when it should matter.
type SingleAverage struct {
	mapped *series.Series
}

// NewSingleAverage maps the gene expression series onto the ruleset's
// reactions. The returned integration is NaN-free (fill applied).
func NewSingleAverage(data *series.Series, rules *gpr.Ruleset, opts ...Option) (*SingleAverage, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if data == nil {
		return nil, ErrNilData
	}
	if rules == nil {
		return nil, ErrNilRuleset
	}
	if rules.Len() == 0 {
		return nil, ErrEmptyRuleset
	}

	reactions := rules.Reactions()
	values := make([]float64, len(reactions))
	for i, rxn := range reactions {
		genes := rules.Genes(rxn)
		if len(genes) == 0 {
			values[i] = math.NaN()
			continue
		}
		var sum float64
		for _, g := range genes {
			sum += data.GetOr(g, 0)
		}
		values[i] = sum / float64(len(genes))
	}

	mapped, err := series.New(reactions, values)
	if err != nil {
		return nil, err
	}
	mapped.FillNaN(cfg.fill)
	return &SingleAverage{mapped: mapped}, nil
}

// Reactions implements Integration.
func (s *SingleAverage) Reactions() []string { return s.mapped.Keys() }

// MappedValues implements Integration.
func (s *SingleAverage) MappedValues() []float64 { return s.mapped.Values() }

// FillNaN implements Integration.
func (s *SingleAverage) FillNaN(fill series.FillFunc) { s.mapped.FillNaN(fill) }

// Mapped returns the reaction-indexed score series (a copy).
func (s *SingleAverage) Mapped() *series.Series { return s.mapped.Clone() }
