// SPDX-License-Identifier: MIT
package expression

import (
	"math"

	"github.com/gemrank/gemrank/gpr"
	"github.com/gemrank/gemrank/series"
)

// GeometricAndAverage scores each reaction by evaluating its gene-product
// rule under the Fang et al. 2012 semantics: OR branches sum (alternative
// isoenzymes add capacity), AND groups take the geometric mean (an enzyme
// complex collapses with its weakest subunit). Genes missing from the
// data resolve to the configured gene fill (default 0).
//
// Empty rules and rules that fail to parse score NaN — Debug-logged, never
// fatal — and are patched by the fill policy before the constructor
// returns.
type GeometricAndAverage struct {
	mapped *series.Series
}

// NewGeometricAndAverage parses and evaluates every rule in the ruleset
// against the gene expression series. The returned integration is NaN-free
// (fill applied).
func NewGeometricAndAverage(data *series.Series, rules *gpr.Ruleset, opts ...Option) (*GeometricAndAverage, error) {
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

	lookup := func(gene string) float64 {
		return data.GetOr(gene, cfg.geneFill)
	}

	reactions := rules.Reactions()
	values := make([]float64, len(reactions))
	for i, rxn := range reactions {
		text, _ := rules.Rule(rxn)
		rule, err := gpr.Parse(text)
		if err != nil {
			cfg.log.Debug("expression: rule evaluation degraded to NaN",
				"reaction", rxn, "rule", text, "err", err)
			values[i] = math.NaN()
			continue
		}
		values[i] = rule.Evaluate(lookup) // empty rule evaluates to NaN
	}

	mapped, err := series.New(reactions, values)
	if err != nil {
		return nil, err
	}
	mapped.FillNaN(cfg.fill)
	return &GeometricAndAverage{mapped: mapped}, nil
}

// Reactions implements Integration.
func (g *GeometricAndAverage) Reactions() []string { return g.mapped.Keys() }

// MappedValues implements Integration.
func (g *GeometricAndAverage) MappedValues() []float64 { return g.mapped.Values() }

// FillNaN implements Integration.
func (g *GeometricAndAverage) FillNaN(fill series.FillFunc) { g.mapped.FillNaN(fill) }

// Mapped returns the reaction-indexed score series (a copy).
func (g *GeometricAndAverage) Mapped() *series.Series { return g.mapped.Clone() }
