package gemio

import (
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/gemrank/gemrank/gpr"
	"github.com/gemrank/gemrank/reporter"
)

// GEM is an in-memory genome-scale metabolic model: the stoichiometric
// matrix plus the identifiers and annotations needed to rank it.
//
// Slices are index-aligned with the matrix: Metabolites with rows,
// Reactions, Reversible, Rules and Genes with columns. Rules holds the
// raw gene-product rule text ("" when a reaction has none) and Genes the
// gene IDs extracted from it.
type GEM struct {
	Metabolites []string
	Reactions   []string
	Stoich      *mat.Dense
	Reversible  []bool
	Rules       []string
	Genes       [][]string
}

// Dims returns the metabolite and reaction counts.
func (g *GEM) Dims() (metabolites, reactions int) {
	return len(g.Metabolites), len(g.Reactions)
}

// Model assembles a reporter.Model from the document. Expression data and
// seeds are loaded onto the model afterwards by the caller.
func (g *GEM) Model(opts ...reporter.Option) (*reporter.Model, error) {
	return reporter.New(g.Stoich, g.Metabolites, g.Reversible, opts...)
}

// Ruleset collects the per-reaction gene-product rules in column order.
func (g *GEM) Ruleset() (*gpr.Ruleset, error) {
	rs := gpr.NewRuleset()
	for i, rxn := range g.Reactions {
		if err := rs.Add(rxn, g.Rules[i], g.Genes[i]); err != nil {
			return nil, err
		}
	}
	return rs, nil
}

// exchangePrefixes mark reactions that move mass across the model
// boundary rather than between metabolites.
var exchangePrefixes = []string{"OF_", "EX_"}

// IsExchange reports whether a reaction ID names an exchange or objective
// pseudo-reaction.
func IsExchange(id string) bool {
	for _, prefix := range exchangePrefixes {
		if strings.HasPrefix(id, prefix) {
			return true
		}
	}
	return false
}

// WithoutExchanges returns a copy of the document with all exchange
// columns removed. Metabolite rows are kept even when dropping a column
// disconnects them; isolated metabolites simply rank at the dangling
// baseline.
func (g *GEM) WithoutExchanges() *GEM {
	kept := make([]int, 0, len(g.Reactions))
	for i, rxn := range g.Reactions {
		if !IsExchange(rxn) {
			kept = append(kept, i)
		}
	}

	m := len(g.Metabolites)
	out := &GEM{
		Metabolites: append([]string(nil), g.Metabolites...),
		Reactions:   make([]string, 0, len(kept)),
		Reversible:  make([]bool, 0, len(kept)),
		Rules:       make([]string, 0, len(kept)),
		Genes:       make([][]string, 0, len(kept)),
	}
	if len(kept) == 0 {
		// All columns were exchanges. Leave Stoich nil; Model rejects it.
		return out
	}
	stoich := mat.NewDense(m, len(kept), nil)
	out.Stoich = stoich
	for col, i := range kept {
		out.Reactions = append(out.Reactions, g.Reactions[i])
		out.Reversible = append(out.Reversible, g.Reversible[i])
		out.Rules = append(out.Rules, g.Rules[i])
		out.Genes = append(out.Genes, append([]string(nil), g.Genes[i]...))
		for row := 0; row < m; row++ {
			stoich.Set(row, col, g.Stoich.At(row, i))
		}
	}
	return out
}
