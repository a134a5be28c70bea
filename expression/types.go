// SPDX-License-Identifier: MIT
package expression

import (
	"errors"
	"log/slog"

	"github.com/gemrank/gemrank/series"
)

// DefaultGeneFill is substituted for genes referenced by a rule but absent
// from the expression data. Zero collapses AND groups containing the
// missing gene, the conservative reading of "no evidence of expression".
const DefaultGeneFill = 0.0

// Sentinel errors returned by the integration constructors.
var (
	// ErrNilData is returned when the gene expression series is nil.
	ErrNilData = errors.New("expression: gene expression series is nil")

	// ErrNilRuleset is returned when the gene-product ruleset is nil.
	ErrNilRuleset = errors.New("expression: ruleset is nil")

	// ErrEmptyRuleset is returned when the ruleset holds no reactions;
	// an expression vector of length zero cannot scale any matrix.
	ErrEmptyRuleset = errors.New("expression: ruleset holds no reactions")
)

// Integration is a per-reaction expression score set, aligned with the
// reaction (column) order of the stoichiometric matrix it was built for.
//
// Scores may be NaN only between construction and a fill; the stock
// constructors apply their fill policy before returning, so a freshly
// built Integration is always NaN-free.
type Integration interface {
	// Reactions returns the reaction identifiers in matrix column order.
	Reactions() []string
	// MappedValues returns one score per reaction, aligned with Reactions.
	MappedValues() []float64
	// FillNaN patches any remaining NaN scores in place.
	FillNaN(fill series.FillFunc)
}

// Compile-time checks: both strategies satisfy Integration.
var (
	_ Integration = (*SingleAverage)(nil)
	_ Integration = (*GeometricAndAverage)(nil)
)

// config collects the options shared by both integration strategies.
type config struct {
	geneFill float64
	fill     series.FillFunc
	log      *slog.Logger
}

func defaultConfig() config {
	return config{
		geneFill: DefaultGeneFill,
		fill:     series.FillConst(1),
		log:      slog.Default(),
	}
}

// Option configures an integration at construction time.
type Option func(*config)

// WithGeneFill sets the value substituted for genes missing from the
// expression data (GeometricAndAverage only; SingleAverage always counts
// absent genes as 0, mirroring its plain-averaging semantics).
func WithGeneFill(v float64) Option {
	return func(c *config) { c.geneFill = v }
}

// WithFill replaces the construction-time NaN fill policy (default:
// series.FillConst(1); series.FillMean() restores the historical
// fill-with-mean behavior).
func WithFill(fill series.FillFunc) Option {
	return func(c *config) { c.fill = fill }
}

// WithLogger routes per-reaction evaluation diagnostics to l instead of
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}
