package workflow

import (
	"log/slog"

	"github.com/gemrank/gemrank/adjacency"
	"github.com/gemrank/gemrank/rank"
)

// DefaultGeneFill is the expression value assumed for genes absent from
// the input data in the Standard flow. One is neutral under both the
// geometric mean and the ratio, so unmeasured genes neither boost nor
// punish their reactions.
const DefaultGeneFill = 1.0

// Option adjusts a workflow run.
type Option func(*config)

type config struct {
	transformer adjacency.Transformer
	ranker      rank.Ranker
	geneFill    float64
	log         *slog.Logger
}

func defaultConfig() config {
	return config{
		transformer: adjacency.PureAdjacency{},
		ranker:      rank.NewPageRank(),
		geneFill:    DefaultGeneFill,
		log:         slog.Default(),
	}
}

// WithTransformer replaces the default PureAdjacency stoichiometry
// transform. A nil transformer is ignored.
func WithTransformer(t adjacency.Transformer) Option {
	return func(c *config) {
		if t != nil {
			c.transformer = t
		}
	}
}

// WithRanker replaces the default PageRank ranker. A nil ranker is
// ignored.
func WithRanker(r rank.Ranker) Option {
	return func(c *config) {
		if r != nil {
			c.ranker = r
		}
	}
}

// WithGeneFill sets the value assumed for genes missing from the
// expression data in the Standard flow.
func WithGeneFill(v float64) Option {
	return func(c *config) { c.geneFill = v }
}

// WithLogger routes workflow diagnostics to log. A nil logger is ignored.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}
