// Package reporter orchestrates the reporter-metabolite pipeline around a
// single Model: stoichiometric matrix in, name-indexed metabolite scores
// out.
//
// A Model owns the stoichiometric matrix (m metabolites × r reactions),
// the metabolite names, the reaction reversibility flags, and the two
// pluggable strategies: an adjacency.Transformer (default PureAdjacency)
// and a rank.Ranker (default PageRank). Expression data enters as an
// expression.Integration; seeds bias the ranking personalization.
//
// The adjacency matrix is cached behind an explicit two-state machine:
//
//	Stale ──Calculate/Subnetworks/Adjacency──▶ Fresh
//	Fresh ──LoadExpression──────────────────▶ Stale
//
// Recomputation is lazy (first use after invalidation) and wholesale —
// the cache is never patched incrementally. LoadSeeds does NOT invalidate
// the cache: seeds only personalize the ranking, the graph is unchanged.
// While Fresh, Calculate is idempotent: repeated calls return bit-identical
// scores.
//
// Loading a second expression data set over an existing one is a
// legitimate workflow (baseline vs. comparison condition) and therefore
// warns instead of failing.
//
// Models are not safe for concurrent use: a LoadExpression+Calculate pair
// is a read-modify-use sequence that callers must serialize externally.
//
// ⚙️ Usage:
//
//	m, err := reporter.New(stoich, names, reversible)
//	if err != nil { ... }
//	if err := m.LoadExpression(integ); err != nil { ... }
//	scores, err := m.Calculate()
package reporter
