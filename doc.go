// Package gemrank ranks "reporter metabolites" in genome-scale metabolic
// models (GEMs) by propagating gene/protein expression signals over the
// metabolite network.
//
// 🚀 What is gemrank?
//
//	A library + CLI that turns a stoichiometric model and expression data
//	into a metabolite ranking:
//		• Adjacency policies: derive a directed, row-stochastic metabolite
//		  graph from the stoichiometric matrix (pure / half / full stoich)
//		• GPR evaluation: gene-product rules (AND/OR boolean algebra)
//		  parsed and evaluated into per-reaction expression scores
//		• Ranking: personalized PageRank propagation with seed support
//		• Workflows: single-condition, ratio, and Fang-2012 pipelines
//
// ✨ Why gemrank?
//
//   - Deterministic numerics - fixed damping/tolerance defaults, sentinel
//     errors on non-convergence, no hidden global state
//   - Real parsing - gene-product rules go through a recursive-descent
//     parser, never string substitution
//   - Pluggable strategies - adjacency transforms, expression integrations
//     and rankers are interfaces selected at construction time
//
// Under the hood, everything is organized per concern:
//
//	adjacency/  — stoichiometric matrix → adjacency matrix policies
//	expression/ — expression-to-reaction integration strategies
//	gemio/      — GEM (JSON/CSV) and expression table I/O
//	gpr/        — gene-product-rule lexer, parser, and evaluator
//	rank/       — personalized PageRank over the metabolite graph
//	reporter/   — the Model orchestrator (cache, calculate, subnetworks)
//	series/     — ordered name-indexed float series and score utilities
//	workflow/   — end-to-end analysis pipelines
//	modelstore/ — named model download & cache (BiGG Recon3D, Rat-GEM)
//
// Quick ASCII example:
//
//	    S (m × r)            A (m × m)              scores
//	 M1 ┌ -1  0 ┐         M1 ─→ M2 ─→ M3         M3 ≥ M2 ≥ M1
//	 M2 │ +1 -1 │   =>       (row-stochastic) =>   (PageRank)
//	 M3 └  0 +1 ┘
//
// Start with reporter.New or the workflow package; see cmd/gemrank for the
// command-line entry point.
//
//	go get github.com/gemrank/gemrank
package gemrank
