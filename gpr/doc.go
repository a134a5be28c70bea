// Package gpr lexes, parses, and evaluates gene-product rules (GPRs) -
// the boolean-algebra strings attached to reactions in genome-scale
// metabolic models, e.g.
//
//	"G3 or (G4 and G5 and G6) or (G7 and G8)"
//
// 🚀 Evaluation semantics (Fang et al. 2012, doi:10.1371/journal.pcbi.1002688)
//
//	Rules are evaluated into continuous activity scores rather than
//	booleans:
//	  • or  → sum: alternative isoenzymes add capacity
//	  • and → geometric mean: an enzyme complex collapses when any
//	    subunit is near zero
//	  • gene identifier → its measured expression value (a configurable
//	    fill value when missing from the data)
//
// Rules are parsed once into an expression tree by a small
// recursive-descent parser and evaluated directly against a gene-value
// lookup. Identifiers are matched as whole tokens, so names that are
// substrings of other names (G1 vs G10) can never cross-contaminate -
// the classic hazard of rewrite-and-eval approaches to GPR scoring.
//
// Grammar (case-insensitive keywords, standard precedence: and binds
// tighter than or):
//
//	expr   := term { "or" term }
//	term   := factor { "and" factor }
//	factor := IDENT | "(" expr ")"
//
// An empty rule parses fine and evaluates to NaN, signalling "no gene
// information" to the caller's fill policy.
//
// ⚙️ Usage:
//
//	rule, err := gpr.Parse("G1 and (G2 or G3)")
//	if err != nil { ... }
//	score := rule.Evaluate(func(gene string) float64 {
//		return data.GetOr(gene, 0)
//	})
package gpr
