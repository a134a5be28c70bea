// Package expression maps gene-level measurements onto per-reaction
// activity scores — the bridge between an omics data set and the
// stoichiometric model.
//
// Two interchangeable strategies implement the Integration interface:
//
//   - SingleAverage: a reaction's score is the arithmetic mean of its
//     associated genes' values (absent genes count as 0). Ignores the
//     boolean structure of the gene-product rule entirely.
//   - GeometricAndAverage: the Fang et al. 2012 method
//     (doi:10.1371/journal.pcbi.1002688). Each reaction's gene-product
//     rule is parsed and evaluated by package gpr: AND groups become
//     geometric means (enzyme complexes), OR branches add up
//     (isoenzymes). Missing genes resolve to a configurable fill value.
//
// Reactions that yield no score — no associated genes, an empty rule, or
// a rule that fails to parse — map to NaN and are patched by the
// configured fill policy at construction (default: the neutral multiplier
// 1.0; series.FillMean gives the historical mean-fill behavior instead).
// A malformed rule never aborts the mapping pass: it is Debug-logged and
// degrades to NaN, so one bad annotation in a genome-scale model cannot
// sink the other thousands of reactions.
//
// ⚙️ Usage:
//
//	data, _ := series.New(genes, values) // duplicate gene IDs rejected here
//	integ, err := expression.NewGeometricAndAverage(data, rules,
//		expression.WithGeneFill(1.0))
//	if err != nil { ... }
//	model.LoadExpression(integ)
package expression
