// Package gemio loads genome-scale metabolic models and expression data
// from disk and writes ranking results back out.
//
// ✨ What it handles:
//
//   - COBRA-style JSON models (LoadJSON): metabolite and reaction IDs,
//     stoichiometric coefficients, flux bounds (reversibility is
//     lower_bound < 0) and gene-product rules.
//   - Plain matrix CSV models (LoadMatrixCSV): metabolite rows × reaction
//     columns, no rules, reversibilities supplied separately.
//   - Expression tables (ReadExpression): CSV/TSV with gene IDs in the
//     first column, delimiter sniffed from the header line.
//   - Result files (WriteResults): .csv or .tsv chosen by suffix.
//
// The in-memory document is GEM, a plain data carrier. It stays decoupled
// from the ranking pipeline: (*GEM).Model assembles a reporter.Model and
// (*GEM).Ruleset a gpr.Ruleset when the caller is ready to rank.
//
// ⚙️ IDs are load-bearing everywhere in this package: duplicate metabolite,
// reaction or gene IDs are rejected at parse time rather than silently
// collapsed downstream.
package gemio
