// Package workflow bundles the end-to-end ranking flows: model plus
// expression data in, name-indexed metabolite scores out.
//
// Each flow wires the same pipeline — build a reporter.Model from the
// GEM, integrate gene expression onto reactions, rank — and differs only
// in the integration strategy and whether two conditions are compared:
//
//   - AvgSingle: arithmetic-mean integration, one condition.
//   - AvgRatio: arithmetic-mean integration, comparison / baseline.
//   - Standard: AND/OR rule-aware integration (geometric means over AND),
//     comparison / baseline. This is what the CLI runs.
//
// Ratio flows reuse one model for both conditions, comparison before
// baseline, so the relative scores come from identical topology.
package workflow
