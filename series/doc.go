// Package series provides an ordered, name-indexed float64 series - the
// exchange format between expression data, reaction scores, and metabolite
// rankings.
//
// A Series behaves like an insertion-ordered map[string]float64 with
// NaN-aware aggregation:
//   - construction rejects duplicate keys (duplicate gene or metabolite
//     identifiers are always an input error, never silently merged)
//   - Sum, Mean and ZScore skip NaN entries
//   - Div aligns by key, so two score series from different runs can be
//     combined into a ratio regardless of internal ordering
//
// Fill policies (FillConst, FillMean) patch NaN entries left behind by
// per-reaction integration failures.
//
// ⚙️ Usage:
//
//	s, err := series.New([]string{"G1", "G2"}, []float64{1.5, 2.5})
//	if err != nil { ... }
//	s.FillNaN(series.FillConst(1.0))
//	ratio, err := comparison.Div(baseline)
package series
