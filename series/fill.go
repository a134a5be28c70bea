// SPDX-License-Identifier: MIT
package series

import "math"

// FillFunc patches NaN entries of a Series in place.
// The two stock policies are FillConst and FillMean.
type FillFunc func(s *Series)

// FillConst fills every NaN entry with the constant v.
func FillConst(v float64) FillFunc {
	return func(s *Series) {
		for i, x := range s.values {
			if math.IsNaN(x) {
				s.values[i] = v
			}
		}
	}
}

// FillMean fills every NaN entry with the mean of the non-NaN entries.
// An all-NaN series is left unchanged (the mean itself is NaN).
func FillMean() FillFunc {
	return func(s *Series) {
		m := s.Mean()
		if math.IsNaN(m) {
			return
		}
		for i, x := range s.values {
			if math.IsNaN(x) {
				s.values[i] = m
			}
		}
	}
}

// FillNaN applies the given fill policy to s in place.
// A nil fill defaults to FillConst(1), the neutral expression multiplier.
func (s *Series) FillNaN(fill FillFunc) {
	if fill == nil {
		fill = FillConst(1)
	}
	fill(s)
}
