// SPDX-License-Identifier: MIT
package series

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// ZScore returns a new Series of standard scores: (x - mean) / stddev,
// with mean and sample standard deviation computed over the non-NaN values.
// NaN entries stay NaN. Returns ErrEmptySeries on an empty series.
func (s *Series) ZScore() (*Series, error) {
	if s.Len() == 0 {
		return nil, ErrEmptySeries
	}
	finite := s.finiteValues()
	mean := stat.Mean(finite, nil)
	sd := stat.StdDev(finite, nil)
	out := make([]float64, len(s.values))
	for i, v := range s.values {
		out[i] = (v - mean) / sd
	}
	return New(s.keys, out)
}

// Scale returns a new Series normalized by the sum of its non-NaN values,
// so that the result sums to 1 (when all entries are finite).
// Returns ErrEmptySeries on an empty series.
func (s *Series) Scale() (*Series, error) {
	if s.Len() == 0 {
		return nil, ErrEmptySeries
	}
	total := s.Sum()
	out := make([]float64, len(s.values))
	for i, v := range s.values {
		out[i] = v / total
	}
	return New(s.keys, out)
}

// L1Norm returns the Manhattan norm (sum of absolute values).
// Returns ErrEmptySeries on an empty series.
func (s *Series) L1Norm() (float64, error) {
	if s.Len() == 0 {
		return 0, ErrEmptySeries
	}
	var total float64
	for _, v := range s.values {
		total += math.Abs(v)
	}
	return total, nil
}

// ReplaceNonFinite replaces every NaN and ±Inf entry with 0, in place.
func (s *Series) ReplaceNonFinite() {
	for i, v := range s.values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			s.values[i] = 0
		}
	}
}

// finiteValues collects the non-NaN values (used by NaN-skipping stats).
func (s *Series) finiteValues() []float64 {
	out := make([]float64, 0, len(s.values))
	for _, v := range s.values {
		if math.IsNaN(v) {
			continue
		}
		out = append(out, v)
	}
	return out
}
