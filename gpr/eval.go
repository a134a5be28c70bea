package gpr

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Evaluate computes the rule's activity score against a gene-value lookup.
// An empty rule or a nil lookup yields NaN. NaN child values propagate.
// Complexity: O(nodes).
func (r *Rule) Evaluate(lookup Lookup) float64 {
	if r.root == nil || lookup == nil {
		return math.NaN()
	}
	return r.root.eval(lookup)
}

func (g ident) eval(lookup Lookup) float64 {
	return lookup(string(g))
}

func (o orNode) eval(lookup Lookup) float64 {
	var sum float64
	for _, c := range o {
		sum += c.eval(lookup)
	}
	return sum
}

func (a andNode) eval(lookup Lookup) float64 {
	vals := make([]float64, len(a))
	for i, c := range a {
		vals[i] = c.eval(lookup)
	}
	return stat.GeometricMean(vals, nil)
}

// GeometricMean returns the geometric mean of the given values.
// Any zero value collapses the mean to zero; negative values are outside
// the domain and yield NaN. Returns ErrNoOperands when called without
// values.
func GeometricMean(values ...float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrNoOperands
	}
	return stat.GeometricMean(values, nil), nil
}
