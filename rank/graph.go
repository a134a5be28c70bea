// SPDX-License-Identifier: MIT
package rank

import (
	"math"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"
)

// Graph builds a weighted directed graph from an adjacency matrix: every
// row index becomes a node (isolated nodes included), every nonzero entry
// a directed edge i→j carrying the entry as weight.
//
// Validation happens here, before any propagation: the matrix must be
// square (ErrNonSquare), finite and non-negative (ErrBadWeight), and free
// of self edges (ErrSelfLoop). The returned graph is freshly allocated and
// independent of the input.
func Graph(adj *mat.Dense) (*simple.WeightedDirectedGraph, error) {
	if adj == nil {
		return nil, ErrNilMatrix
	}
	rows, cols := adj.Dims()
	if rows != cols {
		return nil, ErrNonSquare
	}

	g := simple.NewWeightedDirectedGraph(0, 0)
	for i := 0; i < rows; i++ {
		g.AddNode(simple.Node(i))
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			w := adj.At(i, j)
			if w == 0 {
				continue
			}
			if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, ErrBadWeight
			}
			if i == j {
				return nil, ErrSelfLoop
			}
			g.SetWeightedEdge(simple.WeightedEdge{
				F: simple.Node(i),
				T: simple.Node(j),
				W: w,
			})
		}
	}
	return g, nil
}
