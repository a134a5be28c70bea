// SPDX-License-Identifier: MIT
package reporter

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/gemrank/gemrank/rank"
)

// Subnetworks partitions the metabolites into weakly connected components
// of the adjacency graph: edge direction is ignored, so a component is a
// set of metabolites with any mass flow between them. Isolated metabolites
// form singleton components.
//
// The adjacency matrix is rebuilt first if stale. Component members are
// ordered by matrix row, components by their lowest-row member, so the
// result is deterministic across runs.
func (m *Model) Subnetworks() ([][]string, error) {
	if err := m.ensureAdjacency(); err != nil {
		return nil, err
	}
	g, err := rank.Graph(m.adj)
	if err != nil {
		return nil, err
	}

	components := topo.ConnectedComponents(graph.Undirect{G: g})
	idSets := make([][]int, 0, len(components))
	for _, comp := range components {
		ids := make([]int, 0, len(comp))
		for _, node := range comp {
			ids = append(ids, int(node.ID()))
		}
		sort.Ints(ids)
		idSets = append(idSets, ids)
	}
	sort.Slice(idSets, func(i, j int) bool { return idSets[i][0] < idSets[j][0] })

	nets := make([][]string, 0, len(idSets))
	for _, ids := range idSets {
		members := make([]string, 0, len(ids))
		for _, id := range ids {
			members = append(members, m.names[id])
		}
		nets = append(nets, members)
	}
	return nets, nil
}
