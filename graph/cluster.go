package graph

import (
	"sort"

	gonumgraph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/mat"
)

// Undirected builds an undirected graph with one node per trial, ID i for
// trial i, and one edge per marked cell of the upper triangle of adj.
func Undirected(adj mat.Matrix) (*simple.UndirectedGraph, error) {
	csr, err := FromAdjacency(adj)
	if err != nil {
		return nil, err
	}

	g := simple.NewUndirectedGraph()
	for i := 0; i < csr.NRows; i++ {
		g.AddNode(simple.Node(i))
	}
	rows, cols := csr.GetEdges()
	for k := range rows {
		g.SetEdge(simple.Edge{F: simple.Node(rows[k]), T: simple.Node(cols[k])})
	}
	return g, nil
}

// Clusters returns the connected components of the indistinguishability
// graph: trials linked by a chain of indistinguishable pairs. Every trial
// appears in exactly one cluster. Clusters are sorted internally and ordered
// by their smallest trial index.
func Clusters(adj mat.Matrix) ([][]int, error) {
	g, err := Undirected(adj)
	if err != nil {
		return nil, err
	}
	return normalize(topo.ConnectedComponents(g)), nil
}

// Cliques returns the maximal cliques of the indistinguishability graph:
// largest groups of trials that are pairwise indistinguishable. A trial may
// belong to several cliques; isolated trials form singleton cliques.
// Ordering follows Clusters.
func Cliques(adj mat.Matrix) ([][]int, error) {
	g, err := Undirected(adj)
	if err != nil {
		return nil, err
	}
	return normalize(topo.BronKerbosch(g)), nil
}

func normalize(groups [][]gonumgraph.Node) [][]int {
	out := make([][]int, len(groups))
	for i, nodes := range groups {
		ids := make([]int, len(nodes))
		for k, n := range nodes {
			ids[k] = int(n.ID())
		}
		sort.Ints(ids)
		out[i] = ids
	}

	sort.Slice(out, func(a, b int) bool {
		x, y := out[a], out[b]
		for k := 0; k < len(x) && k < len(y); k++ {
			if x[k] != y[k] {
				return x[k] < y[k]
			}
		}
		return len(x) < len(y)
	})
	return out
}
