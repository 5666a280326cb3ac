// Package graph provides graph views and analyses of indistinguishability
// adjacency matrices.
//
// Input matrices follow the upper-triangular convention: cell (i, j) with
// i < j marks an edge between trials i and j when it is non-zero. The
// diagonal and lower triangle carry no information and are ignored.
package graph

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrNotSquare is returned when an adjacency matrix is not square.
var ErrNotSquare = errors.New("graph: adjacency matrix is not square")

// CSRMatrix represents the edges of an upper-triangular adjacency matrix in
// CSR format. Row i lists the neighbors j > i of node i in ascending order.
type CSRMatrix struct {
	Indptr  []int32 // Row pointers
	Indices []int32 // Column indices
	NRows   int     // Number of rows
	NCols   int     // Number of columns
	NNZ     int     // Number of edges
}

// FromAdjacency builds the CSR edge view of adj.
func FromAdjacency(adj mat.Matrix) (*CSRMatrix, error) {
	n, err := order(adj)
	if err != nil {
		return nil, err
	}

	// Scanning row-major yields entries already sorted by (row, col).
	indptr := make([]int32, n+1)
	var indices []int32
	for i := range n {
		for j := i + 1; j < n; j++ {
			if adj.At(i, j) != 0 {
				indices = append(indices, int32(j))
			}
		}
		indptr[i+1] = int32(len(indices))
	}

	return &CSRMatrix{
		Indptr:  indptr,
		Indices: indices,
		NRows:   n,
		NCols:   n,
		NNZ:     len(indices),
	}, nil
}

// GetEdges returns the (row, col) pairs of all edges, row < col.
func (g *CSRMatrix) GetEdges() ([]int32, []int32) {
	rows := make([]int32, g.NNZ)
	cols := make([]int32, g.NNZ)

	idx := 0
	for i := 0; i < g.NRows; i++ {
		for k := g.Indptr[i]; k < g.Indptr[i+1]; k++ {
			rows[idx] = int32(i)
			cols[idx] = g.Indices[k]
			idx++
		}
	}

	return rows, cols
}

// GetRow returns the neighbors j > row of row.
func (g *CSRMatrix) GetRow(row int) []int32 {
	return g.Indices[g.Indptr[row]:g.Indptr[row+1]]
}

// Degrees returns the number of indistinguishable partners of every node,
// counting both ends of each edge.
func (g *CSRMatrix) Degrees() []int {
	deg := make([]int, g.NRows)
	for i := 0; i < g.NRows; i++ {
		for _, j := range g.GetRow(i) {
			deg[i]++
			deg[j]++
		}
	}
	return deg
}

// Symmetrize returns the full symmetric matrix U + Uᵀ, where U is the strict
// upper triangle of adj. The diagonal of the result is 0.
func Symmetrize(adj mat.Matrix) (*mat.Dense, error) {
	n, err := order(adj)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return &mat.Dense{}, nil
	}

	upper := mat.NewDense(n, n, nil)
	upper.Zero()
	for i := range n {
		for j := i + 1; j < n; j++ {
			upper.Set(i, j, adj.At(i, j))
		}
	}

	var sym mat.Dense
	sym.Add(upper, upper.T())
	return &sym, nil
}

// order returns the size of a square, non-nil matrix.
func order(adj mat.Matrix) (int, error) {
	if adj == nil {
		return 0, fmt.Errorf("%w: nil matrix", ErrNotSquare)
	}
	r, c := adj.Dims()
	if r != c {
		return 0, fmt.Errorf("%w: %dx%d", ErrNotSquare, r, c)
	}
	return r, nil
}
