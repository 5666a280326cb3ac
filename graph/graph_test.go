package graph

import (
	"errors"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// testAdjacency is the upper-triangular adjacency of 6 trials with edges
// 0-1, 0-2, 1-2, 2-3 and 4-5. The lower triangle and diagonal hold noise
// that must be ignored.
func testAdjacency() *mat.Dense {
	return mat.NewDense(6, 6, []float64{
		1, 1, 1, 0, 0, 0,
		1, 1, 1, 0, 0, 0,
		0, 1, 0, 1, 0, 0,
		1, 0, 0, 0, 0, 0,
		0, 0, 0, 1, 1, 1,
		1, 1, 1, 1, 1, 0,
	})
}

func TestFromAdjacency(t *testing.T) {
	g, err := FromAdjacency(testAdjacency())
	if err != nil {
		t.Fatalf("FromAdjacency returned error: %v", err)
	}

	if g.NRows != 6 || g.NCols != 6 {
		t.Errorf("Expected 6x6, got %dx%d", g.NRows, g.NCols)
	}
	if g.NNZ != 5 {
		t.Errorf("Expected 5 edges, got %d", g.NNZ)
	}

	rows, cols := g.GetEdges()
	wantRows := []int32{0, 0, 1, 2, 4}
	wantCols := []int32{1, 2, 2, 3, 5}
	if !reflect.DeepEqual(rows, wantRows) || !reflect.DeepEqual(cols, wantCols) {
		t.Errorf("GetEdges = %v, %v; expected %v, %v", rows, cols, wantRows, wantCols)
	}

	if got := g.GetRow(0); !reflect.DeepEqual(got, []int32{1, 2}) {
		t.Errorf("GetRow(0) = %v", got)
	}
	if got := g.GetRow(5); len(got) != 0 {
		t.Errorf("GetRow(5) = %v, expected no neighbors", got)
	}

	if got, want := g.Degrees(), []int{2, 2, 3, 1, 1, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("Degrees = %v, expected %v", got, want)
	}
}

func TestNotSquare(t *testing.T) {
	adj := mat.NewDense(2, 3, nil)

	if _, err := FromAdjacency(adj); !errors.Is(err, ErrNotSquare) {
		t.Errorf("FromAdjacency: expected ErrNotSquare, got %v", err)
	}
	if _, err := Symmetrize(adj); !errors.Is(err, ErrNotSquare) {
		t.Errorf("Symmetrize: expected ErrNotSquare, got %v", err)
	}
	if _, err := Clusters(nil); !errors.Is(err, ErrNotSquare) {
		t.Errorf("Clusters: expected ErrNotSquare, got %v", err)
	}
}

func TestSymmetrize(t *testing.T) {
	sym, err := Symmetrize(testAdjacency())
	if err != nil {
		t.Fatal(err)
	}

	want := mat.NewDense(6, 6, []float64{
		0, 1, 1, 0, 0, 0,
		1, 0, 1, 0, 0, 0,
		1, 1, 0, 1, 0, 0,
		0, 0, 1, 0, 0, 0,
		0, 0, 0, 0, 0, 1,
		0, 0, 0, 0, 1, 0,
	})
	if !mat.Equal(sym, want) {
		t.Errorf("Expected\n%v\ngot\n%v", mat.Formatted(want), mat.Formatted(sym))
	}
}

func TestClusters(t *testing.T) {
	clusters, err := Clusters(testAdjacency())
	if err != nil {
		t.Fatal(err)
	}

	want := [][]int{{0, 1, 2, 3}, {4, 5}}
	if !reflect.DeepEqual(clusters, want) {
		t.Errorf("Clusters = %v, expected %v", clusters, want)
	}
}

func TestClustersIsolated(t *testing.T) {
	clusters, err := Clusters(mat.NewDense(3, 3, nil))
	if err != nil {
		t.Fatal(err)
	}

	want := [][]int{{0}, {1}, {2}}
	if !reflect.DeepEqual(clusters, want) {
		t.Errorf("Clusters = %v, expected %v", clusters, want)
	}
}

func TestCliques(t *testing.T) {
	cliques, err := Cliques(testAdjacency())
	if err != nil {
		t.Fatal(err)
	}

	want := [][]int{{0, 1, 2}, {2, 3}, {4, 5}}
	if !reflect.DeepEqual(cliques, want) {
		t.Errorf("Cliques = %v, expected %v", cliques, want)
	}
}
