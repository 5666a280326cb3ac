// Package trials provides the trial matrix consumed by the indistinguishability
// computation: a rectangular, read-only block of samples with one trial per row
// and one aligned time-bin per column.
package trials

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrInvalidInput is returned for trial data or parameters that cannot be
// compared: ragged rows, zero trials, zero bins, or a non-finite threshold.
var ErrInvalidInput = errors.New("indist: invalid input")

// Matrix is an immutable numTrials × numBins matrix of samples.
// Rows are stored contiguously in a single row-major buffer.
type Matrix struct {
	dense *mat.Dense
}

// New copies rows into a Matrix. Every row must have the same, non-zero length.
func New(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no trials", ErrInvalidInput)
	}
	numBins := len(rows[0])
	if numBins == 0 {
		return nil, fmt.Errorf("%w: trials have zero bins", ErrInvalidInput)
	}

	data := make([]float64, 0, len(rows)*numBins)
	for i, row := range rows {
		if len(row) != numBins {
			return nil, fmt.Errorf("%w: trial %d has %d bins, expected %d",
				ErrInvalidInput, i, len(row), numBins)
		}
		data = append(data, row...)
	}

	return &Matrix{dense: mat.NewDense(len(rows), numBins, data)}, nil
}

// FromDense copies m into a Matrix, one trial per row of m.
func FromDense(m mat.Matrix) (*Matrix, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil matrix", ErrInvalidInput)
	}
	r, c := m.Dims()
	if r == 0 {
		return nil, fmt.Errorf("%w: no trials", ErrInvalidInput)
	}
	if c == 0 {
		return nil, fmt.Errorf("%w: trials have zero bins", ErrInvalidInput)
	}
	return &Matrix{dense: mat.DenseCopyOf(m)}, nil
}

// Dims returns the number of trials and bins.
func (m *Matrix) Dims() (numTrials, numBins int) {
	return m.dense.Dims()
}

// NumTrials returns the number of trials (rows).
func (m *Matrix) NumTrials() int {
	r, _ := m.dense.Dims()
	return r
}

// NumBins returns the number of time-bins per trial (columns).
func (m *Matrix) NumBins() int {
	_, c := m.dense.Dims()
	return c
}

// Row returns trial i as a view into the backing buffer.
// The returned slice must not be modified.
func (m *Matrix) Row(i int) []float64 {
	return m.dense.RawRowView(i)
}

// At returns the sample of trial i at bin b.
func (m *Matrix) At(i, b int) float64 {
	return m.dense.At(i, b)
}

// Mat exposes the samples as a read-only gonum matrix.
func (m *Matrix) Mat() mat.Matrix {
	return readOnly{m.dense}
}

// readOnly hides the mutating methods of *mat.Dense from callers of Mat.
type readOnly struct {
	d *mat.Dense
}

func (r readOnly) Dims() (int, int) { return r.d.Dims() }
func (r readOnly) At(i, j int) float64 { return r.d.At(i, j) }
func (r readOnly) T() mat.Matrix { return mat.Transpose{Matrix: r} }
