// Package indist finds pairs of indistinguishable trials.
//
// Two trials, each a sequence of samples over the same time-bins, are
// indistinguishable at a threshold when every pair of corresponding samples
// differs by at most that threshold. The result is an adjacency matrix that
// can be fed to graph analysis, for example to group near-identical trials
// (see package graph).
//
// Basic usage:
//
//	adj, err := indist.Compute(rows, 0.5)
//	if err != nil {
//		return err
//	}
//	if adj.At(i, j) == 1 { // i < j
//		...
//	}
package indist

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"github.com/nozzle/indist/distance"
	"github.com/nozzle/indist/internal/parallel"
	"github.com/nozzle/indist/trials"
)

// ErrInvalidInput is returned for ragged or empty trial data and for
// non-finite thresholds. Test for it with errors.Is.
var ErrInvalidInput = trials.ErrInvalidInput

// Config configures a Comparer.
type Config struct {
	// NumWorkers is the number of goroutines scanning rows of the output.
	// 0 = auto-detect based on CPU cores, 1 = serial.
	// Default: 0
	NumWorkers int

	// Logger receives a debug event for every computation.
	// Default: disabled
	Logger zerolog.Logger
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		NumWorkers: 0,
		Logger:     zerolog.Nop(),
	}
}

// Comparer computes pairwise relations between the trials of a matrix.
// It holds no state between calls and is safe for concurrent use.
type Comparer struct {
	Config Config
}

// New creates a new Comparer with the given configuration.
func New(config Config) *Comparer {
	return &Comparer{Config: config}
}

// Compute is shorthand for New(DefaultConfig()).Compute on rows, which must
// all have the same, non-zero length.
func Compute(rows [][]float64, threshold float64) (*mat.Dense, error) {
	t, err := trials.New(rows)
	if err != nil {
		return nil, err
	}
	return New(DefaultConfig()).Compute(t, threshold)
}

// Compute returns the numTrials × numTrials adjacency matrix of t at threshold.
//
// Cell (i, j) with i < j is 1 when |t[i][b] - t[j][b]| <= threshold for every
// bin b, and 0 otherwise. The diagonal and the lower triangle are always 0;
// the matrix is not symmetric. A negative threshold is accepted and yields an
// all-zero matrix. A non-finite threshold returns ErrInvalidInput.
func (c *Comparer) Compute(t *trials.Matrix, threshold float64) (*mat.Dense, error) {
	if err := checkInput(t, threshold); err != nil {
		return nil, err
	}

	n := t.NumTrials()
	adj := mat.NewDense(n, n, nil)
	// Only cells above the diagonal are written below.
	adj.Zero()

	// Row i of adj is written only by the task for i.
	workers := parallel.Resolve(c.Config.NumWorkers, n-1)
	var marked atomic.Int64
	parallel.ParallelForDynamic(0, n-1, 1, workers, func(i int) {
		out := adj.RawRowView(i)
		x := t.Row(i)
		var count int64
		for j := i + 1; j < n; j++ {
			if distance.Within(x, t.Row(j), threshold) {
				out[j] = 1
				count++
			}
		}
		marked.Add(count)
	})

	c.Config.Logger.Debug().
		Int("trials", n).
		Int("bins", t.NumBins()).
		Float64("threshold", threshold).
		Int("workers", workers).
		Int("pairs", n*(n-1)/2).
		Int64("indistinguishable", marked.Load()).
		Msg("adjacency computed")

	return adj, nil
}

// CriticalThresholds returns the numTrials × numTrials matrix whose cell
// (i, j), i < j, holds the Chebyshev distance between trials i and j: the
// smallest threshold at which the pair is indistinguishable. The diagonal and
// lower triangle are 0. For any finite threshold thr,
// Compute(t, thr).At(i, j) == 1 exactly when the critical value is <= thr.
func (c *Comparer) CriticalThresholds(t *trials.Matrix) (*mat.Dense, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil trial matrix", ErrInvalidInput)
	}

	n := t.NumTrials()
	crit := mat.NewDense(n, n, nil)
	crit.Zero()

	workers := parallel.Resolve(c.Config.NumWorkers, n-1)
	parallel.ParallelForDynamic(0, n-1, 1, workers, func(i int) {
		out := crit.RawRowView(i)
		x := t.Row(i)
		for j := i + 1; j < n; j++ {
			out[j] = distance.Chebyshev(x, t.Row(j))
		}
	})

	c.Config.Logger.Debug().
		Int("trials", n).
		Int("bins", t.NumBins()).
		Int("workers", workers).
		Msg("critical thresholds computed")

	return crit, nil
}

func checkInput(t *trials.Matrix, threshold float64) error {
	if t == nil {
		return fmt.Errorf("%w: nil trial matrix", ErrInvalidInput)
	}
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		return fmt.Errorf("%w: threshold %v is not finite", ErrInvalidInput, threshold)
	}
	return nil
}
