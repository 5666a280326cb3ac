package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/nozzle/indist"
	"github.com/nozzle/indist/graph"
	"github.com/nozzle/indist/trials"
)

// computeFlags are the inputs shared by commands that compare trials.
type computeFlags struct {
	input     string
	threshold float64
	workers   int
}

func (f *computeFlags) register(cmd *cobra.Command, withThreshold bool) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "Input CSV file, one trial per row (required)")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "Number of workers (0 = all CPUs)")
	if withThreshold {
		cmd.Flags().Float64VarP(&f.threshold, "threshold", "t", 0, "Maximum per-bin absolute difference")
	}
	_ = cmd.MarkFlagRequired("input")
}

// resolve fills values not given on the command line from the run file.
func (f *computeFlags) resolve(cmd *cobra.Command, rf runFile, withThreshold bool) error {
	if !cmd.Flags().Changed("workers") && rf.Workers != nil {
		f.workers = *rf.Workers
	}
	if !withThreshold || cmd.Flags().Changed("threshold") {
		return nil
	}
	if rf.Threshold == nil {
		return fmt.Errorf("threshold is required: pass --threshold or set it in the run file")
	}
	f.threshold = *rf.Threshold
	return nil
}

func (f *computeFlags) comparer() *indist.Comparer {
	config := indist.DefaultConfig()
	config.NumWorkers = f.workers
	config.Logger = log.Logger
	return indist.New(config)
}

// loadTrials reads a headerless numeric CSV file of trials.
func loadTrials(filename string) (*trials.Matrix, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	m, err := trials.ReadCSV(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	numTrials, numBins := m.Dims()
	log.Info().Str("file", filename).Int("trials", numTrials).Int("bins", numBins).Msg("loaded trials")
	return m, nil
}

// nopCloser keeps the command's stdout open after a command finishes.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// createOutput opens filename for writing, or the command's output for "" and "-".
func createOutput(cmd *cobra.Command, filename string) (io.WriteCloser, error) {
	if filename == "" || filename == "-" {
		return nopCloser{cmd.OutOrStdout()}, nil
	}
	return os.Create(filename)
}

// writeMatrixCSV writes m as CSV, one matrix row per record.
func writeMatrixCSV(w io.Writer, m mat.Matrix, format func(float64) string) error {
	writer := csv.NewWriter(w)

	r, c := m.Dims()
	record := make([]string, c)
	for i := range r {
		for j := range c {
			record[j] = format(m.At(i, j))
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// writeEdgesCSV writes one "i,j" record per marked pair, i < j.
func writeEdgesCSV(w io.Writer, g *graph.CSRMatrix) error {
	writer := csv.NewWriter(w)

	rows, cols := g.GetEdges()
	for k := range rows {
		record := []string{
			strconv.Itoa(int(rows[k])),
			strconv.Itoa(int(cols[k])),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// writeGroups writes one group per line as space-separated trial indices.
func writeGroups(w io.Writer, groups [][]int) error {
	for _, group := range groups {
		ids := make([]string, len(group))
		for k, id := range group {
			ids[k] = strconv.Itoa(id)
		}
		if _, err := fmt.Fprintln(w, strings.Join(ids, " ")); err != nil {
			return err
		}
	}
	return nil
}

func formatBinary(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64)
}

func formatReal(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
