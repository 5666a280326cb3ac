package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/nozzle/indist/graph"
)

func adjacencyCmd(opts *globalOptions) *cobra.Command {
	var (
		flags     computeFlags
		output    string
		format    string
		symmetric bool
	)
	cmd := &cobra.Command{
		Use:   "adjacency",
		Short: "Write the adjacency matrix of indistinguishable trial pairs",
		Long: `Compares every pair of trials and marks pair (i, j), i < j, when every
bin differs by at most the threshold. The matrix is upper-triangular
unless --symmetric is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.resolve(cmd, opts.run, true); err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") && opts.run.Format != nil {
				format = *opts.run.Format
			}
			if !cmd.Flags().Changed("symmetric") && opts.run.Symmetric != nil {
				symmetric = *opts.run.Symmetric
			}
			if format != "matrix" && format != "edges" {
				return fmt.Errorf("unsupported format: %s", format)
			}

			m, err := loadTrials(flags.input)
			if err != nil {
				return err
			}
			adj, err := flags.comparer().Compute(m, flags.threshold)
			if err != nil {
				return err
			}

			out, err := createOutput(cmd, output)
			if err != nil {
				return err
			}
			defer out.Close()

			switch format {
			case "edges":
				csr, err := graph.FromAdjacency(adj)
				if err != nil {
					return err
				}
				err = writeEdgesCSV(out, csr)
				if err != nil {
					return err
				}
				log.Info().Int("pairs", csr.NNZ).Msg("wrote edge list")
			default:
				if symmetric {
					if adj, err = graph.Symmetrize(adj); err != nil {
						return err
					}
				}
				if err := writeMatrixCSV(out, adj, formatBinary); err != nil {
					return err
				}
				log.Info().Bool("symmetric", symmetric).Msg("wrote adjacency matrix")
			}
			return out.Close()
		},
	}
	flags.register(cmd, true)
	cmd.Flags().StringVarP(&output, "output", "o", "-", "Output CSV file (- for stdout)")
	cmd.Flags().StringVar(&format, "format", "matrix", "Output format: matrix or edges")
	cmd.Flags().BoolVar(&symmetric, "symmetric", false, "Mirror the upper triangle into the lower triangle")
	return cmd
}
