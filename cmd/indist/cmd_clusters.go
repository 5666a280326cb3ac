package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/nozzle/indist/graph"
)

func clustersCmd(opts *globalOptions) *cobra.Command {
	var (
		flags   computeFlags
		output  string
		cliques bool
	)
	cmd := &cobra.Command{
		Use:   "clusters",
		Short: "Group trials linked by indistinguishable pairs",
		Long: `Prints one group of trial indices per line. By default groups are the
connected components of the indistinguishability graph; with --cliques
they are its maximal cliques, sets of pairwise indistinguishable trials.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.resolve(cmd, opts.run, true); err != nil {
				return err
			}

			m, err := loadTrials(flags.input)
			if err != nil {
				return err
			}
			adj, err := flags.comparer().Compute(m, flags.threshold)
			if err != nil {
				return err
			}

			var groups [][]int
			if cliques {
				groups, err = graph.Cliques(adj)
			} else {
				groups, err = graph.Clusters(adj)
			}
			if err != nil {
				return err
			}

			out, err := createOutput(cmd, output)
			if err != nil {
				return err
			}
			defer out.Close()

			if err := writeGroups(out, groups); err != nil {
				return err
			}
			log.Info().Int("groups", len(groups)).Bool("cliques", cliques).Msg("wrote groups")
			return out.Close()
		},
	}
	flags.register(cmd, true)
	cmd.Flags().StringVarP(&output, "output", "o", "-", "Output file (- for stdout)")
	cmd.Flags().BoolVar(&cliques, "cliques", false, "Report maximal cliques instead of connected components")
	return cmd
}
