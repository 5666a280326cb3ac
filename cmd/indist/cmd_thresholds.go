package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func thresholdsCmd(opts *globalOptions) *cobra.Command {
	var (
		flags  computeFlags
		output string
	)
	cmd := &cobra.Command{
		Use:   "thresholds",
		Short: "Write the smallest threshold at which each trial pair is indistinguishable",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.resolve(cmd, opts.run, false); err != nil {
				return err
			}

			m, err := loadTrials(flags.input)
			if err != nil {
				return err
			}
			crit, err := flags.comparer().CriticalThresholds(m)
			if err != nil {
				return err
			}

			out, err := createOutput(cmd, output)
			if err != nil {
				return err
			}
			defer out.Close()

			if err := writeMatrixCSV(out, crit, formatReal); err != nil {
				return err
			}
			log.Info().Msg("wrote critical thresholds")
			return out.Close()
		},
	}
	flags.register(cmd, false)
	cmd.Flags().StringVarP(&output, "output", "o", "-", "Output CSV file (- for stdout)")
	return cmd
}
