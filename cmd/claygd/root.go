package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// rootCmd builds the "D T decoders results [flags]" positional command
// (§6). Args are validated and translated into a sweepConfig; RunE drives
// the sweep to completion.
func rootCmd() *cobra.Command {
	var flags cliFlags

	cmd := &cobra.Command{
		Use:          "claygd D T decoders results",
		Short:        "Run Monte-Carlo error-correction decoding sweeps",
		Args:         cobra.ExactArgs(4),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(args, flags)
			if err != nil {
				return fmt.Errorf("argument error: %w", err)
			}

			logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
			if flags.debug {
				logger = logger.Level(zerolog.DebugLevel)
			} else {
				logger = logger.Level(zerolog.InfoLevel)
			}

			return runSweep(cmd.Context(), cfg, logger)
		},
	}

	cmd.Flags().Float64Var(&flags.pStart, "p_start", 0.01, "starting physical error rate")
	cmd.Flags().Float64Var(&flags.pEnd, "p_end", 0.01, "ending physical error rate (inclusive)")
	cmd.Flags().StringVar(&flags.pStep, "p_step", "+0.01", "physical error rate step, e.g. +0.002 or *1.5")
	cmd.Flags().Float64Var(&flags.idlingStart, "idling_time_constant_start", 0, "starting idling time constant (0 disables idling errors)")
	cmd.Flags().Float64Var(&flags.idlingEnd, "idling_time_constant_end", 0, "ending idling time constant (inclusive)")
	cmd.Flags().StringVar(&flags.idlingStep, "idling_time_constant_step", "+1", "idling time constant step")
	cmd.Flags().BoolVar(&flags.dump, "dump", false, "dump per-run graph/error/correction/cluster-step files")
	cmd.Flags().IntVar(&flags.runsP, "runs_p", 1000, "Monte-Carlo trials per physical-error-rate point")
	cmd.Flags().IntVar(&flags.runsIdling, "runs_idling", 1000, "Monte-Carlo trials per idling-time-constant point")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "optional YAML file of flag overrides")
	cmd.Flags().BoolVar(&flags.debug, "debug", false, "enable debug-level logging")

	return cmd
}

// cliFlags mirrors the §6 flag-style overrides.
type cliFlags struct {
	pStart, pEnd           float64
	pStep                  string
	idlingStart, idlingEnd float64
	idlingStep             string
	dump                   bool
	runsP, runsIdling      int
	configPath             string
	debug                  bool
}
