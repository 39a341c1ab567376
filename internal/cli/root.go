// Package cli wires the principle demos into the solid command.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/solid-principles-go/logging"
)

// app carries what the persistent flags configure into every subcommand.
type app struct {
	logLevel string
	backend  string
	logger   logging.Logger
	cleanup  func()
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "solid",
		Short:        "Runs the SOLID principle examples",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logging.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}

			logger, cleanup, err := logging.New(a.backend, cmd.ErrOrStderr(), level)
			if err != nil {
				return err
			}

			a.logger = logger
			a.cleanup = cleanup

			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.cleanup != nil {
				a.cleanup()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&a.backend, "logger", logging.BackendSlog, "logging backend (slog, zap)")

	cmd.AddCommand(
		dipCmd(a),
		ispCmd(a),
		lspCmd(a),
		ocpCmd(a),
		srpCmd(a),
	)

	return cmd
}
