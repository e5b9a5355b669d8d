// Package cli implements the leafco2 command tree.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/leafco2/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the leafco2 CLI.
// It wires up logging and tracing, then the estimate, species, units and config
// subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "leafco2",
		Short:   "Leaf CO₂ absorption estimator",
		Long:    "leafco2: estimate how many leaves absorb the daily CO₂ output of a group of people",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.AddCommand(NewEstimateCmd(), NewSpeciesCmd(), NewUnitsCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Estimate with the configured defaults
  leafco2 estimate

  # 100 maple leaves of 8 x 12 cm for a family of four
  leafco2 estimate --leaf-type 단풍잎 --width 8 --height 12 --leaves 100 --people 4

  # Report in m² and grams as JSON
  leafco2 estimate --width 30 --height 40 --area-unit m² --co2-unit g --output json

  # Fill in the form interactively
  leafco2 estimate --interactive

  # List leaf types and units
  leafco2 species
  leafco2 units

  # Initialize configuration
  leafco2 config init

  # Change the default leaf type
  leafco2 config set defaults.leaf_type 몬스테라`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(),
		NewConfigListCmd(), NewConfigValidateCmd(),
	)
	return cmd
}
