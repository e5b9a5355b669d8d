package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/leafco2/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file and environment overrides.

This includes:
- YAML syntax
- Schema version (semver, major version 1)
- Default leaf type and units exist
- Default leaf and people counts are at least 1
- Output format, locale and logging settings`,
		Example: `  # Validate current configuration
  leafco2 config validate

  # Validate and show every effective value
  leafco2 config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.New()

	if err := cfg.LoadError(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	// The file alone must be valid, not only once env overrides are applied.
	if _, statErr := os.Stat(cfg.ConfigPath()); statErr == nil {
		if _, err := config.Load(cfg.ConfigPath()); err != nil {
			return fmt.Errorf("configuration validation failed: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("✅ Configuration is valid\n")

	if verbose {
		cmd.Printf("\nConfiguration file: %s\n", cfg.ConfigPath())
		values := cfg.List()
		for _, k := range cfg.Keys() {
			cmd.Printf("  %s = %s\n", k, values[k])
		}
	}

	return nil
}
