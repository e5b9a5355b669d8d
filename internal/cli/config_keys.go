package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/leafco2/internal/config"
)

// configSetArgs is the argument count for "config set".
const configSetArgs = 2

// NewConfigGetCmd creates the config get command.
func NewConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print one configuration value",
		Example: `  leafco2 config get defaults.leaf_type
  leafco2 config get output.default_format`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.New().Get(args[0])
			if err != nil {
				return err
			}
			cmd.Println(v)
			return nil
		},
	}
}

// NewConfigSetCmd creates the config set command. The updated file is
// validated before it is written.
func NewConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set one configuration value in the config file",
		Example: `  leafco2 config set defaults.leaf_type 몬스테라
  leafco2 config set defaults.people_count 4
  leafco2 config set output.locale en`,
		Args: cobra.ExactArgs(configSetArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := fileConfig()
			if err != nil {
				return err
			}
			if err = cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err = cfg.Validate(); err != nil {
				return fmt.Errorf("refusing to save invalid configuration: %w", err)
			}
			if err = cfg.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}
			cmd.Printf("Set %s = %s\n", args[0], args[1])
			return nil
		},
	}
}

// NewConfigListCmd creates the config list command.
func NewConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every configuration value, including environment overrides",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.New()
			values := cfg.List()
			for _, k := range cfg.Keys() {
				cmd.Printf("%s = %s\n", k, values[k])
			}
			return nil
		},
	}
}

// fileConfig returns the defaults overlaid with the config file only, so a
// saved file never captures environment overrides.
func fileConfig() (*config.Config, error) {
	path, err := config.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	cfg := config.Default()
	cfg.SetConfigPath(path)
	if _, statErr := os.Stat(path); statErr == nil {
		if err = config.MergeYAMLFile(cfg, path); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
