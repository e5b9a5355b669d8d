package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/leafco2/internal/config"
	"github.com/rshade/leafco2/internal/stomata"
)

// NewSpeciesCmd creates the "species" command listing supported leaf types.
func NewSpeciesCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "species",
		Short: "List leaf types with stomatal density and correction factor",
		Example: `  leafco2 species
  leafco2 species --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !config.IsValidOutputFormat(output) {
				return fmt.Errorf("unsupported output format: %s", output)
			}
			return renderSpecies(cmd.OutOrStdout(), output, stomata.AllSpecies())
		},
	}

	cmd.Flags().StringVar(&output, "output", config.GetDefaultOutputFormat(), "Output format (table, json, ndjson)")
	return cmd
}

// NewUnitsCmd creates the "units" command listing area and CO₂ units.
func NewUnitsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "units",
		Short: "List area and CO₂ units with conversion factors",
		Long: `List the supported units. Area factors divide a cm² value; CO₂ factors
multiply a µg value.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !config.IsValidOutputFormat(output) {
				return fmt.Errorf("unsupported output format: %s", output)
			}
			return renderUnits(cmd.OutOrStdout(), output)
		},
	}

	cmd.Flags().StringVar(&output, "output", config.GetDefaultOutputFormat(), "Output format (table, json, ndjson)")
	return cmd
}
