package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rshade/leafco2/internal/config"
	"github.com/rshade/leafco2/internal/stomata"
	"github.com/rshade/leafco2/internal/tui"
)

// EstimateFailureExitCode is the process exit code for an estimate the
// estimator rejected.
const EstimateFailureExitCode = 2

// minCount is the smallest leaf or people count the presentation layer accepts.
const minCount = 1

// EstimateParams holds the parameters for the estimate command execution.
// Exported for testing.
type EstimateParams struct {
	LeafType    string
	Width       string
	Height      string
	Leaves      int
	AreaUnit    string
	CO2Unit     string
	People      int
	Output      string
	Interactive bool
}

// EstimateFailureError reports an input the estimator rejected. Its message is
// the descriptive reason shown to the user.
type EstimateFailureError struct {
	Kind   stomata.FailureKind
	Reason string
	Err    error
}

func (e *EstimateFailureError) Error() string {
	return e.Reason
}

func (e *EstimateFailureError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code for the failure.
func (e *EstimateFailureError) ExitCode() int {
	return EstimateFailureExitCode
}

// NewEstimateCmd creates the "estimate" command.
//
// Flag defaults come from the defaults section of the configuration. Width
// and height are taken as text so the estimator owns number parsing.
func NewEstimateCmd() *cobra.Command {
	var params EstimateParams
	defaults := config.GetDefaults()

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the leaves needed to absorb people's daily CO₂",
		Long: `Estimate how much CO₂ a set of leaves absorbs per day and how many leaves
are needed to absorb the daily output of a number of people.

Leaf types: 단풍잎, 테이블야자, 깻잎, 고무나무, 몬스테라, 스투키
Area units: cm², mm², m²   CO₂ units: µg, mg, g, kg

An input the estimator rejects is reported with exit code 2.`,
		Example: `  # One 10 x 10 cm maple leaf, one person
  leafco2 estimate --width 10 --height 10

  # Rubber plant leaves in m², absorption in grams
  leafco2 estimate --leaf-type 고무나무 --width 25 --height 12 --leaves 40 --area-unit m² --co2-unit g

  # Machine-readable output
  leafco2 estimate --width 10 --height 10 --output ndjson

  # Interactive form
  leafco2 estimate --interactive`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeEstimate(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.LeafType, "leaf-type", defaults.LeafType, "Leaf type")
	cmd.Flags().StringVar(&params.Width, "width", defaults.Width, "Leaf width in cm")
	cmd.Flags().StringVar(&params.Height, "height", defaults.Height, "Leaf height in cm")
	cmd.Flags().IntVar(&params.Leaves, "leaves", defaults.NumLeaves, "Number of leaves (min 1)")
	cmd.Flags().StringVar(&params.AreaUnit, "area-unit", defaults.AreaUnit, "Area unit (cm², mm², m²)")
	cmd.Flags().StringVar(&params.CO2Unit, "co2-unit", defaults.CO2Unit, "CO₂ unit (µg, mg, g, kg)")
	cmd.Flags().IntVar(&params.People, "people", defaults.PeopleCount, "Number of people (min 1)")
	cmd.Flags().StringVar(
		&params.Output, "output", config.GetDefaultOutputFormat(), "Output format (table, json, ndjson)")
	cmd.Flags().BoolVar(&params.Interactive, "interactive", false, "Fill in the values in an interactive form")

	return cmd
}

// ValidateEstimateFlags checks the constraints the form enforces on its
// inputs. Exported for testing.
func ValidateEstimateFlags(params *EstimateParams) error {
	if params.Leaves < minCount {
		return fmt.Errorf("--leaves must be >= %d, got %d", minCount, params.Leaves)
	}
	if params.People < minCount {
		return fmt.Errorf("--people must be >= %d, got %d", minCount, params.People)
	}
	if !config.IsValidOutputFormat(params.Output) {
		return fmt.Errorf("unsupported output format: %s", params.Output)
	}
	return nil
}

// RawInput converts the flags into an estimator request.
func (p *EstimateParams) RawInput() stomata.RawInput {
	return stomata.RawInput{
		LeafType:    p.LeafType,
		Width:       p.Width,
		Height:      p.Height,
		NumLeaves:   strconv.Itoa(p.Leaves),
		AreaUnit:    p.AreaUnit,
		CO2Unit:     p.CO2Unit,
		PeopleCount: strconv.Itoa(p.People),
	}
}

func executeEstimate(cmd *cobra.Command, params EstimateParams) error {
	if err := ValidateEstimateFlags(&params); err != nil {
		return err
	}

	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()
	notComputable := cfg.NotComputableLabel()

	if params.Interactive {
		if !isTerminal(os.Stdin) {
			return errors.New("--interactive requires a terminal on stdin")
		}
		model := tui.NewFormModel(ctx, tui.FormDefaults{
			LeafType:    params.LeafType,
			Width:       params.Width,
			Height:      params.Height,
			NumLeaves:   params.Leaves,
			AreaUnit:    params.AreaUnit,
			CO2Unit:     params.CO2Unit,
			PeopleCount: params.People,
		}, notComputable, cfg.Output.Locale == config.LocaleKorean)
		return tui.RunForm(ctx, model, cmd.InOrStdin(), cmd.OutOrStdout())
	}

	if !stomata.IsKnownAreaUnit(params.AreaUnit) || !stomata.IsKnownCO2Unit(params.CO2Unit) {
		logger.Warn().Ctx(ctx).
			Str("area_unit", params.AreaUnit).
			Str("co2_unit", params.CO2Unit).
			Msg("unknown unit, reporting in cm² / µg")
	}

	result, err := stomata.EstimateWithContext(ctx, params.RawInput())
	if err != nil {
		var verr *stomata.ValidationError
		if !errors.As(err, &verr) {
			return fmt.Errorf("estimating: %w", err)
		}
		failure := &EstimateFailureError{Kind: verr.Kind, Reason: localizedReason(cfg, verr), Err: err}
		if renderErr := renderFailure(cmd.OutOrStdout(), params.Output, verr, failure.Reason); renderErr != nil {
			return renderErr
		}
		return failure
	}

	logger.Info().Ctx(ctx).
		Str("leaf_type", result.LeafType).
		Str("leaves_needed", result.LeavesNeededToAbsorb.String()).
		Msg("estimate computed")

	return renderResult(cmd.OutOrStdout(), params.Output, result, notComputable)
}

func localizedReason(cfg *config.Config, verr *stomata.ValidationError) string {
	if cfg.Output.Locale == config.LocaleKorean {
		return verr.ReasonKorean()
	}
	return verr.Reason()
}
