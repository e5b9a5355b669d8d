package cli

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/rshade/leafco2/internal/config"
	"github.com/rshade/leafco2/internal/stomata"
	"github.com/rshade/leafco2/internal/tui"
)

// failureRecord is the structured form of a rejected estimate.
type failureRecord struct {
	Error  string `json:"error"`
	Kind   string `json:"kind"`
	Field  string `json:"field,omitempty"`
	Value  string `json:"value,omitempty"`
	Reason string `json:"reason"`
}

// unitRecord is one line of the units listing.
type unitRecord struct {
	Kind   string  `json:"kind"`
	Label  string  `json:"label"`
	Factor float64 `json:"factor"`
}

// Unit kinds in the units listing.
const (
	unitKindArea = "area"
	unitKindCO2  = "co2"
)

func renderResult(w io.Writer, format string, result stomata.Result, notComputable string) error {
	record := result.Record()
	switch format {
	case config.OutputFormatJSON:
		return writeJSON(w, record)
	case config.OutputFormatNDJSON:
		return writeNDJSON(w, record)
	default:
		_, err := fmt.Fprintln(w, tui.RenderResultTable(result, notComputable))
		return err
	}
}

// renderFailure writes structured failures to w. Table output leaves the
// reason to the returned error.
func renderFailure(w io.Writer, format string, verr *stomata.ValidationError, reason string) error {
	record := failureRecord{
		Error:  verr.Unwrap().Error(),
		Kind:   verr.Kind.String(),
		Field:  verr.Field,
		Value:  verr.Value,
		Reason: reason,
	}
	switch format {
	case config.OutputFormatJSON:
		return writeJSON(w, record)
	case config.OutputFormatNDJSON:
		return writeNDJSON(w, record)
	default:
		return nil
	}
}

func renderSpecies(w io.Writer, format string, species []stomata.Species) error {
	switch format {
	case config.OutputFormatJSON:
		return writeJSON(w, species)
	case config.OutputFormatNDJSON:
		return writeNDJSON(w, toAny(species)...)
	default:
		_, err := fmt.Fprintln(w, tui.RenderSpeciesTable(species))
		return err
	}
}

func renderUnits(w io.Writer, format string) error {
	var records []unitRecord
	for _, u := range stomata.AreaUnits() {
		records = append(records, unitRecord{Kind: unitKindArea, Label: u.Label, Factor: u.Factor})
	}
	for _, u := range stomata.CO2Units() {
		records = append(records, unitRecord{Kind: unitKindCO2, Label: u.Label, Factor: u.Factor})
	}

	switch format {
	case config.OutputFormatJSON:
		return writeJSON(w, records)
	case config.OutputFormatNDJSON:
		return writeNDJSON(w, toAny(records)...)
	default:
		_, err := fmt.Fprintln(w, tui.RenderUnitsTable(unitKindArea, stomata.AreaUnits()))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, tui.RenderUnitsTable(unitKindCO2, stomata.CO2Units()))
		return err
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// writeNDJSON writes one compact JSON document per line.
func writeNDJSON(w io.Writer, values ...any) error {
	enc := json.NewEncoder(w)
	for _, v := range values {
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding NDJSON: %w", err)
		}
	}
	return nil
}

func toAny[T any](items []T) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
