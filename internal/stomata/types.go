// Package stomata estimates how many leaves it takes to absorb the daily CO2
// output of a group of people.
//
// The model is deliberately simple: leaf area times a per-species stomatal
// density gives a stoma count, and each stoma absorbs a fixed mass of CO2 per
// day. Everything is a pure function of its inputs and a few read-only tables.
package stomata

import (
	"math"
	"strconv"
	"strings"
)

// RawInput is an estimate request as typed by a user. Numeric fields are
// parsed by Estimate so parse failures surface as ValidationError values.
type RawInput struct {
	LeafType    string
	Width       string
	Height      string
	NumLeaves   string
	AreaUnit    string
	CO2Unit     string
	PeopleCount string
}

// Input is an already-parsed estimate request.
type Input struct {
	LeafType    string
	Width       float64 // cm
	Height      float64 // cm
	NumLeaves   int64
	AreaUnit    string
	CO2Unit     string
	PeopleCount int64
}

// LeavesNeeded is the sizing answer. When Computable is false the leaf
// absorbs nothing (or less than nothing) and no count of leaves suffices.
type LeavesNeeded struct {
	Count      int64
	Computable bool
}

// NotComputable is the sentinel LeavesNeeded value.
//
//nolint:gochecknoglobals // Immutable sentinel.
var NotComputable = LeavesNeeded{}

// String renders the count, or NotComputableLabel.
func (l LeavesNeeded) String() string {
	if !l.Computable {
		return NotComputableLabel
	}
	return strconv.FormatInt(l.Count, 10)
}

// MarshalJSON encodes a number, or the NotComputableLabel string.
func (l LeavesNeeded) MarshalJSON() ([]byte, error) {
	if !l.Computable {
		return []byte(strconv.Quote(NotComputableLabel)), nil
	}
	return []byte(strconv.FormatInt(l.Count, 10)), nil
}

// Result is the outcome of a successful estimate.
type Result struct {
	LeafType  string
	Width     float64
	Height    float64
	NumLeaves int64

	// AreaUnit and CO2Unit echo the requested labels, even when unknown.
	AreaUnit string
	CO2Unit  string

	// TotalAreaCM2 is the combined area of all leaves in cm².
	TotalAreaCM2 float64
	// TotalArea is TotalAreaCM2 converted to AreaUnit.
	TotalArea float64

	// TotalStomata is the corrected stoma count truncated toward zero.
	TotalStomata int64
	// TotalStomataExact is the corrected stoma count before truncation.
	TotalStomataExact float64

	// CO2AbsorbedMicrograms is the corrected daily absorption in µg.
	CO2AbsorbedMicrograms float64
	// CO2Absorbed is CO2AbsorbedMicrograms converted to CO2Unit.
	CO2Absorbed float64

	PeopleCount          int64
	PeopleCO2KgPerDay    float64
	PeopleCO2Micrograms  float64
	LeavesNeededToAbsorb LeavesNeeded
}

// LeafSize renders the single-leaf dimensions, e.g. "10.0 x 10.0 cm".
func (r Result) LeafSize() string {
	return formatDimension(r.Width) + " x " + formatDimension(r.Height) + " cm"
}

// TotalAreaText renders the converted total area with two decimals.
func (r Result) TotalAreaText() string {
	if s, ok := formatNonFinite(r.TotalArea); ok {
		return s + " " + r.AreaUnit
	}
	return strconv.FormatFloat(r.TotalArea, 'f', areaPrecision, 64) + " " + r.AreaUnit
}

// CO2AbsorbedText renders the converted daily absorption, e.g. "360,558.0000 µg/day".
func (r Result) CO2AbsorbedText() string {
	return FormatFloat(r.CO2Absorbed, co2Precision) + " " + r.CO2Unit + "/day"
}

// Record is the display form of a Result, with fields in presentation order.
type Record struct {
	LeafType             string       `json:"leaf_type"`
	LeafSize             string       `json:"leaf_size"`
	NumLeavesInput       int64        `json:"num_leaves_input"`
	TotalArea            string       `json:"total_area"`
	TotalStomata         int64        `json:"total_stomata"`
	CO2Absorbed          string       `json:"co2_absorbed"`
	PeopleCount          int64        `json:"people_count"`
	PeopleCO2KgPerDay    float64      `json:"people_co2_kg_per_day"`
	LeavesNeededToAbsorb LeavesNeeded `json:"leaves_needed_to_absorb"`
}

// Record returns the display form of r.
func (r Result) Record() Record {
	return Record{
		LeafType:             r.LeafType,
		LeafSize:             r.LeafSize(),
		NumLeavesInput:       r.NumLeaves,
		TotalArea:            r.TotalAreaText(),
		TotalStomata:         r.TotalStomata,
		CO2Absorbed:          r.CO2AbsorbedText(),
		PeopleCount:          r.PeopleCount,
		PeopleCO2KgPerDay:    r.PeopleCO2KgPerDay,
		LeavesNeededToAbsorb: r.LeavesNeededToAbsorb,
	}
}

// Field is a single key/value line of a rendered result.
type Field struct {
	Key   string
	Value string
}

// Fields returns the record as ordered key/value pairs. notComputable is the
// label used when leaves-needed has no numeric value.
func (rec Record) Fields(notComputable string) []Field {
	leaves := rec.LeavesNeededToAbsorb.String()
	if !rec.LeavesNeededToAbsorb.Computable {
		leaves = notComputable
	}
	return []Field{
		{Key: "leaf_type", Value: rec.LeafType},
		{Key: "leaf_size", Value: rec.LeafSize},
		{Key: "num_leaves_input", Value: strconv.FormatInt(rec.NumLeavesInput, 10)},
		{Key: "total_area", Value: rec.TotalArea},
		{Key: "total_stomata", Value: strconv.FormatInt(rec.TotalStomata, 10)},
		{Key: "co2_absorbed", Value: rec.CO2Absorbed},
		{Key: "people_count", Value: strconv.FormatInt(rec.PeopleCount, 10)},
		{Key: "people_co2_kg_per_day", Value: formatDimension(rec.PeopleCO2KgPerDay)},
		{Key: "leaves_needed_to_absorb", Value: leaves},
	}
}

// formatDimension prints a float the way an interactive calculator shows it:
// shortest round-trip digits, always with a fractional part ("10.0", "2.5"),
// switching to exponent form for very large or very small magnitudes.
func formatDimension(v float64) string {
	if s, ok := formatNonFinite(v); ok {
		return s
	}

	const (
		expHigh = 1e16
		expLow  = 1e-4
	)
	abs := math.Abs(v)
	if abs >= expHigh || (abs != 0 && abs < expLow) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}

// formatNonFinite returns "inf", "-inf" or "nan" for non-finite v.
func formatNonFinite(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "nan", true
	case math.IsInf(v, 1):
		return "inf", true
	case math.IsInf(v, -1):
		return "-inf", true
	default:
		return "", false
	}
}
