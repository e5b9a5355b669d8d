package stomata

import (
	"context"
	"math"

	"github.com/rs/zerolog"
)

// Estimate parses raw and computes the leaf sizing estimate.
//
// On failure the error is a *ValidationError wrapping ErrInvalidNumericInput
// or ErrUnknownLeafType. Numbers are checked before the leaf type. Zero and
// negative dimensions or counts are not rejected; they flow through the
// arithmetic and typically yield a NotComputable leaves-needed value.
func Estimate(raw RawInput) (Result, error) {
	in, err := Parse(raw)
	if err != nil {
		return Result{}, err
	}
	return EstimateValues(in)
}

// EstimateWithContext is Estimate with a debug trace on the context logger.
func EstimateWithContext(ctx context.Context, raw RawInput) (Result, error) {
	log := zerolog.Ctx(ctx)

	result, err := Estimate(raw)
	if err != nil {
		log.Debug().Ctx(ctx).
			Str("operation", "estimate").
			Str("leaf_type", raw.LeafType).
			Err(err).
			Msg("estimate rejected")
		return result, err
	}

	log.Debug().Ctx(ctx).
		Str("operation", "estimate").
		Str("leaf_type", result.LeafType).
		Float64("co2_absorbed_ug_per_day", result.CO2AbsorbedMicrograms).
		Str("leaves_needed", result.LeavesNeededToAbsorb.String()).
		Msg("estimate complete")
	return result, nil
}

// EstimateValues computes the estimate for already-parsed input.
//
// The calculation:
//  1. total area (cm²) = width × height × leaves
//  2. stomata = total area × density
//  3. CO2 absorbed (µg/day) = stomata × CO2PerStomaPerDayMicrograms
//  4. stomata and CO2 absorbed are both scaled by the species correction
//  5. leaves needed = ⌈people CO2 (µg/day) / CO2 absorbed (µg/day)⌉
//
// Unit conversion applies only to the reported area and absorption; step 5
// always uses the corrected µg value.
func EstimateValues(in Input) (Result, error) {
	species, ok := LookupSpecies(in.LeafType)
	if !ok {
		return Result{}, &ValidationError{Kind: UnknownLeafType, Field: FieldLeafType, Value: in.LeafType}
	}

	areaUnit := in.AreaUnit
	if areaUnit == "" {
		areaUnit = AreaUnitCM2
	}
	co2Unit := in.CO2Unit
	if co2Unit == "" {
		co2Unit = CO2UnitMicrogram
	}

	leafArea := in.Width * in.Height
	totalArea := leafArea * float64(in.NumLeaves)
	stomata := totalArea * species.Density
	absorbed := stomata * CO2PerStomaPerDayMicrograms

	stomata *= species.Correction
	absorbed *= species.Correction

	peopleCO2 := PeopleCO2Micrograms(in.PeopleCount)

	return Result{
		LeafType:              in.LeafType,
		Width:                 in.Width,
		Height:                in.Height,
		NumLeaves:             in.NumLeaves,
		AreaUnit:              areaUnit,
		CO2Unit:               co2Unit,
		TotalAreaCM2:          totalArea,
		TotalArea:             ConvertArea(totalArea, areaUnit),
		TotalStomata:          truncate(stomata),
		TotalStomataExact:     stomata,
		CO2AbsorbedMicrograms: absorbed,
		CO2Absorbed:           ConvertCO2(absorbed, co2Unit),
		PeopleCount:           in.PeopleCount,
		PeopleCO2KgPerDay:     float64(in.PeopleCount) * CO2PerPersonPerDayKg,
		PeopleCO2Micrograms:   peopleCO2,
		LeavesNeededToAbsorb:  LeavesFor(peopleCO2, absorbed),
	}, nil
}

// LeavesFor returns ⌈demand / absorbed⌉, or NotComputable when the
// absorption is not positive or the quotient does not fit an int64.
func LeavesFor(demandMicrograms, absorbedMicrograms float64) LeavesNeeded {
	// NaN fails the comparison too.
	if !(absorbedMicrograms > 0) {
		return NotComputable
	}
	n := math.Ceil(demandMicrograms / absorbedMicrograms)
	if math.IsNaN(n) || n >= math.MaxInt64 || n <= math.MinInt64 {
		return NotComputable
	}
	return LeavesNeeded{Count: int64(n), Computable: true}
}

// truncate converts v toward zero, saturating at the int64 range.
func truncate(v float64) int64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt64:
		return math.MaxInt64
	case v <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(v)
	}
}
