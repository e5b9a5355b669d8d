package stomata

import (
	"context"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-6

func raw(leafType, width, height string) RawInput {
	return RawInput{
		LeafType:    leafType,
		Width:       width,
		Height:      height,
		NumLeaves:   "1",
		AreaUnit:    AreaUnitCM2,
		CO2Unit:     CO2UnitMicrogram,
		PeopleCount: "1",
	}
}

func TestEstimate_ReferenceScenarios(t *testing.T) {
	tests := []struct {
		name         string
		input        RawInput
		wantAreaCM2  float64
		wantStomata  int64
		wantAbsorbed float64
		wantLeaves   int64
	}{
		{
			name:         "maple leaf 10x10",
			input:        raw("단풍잎", "10", "10"),
			wantAreaCM2:  100,
			wantStomata:  7_211_160,
			wantAbsorbed: 360_558,
			wantLeaves:   2774, // ceil(1e9 / 360558)
		},
		{
			name:         "stucky 10x10 applies x4 correction",
			input:        raw("스투키", "10", "10"),
			wantAreaCM2:  100,
			wantStomata:  3_470_040, // 867,510 before correction
			wantAbsorbed: 173_502,
			wantLeaves:   5764, // ceil(1e9 / 173502)
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Estimate(tt.input)
			require.NoError(t, err)

			assert.InDelta(t, tt.wantAreaCM2, got.TotalAreaCM2, tolerance)
			assert.Equal(t, tt.wantStomata, got.TotalStomata)
			assert.InDelta(t, tt.wantAbsorbed, got.CO2AbsorbedMicrograms, tolerance)
			require.True(t, got.LeavesNeededToAbsorb.Computable)
			assert.Equal(t, tt.wantLeaves, got.LeavesNeededToAbsorb.Count)
		})
	}
}

func TestEstimate_MapleRecord(t *testing.T) {
	got, err := Estimate(raw("단풍잎", "10", "10"))
	require.NoError(t, err)

	rec := got.Record()
	assert.Equal(t, "단풍잎", rec.LeafType)
	assert.Equal(t, "10.0 x 10.0 cm", rec.LeafSize)
	assert.Equal(t, int64(1), rec.NumLeavesInput)
	assert.Equal(t, "100.00 cm²", rec.TotalArea)
	assert.Equal(t, int64(7_211_160), rec.TotalStomata)
	assert.Equal(t, "360,558.0000 µg/day", rec.CO2Absorbed)
	assert.Equal(t, int64(1), rec.PeopleCount)
	assert.InDelta(t, 1.0, rec.PeopleCO2KgPerDay, tolerance)
	assert.Equal(t, LeavesNeeded{Count: 2774, Computable: true}, rec.LeavesNeededToAbsorb)
}

func TestEstimate_StomataProperty(t *testing.T) {
	dims := []struct{ w, h float64 }{{1, 1}, {2.5, 4}, {10, 10}, {0.3, 7.1}}
	counts := []int64{1, 3, 12}

	for _, s := range AllSpecies() {
		for _, d := range dims {
			for _, n := range counts {
				got, err := EstimateValues(Input{
					LeafType:    s.Name,
					Width:       d.w,
					Height:      d.h,
					NumLeaves:   n,
					PeopleCount: 2,
				})
				require.NoError(t, err)

				want := d.w * d.h * float64(n) * s.Density * s.Correction
				assert.InEpsilon(t, want, got.TotalStomataExact, 1e-9, s.Name)
				assert.InEpsilon(t, want*CO2PerStomaPerDayMicrograms, got.CO2AbsorbedMicrograms, 1e-9, s.Name)

				wantLeaves := int64(math.Ceil(2 * KgToMicrograms / got.CO2AbsorbedMicrograms))
				require.True(t, got.LeavesNeededToAbsorb.Computable)
				assert.Equal(t, wantLeaves, got.LeavesNeededToAbsorb.Count, s.Name)
			}
		}
	}
}

func TestEstimate_LeavesUsePreConversionAbsorption(t *testing.T) {
	for _, unit := range CO2Units() {
		t.Run(unit.Label, func(t *testing.T) {
			in := raw("단풍잎", "10", "10")
			in.CO2Unit = unit.Label

			got, err := Estimate(in)
			require.NoError(t, err)

			assert.Equal(t, int64(2774), got.LeavesNeededToAbsorb.Count)
			assert.InDelta(t, 360_558*unit.Factor, got.CO2Absorbed, 360_558*unit.Factor*1e-9)
		})
	}
}

func TestEstimate_Failures(t *testing.T) {
	tests := []struct {
		name      string
		input     RawInput
		wantErr   error
		wantKind  FailureKind
		wantField string
	}{
		{
			name:      "non-numeric width",
			input:     raw("단풍잎", "abc", "10"),
			wantErr:   ErrInvalidNumericInput,
			wantKind:  InvalidNumericInput,
			wantField: FieldWidth,
		},
		{
			name:      "empty height",
			input:     raw("단풍잎", "10", ""),
			wantErr:   ErrInvalidNumericInput,
			wantKind:  InvalidNumericInput,
			wantField: FieldHeight,
		},
		{
			name: "fractional leaf count",
			input: func() RawInput {
				r := raw("단풍잎", "1", "1")
				r.NumLeaves = "1.5"
				return r
			}(),
			wantErr:   ErrInvalidNumericInput,
			wantKind:  InvalidNumericInput,
			wantField: FieldNumLeaves,
		},
		{
			name: "non-numeric people count",
			input: func() RawInput {
				r := raw("단풍잎", "1", "1")
				r.PeopleCount = "two"
				return r
			}(),
			wantErr:   ErrInvalidNumericInput,
			wantKind:  InvalidNumericInput,
			wantField: FieldPeopleCount,
		},
		{
			name:      "unknown leaf type",
			input:     raw("oak", "1", "1"),
			wantErr:   ErrUnknownLeafType,
			wantKind:  UnknownLeafType,
			wantField: FieldLeafType,
		},
		{
			name:      "numbers are checked before leaf type",
			input:     raw("oak", "abc", "1"),
			wantErr:   ErrInvalidNumericInput,
			wantKind:  InvalidNumericInput,
			wantField: FieldWidth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Estimate(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, Result{}, got)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantKind, verr.Kind)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.NotEmpty(t, verr.Reason())
			assert.NotEmpty(t, verr.ReasonKorean())
		})
	}
}

func TestEstimate_AcceptsWhitespaceAndSigns(t *testing.T) {
	in := RawInput{
		LeafType:    "깻잎",
		Width:       " 2.5 ",
		Height:      "4",
		NumLeaves:   " +3",
		PeopleCount: "1 ",
	}
	got, err := Estimate(in)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.NumLeaves)
	assert.InDelta(t, 30.0, got.TotalAreaCM2, tolerance)
}

func TestEstimate_DegenerateDimensions(t *testing.T) {
	tests := []struct {
		name   string
		width  string
		height string
	}{
		{name: "zero width", width: "0", height: "10"},
		{name: "zero height", width: "10", height: "0"},
		{name: "negative width", width: "-5", height: "10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Estimate(raw("단풍잎", tt.width, tt.height))
			require.NoError(t, err, "degenerate dimensions are computed, not rejected")

			assert.LessOrEqual(t, got.CO2AbsorbedMicrograms, 0.0)
			assert.False(t, got.LeavesNeededToAbsorb.Computable)
			assert.Equal(t, NotComputable, got.LeavesNeededToAbsorb)
		})
	}

	t.Run("negative width and height multiply back to positive", func(t *testing.T) {
		got, err := Estimate(raw("단풍잎", "-10", "-10"))
		require.NoError(t, err)
		assert.Equal(t, int64(2774), got.LeavesNeededToAbsorb.Count)
		assert.Equal(t, "-10.0 x -10.0 cm", got.LeafSize())
	})

	t.Run("negative leaf count is computed through", func(t *testing.T) {
		in := raw("단풍잎", "10", "10")
		in.NumLeaves = "-1"
		got, err := Estimate(in)
		require.NoError(t, err)
		assert.Equal(t, int64(-7_211_160), got.TotalStomata)
		assert.False(t, got.LeavesNeededToAbsorb.Computable)
	})

	t.Run("out-of-range width saturates to infinity", func(t *testing.T) {
		got, err := Estimate(raw("단풍잎", "1e400", "10"))
		require.NoError(t, err)
		assert.Equal(t, "inf x 10.0 cm", got.LeafSize())
		assert.Equal(t, "inf cm²", got.TotalAreaText())
		assert.Equal(t, "inf µg/day", got.CO2AbsorbedText())
		assert.Equal(t, LeavesNeeded{Count: 0, Computable: true}, got.LeavesNeededToAbsorb)
	})

	t.Run("infinite times zero renders nan", func(t *testing.T) {
		got, err := Estimate(raw("단풍잎", "1e400", "0"))
		require.NoError(t, err)
		assert.Equal(t, "inf x 0.0 cm", got.LeafSize())
		assert.Equal(t, "nan cm²", got.TotalAreaText())
		assert.Equal(t, "nan µg/day", got.CO2AbsorbedText())
		assert.Equal(t, NotComputable, got.LeavesNeededToAbsorb)
	})

	t.Run("negative infinity", func(t *testing.T) {
		got, err := Estimate(raw("단풍잎", "-1e400", "10"))
		require.NoError(t, err)
		assert.Equal(t, "-inf cm²", got.TotalAreaText())
		assert.Equal(t, "-inf µg/day", got.CO2AbsorbedText())
	})
}

func TestEstimate_UnknownUnitsPassThrough(t *testing.T) {
	in := raw("단풍잎", "10", "10")
	in.AreaUnit = "acre"
	in.CO2Unit = "ton"

	got, err := Estimate(in)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, got.TotalArea, tolerance)
	assert.InDelta(t, 360_558.0, got.CO2Absorbed, tolerance)
	assert.Equal(t, "acre", got.AreaUnit)
	assert.Equal(t, "100.00 acre", got.TotalAreaText())
	assert.Equal(t, "360,558.0000 ton/day", got.CO2AbsorbedText())
}

func TestEstimate_EmptyUnitsDefault(t *testing.T) {
	in := raw("단풍잎", "10", "10")
	in.AreaUnit = ""
	in.CO2Unit = ""

	got, err := Estimate(in)
	require.NoError(t, err)
	assert.Equal(t, AreaUnitCM2, got.AreaUnit)
	assert.Equal(t, CO2UnitMicrogram, got.CO2Unit)
}

func TestEstimate_ConcurrentCalls(t *testing.T) {
	for _, s := range SpeciesNames() {
		t.Run(s, func(t *testing.T) {
			t.Parallel()
			for i := 0; i < 100; i++ {
				got, err := Estimate(raw(s, "3", "4"))
				require.NoError(t, err)
				assert.True(t, got.LeavesNeededToAbsorb.Computable)
			}
		})
	}
}

func TestEstimateWithContext(t *testing.T) {
	logger := zerolog.Nop()
	ctx := logger.WithContext(context.Background())

	got, err := EstimateWithContext(ctx, raw("고무나무", "2", "2"))
	require.NoError(t, err)
	assert.Equal(t, "고무나무", got.LeafType)

	_, err = EstimateWithContext(context.Background(), raw("nope", "2", "2"))
	assert.ErrorIs(t, err, ErrUnknownLeafType)
}

func TestLeavesFor(t *testing.T) {
	tests := []struct {
		name     string
		demand   float64
		absorbed float64
		want     LeavesNeeded
	}{
		{name: "exact division", demand: 100, absorbed: 25, want: LeavesNeeded{Count: 4, Computable: true}},
		{name: "rounds up", demand: 100, absorbed: 30, want: LeavesNeeded{Count: 4, Computable: true}},
		{name: "zero absorption", demand: 100, absorbed: 0, want: NotComputable},
		{name: "negative absorption", demand: 100, absorbed: -1, want: NotComputable},
		{name: "NaN absorption", demand: 100, absorbed: math.NaN(), want: NotComputable},
		{name: "overflowing quotient", demand: 1e9, absorbed: 1e-300, want: NotComputable},
		{name: "zero demand", demand: 0, absorbed: 10, want: LeavesNeeded{Count: 0, Computable: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LeavesFor(tt.demand, tt.absorbed))
		})
	}
}

func TestLeavesNeeded_Rendering(t *testing.T) {
	n := LeavesNeeded{Count: 2774, Computable: true}
	assert.Equal(t, "2774", n.String())
	b, err := n.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `2774`, string(b))

	assert.Equal(t, NotComputableLabel, NotComputable.String())
	b, err = NotComputable.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"not computable"`, string(b))
}

func TestRecordFields_Order(t *testing.T) {
	got, err := Estimate(raw("몬스테라", "0", "1"))
	require.NoError(t, err)

	fields := got.Record().Fields(NotComputableLabelKorean)
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	assert.Equal(t, []string{
		"leaf_type", "leaf_size", "num_leaves_input", "total_area", "total_stomata",
		"co2_absorbed", "people_count", "people_co2_kg_per_day", "leaves_needed_to_absorb",
	}, keys)
	assert.Equal(t, NotComputableLabelKorean, fields[len(fields)-1].Value)
	assert.Equal(t, "1.0", fields[7].Value)
}

func TestFormatDimension(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{10, "10.0"},
		{2.5, "2.5"},
		{0, "0.0"},
		{-3, "-3.0"},
		{1e16, "1e+16"},
		{0.00001, "1e-05"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "nan"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDimension(tt.in))
	}
}
