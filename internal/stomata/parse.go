package stomata

import (
	"errors"
	"strconv"
	"strings"
)

// Field names reported in ValidationError.Field.
const (
	FieldWidth       = "width"
	FieldHeight      = "height"
	FieldNumLeaves   = "num_leaves"
	FieldPeopleCount = "people_count"
	FieldLeafType    = "leaf_type"
)

// Parse converts a RawInput into an Input. Surrounding whitespace is ignored;
// integers must not carry a fractional part.
func Parse(raw RawInput) (Input, error) {
	width, err := parseReal(FieldWidth, raw.Width)
	if err != nil {
		return Input{}, err
	}
	height, err := parseReal(FieldHeight, raw.Height)
	if err != nil {
		return Input{}, err
	}
	leaves, err := parseInteger(FieldNumLeaves, raw.NumLeaves)
	if err != nil {
		return Input{}, err
	}
	people, err := parseInteger(FieldPeopleCount, raw.PeopleCount)
	if err != nil {
		return Input{}, err
	}

	return Input{
		LeafType:    raw.LeafType,
		Width:       width,
		Height:      height,
		NumLeaves:   leaves,
		AreaUnit:    raw.AreaUnit,
		CO2Unit:     raw.CO2Unit,
		PeopleCount: people,
	}, nil
}

func parseReal(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	// Out-of-range input saturates to ±Inf or 0 instead of failing.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, invalidNumber(field, s)
	}
	return v, nil
}

func parseInteger(field, s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, invalidNumber(field, s)
	}
	return v, nil
}
