package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/leafco2/internal/config"
	"github.com/rshade/leafco2/internal/stomata"
)

func TestRenderFailure(t *testing.T) {
	verr := &stomata.ValidationError{Kind: stomata.UnknownLeafType, Field: "leaf_type", Value: "oak"}

	tests := []struct {
		name   string
		format string
		want   []string
	}{
		{name: "table writes nothing", format: config.OutputFormatTable},
		{
			name:   "json",
			format: config.OutputFormatJSON,
			want:   []string{`"error": "unknown leaf type"`, `"kind": "UnknownLeafType"`, `"value": "oak"`},
		},
		{
			name:   "ndjson is one line",
			format: config.OutputFormatNDJSON,
			want:   []string{`"kind":"UnknownLeafType"`, `"reason":"unknown leaf type"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, renderFailure(&buf, tt.format, verr, verr.Reason()))
			if len(tt.want) == 0 {
				assert.Empty(t, buf.String())
				return
			}
			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}
}

func TestRenderResult_NDJSONIsCompact(t *testing.T) {
	result, err := stomata.Estimate(stomata.RawInput{
		LeafType: "단풍잎", Width: "10", Height: "10", NumLeaves: "1",
		AreaUnit: stomata.AreaUnitCM2, CO2Unit: stomata.CO2UnitMicrogram, PeopleCount: "1",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderResult(&buf, config.OutputFormatNDJSON, result, stomata.NotComputableLabel))

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.Contains(t, out, `"leaves_needed_to_absorb":2774`)
}

func TestWriteNDJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeNDJSON(&buf))
	assert.Empty(t, buf.String())
}
