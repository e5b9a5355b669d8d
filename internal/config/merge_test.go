package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/leafco2/internal/config"
)

// writeOverlay writes YAML content to a temp file and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestMergeYAMLFile_PartialSection(t *testing.T) {
	target := config.Default()
	path := writeOverlay(t, `
defaults:
  leaf_type: 스투키
  people_count: 4
`)

	require.NoError(t, config.MergeYAMLFile(target, path))

	assert.Equal(t, "스투키", target.Defaults.LeafType)
	assert.Equal(t, 4, target.Defaults.PeopleCount)
	assert.Equal(t, "1", target.Defaults.Width, "absent fields keep defaults")
	assert.Equal(t, 1, target.Defaults.NumLeaves)
	assert.Equal(t, config.OutputFormatTable, target.Output.DefaultFormat, "absent sections untouched")
}

func TestMergeYAMLFile_AllSections(t *testing.T) {
	target := config.Default()
	path := writeOverlay(t, `
version: "1.2.0"
defaults:
  area_unit: m²
  co2_unit: kg
output:
  default_format: json
  locale: en
logging:
  level: debug
  format: json
  file: /tmp/leafco2.log
`)

	require.NoError(t, config.MergeYAMLFile(target, path))

	assert.Equal(t, "1.2.0", target.Version)
	assert.Equal(t, "m²", target.Defaults.AreaUnit)
	assert.Equal(t, "kg", target.Defaults.CO2Unit)
	assert.Equal(t, config.OutputFormatJSON, target.Output.DefaultFormat)
	assert.Equal(t, config.LocaleEnglish, target.Output.Locale)
	assert.Equal(t, "debug", target.Logging.Level)
	assert.Equal(t, "/tmp/leafco2.log", target.Logging.File)
}

func TestMergeYAMLFile_IgnoresUnknownKeys(t *testing.T) {
	target := config.Default()
	path := writeOverlay(t, `
plugins:
  aws: {}
output:
  default_format: ndjson
`)

	require.NoError(t, config.MergeYAMLFile(target, path))
	assert.Equal(t, config.OutputFormatNDJSON, target.Output.DefaultFormat)
}

func TestMergeYAMLFile_EmptyFile(t *testing.T) {
	target := config.Default()
	path := writeOverlay(t, "# only a comment\n")

	require.NoError(t, config.MergeYAMLFile(target, path))
	assert.Equal(t, config.Default().Defaults, target.Defaults)
}

func TestMergeYAMLFile_Errors(t *testing.T) {
	t.Run("nil target", func(t *testing.T) {
		err := config.MergeYAMLFile(nil, "whatever.yaml")
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.MergeYAMLFile(config.Default(), filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeOverlay(t, "defaults: [unterminated")
		err := config.MergeYAMLFile(config.Default(), path)
		require.Error(t, err)
	})

	t.Run("wrong section type", func(t *testing.T) {
		path := writeOverlay(t, "defaults:\n  num_leaves: many\n")
		err := config.MergeYAMLFile(config.Default(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"defaults"`)
	})
}
