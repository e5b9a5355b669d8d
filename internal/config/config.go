// Package config loads leafco2 configuration from ~/.leafco2/config.yaml
// and LEAFCO2_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/rshade/leafco2/internal/stomata"
)

// CurrentVersion is the config schema version written by Save.
const CurrentVersion = "1.0.0"

// supportedMajor is the highest config schema major version this build reads.
const supportedMajor = 1

// Output formats.
const (
	OutputFormatTable  = "table"
	OutputFormatJSON   = "json"
	OutputFormatNDJSON = "ndjson"
)

// Locales for display labels.
const (
	LocaleKorean  = "ko"
	LocaleEnglish = "en"
)

// Environment variable names.
const (
	EnvHome         = "LEAFCO2_HOME"
	EnvLogLevel     = "LEAFCO2_LOG_LEVEL"
	EnvLogFormat    = "LEAFCO2_LOG_FORMAT"
	EnvOutputFormat = "LEAFCO2_OUTPUT_FORMAT"
	EnvLeafType     = "LEAFCO2_LEAF_TYPE"
	EnvLocale       = "LEAFCO2_LOCALE"
)

const (
	configDirName  = ".leafco2"
	configFileName = "config.yaml"
)

// Config is the full leafco2 configuration.
type Config struct {
	Version  string         `yaml:"version"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`

	configPath string
	loadErr    error
}

// DefaultsConfig holds the initial form values for an estimate.
type DefaultsConfig struct {
	LeafType    string `yaml:"leaf_type"`
	Width       string `yaml:"width"`
	Height      string `yaml:"height"`
	NumLeaves   int    `yaml:"num_leaves"`
	AreaUnit    string `yaml:"area_unit"`
	CO2Unit     string `yaml:"co2_unit"`
	PeopleCount int    `yaml:"people_count"`
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Locale        string `yaml:"locale"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Defaults: DefaultsConfig{
			LeafType:    stomata.SpeciesNames()[0],
			Width:       "1",
			Height:      "1",
			NumLeaves:   1,
			AreaUnit:    stomata.AreaUnitCM2,
			CO2Unit:     stomata.CO2UnitMicrogram,
			PeopleCount: 1,
		},
		Output: OutputConfig{
			DefaultFormat: OutputFormatTable,
			Locale:        LocaleKorean,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// New returns the effective configuration: defaults, then the config file
// if present, then environment overrides. A file that cannot be read or
// parsed, or whose schema version is unsupported, is skipped entirely and
// reported through LoadError.
func New() *Config {
	cfg := Default()

	path, err := ConfigFilePath()
	if err != nil {
		cfg.loadErr = err
	} else {
		cfg.configPath = path
		if _, statErr := os.Stat(path); statErr == nil {
			cfg = mergeFileOrDefaults(path)
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

// mergeFileOrDefaults overlays the file at path on the defaults, falling back
// to plain defaults with loadErr set when the file is unusable.
func mergeFileOrDefaults(path string) *Config {
	candidate := Default()
	candidate.configPath = path

	err := MergeYAMLFile(candidate, path)
	if err == nil {
		err = validateVersion(candidate.Version)
	}
	if err == nil {
		return candidate
	}

	cfg := Default()
	cfg.configPath = path
	cfg.loadErr = err
	return cfg
}

// Load reads the config file at path on top of the defaults. Unlike New it
// applies no environment overrides and returns any error, including a
// failed Validate.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.configPath = path
	if err := MergeYAMLFile(cfg, path); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}
	return cfg, nil
}

// LoadError returns the error encountered while New read the config file.
func (c *Config) LoadError() error {
	return c.loadErr
}

// ConfigPath returns the file this config was read from or will be saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath overrides the file used by Save.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.Output.DefaultFormat = v
	}
	if v := os.Getenv(EnvLeafType); v != "" {
		c.Defaults.LeafType = v
	}
	if v := os.Getenv(EnvLocale); v != "" {
		c.Output.Locale = v
	}
}

// Save writes the configuration as YAML to ConfigPath.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path not set")
	}
	if c.Version == "" {
		c.Version = CurrentVersion
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", c.configPath, err)
	}
	return nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if err := validateVersion(c.Version); err != nil {
		return err
	}
	if _, ok := stomata.LookupSpecies(c.Defaults.LeafType); !ok {
		return fmt.Errorf("defaults.leaf_type: unknown leaf type %q", c.Defaults.LeafType)
	}
	if !stomata.IsKnownAreaUnit(c.Defaults.AreaUnit) {
		return fmt.Errorf("defaults.area_unit: unknown unit %q", c.Defaults.AreaUnit)
	}
	if !stomata.IsKnownCO2Unit(c.Defaults.CO2Unit) {
		return fmt.Errorf("defaults.co2_unit: unknown unit %q", c.Defaults.CO2Unit)
	}
	if c.Defaults.NumLeaves < 1 {
		return fmt.Errorf("defaults.num_leaves must be >= 1, got %d", c.Defaults.NumLeaves)
	}
	if c.Defaults.PeopleCount < 1 {
		return fmt.Errorf("defaults.people_count must be >= 1, got %d", c.Defaults.PeopleCount)
	}
	if !IsValidOutputFormat(c.Output.DefaultFormat) {
		return fmt.Errorf("output.default_format: unsupported format %q", c.Output.DefaultFormat)
	}
	switch c.Output.Locale {
	case LocaleKorean, LocaleEnglish:
	default:
		return fmt.Errorf("output.locale: unsupported locale %q", c.Output.Locale)
	}
	return c.Logging.Validate()
}

func validateVersion(v string) error {
	if v == "" {
		return nil
	}
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("version: invalid semver %q: %w", v, err)
	}
	if parsed.Major() > supportedMajor {
		return fmt.Errorf("version: config schema %s is newer than supported %d.x", parsed, supportedMajor)
	}
	return nil
}

// IsValidOutputFormat reports whether format is table, json or ndjson.
func IsValidOutputFormat(format string) bool {
	switch format {
	case OutputFormatTable, OutputFormatJSON, OutputFormatNDJSON:
		return true
	default:
		return false
	}
}

// NotComputableLabel returns the leaves-needed sentinel text for the
// configured locale.
func (c *Config) NotComputableLabel() string {
	if c.Output.Locale == LocaleEnglish {
		return stomata.NotComputableLabel
	}
	return stomata.NotComputableLabelKorean
}

// Get returns the value at a dotted key such as "defaults.leaf_type".
func (c *Config) Get(key string) (string, error) {
	values := c.List()
	v, ok := values[key]
	if !ok {
		return "", fmt.Errorf("unknown config key %q", key)
	}
	return v, nil
}

// Set assigns value to a dotted key. The result is not validated.
func (c *Config) Set(key, value string) error {
	switch key {
	case "version":
		c.Version = value
	case "defaults.leaf_type":
		c.Defaults.LeafType = value
	case "defaults.width":
		c.Defaults.Width = value
	case "defaults.height":
		c.Defaults.Height = value
	case "defaults.num_leaves":
		return setInt(&c.Defaults.NumLeaves, key, value)
	case "defaults.area_unit":
		c.Defaults.AreaUnit = value
	case "defaults.co2_unit":
		c.Defaults.CO2Unit = value
	case "defaults.people_count":
		return setInt(&c.Defaults.PeopleCount, key, value)
	case "output.default_format":
		c.Output.DefaultFormat = value
	case "output.locale":
		c.Output.Locale = value
	case "logging.level":
		c.Logging.Level = value
	case "logging.format":
		c.Logging.Format = value
	case "logging.file":
		c.Logging.File = value
	case "logging.caller":
		caller, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%s: %q is not a boolean", key, value)
		}
		c.Logging.Caller = caller
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}

func setInt(dst *int, key, value string) error {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("%s: %q is not an integer", key, value)
	}
	*dst = n
	return nil
}

// List returns every setting keyed by its dotted name.
func (c *Config) List() map[string]string {
	return map[string]string{
		"version":               c.Version,
		"defaults.leaf_type":    c.Defaults.LeafType,
		"defaults.width":        c.Defaults.Width,
		"defaults.height":       c.Defaults.Height,
		"defaults.num_leaves":   strconv.Itoa(c.Defaults.NumLeaves),
		"defaults.area_unit":    c.Defaults.AreaUnit,
		"defaults.co2_unit":     c.Defaults.CO2Unit,
		"defaults.people_count": strconv.Itoa(c.Defaults.PeopleCount),
		"output.default_format": c.Output.DefaultFormat,
		"output.locale":         c.Output.Locale,
		"logging.level":         c.Logging.Level,
		"logging.format":        c.Logging.Format,
		"logging.file":          c.Logging.File,
		"logging.caller":        strconv.FormatBool(c.Logging.Caller),
	}
}

// Keys returns the dotted config keys in sorted order.
func (c *Config) Keys() []string {
	values := c.List()
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ConfigDir returns the leafco2 configuration directory.
func ConfigDir() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, configDirName), nil
}

// ConfigFilePath returns the path of config.yaml inside ConfigDir.
func ConfigFilePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}
