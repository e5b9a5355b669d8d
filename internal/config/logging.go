package config

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rshade/leafco2/internal/logging"
)

// LoggingConfig is the logging section of the config file.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
	Caller bool   `yaml:"caller,omitempty"`
}

// Validate checks the level parses and the format is console or json.
func (lc LoggingConfig) Validate() error {
	if lc.Level != "" {
		if _, err := zerolog.ParseLevel(lc.Level); err != nil {
			return fmt.Errorf("logging.level: %w", err)
		}
	}
	switch lc.Format {
	case "", logging.FormatConsole, logging.FormatJSON:
		return nil
	default:
		return fmt.Errorf("logging.format: unsupported format %q", lc.Format)
	}
}

// ToLoggingConfig converts config.LoggingConfig to logging.Config for use with
// the internal/logging package.
//
// The conversion applies these rules:
//   - Level, Format and Caller are copied directly
//   - If File is set, Output becomes "file" and File is passed through
//   - If File is empty, Output defaults to "stderr"
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
		Caller: lc.Caller,
	}
}

// GetLoggingConfig returns a copy of the Logging section of the global
// configuration. Callers apply flag overrides such as --debug themselves.
func GetLoggingConfig() LoggingConfig {
	cfg := GetGlobalConfig()
	return cfg.Logging
}
