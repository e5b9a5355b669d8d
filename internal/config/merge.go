package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config keys.
const (
	keyVersion  = "version"
	keyDefaults = "defaults"
	keyOutput   = "output"
	keyLogging  = "logging"
)

// MergeYAMLFile loads a YAML file and merges it onto the target Config.
// Fields present in the file override the target; absent fields keep their
// current values. Unknown top-level keys are ignored.
func MergeYAMLFile(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in MergeYAMLFile")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", overlayPath, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing config YAML from %s: %w", overlayPath, err)
	}

	for key, node := range overlay {
		if err = decodeSection(target, key, &node); err != nil {
			return fmt.Errorf("applying config section %q: %w", key, err)
		}
	}

	return nil
}

// decodeSection decodes node over a copy of the current section, so a file
// that sets only defaults.leaf_type keeps every other default.
func decodeSection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keyVersion:
		v := target.Version
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Version = v
	case keyDefaults:
		v := target.Defaults
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Defaults = v
	case keyOutput:
		v := target.Output
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Output = v
	case keyLogging:
		v := target.Logging
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Logging = v
	}
	return nil
}
