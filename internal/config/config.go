// Package config loads the animl command configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

const ConfigFileName = "animl.yaml"

// DefaultIndent is the number of spaces used per nesting level when the file
// does not set one.
const DefaultIndent = 2

// Config controls how the animl command reads and writes documents.
type Config struct {
	// Indent is the number of spaces per nesting level; zero writes the
	// document on a single line.
	Indent int `yaml:"indent"`
	// Declaration writes the <?xml ...?> header.
	Declaration bool `yaml:"declaration"`
	// ScrubNamespaces removes namespace prefixes from element tags before
	// loading.
	ScrubNamespaces bool `yaml:"scrub_namespaces"`
	// Verbose logs codec decisions to stderr.
	Verbose bool `yaml:"verbose"`
	// StrictFamilyCheck fails the check command on warnings too.
	StrictFamilyCheck bool `yaml:"strict_family_check"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Indent:          DefaultIndent,
		Declaration:     true,
		ScrubNamespaces: true,
	}
}

// Load reads ConfigFileName from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads the configuration at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}

		return nil, err
	}

	return Parse(data)
}

// Parse parses YAML data into a Config. Keys missing from data keep their
// default value.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults normalizes out-of-range values.
func applyDefaults(cfg *Config) {
	if cfg.Indent < 0 {
		cfg.Indent = 0
	}
}
