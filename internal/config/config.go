// Package config provides configuration loading and validation for the engine.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-analyzer/internal/logger"
)

// Config is the engine configuration loaded from a YAML file. All fields are
// optional; missing values fall back to defaults.
type Config struct {
	// Artifact paths
	TaxonomyPath string `yaml:"taxonomy_path"` // skill taxonomy JSON
	RolesPath    string `yaml:"roles_path"`    // job role profiles JSON
	ModelPath    string `yaml:"model_path"`    // serialized classifier artifact
	PatternsPath string `yaml:"patterns_path"` // optional extractor pattern table overrides

	// Behavior
	TopK int `yaml:"top_k"` // number of roles to recommend

	Logging logger.Config `yaml:"logging"`
}

// DefaultConfig returns the configuration used when no file is provided.
func DefaultConfig() Config {
	return Config{
		TaxonomyPath: "configs/taxonomy.json",
		RolesPath:    "configs/roles.json",
		ModelPath:    "configs/model.json",
		TopK:         5,
		Logging:      logger.Config{Level: "info", Format: "json"},
	}
}

// Load reads configuration from a YAML file. Returns an error if the file
// cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.TopK < 0 {
		return fmt.Errorf("config error: 'top_k' must be non-negative")
	}

	// Artifact files must exist when specified
	for _, p := range []struct {
		name, path string
	}{
		{"taxonomy_path", c.TaxonomyPath},
		{"roles_path", c.RolesPath},
		{"model_path", c.ModelPath},
		{"patterns_path", c.PatternsPath},
	} {
		if p.path == "" {
			continue
		}
		if _, err := os.Stat(p.path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", p.name, p.path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. CLI flags are applied on top of the merged result by the caller.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.TaxonomyPath == "" {
		result.TaxonomyPath = defaults.TaxonomyPath
	}
	if result.RolesPath == "" {
		result.RolesPath = defaults.RolesPath
	}
	if result.ModelPath == "" {
		result.ModelPath = defaults.ModelPath
	}
	if result.PatternsPath == "" {
		result.PatternsPath = defaults.PatternsPath
	}
	if result.TopK == 0 {
		result.TopK = defaults.TopK
	}
	if result.Logging.Level == "" {
		result.Logging.Level = defaults.Logging.Level
	}
	if result.Logging.Format == "" {
		result.Logging.Format = defaults.Logging.Format
	}

	return result
}
