// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/types"
)

// Config represents the screener configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Scoring
	Weights map[string]float64 `json:"weights,omitempty" yaml:"weights,omitempty"` // Partial override of skills/experience/education/soft_skills
	Workers int                `json:"workers,omitempty" yaml:"workers,omitempty" validate:"gte=0,lte=64"`

	// Parsing
	TaxonomyFile string `json:"taxonomy_file,omitempty" yaml:"taxonomy_file,omitempty" validate:"omitempty,file"` // YAML skill taxonomy

	// Logging
	LogLevel  string `json:"log_level,omitempty" yaml:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn error disabled"`
	LogFormat string `json:"log_format,omitempty" yaml:"log_format,omitempty" validate:"omitempty,oneof=json pretty"`

	// Output
	ValidateOutput *bool `json:"validate_output,omitempty" yaml:"validate_output,omitempty"` // Check emitted JSON against the embedded schemas
}

// Default returns the built-in configuration
func Default() Config {
	validate := true
	return Config{
		Workers:        1,
		LogLevel:       "info",
		LogFormat:      "json",
		ValidateOutput: &validate,
	}
}

// LoadConfig loads configuration from a JSON file, or YAML when the extension is .yaml or .yml.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
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
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks field ranges and that the weight overrides name known criteria
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if len(c.Weights) > 0 {
		if _, err := types.WeightsFromMap(c.Weights); err != nil {
			return fmt.Errorf("config error: weights: %w", err)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults.
// Weight overrides are merged per criterion, with c winning.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if len(defaults.Weights) > 0 {
		merged := make(map[string]float64, len(defaults.Weights)+len(c.Weights))
		for k, v := range defaults.Weights {
			merged[k] = v
		}
		for k, v := range c.Weights {
			merged[k] = v
		}
		result.Weights = merged
	}

	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.TaxonomyFile == "" {
		result.TaxonomyFile = defaults.TaxonomyFile
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}
	if result.ValidateOutput == nil {
		result.ValidateOutput = defaults.ValidateOutput
	}

	return result
}

// ScoringWeights resolves the weight overrides against the default weights
func (c *Config) ScoringWeights() (types.Weights, error) {
	return types.WeightsFromMap(c.Weights)
}

// ShouldValidateOutput reports whether emitted JSON is schema-checked; unset means yes
func (c *Config) ShouldValidateOutput() bool {
	return c.ValidateOutput == nil || *c.ValidateOutput
}

// LoggerConfig maps the logging fields onto logger.Config
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{Level: c.LogLevel, Format: c.LogFormat}
}
