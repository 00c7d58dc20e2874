package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{
		"weights": {"skills": 0.5, "soft_skills": 0.05},
		"workers": 4,
		"log_level": "debug",
		"validate_output": false
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, map[string]float64{"skills": 0.5, "soft_skills": 0.05}, cfg.Weights)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "debug", cfg.LogLevel)
	require.NotNil(t, cfg.ValidateOutput)
	assert.False(t, cfg.ShouldValidateOutput())
}

func TestLoadConfig_ValidYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", "weights:\n  experience: 0.4\nworkers: 2\nlog_format: pretty\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{"experience": 0.4}, cfg.Weights)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "pretty", cfg.LogFormat)
	assert.True(t, cfg.ShouldValidateOutput(), "unset validate_output defaults to on")
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"empty path", "", "config path is empty"},
		{"missing file", "/nonexistent/path/config.json", "failed to read config file"},
		{"invalid JSON", writeFile(t, "bad.json", `{ invalid json }`), "failed to parse config JSON"},
		{"invalid YAML", writeFile(t, "bad.yml", "workers: [1, 2"), "failed to parse config YAML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(tt.path)
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate(t *testing.T) {
	taxonomyPath := writeFile(t, "taxonomy.yaml", "version: test\n")

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"defaults", Default(), ""},
		{"taxonomy file exists", Config{TaxonomyFile: taxonomyPath}, ""},
		{"negative workers", Config{Workers: -1}, "Workers"},
		{"too many workers", Config{Workers: 1000}, "Workers"},
		{"unknown log level", Config{LogLevel: "loud"}, "LogLevel"},
		{"unknown log format", Config{LogFormat: "xml"}, "LogFormat"},
		{"missing taxonomy file", Config{TaxonomyFile: "/nonexistent/taxonomy.yaml"}, "TaxonomyFile"},
		{"unknown weight", Config{Weights: map[string]float64{"salary": 1}}, "unknown weight name(s): salary"},
		{"negative weight", Config{Weights: map[string]float64{"skills": -1}}, "weights"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	partial := Config{
		Weights:  map[string]float64{"skills": 0.6},
		LogLevel: "warn",
	}
	defaults := Default()
	defaults.Weights = map[string]float64{"skills": 0.1, "education": 0.3}

	merged := partial.MergeWithDefaults(defaults)

	assert.Equal(t, "warn", merged.LogLevel)
	assert.Equal(t, "json", merged.LogFormat)
	assert.Equal(t, 1, merged.Workers)
	assert.True(t, merged.ShouldValidateOutput())
	assert.Equal(t, map[string]float64{"skills": 0.6, "education": 0.3}, merged.Weights)

	assert.Equal(t, map[string]float64{"skills": 0.6}, partial.Weights, "receiver is not modified")
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{Workers: 3}
	merged := cfg.MergeWithDefaults(Config{})
	assert.Equal(t, 3, merged.Workers)
	assert.Nil(t, merged.Weights)
}

func TestScoringWeights(t *testing.T) {
	cfg := Config{Weights: map[string]float64{"skills": 0.5}}
	w, err := cfg.ScoringWeights()
	require.NoError(t, err)
	assert.Equal(t, types.Weights{Skills: 0.5, Experience: 0.25, Education: 0.20, SoftSkills: 0.20}, w)

	w, err = (&Config{}).ScoringWeights()
	require.NoError(t, err)
	assert.Equal(t, types.DefaultWeights(), w)
}

func TestLoggerConfig(t *testing.T) {
	cfg := Config{LogLevel: "debug", LogFormat: "pretty"}
	lc := cfg.LoggerConfig()
	assert.Equal(t, "debug", lc.Level)
	assert.Equal(t, "pretty", lc.Format)
}
