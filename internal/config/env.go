package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by ApplyEnv
const (
	EnvLogLevel     = "SCREENER_LOG_LEVEL"
	EnvLogFormat    = "SCREENER_LOG_FORMAT"
	EnvWorkers      = "SCREENER_WORKERS"
	EnvTaxonomyFile = "SCREENER_TAXONOMY_FILE"
)

// ApplyEnv overrides fields from SCREENER_* environment variables. Unset variables leave
// the field alone.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.LogFormat = v
	}
	if v := os.Getenv(EnvTaxonomyFile); v != "" {
		c.TaxonomyFile = v
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %v", EnvWorkers, err)
		}
		if n < 1 {
			return fmt.Errorf("%s must be at least 1, got: %d", EnvWorkers, n)
		}
		c.Workers = n
	}
	return nil
}
