// Package main provides the resume_screener command-line interface.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/taxonomy"
)

var rootCmd = &cobra.Command{
	Use:               "resume_screener",
	Short:             "Résumé parsing and candidate screening",
	Long:              "resume_screener parses résumés and job descriptions into structured records and scores candidates against job requirements.",
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

var (
	configFile   string
	logLevelFlag string
	noValidate   bool
)

// Resolved before every subcommand runs
var (
	settings      config.Config
	skillTaxonomy *taxonomy.Taxonomy
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to JSON or YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (overrides config and SCREENER_LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVar(&noValidate, "no-validate", false, "Skip JSON Schema validation of emitted records")
}

// loadSettings layers defaults, the config file, SCREENER_* variables and flags, in that order
func loadSettings(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{}
	if configFile != "" {
		loaded, err := config.LoadConfig(configFile)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	cfg = cfg.MergeWithDefaults(config.Default())

	if err := cfg.ApplyEnv(); err != nil {
		return err
	}
	if logLevelFlag != "" {
		cfg.LogLevel = logLevelFlag
	}
	if noValidate {
		off := false
		cfg.ValidateOutput = &off
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Init(cfg.LoggerConfig())
	cmd.SetContext(logger.WithContext(cmd.Context()))

	skillTaxonomy = taxonomy.Default()
	if cfg.TaxonomyFile != "" {
		t, err := taxonomy.LoadFile(cfg.TaxonomyFile)
		if err != nil {
			return fmt.Errorf("failed to load taxonomy: %w", err)
		}
		skillTaxonomy = t
		logger.Info().Str("file", cfg.TaxonomyFile).Str("version", t.Version()).Msg("loaded skill taxonomy")
	}

	settings = cfg
	return nil
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
