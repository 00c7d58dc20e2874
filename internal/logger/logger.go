// Package logger configures the process-wide structured logger.
package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the global logger used by packages that were not handed one explicitly
var Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Config controls level, output format and caller reporting
type Config struct {
	Level        string `json:"level" yaml:"level"`
	Format       string `json:"format" yaml:"format"` // json or pretty
	TimeFormat   string `json:"time_format" yaml:"time_format"`
	ReportCaller bool   `json:"report_caller" yaml:"report_caller"`
}

// Init replaces the global logger according to config, writing to stderr
func Init(config Config) {
	Logger = New(config, os.Stderr)
	log.Logger = Logger
}

// New builds a logger writing to out without touching global state.
// Unknown levels fall back to info.
func New(config Config, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(config.Level)
	if err != nil || config.Level == "" {
		level = zerolog.InfoLevel
	}

	timeFormat := config.TimeFormat
	if timeFormat == "" {
		timeFormat = time.RFC3339
	}
	zerolog.TimeFieldFormat = timeFormat

	output := out
	if config.Format == "pretty" {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: timeFormat,
		}
	}

	ctx := zerolog.New(output).Level(level).With().Timestamp()
	if config.ReportCaller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// Nop returns a logger that discards everything
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// Debug starts a debug-level event on the global logger
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Info starts an info-level event on the global logger
func Info() *zerolog.Event {
	return Logger.Info()
}

// Warn starts a warn-level event on the global logger
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Error starts an error-level event on the global logger
func Error() *zerolog.Event {
	return Logger.Error()
}

// Ctx returns the logger stored in ctx, or the global logger when none is attached
func Ctx(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		return &Logger
	}
	return l
}

// WithContext attaches the global logger to ctx
func WithContext(ctx context.Context) context.Context {
	return Logger.WithContext(ctx)
}
