// Package logger configures the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the default instance used throughout the engine.
var Logger = log.Logger

// Config controls log level and output format.
type Config struct {
	Level  string `json:"level" yaml:"level"`   // debug, info, warn, error
	Format string `json:"format" yaml:"format"` // "json" or "pretty"
}

// Init applies the configuration to the package and global loggers.
// An unparseable level falls back to info.
func Init(config Config) {
	level, err := zerolog.ParseLevel(config.Level)
	if err != nil || config.Level == "" {
		level = zerolog.InfoLevel
	}

	var output io.Writer = os.Stderr
	if config.Format == "pretty" {
		output = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}

	Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
	log.Logger = Logger
}

// Debug starts a debug-level event on the package logger.
func Debug() *zerolog.Event { return Logger.Debug() }

// Info starts an info-level event on the package logger.
func Info() *zerolog.Event { return Logger.Info() }

// Warn starts a warn-level event on the package logger.
func Warn() *zerolog.Event { return Logger.Warn() }

// Error starts an error-level event on the package logger.
func Error() *zerolog.Event { return Logger.Error() }
