package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the shared application logger. Intent handlers and the CLI log
// through it; the store itself stays silent.
var Logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	Logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
}

// SetLevel adjusts the global log level from its config string. Unknown
// values fall back to info.
func SetLevel(level string) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	Logger = Logger.Level(parsed)
}

// Errorf logs a formatted error message.
func Errorf(format string, args ...any) {
	Logger.Error().Msgf(format, args...)
}

// Infof logs a formatted info message.
func Infof(format string, args ...any) {
	Logger.Info().Msgf(format, args...)
}

// Debugf logs a formatted debug message.
func Debugf(format string, args ...any) {
	Logger.Debug().Msgf(format, args...)
}
