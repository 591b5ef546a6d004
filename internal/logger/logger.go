// SPDX-License-Identifier: EPL-2.0

// Package logger configures the global zerolog logger for tfwtool.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EnvLevel names the environment variable read when no level is given.
const EnvLevel = "LOG_LEVEL"

// ParseLevel maps debug, info, warn and error to zerolog levels. Anything
// else, including the empty string, is info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Init points the global logger at a console writer on w. An empty level
// falls back to LOG_LEVEL.
func Init(level string, w io.Writer) zerolog.Level {
	if level == "" {
		level = os.Getenv(EnvLevel)
	}
	lvl := ParseLevel(level)

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05.000"}).
		With().
		Timestamp().
		Logger()

	log.Debug().Str("level", lvl.String()).Msg("Logger initialized")

	return lvl
}
