// Package logger holds the program logger.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Pl holds the global program logger.
//
// It writes to stderr until logging.SetupLogging replaces it.
var Pl = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
