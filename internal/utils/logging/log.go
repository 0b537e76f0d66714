// Package logging sets up the program logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"fetcharr/internal/domain/consts"
	"fetcharr/internal/domain/logger"

	"github.com/rs/zerolog"
)

// Config holds logging settings.
type Config struct {
	Level       string
	LogFilePath string
	Console     io.Writer
}

// SetupLogging replaces the global logger.
//
// Returns the opened log file, if any, so the caller can close it on exit.
func SetupLogging(c Config) (*os.File, error) {
	lvl, err := ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}

	console := c.Console
	if console == nil {
		console = os.Stderr
	}

	writers := []io.Writer{zerolog.ConsoleWriter{Out: console, TimeFormat: time.DateTime}}

	var logFile *os.File
	if c.LogFilePath != "" {
		if err := os.MkdirAll(filepath.Dir(c.LogFilePath), consts.PermsDownloadDir); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		logFile, err = os.OpenFile(c.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, consts.PermsLogFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %q: %w", c.LogFilePath, err)
		}
		writers = append(writers, logFile)
	}

	logger.Pl = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	return logFile, nil
}
