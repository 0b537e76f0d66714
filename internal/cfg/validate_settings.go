package cfg

import (
	"os"
	"strings"

	"fetcharr/internal/domain/errs"
	"fetcharr/internal/domain/keys"
	"fetcharr/internal/utils/logging"
)

// ValidateSettings checks and normalizes s in place.
func ValidateSettings(s *Settings) error {
	s.Host = strings.TrimSpace(s.Host)
	if s.Port < 1 || s.Port > 65535 {
		return errs.New(errs.Configuration, "invalid %s %d, must be between 1 and 65535", keys.Port, s.Port)
	}

	s.DownloadDir = strings.TrimSpace(s.DownloadDir)
	if s.DownloadDir == "" {
		return errs.New(errs.Configuration, "%s must not be empty", keys.DownloadDir)
	}

	s.FFmpegName = strings.TrimSpace(s.FFmpegName)
	if s.FFmpegName == "" {
		return errs.New(errs.Configuration, "%s must not be empty", keys.FFmpegName)
	}

	if _, err := logging.ParseLevel(s.LogLevel); err != nil {
		return errs.Wrap(errs.Configuration, err)
	}

	if s.StaticDir != "" {
		info, err := os.Stat(s.StaticDir)
		if err != nil {
			return errs.New(errs.Configuration, "invalid %s %q: %v", keys.StaticDir, s.StaticDir, err)
		}
		if !info.IsDir() {
			return errs.New(errs.Configuration, "%s %q is not a directory", keys.StaticDir, s.StaticDir)
		}
	}

	if s.YTDLPPath != "" {
		info, err := os.Stat(s.YTDLPPath)
		if err != nil {
			return errs.New(errs.Configuration, "invalid %s %q: %v", keys.YTDLPPath, s.YTDLPPath, err)
		}
		if info.IsDir() {
			return errs.New(errs.Configuration, "%s %q is a directory", keys.YTDLPPath, s.YTDLPPath)
		}
	}
	return nil
}
