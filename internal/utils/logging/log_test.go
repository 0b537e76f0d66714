package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fetcharr/internal/domain/logger"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{" WARN ", zerolog.WarnLevel, false},
		{"loud", zerolog.NoLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Fatalf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSetupLoggingWritesFile(t *testing.T) {
	prev := logger.Pl
	t.Cleanup(func() { logger.Pl = prev })

	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "fetcharr.log")

	f, err := SetupLogging(Config{Level: "info", LogFilePath: path, Console: &console})
	if err != nil {
		t.Fatalf("SetupLogging() unexpected error: %v", err)
	}
	if f == nil {
		t.Fatalf("expected log file handle")
	}

	logger.Pl.Info().Msg("hello log")
	logger.Pl.Debug().Msg("hidden at info")
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "hello log") {
		t.Fatalf("log file missing message, got %q", data)
	}
	if strings.Contains(string(data), "hidden at info") {
		t.Fatalf("debug message should be filtered at info level")
	}
	if !strings.Contains(console.String(), "hello log") {
		t.Fatalf("console missing message, got %q", console.String())
	}
}

func TestSetupLoggingBadLevel(t *testing.T) {
	if _, err := SetupLogging(Config{Level: "nope"}); err == nil {
		t.Fatalf("expected error for bad level")
	}
}
