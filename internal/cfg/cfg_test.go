package cfg

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fetcharr/internal/domain/errs"
	"fetcharr/internal/models"

	"github.com/spf13/viper"
)

// recorder captures what the commands dispatched.
type recorder struct {
	served         *Settings
	got            *models.DownloadRequest
	cleaned        bool
	historyCleared bool
	outcome        *models.DownloadOutcome
	getErr         error
	nRemoved       int
}

func (r *recorder) actions() Actions {
	return Actions{
		Serve: func(_ context.Context, s *Settings) error {
			r.served = s
			return nil
		},
		Get: func(_ context.Context, _ *Settings, req models.DownloadRequest) (*models.DownloadOutcome, error) {
			r.got = &req
			return r.outcome, r.getErr
		},
		Cleanup: func(context.Context, *Settings) (int, error) {
			r.cleaned = true
			return r.nRemoved, nil
		},
		ClearHistory: func(context.Context, *Settings) (int64, error) {
			r.historyCleared = true
			return 4, nil
		},
	}
}

func run(t *testing.T, r *recorder, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	cmd, err := newRootCmd(r.actions())
	if err != nil {
		t.Fatalf("newRootCmd() unexpected error: %v", err)
	}
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err = execute(context.Background(), cmd)
	return out.String(), err
}

func TestRootServesWithDefaults(t *testing.T) {
	r := &recorder{}
	if _, err := run(t, r); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if r.served == nil {
		t.Fatalf("expected the server to start")
	}
	s := r.served
	if s.Host != "0.0.0.0" || s.Port != 5000 || s.DownloadDir != "downloads" || s.FFmpegName != "ffmpeg" {
		t.Fatalf("unexpected defaults %+v", s)
	}
	if s.HistoryDB != "" {
		t.Fatalf("history should be disabled by default, got %q", s.HistoryDB)
	}
}

func TestServeFlagsAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FETCHARR_DOWNLOAD_DIR", filepath.Join(dir, "env-downloads"))
	t.Setenv("FETCHARR_PORT", "6000")

	r := &recorder{}
	if _, err := run(t, r, "serve", "--port", "7000", "--host", "127.0.0.1"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	s := r.served
	if s == nil {
		t.Fatalf("expected the server to start")
	}
	if s.Port != 7000 {
		t.Fatalf("flag should win over environment, port = %d", s.Port)
	}
	if s.Host != "127.0.0.1" {
		t.Fatalf("host = %q", s.Host)
	}
	if s.DownloadDir != filepath.Join(dir, "env-downloads") {
		t.Fatalf("environment override ignored, download dir = %q", s.DownloadDir)
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fetcharr.yaml")
	config := "port: 8080\ndownload-dir: " + filepath.Join(dir, "media") + "\ncookies-from-browser: firefox\n"
	if err := os.WriteFile(path, []byte(config), 0o644); err != nil {
		t.Fatal(err)
	}

	r := &recorder{}
	if _, err := run(t, r, "--config-file", path, "--port", "9090"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	s := r.served
	if s.Port != 9090 {
		t.Fatalf("flag should win over config file, port = %d", s.Port)
	}
	if s.DownloadDir != filepath.Join(dir, "media") || s.CookiesFromBrowser != "firefox" {
		t.Fatalf("config file values not applied: %+v", s)
	}

	if _, err := run(t, &recorder{}, "--config-file", dir); err == nil {
		t.Fatalf("expected an error for a directory config file")
	}
}

func TestGetCommand(t *testing.T) {
	r := &recorder{outcome: &models.DownloadOutcome{
		WorkspaceID: "abc",
		Filename:    "Song.mp3",
		Filepath:    "/tmp/downloads/abc/Song.mp3",
	}}
	out, err := run(t, r, "get", "https://example.com/a", "--type", "audio", "-r", "480")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	want := models.DownloadRequest{URL: "https://example.com/a", Resolution: "480", Kind: models.KindAudio}
	if r.got == nil || *r.got != want {
		t.Fatalf("request = %+v, want %+v", r.got, want)
	}
	if !strings.Contains(out, "/tmp/downloads/abc/Song.mp3") {
		t.Fatalf("output %q does not name the file", out)
	}

	r = &recorder{outcome: &models.DownloadOutcome{WorkspaceID: "xyz", Playlist: true}}
	out, err = run(t, r, "get", "https://example.com/list", "--playlist")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	want = models.DownloadRequest{URL: "https://example.com/list", Resolution: "720", Kind: models.KindVideo, Playlist: true}
	if *r.got != want {
		t.Fatalf("request = %+v, want %+v", *r.got, want)
	}
	if !strings.Contains(out, "Playlist downloaded successfully") {
		t.Fatalf("output = %q", out)
	}

	if _, err := run(t, &recorder{}, "get"); err == nil {
		t.Fatalf("expected an error without a URL")
	}
}

func TestCleanupCommand(t *testing.T) {
	r := &recorder{nRemoved: 3}
	out, err := run(t, r, "cleanup")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !r.cleaned || !strings.Contains(out, "Removed 3 workspace(s)") {
		t.Fatalf("cleaned = %v, output = %q", r.cleaned, out)
	}
	if r.historyCleared {
		t.Fatalf("history should only be cleared with --history")
	}

	r = &recorder{}
	out, err = run(t, r, "cleanup", "--history")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !r.historyCleared || !r.cleaned || !strings.Contains(out, "Removed 4 history entries") {
		t.Fatalf("historyCleared = %v, cleaned = %v, output = %q", r.historyCleared, r.cleaned, out)
	}
}

func TestLogFileClosedAfterFailedCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "fetcharr.log")
	r := &recorder{getErr: errs.New(errs.Extraction, "boom")}

	if _, err := run(t, r, "get", "https://example.com/v", "--log-file", path); err == nil {
		t.Fatalf("expected the get error to be returned")
	}
	if logFile != nil {
		t.Fatalf("log file left open after a failed command")
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("log file not created: %v", err)
	}
}

func TestValidateSettings(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, nil, 0o755); err != nil {
		t.Fatal(err)
	}

	valid := func() Settings {
		return Settings{Host: "0.0.0.0", Port: 5000, DownloadDir: "downloads", FFmpegName: "ffmpeg", LogLevel: "info"}
	}

	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Settings) {}},
		{name: "port zero", mutate: func(s *Settings) { s.Port = 0 }, wantErr: true},
		{name: "port too high", mutate: func(s *Settings) { s.Port = 70000 }, wantErr: true},
		{name: "empty download dir", mutate: func(s *Settings) { s.DownloadDir = "  " }, wantErr: true},
		{name: "empty ffmpeg name", mutate: func(s *Settings) { s.FFmpegName = "" }, wantErr: true},
		{name: "bad log level", mutate: func(s *Settings) { s.LogLevel = "loud" }, wantErr: true},
		{name: "static dir is a file", mutate: func(s *Settings) { s.StaticDir = file }, wantErr: true},
		{name: "static dir exists", mutate: func(s *Settings) { s.StaticDir = dir }},
		{name: "ytdlp path missing", mutate: func(s *Settings) { s.YTDLPPath = filepath.Join(dir, "nope") }, wantErr: true},
		{name: "ytdlp path is a dir", mutate: func(s *Settings) { s.YTDLPPath = dir }, wantErr: true},
		{name: "ytdlp path exists", mutate: func(s *Settings) { s.YTDLPPath = file }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := valid()
			tt.mutate(&s)
			err := ValidateSettings(&s)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateSettings() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && errs.KindOf(err) != errs.Configuration {
				t.Fatalf("expected a configuration error, got kind %v", errs.KindOf(err))
			}
		})
	}
}
