// Package app wires fetcharr's components together from the program settings.
package app

import (
	"context"
	"errors"
	"net/http"

	"fetcharr/internal/cfg"
	"fetcharr/internal/command/execute"
	"fetcharr/internal/contracts"
	"fetcharr/internal/database"
	"fetcharr/internal/domain/errconsts"
	"fetcharr/internal/domain/errs"
	"fetcharr/internal/domain/logger"
	"fetcharr/internal/downloads"
	"fetcharr/internal/models"
	"fetcharr/internal/repo"
	"fetcharr/internal/server"
	"fetcharr/internal/transcoder"
	"fetcharr/internal/workspace"
)

// App holds the components for one program run.
type App struct {
	Settings   *cfg.Settings
	Workspaces *workspace.Manager
	Transcoder transcoder.Locator
	Downloads  *downloads.Service
	History    contracts.HistoryStore

	db *database.Database
}

// New builds the components described by s.
func New(s *cfg.Settings) (*App, error) {
	ws, err := workspace.New(s.DownloadDir)
	if err != nil {
		return nil, err
	}

	a := &App{
		Settings:   s,
		Workspaces: ws,
		Transcoder: transcoder.Locator{Name: s.FFmpegName},
	}

	if s.HistoryDB != "" {
		if a.db, err = database.InitDB(s.HistoryDB); err != nil {
			return nil, err
		}
		a.History = repo.GetDownloadStore(a.db.DB)
		logger.Pl.Info().Str("path", s.HistoryDB).Msg("download history enabled")
	}

	extractor := &execute.YTDLP{
		Executable:         s.YTDLPPath,
		CookiesFromBrowser: s.CookiesFromBrowser,
	}
	a.Downloads = downloads.NewService(ws, a.Transcoder, extractor, a.History)
	return a, nil
}

// Close releases the history database, if open.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Handler returns the HTTP handler for the web interface.
func (a *App) Handler() http.Handler {
	return server.NewRouter(server.Deps{
		Downloads:  a.Downloads,
		Workspaces: a.Workspaces,
		Transcoder: a.Transcoder,
		History:    a.History,
		StaticDir:  a.Settings.StaticDir,
	})
}

// Serve runs the web interface until ctx is cancelled.
func (a *App) Serve(ctx context.Context) error {
	if a.Transcoder.Locate() == "" {
		logger.Pl.Warn().Str("name", a.Settings.FFmpegName).Msg("ffmpeg not found, audio downloads will be refused")
	}
	return server.StartServer(ctx, a.Settings.Host, a.Settings.Port, a.Handler())
}

// Get runs a single download.
func (a *App) Get(ctx context.Context, req models.DownloadRequest) (*models.DownloadOutcome, error) {
	return a.Downloads.Run(ctx, req)
}

// Cleanup removes every workspace.
func (a *App) Cleanup() (int, error) {
	return a.Workspaces.CleanupAll()
}

// ClearHistory empties the download history.
func (a *App) ClearHistory(ctx context.Context) (int64, error) {
	if a.History == nil {
		return 0, errs.New(errs.Configuration, errconsts.HistoryDisabled)
	}
	return a.History.ClearDownloads(ctx)
}

// Actions returns command actions that build an App for each run.
func Actions() cfg.Actions {
	return cfg.Actions{
		Serve: func(ctx context.Context, s *cfg.Settings) error {
			return withApp(s, func(a *App) error { return a.Serve(ctx) })
		},
		Get: func(ctx context.Context, s *cfg.Settings, req models.DownloadRequest) (out *models.DownloadOutcome, err error) {
			err = withApp(s, func(a *App) error {
				out, err = a.Get(ctx, req)
				return err
			})
			return out, err
		},
		Cleanup: func(_ context.Context, s *cfg.Settings) (n int, err error) {
			err = withApp(s, func(a *App) error {
				n, err = a.Cleanup()
				return err
			})
			return n, err
		},
		ClearHistory: func(ctx context.Context, s *cfg.Settings) (n int64, err error) {
			err = withApp(s, func(a *App) error {
				n, err = a.ClearHistory(ctx)
				return err
			})
			return n, err
		},
	}
}

// withApp builds an App, runs fn, and closes the App.
func withApp(s *cfg.Settings, fn func(*App) error) (err error) {
	a, err := New(s)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, a.Close())
	}()
	return fn(a)
}
