// Package server sets up the fetcharr web server.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"fetcharr/internal/contracts"
	"fetcharr/internal/domain/consts"
	"fetcharr/internal/domain/logger"
	"fetcharr/internal/workspace"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Deps are the collaborators the handlers use.
type Deps struct {
	Downloads  contracts.Downloader
	Workspaces *workspace.Manager
	Transcoder contracts.TranscoderLocator
	// History is nil when download history is disabled.
	History contracts.HistoryStore
	// StaticDir replaces the embedded page when set.
	StaticDir string
}

type handlers struct {
	Deps
}

// NewRouter returns a http Handler.
func NewRouter(d Deps) http.Handler {
	h := &handlers{Deps: d}

	// Initialize router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLog)
	r.Use(middleware.Recoverer)

	// --- Static Frontend ---
	r.Get("/", h.handleIndex)
	if d.StaticDir != "" {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(d.StaticDir))))
	}

	// --- API Routes ---
	r.Post("/download", h.handleDownload)
	r.Get("/download-file/{download_id}/{filename}", h.handleDownloadFile)
	r.Post("/cleanup", h.handleCleanup)
	r.Get("/downloads/{download_id}", h.handleListWorkspace)
	r.Get("/history", h.handleHistory)
	r.Get("/healthz", h.handleHealth)

	return r
}

// StartServer serves h on host:port until ctx is cancelled, then shuts down gracefully.
func StartServer(ctx context.Context, host string, port int, h http.Handler) error {
	srv := &http.Server{
		Addr:              net.JoinHostPort(host, fmt.Sprint(port)),
		Handler:           h,
		ReadHeaderTimeout: consts.ServerReadHeaderTimeout,
		IdleTimeout:       consts.ServerIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Pl.Info().Str("addr", srv.Addr).Msg("fetcharr web server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Pl.Info().Msg("shutting down web server")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), consts.ServerShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

// accessLog logs each request once it completes.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		logger.Pl.Info().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
