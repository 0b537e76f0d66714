// Package downloads orchestrates a single download request.
package downloads

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fetcharr/internal/command/builder"
	"fetcharr/internal/contracts"
	"fetcharr/internal/domain/consts"
	"fetcharr/internal/domain/errconsts"
	"fetcharr/internal/domain/errs"
	"fetcharr/internal/domain/logger"
	"fetcharr/internal/models"
)

// Service runs download requests end to end.
type Service struct {
	workspaces contracts.Workspaces
	locator    contracts.TranscoderLocator
	extractor  contracts.Extractor
	history    contracts.HistoryStore
}

// NewService returns a Service. history may be nil.
func NewService(w contracts.Workspaces, l contracts.TranscoderLocator, e contracts.Extractor, h contracts.HistoryStore) *Service {
	return &Service{
		workspaces: w,
		locator:    l,
		extractor:  e,
		history:    h,
	}
}

// Run validates req, creates a workspace, and runs the extractor in it.
//
// The extraction is not tied to ctx's cancellation: a caller going away
// does not stop a download that has started.
func (s *Service) Run(ctx context.Context, req models.DownloadRequest) (out *models.DownloadOutcome, err error) {
	req, err = normalizeRequest(req)
	if err != nil {
		return nil, err
	}

	id, err := s.workspaces.Create()
	if err != nil {
		return nil, errs.Wrap(errs.Internal, err)
	}
	log := logger.Pl.With().Str("download_id", id).Str("url", req.URL).Str("type", string(req.Kind)).Logger()

	defer func() {
		s.record(ctx, id, req, out, err)
	}()

	ffmpegPath := s.locator.Locate()
	if ffmpegPath == "" {
		log.Debug().Msg("ffmpeg not found in PATH")
	}
	if req.Kind == models.KindAudio && ffmpegPath == "" {
		return nil, errs.New(errs.Configuration, errconsts.FFmpegRequired)
	}

	dir := s.workspaces.Dir(id)
	opts, err := builder.Build(req, dir, ffmpegPath)
	if err != nil {
		return nil, err
	}

	log.Info().Str("format", formatOf(opts)).Bool("playlist", req.Playlist).Msg("starting download")
	start := time.Now()

	res, err := s.extractor.Extract(context.WithoutCancel(ctx), req.URL, opts)
	if err != nil {
		if errs.KindOf(err) == errs.Internal {
			err = &errs.Error{Kind: errs.Extraction, Err: err}
		}
		log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("download failed")
		return nil, err
	}

	out = &models.DownloadOutcome{WorkspaceID: id, Playlist: req.Playlist}
	if req.Playlist {
		log.Info().Dur("elapsed", time.Since(start)).Msg("playlist downloaded")
		return out, nil
	}

	path, err := producedFile(res, dir)
	if err != nil {
		log.Error().Err(err).Msg("could not determine downloaded file")
		return nil, err
	}
	if req.Kind == models.KindAudio {
		path = strings.TrimSuffix(path, filepath.Ext(path)) + "." + consts.AudioCodec
	}
	out.Filepath = path
	out.Filename = filepath.Base(path)

	log.Info().Str("filename", out.Filename).Dur("elapsed", time.Since(start)).Msg("download finished")
	return out, nil
}

// normalizeRequest trims and defaults req, then validates it.
func normalizeRequest(req models.DownloadRequest) (models.DownloadRequest, error) {
	req.URL = strings.TrimSpace(req.URL)
	if req.URL == "" {
		return req, errs.New(errs.Validation, errconsts.URLRequired)
	}

	req.Resolution = strings.TrimSpace(req.Resolution)
	if req.Resolution == "" {
		req.Resolution = consts.DefaultResolution
	}
	if err := builder.ValidateResolution(req.Resolution); err != nil {
		return req, err
	}

	if req.Kind == "" {
		req.Kind = consts.DefaultMediaKind
	}
	kind, err := models.ParseMediaKind(string(req.Kind))
	if err != nil {
		return req, errs.New(errs.Validation, errconsts.InvalidMediaKind, req.Kind)
	}
	req.Kind = kind
	return req, nil
}

// producedFile picks the file yt-dlp reported, falling back to the newest
// file at the top of the workspace.
func producedFile(res *models.ExtractResult, dir string) (string, error) {
	if res != nil && len(res.Filepaths) > 0 {
		return res.Filepaths[len(res.Filepaths)-1], nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", errs.Wrap(errs.Internal, fmt.Errorf("failed to read workspace: %w", err))
	}
	var (
		newest    string
		newestMod time.Time
	)
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if newest == "" || info.ModTime().After(newestMod) {
			newest, newestMod = filepath.Join(dir, e.Name()), info.ModTime()
		}
	}
	if newest == "" {
		return "", errs.Wrap(errs.Extraction, errors.New("yt-dlp finished without producing a file"))
	}
	return newest, nil
}

// formatOf returns the format selector for logging.
func formatOf(opts *models.DownloadOptions) string {
	switch {
	case opts.Video != nil:
		return opts.Video.Format
	case opts.Audio != nil:
		return opts.Audio.Format
	default:
		return ""
	}
}
