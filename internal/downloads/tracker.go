package downloads

import (
	"context"

	"fetcharr/internal/domain/consts"
	"fetcharr/internal/domain/logger"
	"fetcharr/internal/models"
)

// record stores the attempt in history, if enabled.
//
// Failures are logged and never change the request's result.
func (s *Service) record(ctx context.Context, id string, req models.DownloadRequest, out *models.DownloadOutcome, runErr error) {
	if s.history == nil {
		return
	}

	e := &models.HistoryEntry{
		WorkspaceID: id,
		URL:         req.URL,
		Kind:        req.Kind,
		Resolution:  req.Resolution,
		Playlist:    req.Playlist,
		Status:      consts.DLStatusCompleted,
	}
	if out != nil {
		e.Filename = out.Filename
	}
	if runErr != nil {
		e.Status = consts.DLStatusFailed
		e.Error = runErr.Error()
	}

	if _, err := s.history.AddDownload(context.WithoutCancel(ctx), e); err != nil {
		logger.Pl.Warn().Err(err).Str("download_id", id).Msg("failed to record download history")
	}
}
