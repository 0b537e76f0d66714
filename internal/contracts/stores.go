// Package contracts defines interfaces that decouple the download service from its collaborators.
package contracts

import (
	"context"

	"fetcharr/internal/models"
)

// Workspaces creates per-request output directories.
type Workspaces interface {
	Create() (string, error)
	Dir(id string) string
}

// TranscoderLocator finds the transcoder binary, "" when absent.
type TranscoderLocator interface {
	Locate() string
}

// Extractor runs the external extraction library.
type Extractor interface {
	Extract(ctx context.Context, url string, opts *models.DownloadOptions) (*models.ExtractResult, error)
}

// HistoryStore records download attempts.
type HistoryStore interface {
	AddDownload(ctx context.Context, e *models.HistoryEntry) (int64, error)
	LatestDownloads(ctx context.Context, n int) ([]models.HistoryEntry, error)
	ClearDownloads(ctx context.Context) (int64, error)
}

// Downloader runs a full download request.
type Downloader interface {
	Run(ctx context.Context, req models.DownloadRequest) (*models.DownloadOutcome, error)
}
