// Package builder turns a download request into extraction options.
package builder

import (
	"fmt"
	"path/filepath"
	"strconv"

	"fetcharr/internal/domain/consts"
	"fetcharr/internal/domain/errconsts"
	"fetcharr/internal/domain/errs"
	"fetcharr/internal/models"
)

// Build returns the options for req, writing into workspaceDir.
//
// ffmpegPath is the located transcoder binary, "" when absent. It is
// handed to yt-dlp as-is so renamed binaries keep working. Audio requests
// without a transcoder fail with a configuration error.
func Build(req models.DownloadRequest, workspaceDir, ffmpegPath string) (*models.DownloadOptions, error) {
	if err := ValidateResolution(req.Resolution); err != nil {
		return nil, err
	}

	opts := &models.DownloadOptions{
		OutputTemplate: OutputTemplate(workspaceDir, req.Playlist),
		AbortOnError:   true,
		Kind:           req.Kind,
	}

	switch req.Kind {
	case models.KindVideo:
		opts.Video = videoOptions(req.Resolution, ffmpegPath)

	case models.KindAudio:
		if ffmpegPath == "" {
			return nil, errs.New(errs.Configuration, errconsts.FFmpegRequired)
		}
		opts.Audio = &models.AudioOptions{
			Format:         "bestaudio/best",
			AudioFormat:    consts.AudioCodec,
			AudioQuality:   consts.AudioQuality,
			FFmpegLocation: ffmpegPath,
		}

	default:
		return nil, errs.New(errs.Validation, errconsts.InvalidMediaKind, req.Kind)
	}

	if err := opts.Validate(); err != nil {
		return nil, errs.Wrap(errs.Internal, fmt.Errorf("built invalid options: %w", err))
	}
	return opts, nil
}

// OutputTemplate returns the yt-dlp output template rooted at dir.
//
// Playlist items are nested under a directory named after the playlist.
func OutputTemplate(dir string, playlist bool) string {
	if playlist {
		return filepath.Join(dir, consts.PlaylistTemplate, consts.ItemTemplate)
	}
	return filepath.Join(dir, consts.ItemTemplate)
}

// ValidateResolution checks the resolution is a positive height in pixels.
func ValidateResolution(res string) error {
	n, err := strconv.Atoi(res)
	if err != nil || n <= 0 {
		return errs.New(errs.Validation, errconsts.InvalidResolution, res)
	}
	return nil
}

// videoOptions selects streams at or below the requested height.
func videoOptions(res, ffmpegPath string) *models.VideoOptions {
	if ffmpegPath == "" {
		// No merge capability: single combined stream, any quality as last resort.
		return &models.VideoOptions{
			Format: fmt.Sprintf("best[height<=%s]/best", res),
		}
	}
	return &models.VideoOptions{
		Format:            fmt.Sprintf("bestvideo[height<=%s]+bestaudio/best[height<=%s]", res, res),
		MergeOutputFormat: consts.VideoMergeFormat,
		FFmpegLocation:    ffmpegPath,
	}
}
