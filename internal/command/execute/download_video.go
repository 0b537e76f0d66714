// Package execute runs yt-dlp for a set of download options.
package execute

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"fetcharr/internal/domain/consts"
	"fetcharr/internal/domain/errconsts"
	"fetcharr/internal/domain/errs"
	"fetcharr/internal/domain/logger"
	"fetcharr/internal/models"

	"github.com/lrstanley/go-ytdlp"
)

// YTDLP drives the yt-dlp executable through go-ytdlp.
type YTDLP struct {
	// Executable overrides the yt-dlp binary, PATH lookup when empty.
	Executable string
	// CookiesFromBrowser is passed through to yt-dlp when set.
	CookiesFromBrowser string
}

// Extract downloads url with opts and reports the final file paths.
//
// Any failure inside yt-dlp or ffmpeg is returned as an extraction error
// carrying yt-dlp's message. There is no retry.
func (y *YTDLP) Extract(ctx context.Context, url string, opts *models.DownloadOptions) (*models.ExtractResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, errs.Wrap(errs.Internal, fmt.Errorf("refusing invalid options: %w", err))
	}

	dl := y.Command(opts)
	logger.Pl.Debug().Str("url", url).Str("output", opts.OutputTemplate).Msg("running yt-dlp")

	res, err := dl.Run(ctx, url)
	if err != nil {
		return nil, &errs.Error{Kind: errs.Extraction, Msg: extractionMessage(res, err), Err: err}
	}

	paths := parsePrintedPaths(res.Stdout)
	logger.Pl.Debug().Strs("paths", paths).Msg("yt-dlp finished")
	return &models.ExtractResult{Filepaths: paths}, nil
}

// Command builds the go-ytdlp command for opts.
func (y *YTDLP) Command(opts *models.DownloadOptions) *ytdlp.Command {
	dl := ytdlp.New().
		Output(opts.OutputTemplate).
		Print(consts.AfterMoveFilepath)

	if y.Executable != "" {
		dl.SetExecutable(y.Executable)
	}
	if opts.AbortOnError {
		dl.AbortOnError()
	}
	if y.CookiesFromBrowser != "" {
		dl.CookiesFromBrowser(y.CookiesFromBrowser)
	}

	switch {
	case opts.Video != nil:
		v := opts.Video
		dl.Format(v.Format)
		if v.MergeOutputFormat != "" {
			dl.MergeOutputFormat(v.MergeOutputFormat)
		}
		if v.FFmpegLocation != "" {
			dl.FFmpegLocation(v.FFmpegLocation)
		}
	case opts.Audio != nil:
		a := opts.Audio
		dl.Format(a.Format).
			ExtractAudio().
			AudioFormat(a.AudioFormat).
			AudioQuality(a.AudioQuality).
			FFmpegLocation(a.FFmpegLocation)
	}
	return dl
}

// parsePrintedPaths returns the non-empty lines yt-dlp printed after moving files.
func parsePrintedPaths(stdout string) []string {
	var paths []string
	scanner := bufio.NewScanner(strings.NewReader(stdout))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			paths = append(paths, line)
		}
	}
	return paths
}

// extractionMessage prefers the last "ERROR:" line yt-dlp wrote.
func extractionMessage(res *ytdlp.Result, err error) string {
	if res != nil {
		lines := strings.Split(res.Stderr, "\n")
		for i := len(lines) - 1; i >= 0; i-- {
			if msg, ok := strings.CutPrefix(strings.TrimSpace(lines[i]), "ERROR:"); ok {
				return strings.TrimSpace(msg)
			}
		}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "download interrupted"
	}
	return fmt.Errorf(errconsts.YTDLPFailure, err).Error()
}
