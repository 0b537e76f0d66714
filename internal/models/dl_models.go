package models

import (
	"errors"
	"fmt"
)

// DownloadOptions is the extraction configuration for one request.
//
// Exactly one of Video or Audio is set, matching Kind.
type DownloadOptions struct {
	OutputTemplate string
	AbortOnError   bool
	Kind           MediaKind

	Video *VideoOptions
	Audio *AudioOptions
}

// VideoOptions selects a video stream, merged with audio when ffmpeg is present.
type VideoOptions struct {
	Format            string
	MergeOutputFormat string
	FFmpegLocation    string
}

// AudioOptions selects an audio stream and converts it with ffmpeg.
type AudioOptions struct {
	Format         string
	AudioFormat    string
	AudioQuality   string
	FFmpegLocation string
}

// Validate checks the options are internally consistent.
func (o *DownloadOptions) Validate() error {
	if o.OutputTemplate == "" {
		return errors.New("output template is empty")
	}
	switch o.Kind {
	case KindVideo:
		if o.Video == nil || o.Audio != nil {
			return errors.New("video options must set only the video section")
		}
		if o.Video.Format == "" {
			return errors.New("video format selector is empty")
		}
		if o.Video.MergeOutputFormat != "" && o.Video.FFmpegLocation == "" {
			return errors.New("merging streams requires an ffmpeg location")
		}
	case KindAudio:
		if o.Audio == nil || o.Video != nil {
			return errors.New("audio options must set only the audio section")
		}
		if o.Audio.Format == "" || o.Audio.AudioFormat == "" {
			return errors.New("audio format is empty")
		}
		if o.Audio.FFmpegLocation == "" {
			return errors.New("audio conversion requires an ffmpeg location")
		}
	default:
		return fmt.Errorf("unknown media kind %q", o.Kind)
	}
	return nil
}

// ExtractResult is what the extraction library reports after a run.
type ExtractResult struct {
	// Filepaths holds final file paths in the order the library printed them.
	Filepaths []string
}
