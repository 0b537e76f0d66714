// Package consts holds various global, unchanging values.
package consts

// FFmpegBinary is the transcoder looked up when no name is configured.
const FFmpegBinary = "ffmpeg"

// Media defaults applied when a request leaves a field out.
const (
	DefaultResolution = "720"
	DefaultMediaKind  = "video"
)

// Fixed output formats.
const (
	VideoMergeFormat = "mp4"
	AudioCodec       = "mp3"
	AudioQuality     = "192"
)

// Output templates, relative to a workspace directory.
const (
	ItemTemplate     = "%(title)s.%(ext)s"
	PlaylistTemplate = "%(playlist_title)s"
)

// AfterMoveFilepath prints the final path once post-processing has moved the file into place.
const AfterMoveFilepath = "after_move:filepath"

// Download statuses recorded in history.
const (
	DLStatusCompleted = "completed"
	DLStatusFailed    = "failed"
)
