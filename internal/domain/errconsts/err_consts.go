// Package errconsts holds constant error messages.
package errconsts

// Request
const (
	URLRequired       = "URL is required"
	InvalidMediaKind  = "invalid type %q, must be 'video' or 'audio'"
	InvalidResolution = "invalid resolution %q, must be a positive number"
	InvalidJSON       = "invalid request body: %v"
)

// Programs
const (
	FFmpegRequired = "ffmpeg is required for MP3 conversion"
	YTDLPFailure   = "yt-dlp command failed: %w"
)

// Files
const (
	FileNotFound     = "File not found"
	HistoryDisabled  = "history is disabled"
	WorkspaceFailure = "failed to create workspace: %w"
)
