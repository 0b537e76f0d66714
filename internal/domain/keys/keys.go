// Package keys holds the configuration keys used with Viper.
package keys

// Server
const (
	Host      string = "host"
	Port      string = "port"
	StaticDir string = "static-dir"
)

// Files and directories
const (
	DownloadDir string = "download-dir"
	ConfigFile  string = "config-file"
	HistoryDB   string = "history-db"
)

// External programs
const (
	FFmpegName         string = "ffmpeg-name"
	YTDLPPath          string = "ytdlp-path"
	CookiesFromBrowser string = "cookies-from-browser"
)

// Logging
const (
	LogLevel string = "log-level"
	LogFile  string = "log-file"
)

// Single download command
const (
	GetType       string = "type"
	GetResolution string = "resolution"
	GetPlaylist   string = "playlist"
)

// Cleanup command
const (
	CleanupHistory string = "history"
)

// EnvPrefix is prepended to environment overrides, e.g. FETCHARR_DOWNLOAD_DIR.
const EnvPrefix string = "fetcharr"
