package cfg

import (
	"fmt"

	"fetcharr/internal/domain/consts"
	"fetcharr/internal/domain/keys"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// initProgramFlags sets the persistent flags shared by every command.
func initProgramFlags(cmd *cobra.Command) error {
	fs := cmd.PersistentFlags()

	// Server
	fs.String(keys.Host, "0.0.0.0", "Address the web server listens on")
	fs.Int(keys.Port, 5000, "Port the web server listens on")
	fs.String(keys.StaticDir, "", "Serve the front page from this directory instead of the built-in page")

	// Files and directories
	fs.String(keys.DownloadDir, "downloads", "Root directory holding the per-request workspaces")
	fs.String(keys.ConfigFile, "", "Config file (any format Viper reads, e.g. yaml, toml, json)")
	fs.String(keys.HistoryDB, "", "SQLite file recording download history (disabled when empty)")

	// External programs
	fs.String(keys.FFmpegName, consts.FFmpegBinary, "Name or path of the ffmpeg binary to look for")
	fs.String(keys.YTDLPPath, "", "Path to the yt-dlp binary (searched in PATH when empty)")
	fs.String(keys.CookiesFromBrowser, "", "Browser to load cookies from, passed through to yt-dlp")

	// Logging
	fs.String(keys.LogLevel, "info", "Log level (trace, debug, info, warn, error)")
	fs.String(keys.LogFile, "", "Also write logs to this file")

	return bindFlags(fs)
}

// setGetFlags sets the flags of the single download command.
func setGetFlags(cmd *cobra.Command) error {
	fs := cmd.Flags()
	fs.StringP(keys.GetType, "t", consts.DefaultMediaKind, "Media type to download (video or audio)")
	fs.StringP(keys.GetResolution, "r", consts.DefaultResolution, "Maximum video height")
	fs.BoolP(keys.GetPlaylist, "p", false, "Download the whole playlist")
	return bindFlags(fs)
}

// setCleanupFlags sets the flags of the cleanup command.
func setCleanupFlags(cmd *cobra.Command) error {
	fs := cmd.Flags()
	fs.Bool(keys.CleanupHistory, false, "Also clear the download history database")
	return bindFlags(fs)
}

// bindFlags binds every flag in fs to the Viper key of the same name.
func bindFlags(fs *pflag.FlagSet) (err error) {
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		if bindErr := viper.BindPFlag(f.Name, f); bindErr != nil {
			err = fmt.Errorf("failed to bind flag %q: %w", f.Name, bindErr)
		}
	})
	return err
}
