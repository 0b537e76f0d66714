// Package cfg provides configuration and command-line interface setup for fetcharr.
package cfg

import (
	"context"
	"fmt"
	"os"
	"strings"

	"fetcharr/internal/domain/keys"
	"fetcharr/internal/domain/logger"
	"fetcharr/internal/models"
	"fetcharr/internal/utils/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Actions are the program entry points the commands dispatch to.
type Actions struct {
	Serve   func(ctx context.Context, s *Settings) error
	Get     func(ctx context.Context, s *Settings, req models.DownloadRequest) (*models.DownloadOutcome, error)
	Cleanup func(ctx context.Context, s *Settings) (int, error)
	// ClearHistory empties the download history.
	ClearHistory func(ctx context.Context, s *Settings) (int64, error)
}

var (
	rootCmd *cobra.Command
	logFile *os.File
)

// InitCommands initializes all commands and their flags.
func InitCommands(a Actions) error {
	cmd, err := newRootCmd(a)
	if err != nil {
		return err
	}
	rootCmd = cmd
	return nil
}

// Execute runs the command chosen on the command line.
func Execute(ctx context.Context) error {
	if rootCmd == nil {
		return fmt.Errorf("commands not initialized")
	}
	return execute(ctx, rootCmd)
}

// execute runs cmd and closes the log file afterwards, whether or not cmd failed.
func execute(ctx context.Context, cmd *cobra.Command) error {
	defer closeLogFile()
	return cmd.ExecuteContext(ctx)
}

// closeLogFile closes the log file opened for this run, if any.
func closeLogFile() {
	if logFile == nil {
		return
	}
	if err := logFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
	}
	logFile = nil
}

// newRootCmd builds the command tree, binding every flag into Viper.
func newRootCmd(a Actions) (*cobra.Command, error) {
	var settings *Settings

	viper.SetEnvPrefix(keys.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_")) // FETCHARR_DOWNLOAD_DIR -> download-dir
	viper.AutomaticEnv()

	root := &cobra.Command{
		Use:           "fetcharr",
		Short:         "fetcharr is a web front-end for downloading media with yt-dlp.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if path := viper.GetString(keys.ConfigFile); path != "" {
				if err := loadConfigFile(path); err != nil {
					return err
				}
			}

			s, err := LoadSettings()
			if err != nil {
				return err
			}
			settings = s

			closeLogFile()
			if logFile, err = logging.SetupLogging(logging.Config{
				Level:       s.LogLevel,
				LogFilePath: s.LogFile,
				Console:     cmd.ErrOrStderr(),
			}); err != nil {
				return err
			}
			logger.Pl.Debug().Interface("settings", s).Msg("loaded settings")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Serve(cmd.Context(), settings)
		},
	}

	if err := initProgramFlags(root); err != nil {
		return nil, err
	}

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Serve(cmd.Context(), settings)
		},
	}

	get, err := initGetCmd(a, func() *Settings { return settings })
	if err != nil {
		return nil, err
	}

	cleanup := &cobra.Command{
		Use:   "cleanup",
		Short: "Remove every download workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if viper.GetBool(keys.CleanupHistory) {
				n, err := a.ClearHistory(cmd.Context(), settings)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d history entries\n", n)
			}

			n, err := a.Cleanup(cmd.Context(), settings)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d workspace(s) from %s\n", n, settings.DownloadDir)
			return nil
		},
	}

	if err := setCleanupFlags(cleanup); err != nil {
		return nil, err
	}

	root.AddCommand(serve, get, cleanup)
	return root, nil
}
