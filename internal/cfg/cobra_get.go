package cfg

import (
	"fmt"
	"path/filepath"

	"fetcharr/internal/domain/keys"
	"fetcharr/internal/models"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initGetCmd returns the command downloading a single URL from the terminal.
func initGetCmd(a Actions, settings func() *Settings) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "get URL",
		Short: "Download one URL into a new workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := models.DownloadRequest{
				URL:        args[0],
				Resolution: viper.GetString(keys.GetResolution),
				Kind:       models.MediaKind(viper.GetString(keys.GetType)),
				Playlist:   viper.GetBool(keys.GetPlaylist),
			}

			out, err := a.Get(cmd.Context(), settings(), req)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out.Playlist {
				fmt.Fprintf(w, "Playlist downloaded successfully to %s\n", filepath.Join(settings().DownloadDir, out.WorkspaceID))
				return nil
			}
			fmt.Fprintf(w, "Downloaded %s\n", out.Filepath)
			return nil
		},
	}

	if err := setGetFlags(cmd); err != nil {
		return nil, err
	}
	return cmd, nil
}
