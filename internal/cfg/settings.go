package cfg

import (
	"fetcharr/internal/domain/keys"

	"github.com/spf13/viper"
)

// Settings are the resolved program settings.
type Settings struct {
	Host               string `json:"host"`
	Port               int    `json:"port"`
	StaticDir          string `json:"static_dir,omitempty"`
	DownloadDir        string `json:"download_dir"`
	HistoryDB          string `json:"history_db,omitempty"`
	FFmpegName         string `json:"ffmpeg_name"`
	YTDLPPath          string `json:"ytdlp_path,omitempty"`
	CookiesFromBrowser string `json:"cookies_from_browser,omitempty"`
	LogLevel           string `json:"log_level"`
	LogFile            string `json:"log_file,omitempty"`
}

// LoadSettings reads the settings from Viper and validates them.
func LoadSettings() (*Settings, error) {
	s := &Settings{
		Host:               viper.GetString(keys.Host),
		Port:               viper.GetInt(keys.Port),
		StaticDir:          viper.GetString(keys.StaticDir),
		DownloadDir:        viper.GetString(keys.DownloadDir),
		HistoryDB:          viper.GetString(keys.HistoryDB),
		FFmpegName:         viper.GetString(keys.FFmpegName),
		YTDLPPath:          viper.GetString(keys.YTDLPPath),
		CookiesFromBrowser: viper.GetString(keys.CookiesFromBrowser),
		LogLevel:           viper.GetString(keys.LogLevel),
		LogFile:            viper.GetString(keys.LogFile),
	}
	if err := ValidateSettings(s); err != nil {
		return nil, err
	}
	return s, nil
}
