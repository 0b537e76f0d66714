package models

import (
	"strings"
	"testing"
)

func TestParseMediaKind(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		in      string
		want    MediaKind
		wantErr bool
	}{
		"video":      {in: "video", want: KindVideo},
		"audio":      {in: "audio", want: KindAudio},
		"mixed case": {in: " Audio ", want: KindAudio},
		"unknown":    {in: "podcast", wantErr: true},
		"empty":      {in: "", wantErr: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseMediaKind(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMediaKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("ParseMediaKind(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDownloadOptionsValidate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		opts    DownloadOptions
		wantErr string
	}{
		"video merge": {
			opts: DownloadOptions{OutputTemplate: "x", Kind: KindVideo, Video: &VideoOptions{
				Format: "best", MergeOutputFormat: "mp4", FFmpegLocation: "/usr/bin/ffmpeg",
			}},
		},
		"video no ffmpeg": {
			opts: DownloadOptions{OutputTemplate: "x", Kind: KindVideo, Video: &VideoOptions{Format: "best"}},
		},
		"merge without ffmpeg": {
			opts:    DownloadOptions{OutputTemplate: "x", Kind: KindVideo, Video: &VideoOptions{Format: "best", MergeOutputFormat: "mp4"}},
			wantErr: "requires an ffmpeg location",
		},
		"audio without ffmpeg": {
			opts:    DownloadOptions{OutputTemplate: "x", Kind: KindAudio, Audio: &AudioOptions{Format: "bestaudio", AudioFormat: "mp3"}},
			wantErr: "requires an ffmpeg location",
		},
		"both sections": {
			opts: DownloadOptions{OutputTemplate: "x", Kind: KindVideo,
				Video: &VideoOptions{Format: "best"}, Audio: &AudioOptions{}},
			wantErr: "only the video section",
		},
		"missing template": {
			opts:    DownloadOptions{Kind: KindVideo, Video: &VideoOptions{Format: "best"}},
			wantErr: "output template",
		},
		"unknown kind": {
			opts:    DownloadOptions{OutputTemplate: "x", Kind: "gif"},
			wantErr: "unknown media kind",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
