// Package models holds the data types passed between fetcharr's packages.
package models

import (
	"fmt"
	"strings"
)

// MediaKind is the kind of media a request asks for.
type MediaKind string

const (
	KindVideo MediaKind = "video"
	KindAudio MediaKind = "audio"
)

// ParseMediaKind converts a request string to a MediaKind.
func ParseMediaKind(s string) (MediaKind, error) {
	switch k := MediaKind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindVideo, KindAudio:
		return k, nil
	default:
		return "", fmt.Errorf("unknown media kind %q", s)
	}
}

// DownloadRequest is one user request. It lives for a single orchestration call.
type DownloadRequest struct {
	URL        string
	Resolution string
	Kind       MediaKind
	Playlist   bool
}

// DownloadOutcome describes a successful download.
//
// Filename and Filepath are empty for playlists, whose items are nested
// under per-playlist directories inside the workspace.
type DownloadOutcome struct {
	WorkspaceID string
	Filename    string
	Filepath    string
	Playlist    bool
}
