package models

import "time"

// HistoryEntry is a recorded download attempt.
type HistoryEntry struct {
	ID          int64     `json:"id"`
	WorkspaceID string    `json:"download_id"`
	URL         string    `json:"url"`
	Kind        MediaKind `json:"type"`
	Resolution  string    `json:"resolution"`
	Playlist    bool      `json:"playlist"`
	Status      string    `json:"status"`
	Filename    string    `json:"filename,omitempty"`
	Error       string    `json:"error,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
