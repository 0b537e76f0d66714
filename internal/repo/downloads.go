// Package repo holds the database stores.
package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fetcharr/internal/domain/consts"
	"fetcharr/internal/models"

	"github.com/Masterminds/squirrel"
)

// DownloadStore holds a pointer to the sql.DB.
type DownloadStore struct {
	DB *sql.DB
}

// GetDownloadStore returns a download store instance with injected database.
func GetDownloadStore(db *sql.DB) *DownloadStore {
	return &DownloadStore{
		DB: db,
	}
}

// AddDownload inserts a download attempt and returns its row id.
func (ds *DownloadStore) AddDownload(ctx context.Context, e *models.HistoryEntry) (int64, error) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	query := squirrel.
		Insert(consts.DBDownloads).
		Columns(
			consts.QDLWorkspaceID,
			consts.QDLURL,
			consts.QDLKind,
			consts.QDLResolution,
			consts.QDLPlaylist,
			consts.QDLStatus,
			consts.QDLFilename,
			consts.QDLError,
			consts.QDLCreatedAt,
		).
		Values(
			e.WorkspaceID,
			e.URL,
			string(e.Kind),
			e.Resolution,
			e.Playlist,
			e.Status,
			e.Filename,
			e.Error,
			e.CreatedAt,
		).
		RunWith(ds.DB)

	res, err := query.ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to insert download for URL %q: %w", e.URL, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted download id: %w", err)
	}
	e.ID = id
	return id, nil
}

// LatestDownloads returns up to n recorded downloads, newest first.
func (ds *DownloadStore) LatestDownloads(ctx context.Context, n int) ([]models.HistoryEntry, error) {
	query := squirrel.
		Select(
			consts.QDLID,
			consts.QDLWorkspaceID,
			consts.QDLURL,
			consts.QDLKind,
			consts.QDLResolution,
			consts.QDLPlaylist,
			consts.QDLStatus,
			consts.QDLFilename,
			consts.QDLError,
			consts.QDLCreatedAt,
		).
		From(consts.DBDownloads).
		OrderBy(fmt.Sprintf("%s DESC", consts.QDLID)).
		Limit(uint64(max(n, 1))).
		RunWith(ds.DB)

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query downloads: %w", err)
	}
	defer rows.Close()

	var entries []models.HistoryEntry
	for rows.Next() {
		var (
			e          models.HistoryEntry
			kind       string
			resolution sql.NullString
			filename   sql.NullString
			errMsg     sql.NullString
		)
		if err := rows.Scan(
			&e.ID,
			&e.WorkspaceID,
			&e.URL,
			&kind,
			&resolution,
			&e.Playlist,
			&e.Status,
			&filename,
			&errMsg,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan download row: %w", err)
		}

		// Handle nullable fields
		e.Kind = models.MediaKind(kind)
		e.Resolution = resolution.String
		e.Filename = filename.String
		e.Error = errMsg.String
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return entries, nil
}

// ClearDownloads deletes every recorded download.
func (ds *DownloadStore) ClearDownloads(ctx context.Context) (int64, error) {
	res, err := squirrel.Delete(consts.DBDownloads).RunWith(ds.DB).ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to clear downloads: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count cleared downloads: %w", err)
	}
	return n, nil
}
