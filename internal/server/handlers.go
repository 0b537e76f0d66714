package server

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"fetcharr/internal/domain/errconsts"
	"fetcharr/internal/domain/errs"
	"fetcharr/internal/domain/logger"
	"fetcharr/internal/models"
)

const (
	playlistMessage     = "Playlist downloaded successfully"
	defaultHistoryLimit = 50
)

// downloadBody is the JSON body of POST /download.
type downloadBody struct {
	URL        string `json:"url"`
	Resolution string `json:"resolution"`
	Type       string `json:"type"`
	Playlist   bool   `json:"playlist"`
}

type downloadResponse struct {
	Success    bool   `json:"success"`
	Filename   string `json:"filename,omitempty"`
	DownloadID string `json:"download_id"`
	Filepath   string `json:"filepath,omitempty"`
	Message    string `json:"message,omitempty"`
}

type workspaceResponse struct {
	DownloadID string        `json:"download_id"`
	Files      []filePayload `json:"files"`
}

type filePayload struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

type healthResponse struct {
	FFmpeg     bool   `json:"ffmpeg"`
	FFmpegPath string `json:"ffmpeg_path"`
}

// handleIndex serves the front page.
func (h *handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	if h.StaticDir != "" {
		http.ServeFile(w, r, filepath.Join(h.StaticDir, "index.html"))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexPage)
}

// handleDownload runs a download and reports where the result went.
func (h *handlers) handleDownload(w http.ResponseWriter, r *http.Request) {
	var body downloadBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf(errconsts.InvalidJSON, err))
		return
	}

	out, err := h.Downloads.Run(r.Context(), models.DownloadRequest{
		URL:        body.URL,
		Resolution: body.Resolution,
		Kind:       models.MediaKind(body.Type),
		Playlist:   body.Playlist,
	})
	if err != nil {
		writeKindError(w, err)
		return
	}

	if out.Playlist {
		writeJSON(w, http.StatusOK, downloadResponse{
			Success:    true,
			Message:    playlistMessage,
			DownloadID: out.WorkspaceID,
		})
		return
	}
	writeJSON(w, http.StatusOK, downloadResponse{
		Success:    true,
		Filename:   out.Filename,
		DownloadID: out.WorkspaceID,
		Filepath:   out.Filepath,
	})
}

// handleDownloadFile streams a produced file as an attachment.
func (h *handlers) handleDownloadFile(w http.ResponseWriter, r *http.Request) {
	id, okID := pathParam(r, "download_id")
	name, okName := pathParam(r, "filename")
	if !okID || !okName {
		writeError(w, http.StatusNotFound, errconsts.FileNotFound)
		return
	}

	p, err := h.Workspaces.Resolve(id, name)
	if err != nil {
		writeKindError(w, err)
		return
	}

	f, err := os.Open(p)
	if err != nil {
		writeError(w, http.StatusNotFound, errconsts.FileNotFound)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		writeError(w, http.StatusNotFound, errconsts.FileNotFound)
		return
	}

	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", contentType(name))
	}
	http.ServeContent(w, r, name, info.ModTime(), f)
}

// handleCleanup removes every workspace.
func (h *handlers) handleCleanup(w http.ResponseWriter, r *http.Request) {
	n, err := h.Workspaces.CleanupAll()
	if err != nil {
		logger.Pl.Error().Err(err).Int("removed", n).Msg("cleanup failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	logger.Pl.Info().Int("removed", n).Msg("removed all workspaces")
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// handleListWorkspace lists the files in one workspace.
func (h *handlers) handleListWorkspace(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(r, "download_id")
	if !ok {
		writeError(w, http.StatusNotFound, "workspace not found")
		return
	}

	files, err := h.Workspaces.Files(id)
	if err != nil {
		writeKindError(w, err)
		return
	}

	resp := workspaceResponse{DownloadID: id, Files: make([]filePayload, 0, len(files))}
	for _, f := range files {
		resp.Files = append(resp.Files, filePayload{Name: f.Name, Size: f.Size})
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleHistory returns the latest recorded downloads.
func (h *handlers) handleHistory(w http.ResponseWriter, r *http.Request) {
	if h.History == nil {
		writeError(w, http.StatusNotFound, errconsts.HistoryDisabled)
		return
	}

	limit := defaultHistoryLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid limit %q", v))
			return
		}
		limit = n
	}

	entries, err := h.History.LatestDownloads(r.Context(), limit)
	if err != nil {
		writeKindError(w, errs.Wrap(errs.Internal, err))
		return
	}
	if entries == nil {
		entries = []models.HistoryEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// handleHealth reports whether the transcoder is available.
func (h *handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	p := h.Transcoder.Locate()
	writeJSON(w, http.StatusOK, healthResponse{FFmpeg: p != "", FFmpegPath: p})
}
