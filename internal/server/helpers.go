package server

import (
	"encoding/json"
	"mime"
	"net/http"
	"net/url"
	"path/filepath"

	"fetcharr/internal/domain/errs"
	"fetcharr/internal/domain/logger"

	"github.com/go-chi/chi/v5"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeKindError maps an error's kind to a status code.
func writeKindError(w http.ResponseWriter, err error) {
	switch errs.KindOf(err) {
	case errs.Validation, errs.Configuration:
		writeError(w, http.StatusBadRequest, err.Error())
	case errs.NotFound:
		writeError(w, http.StatusNotFound, err.Error())
	default:
		logger.Pl.Error().Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Pl.Warn().Err(err).Msg("failed to encode JSON response")
	}
}

// contentType guesses a media type from the file extension.
func contentType(name string) string {
	if t := mime.TypeByExtension(filepath.Ext(name)); t != "" {
		return t
	}
	return "application/octet-stream"
}

// pathParam returns a decoded URL parameter.
//
// chi matches on the raw path when the client's escaping differs from Go's,
// leaving the parameter percent-encoded. Decoding happens before any path
// checks so an encoded "/" or ".." is still rejected.
func pathParam(r *http.Request, key string) (string, bool) {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v, true
	}
	decoded, err := url.PathUnescape(v)
	if err != nil {
		return "", false
	}
	return decoded, true
}
