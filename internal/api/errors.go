package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nerrad567/smarthouse-core/internal/location"
	"github.com/nerrad567/smarthouse-core/internal/report"
)

// Error represents a structured error response.
type Error struct {
	Status  int    `json:"status"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Error kinds.
const (
	KindNotFound      = "NotFound"
	KindInternalError = "InternalError"
)

// writeJSON writes a JSON response with the given status code and payload.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		//nolint:errcheck // Best-effort write to response; connection may be closed
		json.NewEncoder(w).Encode(v)
	}
}

// writeError writes a structured error response.
func writeError(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, Error{
		Status:  status,
		Kind:    kind,
		Message: message,
	})
}

// writeNotFound writes a 404 error response.
func writeNotFound(w http.ResponseWriter, message string) {
	writeError(w, http.StatusNotFound, KindNotFound, message)
}

// writeInternalError writes a 500 error response.
func writeInternalError(w http.ResponseWriter, message string) {
	writeError(w, http.StatusInternalServerError, KindInternalError, message)
}

// isNotFound reports whether err is a failed lookup.
func isNotFound(err error) bool {
	return errors.Is(err, location.ErrNotFound) || errors.Is(err, report.ErrUnknownKind)
}

// writeDomainError maps a domain error to a response and logs it.
func (s *Server) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("request failed",
		"error", err,
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", r.Context().Value(ctxKeyRequestID),
	)
	if isNotFound(err) {
		writeNotFound(w, err.Error())
		return
	}
	writeInternalError(w, err.Error())
}
