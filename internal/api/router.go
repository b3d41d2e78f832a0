package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// fallbackMessage is returned for any path outside the API.
const fallbackMessage = "Go to '/api/home'"

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/home", s.handleGetHome)
		r.Get("/reports/{provider}", s.handleGetReport)

		r.Route("/rooms", func(r chi.Router) {
			r.Get("/", s.handleListRooms)
			r.Post("/", s.handleCreateRoom)

			r.Route("/{room}", func(r chi.Router) {
				r.Delete("/", s.handleDeleteRoom)
				r.Get("/devices", s.handleListDevices)
				r.Post("/devices", s.handleCreateDevice)
				r.Delete("/devices/{device}", s.handleDeleteDevice)
			})
		})
	})

	r.NotFound(s.handleFallback)

	return r
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
	})
}

// handleFallback points clients at the API entry point.
func (s *Server) handleFallback(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck // Best-effort write to response
	w.Write([]byte(fallbackMessage))
}

// pathParam returns a decoded URL parameter.
// chi routes on RawPath when it is set, so only then is the segment still escaped.
func pathParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v
	}
	if decoded, err := url.PathUnescape(v); err == nil {
		return decoded
	}
	return v
}
