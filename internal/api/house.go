package api

import (
	"net/http"

	"github.com/nerrad567/smarthouse-core/internal/report"
)

// handleGetHome returns the whole house.
func (s *Server) handleGetHome(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, http.StatusOK, s.house)
}

// handleGetReport renders the house with the provider named in the path.
func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	kind, err := report.ParseKind(pathParam(r, "provider"))
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	provider, err := report.ForKind(kind)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, http.StatusOK, s.house.CreateReport(provider))
}
