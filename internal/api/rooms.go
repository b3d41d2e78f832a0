package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nerrad567/smarthouse-core/internal/location"
)

// CreateRoomRequest is the request body for POST /api/rooms.
type CreateRoomRequest struct {
	Name string `json:"name"`
}

// handleListRooms returns every room in the house.
func (s *Server) handleListRooms(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, http.StatusOK, s.house.Rooms())
}

// handleCreateRoom adds an empty room, replacing any room with the same name.
func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeDomainError(w, r, fmt.Errorf("decoding room: %w", err))
		return
	}

	room, err := location.NewRoom(req.Name)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.house.AddRoom(room); err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	s.logger.Info("room created", "room", room.Name())
	writeJSON(w, http.StatusCreated, room.Name())
}

// handleDeleteRoom removes a room and its devices.
func (s *Server) handleDeleteRoom(w http.ResponseWriter, r *http.Request) {
	name := pathParam(r, "room")

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.house.RemoveRoom(name); err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	s.logger.Info("room deleted", "room", name)
	writeJSON(w, http.StatusOK, "Ok")
}
