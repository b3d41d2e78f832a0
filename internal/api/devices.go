package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nerrad567/smarthouse-core/internal/device"
	"github.com/nerrad567/smarthouse-core/internal/location"
)

// CreateDeviceRequest is the request body for POST /api/rooms/{room}/devices.
// DeviceType accepts "Socket" or "Thermo" (case-insensitive; "thermometer" too).
type CreateDeviceRequest struct {
	Name       string `json:"name"`
	DeviceType string `json:"device_type"`
}

// handleListDevices returns the devices of one room.
func (s *Server) handleListDevices(w http.ResponseWriter, r *http.Request) {
	name := pathParam(r, "room")

	s.mu.Lock()
	defer s.mu.Unlock()

	devices, ok := s.house.DeviceInfo(name)
	if !ok {
		s.writeDomainError(w, r, fmt.Errorf("%w: %q", location.ErrRoomNotFound, name))
		return
	}
	writeJSON(w, http.StatusOK, devices)
}

// handleCreateDevice adds a zero-state device to a room and returns the room.
func (s *Server) handleCreateDevice(w http.ResponseWriter, r *http.Request) {
	roomName := pathParam(r, "room")

	var req CreateDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeDomainError(w, r, fmt.Errorf("decoding device: %w", err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.house.Room(roomName)
	if !ok {
		s.writeDomainError(w, r, fmt.Errorf("%w: %q", location.ErrRoomNotFound, roomName))
		return
	}

	t, err := device.ParseType(req.DeviceType)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	dev, err := device.New(t, req.Name)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	if err := room.AddDevice(dev); err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	s.logger.Info("device created", "room", roomName, "device", dev.Name(), "type", dev.Type())
	writeJSON(w, http.StatusCreated, room)
}

// handleDeleteDevice removes one device from a room.
func (s *Server) handleDeleteDevice(w http.ResponseWriter, r *http.Request) {
	roomName := pathParam(r, "room")
	deviceName := pathParam(r, "device")

	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.house.Room(roomName)
	if !ok {
		s.writeDomainError(w, r, fmt.Errorf("%w: %q", location.ErrRoomNotFound, roomName))
		return
	}
	if err := room.RemoveDevice(deviceName); err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	s.logger.Info("device deleted", "room", roomName, "device", deviceName)
	writeJSON(w, http.StatusOK, "Ok")
}
