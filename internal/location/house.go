package location

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/nerrad567/smarthouse-core/internal/device"
)

// DeviceInfoProvider renders one device as it appears inside a room.
type DeviceInfoProvider interface {
	DeviceInfo(room *Room, d device.Device) string
}

// House is the root owner of rooms and, through them, devices.
type House struct {
	name  string
	rooms map[string]*Room
}

// NewHouse creates a house with no rooms.
func NewHouse(name string) (*House, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	return &House{
		name:  name,
		rooms: make(map[string]*Room),
	}, nil
}

// Name returns the house name.
func (h *House) Name() string {
	return h.name
}

// AddRoom attaches a room keyed by its name.
// A room with the same name is replaced, along with its devices.
func (h *House) AddRoom(room *Room) error {
	if room == nil {
		return fmt.Errorf("%w: room is nil", ErrInvalidName)
	}
	if err := ValidateName(room.name); err != nil {
		return err
	}
	h.rooms[room.name] = room
	return nil
}

// RemoveRoom detaches the named room and drops its devices.
// Returns ErrRoomNotFound if the house has no such room.
func (h *House) RemoveRoom(name string) error {
	if _, ok := h.rooms[name]; !ok {
		return fmt.Errorf("%w: %q", ErrRoomNotFound, name)
	}
	delete(h.rooms, name)
	return nil
}

// Room returns the named room, if present.
func (h *House) Room(name string) (*Room, bool) {
	r, ok := h.rooms[name]
	return r, ok
}

// Rooms returns the house's rooms ordered by name.
func (h *House) Rooms() []*Room {
	out := make([]*Room, 0, len(h.rooms))
	names := make([]string, 0, len(h.rooms))
	for name := range h.rooms {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		out = append(out, h.rooms[name])
	}
	return out
}

// DeviceInfo returns the devices of the named room.
// The boolean is false when the room does not exist.
func (h *House) DeviceInfo(roomName string) ([]device.Device, bool) {
	r, ok := h.rooms[roomName]
	if !ok {
		return nil, false
	}
	return r.Devices(), true
}

// CreateReport renders the whole house through the given provider.
//
// The output starts with a house header line, then for each room its
// header followed by one provider line per device. Every piece ends
// with a newline.
func (h *House) CreateReport(provider DeviceInfoProvider) string {
	var b strings.Builder
	fmt.Fprintf(&b, "House: %s\n", h.name)

	for _, room := range h.Rooms() {
		b.WriteString(room.Render())
		for _, d := range room.Devices() {
			b.WriteString(provider.DeviceInfo(room, d))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// MarshalJSON encodes the house with its rooms keyed by name.
func (h *House) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name  string           `json:"name"`
		Rooms map[string]*Room `json:"rooms"`
	}{
		Name:  h.name,
		Rooms: h.rooms,
	})
}
