package location

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/nerrad567/smarthouse-core/internal/device"
)

// Room is a named collection of devices keyed by device name.
type Room struct {
	name    string
	devices map[string]device.Device
}

// NewRoom creates an empty room.
func NewRoom(name string) (*Room, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	return &Room{
		name:    name,
		devices: make(map[string]device.Device),
	}, nil
}

// Name returns the room name.
func (r *Room) Name() string {
	return r.name
}

// AddDevice inserts a device keyed by its name.
// A device with the same name is replaced.
func (r *Room) AddDevice(d device.Device) error {
	if device.IsNil(d) {
		return fmt.Errorf("%w: device is nil", ErrInvalidName)
	}
	if err := device.ValidateName(d.Name()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidName, err)
	}
	r.devices[d.Name()] = d
	return nil
}

// RemoveDevice deletes the named device.
// Returns ErrDeviceNotFound if the room does not hold it.
func (r *Room) RemoveDevice(name string) error {
	if _, ok := r.devices[name]; !ok {
		return fmt.Errorf("%w: %q in room %q", ErrDeviceNotFound, name, r.name)
	}
	delete(r.devices, name)
	return nil
}

// Device returns the named device, if present.
func (r *Room) Device(name string) (device.Device, bool) {
	d, ok := r.devices[name]
	return d, ok
}

// Devices returns the room's devices ordered by name.
func (r *Room) Devices() []device.Device {
	out := make([]device.Device, 0, len(r.devices))
	names := make([]string, 0, len(r.devices))
	for name := range r.devices {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		out = append(out, r.devices[name])
	}
	return out
}

// DeviceCount returns the number of devices in the room.
func (r *Room) DeviceCount() int {
	return len(r.devices)
}

// Render returns the room header used in reports: the name and a newline.
func (r *Room) Render() string {
	return r.name + "\n"
}

// String implements fmt.Stringer.
func (r *Room) String() string {
	return r.name
}

// MarshalJSON encodes the room with its devices keyed by name.
func (r *Room) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name    string                   `json:"name"`
		Devices map[string]device.Device `json:"devices"`
	}{
		Name:    r.name,
		Devices: r.devices,
	})
}
