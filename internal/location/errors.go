package location

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidName is returned when a house or room name is empty or too long.
	ErrInvalidName = errors.New("location: invalid name")

	// ErrNotFound is the umbrella error for failed lookups by name.
	// Both ErrRoomNotFound and ErrDeviceNotFound match it via errors.Is.
	ErrNotFound = errors.New("not found")

	// ErrRoomNotFound is returned when a room name does not exist in the house.
	ErrRoomNotFound = fmt.Errorf("room %w", ErrNotFound)

	// ErrDeviceNotFound is returned when a device name does not exist in the room.
	ErrDeviceNotFound = fmt.Errorf("device %w", ErrNotFound)
)
