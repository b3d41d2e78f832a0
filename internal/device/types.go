package device

import (
	"fmt"
	"reflect"
	"strings"
)

// Device is a socket or thermometer held by a room.
type Device interface {
	// Name returns the device identity within its room.
	Name() string

	// Type returns the variant tag.
	Type() Type

	// String renders every field in a fixed human-readable format.
	String() string

	// Clone returns an independent copy of the device.
	Clone() Device
}

// Type identifies the concrete device variant.
type Type string

// Type constants.
const (
	TypeSocket      Type = "socket"
	TypeThermometer Type = "thermometer"
)

// AllTypes returns all valid device types.
func AllTypes() []Type {
	return []Type{TypeSocket, TypeThermometer}
}

// ParseType converts a user-supplied type name to a Type.
//
// Matching is case-insensitive. "Thermo" is accepted as an alias for
// thermometer because the REST payload uses it.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "socket":
		return TypeSocket, nil
	case "thermometer", "thermo":
		return TypeThermometer, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
}

// New creates a zero-state device of the given type.
func New(t Type, name string) (Device, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	switch t {
	case TypeSocket:
		return &Socket{name: name}, nil
	case TypeThermometer:
		return &Thermometer{name: name}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, t)
	}
}

// IsNil reports whether d is nil or an interface wrapping a nil pointer.
func IsNil(d Device) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// statusText renders a status flag.
func statusText(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
