package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nerrad567/smarthouse-core/internal/device"
	"github.com/nerrad567/smarthouse-core/internal/location"
)

// ErrUnknownKind is returned when a provider kind is not recognised.
var ErrUnknownKind = errors.New("report: unknown provider kind")

// Kind names a provider variant.
type Kind string

// Kind constants. The values match the REST path segment.
const (
	KindOwning    Kind = "Owning"
	KindBorrowing Kind = "Borrowing"
)

// Default names of the devices held by providers built with ForKind.
const (
	DefaultSocketName      = "Socket 1"
	DefaultThermometerName = "Thermometer 1"
)

// ParseKind converts a provider name to a Kind. Matching is case-insensitive.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "owning":
		return KindOwning, nil
	case "borrowing":
		return KindBorrowing, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// OwningProvider holds its own socket value.
type OwningProvider struct {
	Socket device.Socket
}

// NewOwning creates a provider that owns a copy of the given socket.
// A nil socket is replaced by a zero-state socket named DefaultSocketName.
func NewOwning(socket *device.Socket) *OwningProvider {
	if socket == nil {
		socket, _ = device.NewSocket(DefaultSocketName)
	}
	return &OwningProvider{Socket: *socket}
}

// DeviceInfo implements location.DeviceInfoProvider.
func (p *OwningProvider) DeviceInfo(room *location.Room, d device.Device) string {
	if device.IsNil(d) {
		d = &p.Socket
	}
	return render(room, d)
}

// BorrowingProvider refers to devices owned by the caller.
type BorrowingProvider struct {
	Socket      *device.Socket
	Thermometer *device.Thermometer
}

// NewBorrowing creates a provider that refers to the given devices.
func NewBorrowing(socket *device.Socket, thermometer *device.Thermometer) *BorrowingProvider {
	return &BorrowingProvider{Socket: socket, Thermometer: thermometer}
}

// DeviceInfo implements location.DeviceInfoProvider.
//
// With no device supplied it renders both held devices on one line.
func (p *BorrowingProvider) DeviceInfo(room *location.Room, d device.Device) string {
	if !device.IsNil(d) {
		return render(room, d)
	}

	var parts []string
	if p.Socket != nil {
		parts = append(parts, render(room, p.Socket))
	}
	if p.Thermometer != nil {
		parts = append(parts, render(room, p.Thermometer))
	}
	return strings.Join(parts, "; ")
}

// ForKind builds a provider of the given kind holding default devices.
func ForKind(kind Kind) (location.DeviceInfoProvider, error) {
	socket, err := device.NewSocket(DefaultSocketName)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindOwning:
		return NewOwning(socket), nil
	case KindBorrowing:
		thermo, err := device.NewThermometer(DefaultThermometerName)
		if err != nil {
			return nil, err
		}
		return NewBorrowing(socket, thermo), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// render formats a (room, device) pair.
func render(room *location.Room, d device.Device) string {
	return room.Name() + ": " + d.String()
}
