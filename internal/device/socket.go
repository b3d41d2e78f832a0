package device

import "fmt"

// Socket is a smart power outlet.
type Socket struct {
	name    string
	Status  bool
	Voltage float32
}

// NewSocket creates a socket that is switched off and reads 0 V.
func NewSocket(name string) (*Socket, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	return &Socket{name: name}, nil
}

// Name implements Device.
func (s *Socket) Name() string { return s.name }

// Type implements Device.
func (s *Socket) Type() Type { return TypeSocket }

// String implements Device.
func (s *Socket) String() string {
	return fmt.Sprintf("Socket %q: status=%s, voltage=%.1f V", s.name, statusText(s.Status), s.Voltage)
}

// Clone implements Device.
func (s *Socket) Clone() Device {
	cpy := *s
	return &cpy
}
