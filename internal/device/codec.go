package device

import (
	"encoding/json"
	"fmt"
)

// wireDevice is the tagged JSON form shared by every device type.
type wireDevice struct {
	Type        Type     `json:"type"`
	Name        string   `json:"name"`
	Status      bool     `json:"status"`
	Voltage     *float32 `json:"voltage,omitempty"`
	Temperature *float32 `json:"temperature,omitempty"`
}

// MarshalJSON encodes the socket with its type tag.
func (s *Socket) MarshalJSON() ([]byte, error) {
	v := s.Voltage
	return json.Marshal(wireDevice{
		Type:    TypeSocket,
		Name:    s.name,
		Status:  s.Status,
		Voltage: &v,
	})
}

// MarshalJSON encodes the thermometer with its type tag.
func (t *Thermometer) MarshalJSON() ([]byte, error) {
	v := t.Temperature
	return json.Marshal(wireDevice{
		Type:        TypeThermometer,
		Name:        t.name,
		Status:      t.Status,
		Temperature: &v,
	})
}

// Unmarshal decodes a tagged device produced by MarshalJSON.
// The name is validated the same way as in the constructors.
func Unmarshal(data []byte) (Device, error) {
	var w wireDevice
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decoding device: %w", err)
	}

	t, err := ParseType(string(w.Type))
	if err != nil {
		return nil, err
	}

	dev, err := New(t, w.Name)
	if err != nil {
		return nil, err
	}

	switch d := dev.(type) {
	case *Socket:
		d.Status = w.Status
		if w.Voltage != nil {
			d.Voltage = *w.Voltage
		}
	case *Thermometer:
		d.Status = w.Status
		if w.Temperature != nil {
			d.Temperature = *w.Temperature
		}
	}
	return dev, nil
}
