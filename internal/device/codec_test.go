package device

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestSocket_MarshalJSON(t *testing.T) {
	s, _ := NewSocket("Socket1")
	s.Voltage = 227

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if got["type"] != "socket" {
		t.Errorf("type = %v, want socket", got["type"])
	}
	if got["name"] != "Socket1" {
		t.Errorf("name = %v, want Socket1", got["name"])
	}
	if got["voltage"] != float64(227) {
		t.Errorf("voltage = %v, want 227", got["voltage"])
	}
	if _, ok := got["temperature"]; ok {
		t.Error("socket JSON should not carry a temperature field")
	}
}

func TestUnmarshal_Thermometer(t *testing.T) {
	data := []byte(`{"type":"thermometer","name":"Hall","status":true,"temperature":21.5}`)

	dev, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	th, ok := dev.(*Thermometer)
	if !ok {
		t.Fatalf("Unmarshal() returned %T, want *Thermometer", dev)
	}
	if th.Name() != "Hall" || !th.Status || th.Temperature != 21.5 {
		t.Errorf("Unmarshal() = %+v, want Hall/on/21.5", th)
	}
}

func TestUnmarshal_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{name: "unknown type", data: `{"type":"fridge","name":"f"}`, wantErr: ErrInvalidType},
		{name: "empty name", data: `{"type":"socket","name":""}`, wantErr: ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.data))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Unmarshal() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := Unmarshal([]byte(`not json`)); err == nil {
		t.Error("Unmarshal() should fail on malformed input")
	}
}
