package device

import (
	"errors"
	"strings"
	"testing"
)

func TestNewSocket_Defaults(t *testing.T) {
	s, err := NewSocket("Smart_socket")
	if err != nil {
		t.Fatalf("NewSocket() error: %v", err)
	}

	if s.Name() != "Smart_socket" {
		t.Errorf("Name() = %q, want %q", s.Name(), "Smart_socket")
	}
	if s.Status {
		t.Error("Status = true, want false")
	}
	if s.Voltage != 0 {
		t.Errorf("Voltage = %v, want 0", s.Voltage)
	}
	if s.Type() != TypeSocket {
		t.Errorf("Type() = %q, want %q", s.Type(), TypeSocket)
	}
}

func TestNewThermometer_Defaults(t *testing.T) {
	th, err := NewThermometer("Smart_thermometer")
	if err != nil {
		t.Fatalf("NewThermometer() error: %v", err)
	}

	if th.Name() != "Smart_thermometer" {
		t.Errorf("Name() = %q, want %q", th.Name(), "Smart_thermometer")
	}
	if th.Status {
		t.Error("Status = true, want false")
	}
	if th.Temperature != 0 {
		t.Errorf("Temperature = %v, want 0", th.Temperature)
	}
	if th.Type() != TypeThermometer {
		t.Errorf("Type() = %q, want %q", th.Type(), TypeThermometer)
	}
}

func TestConstructors_EmptyName(t *testing.T) {
	if _, err := NewSocket(""); !errors.Is(err, ErrInvalidName) {
		t.Errorf("NewSocket(\"\") error = %v, want ErrInvalidName", err)
	}
	if _, err := NewThermometer("   "); !errors.Is(err, ErrInvalidName) {
		t.Errorf("NewThermometer(blank) error = %v, want ErrInvalidName", err)
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		typ      Type
		devName  string
		wantType Type
		wantErr  error
	}{
		{name: "socket", typ: TypeSocket, devName: "s1", wantType: TypeSocket},
		{name: "thermometer", typ: TypeThermometer, devName: "t1", wantType: TypeThermometer},
		{name: "unknown type", typ: Type("kettle"), devName: "k1", wantErr: ErrInvalidType},
		{name: "empty name", typ: TypeSocket, devName: "", wantErr: ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev, err := New(tt.typ, tt.devName)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}
			if dev.Type() != tt.wantType {
				t.Errorf("Type() = %q, want %q", dev.Type(), tt.wantType)
			}
			if dev.Name() != tt.devName {
				t.Errorf("Name() = %q, want %q", dev.Name(), tt.devName)
			}
		})
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		input   string
		want    Type
		wantErr bool
	}{
		{input: "Socket", want: TypeSocket},
		{input: "socket", want: TypeSocket},
		{input: "Thermo", want: TypeThermometer},
		{input: "THERMOMETER", want: TypeThermometer},
		{input: "lamp", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseType(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidType) {
					t.Errorf("ParseType(%q) error = %v, want ErrInvalidType", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseType(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseType(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestString_IncludesAllFields(t *testing.T) {
	s, _ := NewSocket("Socket1")
	s.Status = true
	s.Voltage = 227

	got := s.String()
	want := `Socket "Socket1": status=on, voltage=227.0 V`
	if got != want {
		t.Errorf("Socket.String() = %q, want %q", got, want)
	}

	th, _ := NewThermometer("thermo")
	th.Temperature = 15

	got = th.String()
	for _, part := range []string{"Thermometer", `"thermo"`, "status=off", "temperature=15.0"} {
		if !strings.Contains(got, part) {
			t.Errorf("Thermometer.String() = %q, missing %q", got, part)
		}
	}
}

func TestClone_IsIndependent(t *testing.T) {
	s, _ := NewSocket("Socket1")
	cpy, ok := s.Clone().(*Socket)
	if !ok {
		t.Fatalf("Clone() returned %T, want *Socket", s.Clone())
	}

	cpy.Voltage = 230
	cpy.Status = true

	if s.Voltage != 0 || s.Status {
		t.Error("modifying the clone changed the original")
	}
	if cpy.Name() != s.Name() {
		t.Errorf("clone name = %q, want %q", cpy.Name(), s.Name())
	}
}

func TestIsNil(t *testing.T) {
	var nilSocket *Socket
	var nilThermo *Thermometer
	socket, _ := NewSocket("s1")

	tests := []struct {
		name string
		dev  Device
		want bool
	}{
		{name: "untyped nil", dev: nil, want: true},
		{name: "nil socket", dev: nilSocket, want: true},
		{name: "nil thermometer", dev: nilThermo, want: true},
		{name: "socket", dev: socket, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNil(tt.dev); got != tt.want {
				t.Errorf("IsNil() = %v, want %v", got, tt.want)
			}
		})
	}
}
