package report

import (
	"errors"
	"strings"
	"testing"

	"github.com/nerrad567/smarthouse-core/internal/device"
	"github.com/nerrad567/smarthouse-core/internal/location"
)

// kitchenHouse builds the house "House" with a Kitchen holding Socket1
// and a Hall holding a thermometer.
func kitchenHouse(t *testing.T) *location.House {
	t.Helper()

	h, err := location.NewHouse("House")
	if err != nil {
		t.Fatalf("NewHouse() error: %v", err)
	}

	kitchen, _ := location.NewRoom("Kitchen")
	socket, _ := device.NewSocket("Socket1")
	if err := kitchen.AddDevice(socket); err != nil {
		t.Fatalf("AddDevice() error: %v", err)
	}

	hall, _ := location.NewRoom("Hall")
	thermo, _ := device.NewThermometer("Hall thermo")
	if err := hall.AddDevice(thermo); err != nil {
		t.Fatalf("AddDevice() error: %v", err)
	}

	for _, r := range []*location.Room{kitchen, hall} {
		if err := h.AddRoom(r); err != nil {
			t.Fatalf("AddRoom() error: %v", err)
		}
	}
	return h
}

func TestProviders_RenderSuppliedDevice(t *testing.T) {
	held, _ := device.NewSocket("Held socket")
	heldThermo, _ := device.NewThermometer("Held thermo")

	providers := map[string]location.DeviceInfoProvider{
		"owning":    NewOwning(held),
		"borrowing": NewBorrowing(held, heldThermo),
	}

	room, _ := location.NewRoom("Kitchen")
	passed, _ := device.NewSocket("Socket1")

	for name, p := range providers {
		t.Run(name, func(t *testing.T) {
			got := p.DeviceInfo(room, passed)
			want := "Kitchen: " + passed.String()
			if got != want {
				t.Errorf("DeviceInfo() = %q, want %q", got, want)
			}
			if strings.Contains(got, "Held") {
				t.Errorf("DeviceInfo() = %q, rendered a held device instead of the supplied one", got)
			}
		})
	}
}

func TestProviders_FallbackToHeldDevices(t *testing.T) {
	socket, _ := device.NewSocket("Held socket")
	thermo, _ := device.NewThermometer("Held thermo")
	room, _ := location.NewRoom("Hall")

	got := NewOwning(socket).DeviceInfo(room, nil)
	if !strings.Contains(got, "Held socket") {
		t.Errorf("owning fallback = %q, want held socket", got)
	}

	got = NewBorrowing(socket, thermo).DeviceInfo(room, nil)
	for _, want := range []string{"Held socket", "Held thermo"} {
		if !strings.Contains(got, want) {
			t.Errorf("borrowing fallback = %q, missing %q", got, want)
		}
	}
}

func TestProviders_TypedNilDevice(t *testing.T) {
	socket, _ := device.NewSocket("Held socket")
	thermo, _ := device.NewThermometer("Held thermo")
	room, _ := location.NewRoom("Hall")

	var nilSocket *device.Socket
	var nilThermo *device.Thermometer

	if got := NewOwning(socket).DeviceInfo(room, nilSocket); !strings.Contains(got, "Held socket") {
		t.Errorf("owning with typed nil = %q, want held socket", got)
	}
	if got := NewBorrowing(socket, thermo).DeviceInfo(room, nilThermo); !strings.Contains(got, "Held thermo") {
		t.Errorf("borrowing with typed nil = %q, want held devices", got)
	}
}

func TestNewOwning_NilSocket(t *testing.T) {
	p := NewOwning(nil)
	if p.Socket.Name() != DefaultSocketName {
		t.Errorf("Socket.Name() = %q, want %q", p.Socket.Name(), DefaultSocketName)
	}

	room, _ := location.NewRoom("Hall")
	if got := p.DeviceInfo(room, nil); !strings.Contains(got, DefaultSocketName) {
		t.Errorf("DeviceInfo() = %q, want %q", got, DefaultSocketName)
	}
}

func TestOwningProvider_OwnsACopy(t *testing.T) {
	socket, _ := device.NewSocket("Socket1")
	p := NewOwning(socket)

	socket.Voltage = 230
	if p.Socket.Voltage != 0 {
		t.Error("owning provider should not observe changes to the source socket")
	}
}

func TestBorrowingProvider_SeesCallerChanges(t *testing.T) {
	socket, _ := device.NewSocket("Socket1")
	thermo, _ := device.NewThermometer("Thermo1")
	p := NewBorrowing(socket, thermo)

	thermo.Temperature = 19.5
	room, _ := location.NewRoom("Hall")
	if got := p.DeviceInfo(room, nil); !strings.Contains(got, "temperature=19.5") {
		t.Errorf("DeviceInfo() = %q, want the borrowed thermometer's current reading", got)
	}
}

func TestCreateReport_WithEachKind(t *testing.T) {
	h := kitchenHouse(t)

	for _, kind := range []Kind{KindOwning, KindBorrowing} {
		t.Run(string(kind), func(t *testing.T) {
			p, err := ForKind(kind)
			if err != nil {
				t.Fatalf("ForKind() error: %v", err)
			}

			report := h.CreateReport(p)
			for _, want := range []string{
				"House",
				"Kitchen: " + `Socket "Socket1"`,
				"Hall: " + `Thermometer "Hall thermo"`,
			} {
				if !strings.Contains(report, want) {
					t.Errorf("report missing %q:\n%s", want, report)
				}
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{input: "Owning", want: KindOwning},
		{input: "borrowing", want: KindBorrowing},
		{input: "BORROWING", want: KindBorrowing},
		{input: "Leasing", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownKind) {
					t.Errorf("ParseKind(%q) error = %v, want ErrUnknownKind", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKind(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}

	if _, err := ForKind(Kind("Leasing")); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ForKind(Leasing) error = %v, want ErrUnknownKind", err)
	}
}
