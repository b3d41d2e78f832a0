package device

import "fmt"

// Thermometer is a smart temperature sensor.
type Thermometer struct {
	name        string
	Status      bool
	Temperature float32
}

// NewThermometer creates a thermometer that is switched off and reads 0 °C.
func NewThermometer(name string) (*Thermometer, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	return &Thermometer{name: name}, nil
}

// Name implements Device.
func (t *Thermometer) Name() string { return t.name }

// Type implements Device.
func (t *Thermometer) Type() Type { return TypeThermometer }

// String implements Device.
func (t *Thermometer) String() string {
	return fmt.Sprintf("Thermometer %q: status=%s, temperature=%.1f °C", t.name, statusText(t.Status), t.Temperature)
}

// Clone implements Device.
func (t *Thermometer) Clone() Device {
	cpy := *t
	return &cpy
}
