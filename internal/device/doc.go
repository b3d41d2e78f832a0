// Package device provides the smart devices that live inside a room.
//
// A device is a tagged variant over two concrete kinds:
//
//   - Socket: a switchable power outlet with a status flag and voltage reading
//   - Thermometer: a temperature sensor with a status flag and temperature reading
//
// Both implement the Device interface. Identity is the device name, which must
// be non-empty; rooms key their devices by it.
//
// # Usage
//
//	socket, err := device.NewSocket("Socket1")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(socket) // Socket "Socket1": status=off, voltage=0.0 V
//
//	// From a REST payload
//	t, _ := device.ParseType("Thermo")
//	dev, err := device.New(t, "Hall thermo")
//
// Status, voltage and temperature are display fields. Nothing in the system
// drives them; they are set at construction or when seeding from config.
//
// # Thread Safety
//
// Devices are plain values with no internal locking. Callers sharing a device
// between goroutines must synchronise access themselves.
package device
