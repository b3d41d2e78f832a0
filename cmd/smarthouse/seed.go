package main

import (
	"fmt"

	"github.com/nerrad567/smarthouse-core/internal/device"
	"github.com/nerrad567/smarthouse-core/internal/infrastructure/config"
	"github.com/nerrad567/smarthouse-core/internal/location"
)

// seedHouse builds the startup house from configuration.
func seedHouse(cfg config.HouseConfig) (*location.House, error) {
	house, err := location.NewHouse(cfg.Name)
	if err != nil {
		return nil, err
	}

	for _, rc := range cfg.Rooms {
		room, err := location.NewRoom(rc.Name)
		if err != nil {
			return nil, err
		}

		for _, dc := range rc.Devices {
			dev, err := seedDevice(dc)
			if err != nil {
				return nil, fmt.Errorf("room %q: %w", rc.Name, err)
			}
			if err := room.AddDevice(dev); err != nil {
				return nil, fmt.Errorf("room %q: %w", rc.Name, err)
			}
		}

		if err := house.AddRoom(room); err != nil {
			return nil, err
		}
	}

	return house, nil
}

// seedDevice creates a device and applies its configured readings.
func seedDevice(dc config.DeviceConfig) (device.Device, error) {
	t, err := device.ParseType(dc.Type)
	if err != nil {
		return nil, err
	}
	dev, err := device.New(t, dc.Name)
	if err != nil {
		return nil, err
	}

	switch d := dev.(type) {
	case *device.Socket:
		d.Status = dc.Status
		d.Voltage = dc.Voltage
	case *device.Thermometer:
		d.Status = dc.Status
		d.Temperature = dc.Temperature
	}
	return dev, nil
}
