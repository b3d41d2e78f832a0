// Package location provides the house and room hierarchy.
//
// A House owns Rooms keyed by name, and each Room owns Devices keyed by
// name. Adding an entry with a name that already exists replaces the old
// entry. Removing a room drops every device it holds.
//
// Reports are assembled by walking House → Room → Device and asking a
// DeviceInfoProvider to render each (room, device) pair. Rooms and devices
// are visited in name order so the same house always yields the same report.
//
// # Thread Safety
//
// House and Room carry no locks. The REST layer serialises access with a
// single mutex around the shared house.
package location
