// Package report provides the device-info providers used to render a house.
//
// Two providers implement location.DeviceInfoProvider:
//
//   - OwningProvider keeps its own copy of a socket
//   - BorrowingProvider points at a socket and a thermometer owned elsewhere
//
// Both render the device they are handed as "<room>: <device>". The held
// devices are only used when no device is supplied.
//
//	provider, _ := report.ForKind(report.KindBorrowing)
//	fmt.Print(house.CreateReport(provider))
package report
