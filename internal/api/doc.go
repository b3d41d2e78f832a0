// Package api implements the HTTP REST API for SmartHouse.
//
// This package provides:
//   - REST endpoints for the house, its rooms, and their devices
//   - Report rendering with either device-info provider
//   - Middleware stack (request ID, logging, recovery, CORS, body limit)
//
// # Concurrency
//
// The server owns one *location.House. Every handler holds a single mutex
// for its whole read/mutate/respond cycle, so requests are serialised.
//
// # Errors
//
// Error responses carry a JSON body with a kind and a message. Lookups that
// miss map to 404 with kind NotFound; every other failure maps to 500 with
// kind InternalError.
package api
