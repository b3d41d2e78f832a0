// Package logging provides structured logging for SmartHouse.
//
// It wraps the standard log/slog package:
//
//   - JSON output for production, text output for development
//   - service and version fields on every entry
//   - level filtering (debug, info, warn, error)
//
// Configuration comes from the logging section of config.yaml:
//
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "json"     # json, text
//	  output: "stdout"   # stdout, stderr, discard
//
// Usage:
//
//	logger := logging.New(cfg.Logging, "1.0.0")
//	logger.Info("room created", "room", name)
package logging
