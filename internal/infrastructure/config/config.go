package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nerrad567/smarthouse-core/internal/device"
)

// Config is the root configuration structure for SmartHouse.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	House   HouseConfig   `yaml:"house"`
	API     APIConfig     `yaml:"api"`
	Logging LoggingConfig `yaml:"logging"`
}

// HouseConfig describes the house created at startup.
type HouseConfig struct {
	Name  string       `yaml:"name"`
	Rooms []RoomConfig `yaml:"rooms"`
}

// RoomConfig is a room to create at startup.
type RoomConfig struct {
	Name    string         `yaml:"name"`
	Devices []DeviceConfig `yaml:"devices"`
}

// DeviceConfig is a device to place in a seeded room.
// Voltage applies to sockets and Temperature to thermometers.
type DeviceConfig struct {
	Name        string  `yaml:"name"`
	Type        string  `yaml:"type"`
	Status      bool    `yaml:"status"`
	Voltage     float32 `yaml:"voltage"`
	Temperature float32 `yaml:"temperature"`
}

// APIConfig contains HTTP API server settings.
type APIConfig struct {
	Host     string           `yaml:"host"`
	Port     int              `yaml:"port"`
	Timeouts APITimeoutConfig `yaml:"timeouts"`
	CORS     CORSConfig       `yaml:"cors"`
}

// APITimeoutConfig contains HTTP timeout settings in seconds.
type APITimeoutConfig struct {
	Read  int `yaml:"read"`
	Write int `yaml:"write"`
	Idle  int `yaml:"idle"`
}

// CORSConfig contains Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
	AllowedMethods []string `yaml:"allowed_methods"`
	AllowedHeaders []string `yaml:"allowed_headers"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load reads configuration from a YAML file and applies environment variable overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: SMARTHOUSE_SECTION_KEY
// For example: SMARTHOUSE_HOUSE_NAME, SMARTHOUSE_API_PORT
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("applying environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with sensible defaults.
func defaultConfig() *Config {
	return &Config{
		House: HouseConfig{
			Name: "My house",
		},
		API: APIConfig{
			Host: "127.0.0.1",
			Port: 8080,
			Timeouts: APITimeoutConfig{
				Read:  30,
				Write: 30,
				Idle:  60,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("SMARTHOUSE_HOUSE_NAME"); v != "" {
		cfg.House.Name = v
	}

	// API
	if v := os.Getenv("SMARTHOUSE_API_HOST"); v != "" {
		cfg.API.Host = v
	}
	if v := os.Getenv("SMARTHOUSE_API_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SMARTHOUSE_API_PORT: %w", err)
		}
		cfg.API.Port = port
	}

	// Logging
	if v := os.Getenv("SMARTHOUSE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SMARTHOUSE_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	return nil
}

// deviceTypeNames lists the device types accepted in the seed, for error messages.
func deviceTypeNames() string {
	types := device.AllTypes()
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

// Validate checks the configuration for errors.
// Every problem is reported, not just the first.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.House.Name) == "" {
		errs = append(errs, "house.name is required")
	}

	seen := make(map[string]struct{}, len(c.House.Rooms))
	for i, room := range c.House.Rooms {
		if strings.TrimSpace(room.Name) == "" {
			errs = append(errs, fmt.Sprintf("house.rooms[%d].name is required", i))
			continue
		}
		if _, dup := seen[room.Name]; dup {
			errs = append(errs, fmt.Sprintf("house.rooms[%d]: duplicate room %q", i, room.Name))
		}
		seen[room.Name] = struct{}{}

		for j, dev := range room.Devices {
			if strings.TrimSpace(dev.Name) == "" {
				errs = append(errs, fmt.Sprintf("house.rooms[%d].devices[%d].name is required", i, j))
			}
			if _, err := device.ParseType(dev.Type); err != nil {
				errs = append(errs, fmt.Sprintf("house.rooms[%d].devices[%d].type %q must be one of %s", i, j, dev.Type, deviceTypeNames()))
			}
		}
	}

	if c.API.Port < 1 || c.API.Port > 65535 {
		errs = append(errs, "api.port must be between 1 and 65535")
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "text":
	default:
		errs = append(errs, "logging.format must be json or text")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// ReadTimeout returns the read timeout as a Duration.
func (c APIConfig) ReadTimeout() time.Duration {
	return time.Duration(c.Timeouts.Read) * time.Second
}

// WriteTimeout returns the write timeout as a Duration.
func (c APIConfig) WriteTimeout() time.Duration {
	return time.Duration(c.Timeouts.Write) * time.Second
}

// IdleTimeout returns the idle timeout as a Duration.
func (c APIConfig) IdleTimeout() time.Duration {
	return time.Duration(c.Timeouts.Idle) * time.Second
}
