// SmartHouse Core
//
// This is the main entry point for the SmartHouse application. It models a
// house made of rooms holding sockets and thermometers and serves it over a
// small REST API.
//
// Usage:
//
//	smarthouse                      serve the REST API
//	smarthouse report [owning|borrowing]
//	                                print house reports and exit
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/nerrad567/smarthouse-core/internal/api"
	"github.com/nerrad567/smarthouse-core/internal/infrastructure/config"
	"github.com/nerrad567/smarthouse-core/internal/infrastructure/logging"
	"github.com/nerrad567/smarthouse-core/internal/location"
	"github.com/nerrad567/smarthouse-core/internal/report"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Cancel on Ctrl+C or SIGTERM for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
// Reports are written to out; everything else goes to the logger.
func run(ctx context.Context, args []string, out io.Writer) error {
	reportMode := len(args) > 0 && args[0] == "report"

	// Use default logger until config is loaded
	log := logging.Default(logOutput("stdout", reportMode))
	log.Info("starting SmartHouse",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	cfg.Logging.Output = logOutput(cfg.Logging.Output, reportMode)
	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	house, err := seedHouse(cfg.House)
	if err != nil {
		return fmt.Errorf("seeding house: %w", err)
	}
	log.Info("house ready", "name", house.Name(), "rooms", len(house.Rooms()))

	if len(args) > 0 {
		switch args[0] {
		case "report":
			return printReports(out, house, args[1:])
		default:
			return fmt.Errorf("unknown command %q", args[0])
		}
	}

	server, err := api.New(api.Deps{
		Config:  cfg.API,
		Logger:  log.With("component", "api"),
		House:   house,
		Version: version,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}
	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("starting API server: %w", err)
	}
	defer func() {
		if closeErr := server.Close(); closeErr != nil {
			log.Error("error closing API server", "error", closeErr)
		}
	}()

	if err := server.HealthCheck(ctx); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	log.Info("all health checks passed")

	log.Info("initialisation complete, waiting for shutdown signal")

	<-ctx.Done()

	log.Info("shutdown signal received, cleaning up")
	log.Info("SmartHouse stopped")
	return nil
}

// logOutput returns where logs go. The report command owns stdout, so its
// logs move to stderr unless they are discarded.
func logOutput(configured string, reportMode bool) string {
	if reportMode && !strings.EqualFold(configured, "discard") {
		return "stderr"
	}
	return configured
}

// getConfigPath returns the configuration file path.
// Uses SMARTHOUSE_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("SMARTHOUSE_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}

// printReports writes one report per named provider kind.
// With no names, both the owning and borrowing reports are printed.
func printReports(out io.Writer, house *location.House, names []string) error {
	kinds := []report.Kind{report.KindOwning, report.KindBorrowing}
	if len(names) > 0 {
		kinds = kinds[:0]
		for _, name := range names {
			kind, err := report.ParseKind(name)
			if err != nil {
				return err
			}
			kinds = append(kinds, kind)
		}
	}

	for _, kind := range kinds {
		provider, err := report.ForKind(kind)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(out, "Report (%s):\n%s\n", kind, house.CreateReport(provider)); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}
	return nil
}
