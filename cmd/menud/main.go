package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Version information, set at build time via -ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "Path to config file")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("menud %s (built %s)\n", Version, BuildTime)
		return ExitSuccess
	}

	// A .env file supplies environment variables for local development.
	// Missing files are fine; the real environment always wins.
	_ = godotenv.Load()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return ExitConfigError
	}

	logger := SetupLogger(cfg)
	logger.Info("starting menud",
		"version", Version,
		"build_time", BuildTime,
		"address", cfg.Server.Address(),
	)

	server, err := NewServer(cfg, logger)
	if err != nil {
		var serverErr *ServerError
		if errors.As(err, &serverErr) {
			logger.Error("failed to create server",
				"operation", serverErr.Op,
				"error", serverErr.Err,
			)
			return serverErr.ExitCode
		}
		logger.Error("failed to create server", "error", err)
		return ExitStoreError
	}

	if err := server.Start(context.Background()); err != nil {
		var serverErr *ServerError
		if errors.As(err, &serverErr) {
			logger.Error("server error",
				"operation", serverErr.Op,
				"error", serverErr.Err,
			)
			return serverErr.ExitCode
		}
		logger.Error("server error", "error", err)
		return ExitHTTPServerError
	}

	logger.Info("menud stopped")
	return ExitSuccess
}
