package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"dayflow/internal/platform/config"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		slog.Error("create data directory failed", "dir", cfg.DataDir, "err", err)
		os.Exit(1)
	}

	if err := newRootCmd(newApp(cfg)).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
