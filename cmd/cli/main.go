package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/mhofer/farmfinder/internal/client/cli"
	"github.com/mhofer/farmfinder/internal/client/config"
	"github.com/mhofer/farmfinder/internal/logging"
)

func main() {
	// a missing .env is fine
	_ = godotenv.Load()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg, log)
	if err != nil {
		log.Error(context.Background(), "failed to start", "error", err)
		os.Exit(1)
	}

	app.Run(context.Background())
}
