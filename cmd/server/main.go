package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/ai-transcriber/internal/config"
	"github.com/nguyentantai21042004/ai-transcriber/internal/gemini"
	"github.com/nguyentantai21042004/ai-transcriber/internal/logger"
	"github.com/nguyentantai21042004/ai-transcriber/internal/server"
	"github.com/nguyentantai21042004/ai-transcriber/internal/summarizer"
	"github.com/nguyentantai21042004/ai-transcriber/internal/transcription"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to the YAML config file")
	flag.Parse()

	if err := config.LoadEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logger.NewWithFormat(cfg.Logging.Level, cfg.Logging.Format, os.Stdout)
	log.Info(ctx, "Transcriber proxy starting (model: %s)", cfg.Gemini.Model)
	if cfg.Gemini.APIKey() == "" {
		log.Warn(ctx, "%s is not set; requests will fail until it is", cfg.Gemini.APIKeyEnv)
	}

	provider := gemini.New(cfg.Gemini.APIKey, cfg.Gemini.Model, log)
	srv := server.New(
		cfg.Server,
		transcription.New(provider, log),
		summarizer.New(provider, cfg.Gemini.SummaryTemperature, log),
		log,
	)

	if err := srv.Run(ctx); err != nil {
		log.Error(ctx, "Server error: %v", err)
		os.Exit(1)
	}
	log.Info(ctx, "Transcriber proxy stopped")
}
