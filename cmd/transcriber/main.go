package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/nguyentantai21042004/ai-transcriber/internal/apiclient"
	"github.com/nguyentantai21042004/ai-transcriber/internal/config"
	"github.com/nguyentantai21042004/ai-transcriber/internal/logger"
	"github.com/nguyentantai21042004/ai-transcriber/internal/processor"
	"github.com/nguyentantai21042004/ai-transcriber/internal/watcher"
	"github.com/nguyentantai21042004/ai-transcriber/pkg/executor"
)

// speakerFlags collects repeated -speaker LABEL=Name values.
type speakerFlags map[string]string

func (s speakerFlags) String() string {
	pairs := make([]string, 0, len(s))
	for label, name := range s {
		pairs = append(pairs, label+"="+name)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ",")
}

func (s speakerFlags) Set(v string) error {
	label, name, ok := strings.Cut(v, "=")
	label = strings.TrimSpace(label)
	if !ok || label == "" {
		return fmt.Errorf("expected LABEL=Name, got %q", v)
	}
	s[label] = strings.TrimSpace(name)
	return nil
}

func main() {
	speakers := speakerFlags{}
	configPath := flag.String("config", "config.yaml", "Path to the YAML config file")
	watch := flag.Bool("watch", false, "Watch the input folder and process new files as they arrive")
	flag.Var(speakers, "speaker", "Speaker name as LABEL=Name, e.g. SPEAKER_00=Alice (repeatable)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [files...]\n", os.Args[0])
		flag.PrintDefaults()
	}
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
	if len(speakers) > 0 {
		if cfg.Watch.Speakers == nil {
			cfg.Watch.Speakers = map[string]string{}
		}
		for label, name := range speakers {
			cfg.Watch.Speakers[label] = name
		}
	}

	files := flag.Args()
	if !*watch && len(files) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logger.NewWithFormat(cfg.Logging.Level, cfg.Logging.Format, os.Stdout)
	log.Info(ctx, "Using transcription server at %s", cfg.Client.BaseURL)

	api := apiclient.New(cfg.Client.BaseURL, log)
	exec := executor.New()

	if *watch {
		if err := runWatch(ctx, cfg, api, exec, log); err != nil {
			log.Error(ctx, "Watcher error: %v", err)
			os.Exit(1)
		}
		return
	}

	proc := processor.New(cfg, api, exec, log, false)
	failed := 0
	for _, f := range files {
		if err := proc.Process(ctx, f); err != nil {
			log.Error(ctx, "Failed to process %s: %v", f, err)
			failed++
		}
		if ctx.Err() != nil {
			break
		}
	}
	if failed > 0 {
		log.Error(ctx, "%d of %d files failed", failed, len(files))
		os.Exit(1)
	}
}

func runWatch(ctx context.Context, cfg *config.Config, api apiclient.API, exec executor.Executor, log logger.Logger) error {
	if err := ensureDirectories(cfg); err != nil {
		return err
	}

	proc := processor.New(cfg, api, exec, log, true)
	w, err := watcher.New(cfg.Paths.Input, proc.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		return err
	}
	defer w.Stop()

	log.Info(ctx, "Watching %s, writing to %s. Press Ctrl+C to stop", cfg.Paths.Input, cfg.Paths.Output)

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info(ctx, "Watcher stopped")
	return nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
