package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/stylepipe/stylepipe/internal/config"
	"github.com/stylepipe/stylepipe/internal/dataset"
	"github.com/stylepipe/stylepipe/internal/extractor"
	"github.com/stylepipe/stylepipe/internal/logger"
	"github.com/stylepipe/stylepipe/internal/pipeline"
	"github.com/stylepipe/stylepipe/internal/report"
	"github.com/stylepipe/stylepipe/internal/transcript"
	"github.com/stylepipe/stylepipe/internal/watcher"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "Path to config file")
		watchMode  = flag.Bool("watch", false, "Keep running and rebuild datasets when new transcripts arrive")
	)
	flag.Parse()

	ctx := context.Background()

	// Credentials live in .env or the environment, never in config.yaml
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "No .env file found, using environment as-is")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Transcript Style Dataset Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Provider: %s (%s)", cfg.API.Provider, cfg.API.Model)
	log.Info(ctx, "Transcripts: %s", cfg.Paths.Transcripts)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)

	backend, err := buildBackend(cfg)
	if err != nil {
		log.Error(ctx, "%v", err)
		os.Exit(1)
	}

	policy := extractor.RetryPolicy{
		MaxAttempts: cfg.API.MaxRetries,
		Delay:       time.Duration(cfg.API.RetryDelay) * time.Second,
		Retryable:   extractor.IsRetryable,
	}

	ext := extractor.New(backend, policy, cfg.API.Temperature, log)

	var rep report.Writer
	if cfg.Reports.Enabled {
		rep = report.New(log)
	}

	p := pipeline.New(cfg, transcript.New(log), ext, dataset.NewWriter(log), rep, log)

	if err := p.Run(ctx); err != nil {
		log.Error(ctx, "Processing failed: %v", err)
		os.Exit(1)
	}

	if !*watchMode {
		return
	}

	runWatcher(ctx, cfg, p, log)
}

// buildBackend wires the configured provider, checking its credential.
func buildBackend(cfg *config.Config) (extractor.Backend, error) {
	switch cfg.API.Provider {
	case "xai":
		if cfg.API.XAIKey == "" {
			return nil, fmt.Errorf("XAI_API_KEY is required for the xai provider")
		}
		return extractor.NewXAIBackend(cfg.API.XAIKey, cfg.API.BaseURL, cfg.API.Model), nil
	case "gemini":
		if cfg.API.GeminiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for the gemini provider")
		}
		return extractor.NewGeminiBackend(cfg.API.GeminiKey, cfg.API.Model), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.API.Provider)
	}
}

// runWatcher keeps the process alive, rebuilding both datasets
// whenever a new transcript lands in the input directory.
func runWatcher(ctx context.Context, cfg *config.Config, p pipeline.Pipeline, log logger.Logger) {
	rebuild := func(ctx context.Context, filePath string) error {
		log.Info(ctx, "Rebuilding datasets (trigger: %s)", filePath)
		return p.Run(ctx)
	}

	w, err := watcher.New(cfg.Paths.Transcripts, rebuild, log)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Watch mode on. Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	cancel()
	log.Info(ctx, "Pipeline stopped")
}
