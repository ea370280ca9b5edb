package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/kevinzjpeng/voice-record/internal/logger"
	"github.com/kevinzjpeng/voice-record/internal/media"
	"github.com/kevinzjpeng/voice-record/internal/pipeline"
	"github.com/kevinzjpeng/voice-record/internal/watcher"
	"github.com/kevinzjpeng/voice-record/pkg/executor"
)

func cmdWatch(args []string) int {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "path to config file")
	fs.Parse(args)

	ctx := context.Background()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "voice-record: %v\n", err)
		return 1
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Voice Record Pipeline v%s", version)
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "CPU Cores: %d", runtime.NumCPU())
	log.Info(ctx, "Backend: %s", cfg.Transcription.Backend)
	log.Info(ctx, "Language: %s", cfg.Transcription.Language)

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		return 1
	}

	exec := executor.New()
	med := media.New(cfg, exec, log)

	tr, err := buildTranscriber(cfg, exec, med, log)
	if err != nil {
		log.Error(ctx, "%v", err)
		return 1
	}
	p := pipeline.New(cfg, tr, med, log)

	// Each new recording runs through the same pipeline as a one-item batch.
	handler := func(ctx context.Context, filePath string) error {
		inputs, err := p.DiscoverInputs(ctx, []string{filePath})
		if err != nil {
			return err
		}

		summary, err := p.Run(ctx, inputs, cfg.Transcription.Language, cfg.Paths.Transcripts)
		if err != nil {
			return err
		}
		if len(summary.Failures) > 0 {
			return fmt.Errorf("transcription failed: %s", summary.Failures[0].Reason)
		}
		return nil
	}

	settle := time.Duration(cfg.Watch.SettleMs) * time.Millisecond
	w, err := watcher.New(cfg.Paths.Audio, handler, log, cfg.Watch.MaxConcurrent, settle)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		return 1
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

	log.Info(ctx, "Monitoring: %s", cfg.Paths.Audio)
	log.Info(ctx, "Transcripts: %s", cfg.Paths.Transcripts)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
		cancel()
		return 1
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Voice Record Pipeline stopped")
	return 0
}
