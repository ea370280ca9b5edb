package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/kevinzjpeng/voice-record/internal/logger"
	"github.com/kevinzjpeng/voice-record/internal/summarizer"
)

func cmdSummarize(args []string) int {
	fs := flag.NewFlagSet("summarize", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "path to config file")
	fs.Parse(args)

	ctx := context.Background()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "voice-record: %v\n", err)
		return 1
	}

	log := logger.New(cfg.Logging.Level)

	keys := cfg.Summarizer.APIKeys
	if len(keys) == 0 {
		if env := os.Getenv("GEMINI_API_KEY"); env != "" {
			keys = []string{env}
		}
	}
	if len(keys) == 0 {
		log.Error(ctx, "No Gemini API keys configured (set summarizer.api_keys or GEMINI_API_KEY)")
		return 1
	}

	s := summarizer.New(keys, cfg.Summarizer.Model, log)
	if err := s.SummarizeAll(ctx, cfg.Paths.Transcripts, cfg.Paths.Summaries); err != nil {
		log.Error(ctx, "%v", err)
		return 1
	}
	return 0
}
