package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/kevinzjpeng/voice-record/internal/logger"
	"github.com/kevinzjpeng/voice-record/internal/media"
	"github.com/kevinzjpeng/voice-record/pkg/executor"
)

func cmdConvert(args []string) int {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "path to config file")
	fs.Parse(args)

	ctx := context.Background()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "voice-record: %v\n", err)
		return 1
	}

	root := cfg.Paths.Audio
	if fs.NArg() > 0 {
		root = fs.Arg(0)
	}

	log := logger.New(cfg.Logging.Level)
	med := media.New(cfg, executor.New(), log)

	if err := med.EnsureFFmpeg(ctx); err != nil {
		log.Error(ctx, "%v", err)
		return 1
	}

	stats, err := med.ConvertAll(ctx, root)
	if err != nil {
		log.Error(ctx, "%v", err)
		return 1
	}
	if stats.Failed > 0 {
		return 1
	}
	return 0
}
