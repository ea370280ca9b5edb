package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kevinzjpeng/voice-record/internal/logger"
	"github.com/kevinzjpeng/voice-record/internal/render"
)

func cmdRender(args []string) int {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	var (
		configPath = fs.String("config", defaultConfigPath, "path to config file")
		outputDir  = fs.String("out", "", "directory for docx files")
	)
	fs.Parse(args)

	ctx := context.Background()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "voice-record: %v\n", err)
		return 1
	}

	src := cfg.Paths.Summaries
	if fs.NArg() > 0 {
		src = fs.Arg(0)
	}

	log := logger.New(cfg.Logging.Level)
	r := render.New(log)

	info, err := os.Stat(src)
	if err != nil {
		log.Error(ctx, "Cannot read %s: %v", src, err)
		return 1
	}

	if !info.IsDir() {
		outPath := strings.TrimSuffix(src, filepath.Ext(src)) + ".docx"
		if *outputDir != "" {
			outPath = filepath.Join(*outputDir, filepath.Base(outPath))
		}
		if err := r.File(ctx, src, outPath); err != nil {
			log.Error(ctx, "%v", err)
			return 1
		}
		return 0
	}

	outDir := *outputDir
	if outDir == "" {
		outDir = filepath.Join(src, "docx")
	}

	stats, err := r.Dir(ctx, src, outDir)
	if err != nil {
		log.Error(ctx, "%v", err)
		return 1
	}
	if stats.Failed > 0 {
		return 1
	}
	return 0
}
