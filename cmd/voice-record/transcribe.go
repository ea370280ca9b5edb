package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/kevinzjpeng/voice-record/internal/config"
	"github.com/kevinzjpeng/voice-record/internal/logger"
	"github.com/kevinzjpeng/voice-record/internal/media"
	"github.com/kevinzjpeng/voice-record/internal/pipeline"
	"github.com/kevinzjpeng/voice-record/internal/transcribe"
	"github.com/kevinzjpeng/voice-record/pkg/executor"
)

func cmdTranscribe(args []string) int {
	fs := flag.NewFlagSet("transcribe", flag.ExitOnError)
	var (
		configPath = fs.String("config", defaultConfigPath, "path to config file")
		language   = fs.String("lang", "", "spoken language code (overrides config)")
		outputDir  = fs.String("out", "", "directory for transcript files (overrides config)")
		backend    = fs.String("backend", "", "transcription backend: whisper or aws (overrides config)")
		fromList   = fs.Bool("list", false, "read input paths from the configured list file")
		copyText   = fs.Bool("copy", false, "copy the transcript text to the clipboard (single input only)")
	)
	fs.Parse(args)

	ctx := context.Background()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "voice-record: %v\n", err)
		return 1
	}

	if *backend != "" {
		cfg.Transcription.Backend = *backend
	}
	if *language != "" {
		if !cfg.RecognizesLanguage(*language) {
			fmt.Fprintf(os.Stderr, "voice-record: unsupported language %q (supported: %s)\n",
				*language, strings.Join(cfg.Transcription.Languages, ", "))
			return 2
		}
		cfg.Transcription.Language = *language
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "voice-record: %v\n", err)
		return 1
	}

	log := logger.New(cfg.Logging.Level)

	explicit := fs.Args()
	if *fromList {
		listed, err := pipeline.ReadInputList(cfg.Paths.ListFile)
		if err != nil {
			log.Error(ctx, "Failed to read list file %s: %v", cfg.Paths.ListFile, err)
			return 1
		}
		explicit = append(explicit, listed...)
	}

	// A single directory argument switches to scan mode over that directory.
	if len(explicit) == 1 {
		if info, err := os.Stat(explicit[0]); err == nil && info.IsDir() {
			cfg.Paths.Audio = explicit[0]
			explicit = nil
		}
	}

	exec := executor.New()
	med := media.New(cfg, exec, log)

	tr, err := buildTranscriber(cfg, exec, med, log)
	if err != nil {
		log.Error(ctx, "%v", err)
		return 1
	}
	p := pipeline.New(cfg, tr, med, log)

	inputs, err := p.DiscoverInputs(ctx, explicit)
	if err != nil {
		log.Error(ctx, "%v", err)
		return 1
	}

	outDir := cfg.Paths.Transcripts
	if *outputDir != "" {
		outDir = *outputDir
	}

	summary, err := p.Run(ctx, inputs, cfg.Transcription.Language, outDir)
	for _, f := range summary.Failures {
		log.Warn(ctx, "Failed: %s (%s)", f.Path, f.Reason)
	}
	if err != nil {
		log.Error(ctx, "%v", err)
		return 1
	}

	if *copyText {
		copyTranscript(ctx, log, summary, inputs, outDir)
	}

	if len(summary.Failures) > 0 {
		return 1
	}
	return 0
}

func buildTranscriber(cfg *config.Config, exec executor.Executor, med media.Media, log logger.Logger) (transcribe.Transcriber, error) {
	switch cfg.Transcription.Backend {
	case config.BackendWhisper:
		return transcribe.NewWhisper(cfg, exec, med, log), nil
	case config.BackendAWS:
		return transcribe.NewAWS(cfg, log), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Transcription.Backend)
	}
}

// copyTranscript puts the transcript body on the clipboard after a
// single-input run. Clipboard trouble is not worth failing the run over.
func copyTranscript(ctx context.Context, log logger.Logger, summary pipeline.RunSummary, inputs []pipeline.AudioInput, outDir string) {
	if len(inputs) != 1 || summary.Succeeded != 1 {
		log.Warn(ctx, "Skipping clipboard copy: needs exactly one successfully transcribed input")
		return
	}

	data, err := os.ReadFile(pipeline.ArtifactPath(outDir, inputs[0].Path))
	if err != nil {
		log.Warn(ctx, "Failed to read transcript for clipboard: %v", err)
		return
	}

	if err := clipboard.WriteAll(transcriptBody(string(data))); err != nil {
		log.Warn(ctx, "Failed to copy to clipboard: %v", err)
		return
	}
	log.Info(ctx, "Transcript copied to clipboard")
}

// transcriptBody extracts the text between the header and segment sections
// of a transcript file.
func transcriptBody(artifact string) string {
	sep := strings.Repeat("=", 60)
	parts := strings.SplitN(artifact, sep, 3)
	if len(parts) < 3 {
		return strings.TrimSpace(artifact)
	}
	return strings.TrimSpace(parts[1])
}
