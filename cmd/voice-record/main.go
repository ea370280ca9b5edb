// Command voice-record transcribes audio recordings and turns them into
// searchable notes. It wraps a local whisper.cpp backend and an AWS
// Transcribe backend behind the same pipeline, plus helpers for format
// conversion, summarizing and document export.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/kevinzjpeng/voice-record/internal/config"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "dev"
	commit  = "unknown"
)

const defaultConfigPath = "config.yaml"

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) < 2 {
		usage()
		return 2
	}

	switch os.Args[1] {
	case "transcribe":
		return cmdTranscribe(os.Args[2:])
	case "convert":
		return cmdConvert(os.Args[2:])
	case "watch":
		return cmdWatch(os.Args[2:])
	case "summarize":
		return cmdSummarize(os.Args[2:])
	case "render":
		return cmdRender(os.Args[2:])
	case "version":
		fmt.Printf("voice-record %s (%s)\n", version, commit)
		return 0
	case "help", "-h", "--help":
		usage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "voice-record: unknown command %q\n\n", os.Args[1])
		usage()
		return 2
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `voice-record turns audio recordings into transcripts, summaries and documents.

Usage:
  voice-record <command> [flags] [args]

Commands:
  transcribe   Transcribe audio files, or scan a directory of recordings
  convert      Convert WAV recordings to MP3
  watch        Watch a directory and transcribe new recordings as they land
  summarize    Summarize transcripts with Gemini
  render       Render transcripts and summaries to docx
  version      Print version information
  help         Show this help

Run "voice-record <command> -h" for command flags.
`)
}

// loadConfig reads the YAML config. A missing file at the default location is
// not an error, the built-in defaults apply.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && path == defaultConfigPath {
			cfg = config.Default()
			if err := cfg.Validate(); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, err
	}
	return cfg, nil
}

// ensureDirectories creates the working directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Audio,
		cfg.Paths.Transcripts,
	}
	if cfg.Paths.Temp != "" {
		dirs = append(dirs, cfg.Paths.Temp)
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
