package transcribe

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kevinzjpeng/voice-record/internal/config"
	"github.com/kevinzjpeng/voice-record/internal/logger"
	"github.com/kevinzjpeng/voice-record/internal/media"
	"github.com/kevinzjpeng/voice-record/pkg/executor"
)

type implWhisper struct {
	cfg      *config.Config
	executor executor.Executor
	media    media.Media
	logger   logger.Logger
}

// NewWhisper creates a Transcriber backed by a local whisper.cpp binary.
func NewWhisper(cfg *config.Config, exec executor.Executor, med media.Media, log logger.Logger) Transcriber {
	return &implWhisper{
		cfg:      cfg,
		executor: exec,
		media:    med,
		logger:   log,
	}
}

// Transcribe converts the recording to 16kHz mono WAV, runs whisper.cpp on it
// and parses the JSON output. Scratch files are removed before returning.
func (w *implWhisper) Transcribe(ctx context.Context, audioPath, language string) (Result, error) {
	tempDir, err := os.MkdirTemp(w.cfg.Paths.Temp, "transcribe-*")
	if err != nil {
		return Result{}, fmt.Errorf("create temp dir: %w", err)
	}
	defer w.cleanupTempDir(ctx, tempDir)

	wavPath, err := w.media.ExtractWAV(ctx, audioPath, tempDir)
	if err != nil {
		return Result{}, fmt.Errorf("extract WAV: %w", err)
	}

	outputPrefix := strings.TrimSuffix(wavPath, filepath.Ext(wavPath))

	w.logger.Info(ctx, "Running whisper (%d threads, language: %s): %s",
		w.cfg.Whisper.Threads, language, audioPath)

	// Whisper arguments
	// -m: model path
	// -f: input audio file
	// -oj: output JSON with per-segment offsets
	// -l: force language (prevents hallucination)
	// -t: number of threads
	// -ml: max segment length (0 = no limit)
	// -mc: max context (0 = no limit)
	// -bo: best of 5 for better accuracy
	// --output-file: output file prefix
	args := []string{
		"-m", w.cfg.Whisper.ModelPath,
		"-f", wavPath,
		"-oj",
		"-l", language,
		"-t", strconv.Itoa(w.cfg.Whisper.Threads),
		"-ml", "0",
		"-mc", "0",
		"-bo", "5",
	}
	if w.cfg.Whisper.Prompt != "" {
		args = append(args, "--prompt", w.cfg.Whisper.Prompt)
	}
	args = append(args, "--output-file", outputPrefix)

	if _, err := w.executor.Execute(ctx, w.cfg.Whisper.BinaryPath, args...); err != nil {
		return Result{}, fmt.Errorf("whisper transcribe: %w", err)
	}

	data, err := os.ReadFile(outputPrefix + ".json")
	if err != nil {
		return Result{}, fmt.Errorf("read whisper output: %w", err)
	}

	return ParseWhisperOutput(data)
}

// cleanupTempDir removes the scratch directory, logs a warning if it fails.
func (w *implWhisper) cleanupTempDir(ctx context.Context, dir string) {
	if err := os.RemoveAll(dir); err != nil {
		w.logger.Warn(ctx, "Failed to cleanup temp dir %s: %v", dir, err)
	} else {
		w.logger.Debug(ctx, "Cleaned up temp dir: %s", dir)
	}
}

// whisperOutput mirrors the JSON whisper.cpp emits with -oj.
type whisperOutput struct {
	Transcription []struct {
		Offsets struct {
			From int64 `json:"from"`
			To   int64 `json:"to"`
		} `json:"offsets"`
		Text string `json:"text"`
	} `json:"transcription"`
}

// ParseWhisperOutput decodes whisper.cpp JSON output into a Result.
// Exported so tests can run without the whisper binary.
func ParseWhisperOutput(data []byte) (Result, error) {
	var out whisperOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return Result{}, fmt.Errorf("parse whisper JSON: %w", err)
	}

	var full strings.Builder
	var segments []Segment
	for _, seg := range out.Transcription {
		full.WriteString(seg.Text)

		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		segments = append(segments, Segment{
			Start: float64(seg.Offsets.From) / 1000,
			End:   float64(seg.Offsets.To) / 1000,
			Text:  text,
		})
	}

	return Result{
		Text:     strings.TrimSpace(full.String()),
		Segments: segments,
	}, nil
}
