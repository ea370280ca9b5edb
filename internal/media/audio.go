package media

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// ExtractWAV converts a recording to 16-bit mono WAV in destDir and returns
// the new path. The sample rate comes from ffmpeg.sample_rate; 16kHz is what
// whisper expects.
func (m *implMedia) ExtractWAV(ctx context.Context, srcPath, destDir string) (string, error) {
	base := filepath.Base(srcPath)
	wavPath := filepath.Join(destDir, strings.TrimSuffix(base, filepath.Ext(base))+".wav")

	m.logger.Debug(ctx, "Extracting WAV: %s -> %s", srcPath, wavPath)

	// FFmpeg arguments for audio extraction
	// -vn: drop any non-audio stream
	// -ar: sample rate
	// -ac 1: mono channel
	// -c:a pcm_s16le: PCM 16-bit little-endian (uncompressed)
	// -threads 0: use all available CPU threads
	// -y: overwrite output file if exists
	args := []string{
		"-i", srcPath,
		"-vn",
		"-ar", strconv.Itoa(m.cfg.FFmpeg.SampleRate),
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		wavPath,
	}

	if _, err := m.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract wav: %w", err)
	}

	return wavPath, nil
}
