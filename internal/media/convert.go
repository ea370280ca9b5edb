package media

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// EnsureFFmpeg verifies the ffmpeg binary is available on PATH.
func (m *implMedia) EnsureFFmpeg(ctx context.Context) error {
	if _, err := m.executor.Execute(ctx, "ffmpeg", "-version"); err != nil {
		return fmt.Errorf("ffmpeg not found, install it first: %w", err)
	}
	return nil
}

// ConvertToMP3 re-encodes a WAV file as MP3 next to the source and removes
// the original unless ffmpeg.keep_original is set.
func (m *implMedia) ConvertToMP3(ctx context.Context, wavPath string) (string, error) {
	outPath := mp3Path(wavPath)

	args := []string{
		"-i", wavPath,
		"-codec:a", "libmp3lame",
		"-b:a", m.cfg.FFmpeg.AudioBitrate,
		"-y",
		outPath,
	}

	if _, err := m.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", fmt.Errorf("ffmpeg convert: %w", err)
	}

	if !m.cfg.FFmpeg.KeepOriginal {
		if err := os.Remove(wavPath); err != nil {
			m.logger.Warn(ctx, "Converted but could not delete original %s: %v", wavPath, err)
		}
	}

	return outPath, nil
}

// ConvertAll converts every WAV file under root to MP3.
// One bad file does not stop the batch.
func (m *implMedia) ConvertAll(ctx context.Context, root string) (ConvertStats, error) {
	var stats ConvertStats

	wavs, err := FindWAVs(root)
	if err != nil {
		return stats, fmt.Errorf("find WAV files: %w", err)
	}

	if len(wavs) == 0 {
		m.logger.Info(ctx, "No WAV files found in %s", root)
		return stats, nil
	}

	m.logger.Info(ctx, "Found %d WAV file(s) to convert", len(wavs))

	for i, wav := range wavs {
		m.logger.Info(ctx, "[%d/%d] Converting: %s", i+1, len(wavs), wav)

		mp3, err := m.ConvertToMP3(ctx, wav)
		if err != nil {
			m.logger.Error(ctx, "Failed to convert %s: %v", wav, err)
			stats.Failed++
			continue
		}

		m.logger.Info(ctx, "Converted: %s", mp3)
		stats.Converted++
	}

	m.logger.Info(ctx, "Conversion complete: %d converted, %d failed", stats.Converted, stats.Failed)
	return stats, nil
}

// FindWAVs returns every .wav file under root, sorted for stable ordering.
func FindWAVs(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.ToLower(filepath.Ext(path)) == ".wav" {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// mp3Path swaps the file extension for .mp3.
func mp3Path(wavPath string) string {
	return strings.TrimSuffix(wavPath, filepath.Ext(wavPath)) + ".mp3"
}
