package media

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// probeOutput mirrors the ffprobe -show_format JSON.
type probeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// Duration returns the playback length of an audio file in seconds.
func (m *implMedia) Duration(ctx context.Context, path string) (float64, error) {
	out, err := m.executor.Execute(ctx, "ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		path,
	)
	if err != nil {
		return 0, fmt.Errorf("ffprobe: %w", err)
	}

	return ParseDuration([]byte(out))
}

// ParseDuration extracts the duration from ffprobe JSON output.
// Exported so tests can run without the ffprobe binary.
func ParseDuration(data []byte) (float64, error) {
	var out probeOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return 0, fmt.Errorf("parse ffprobe output: %w", err)
	}
	if out.Format.Duration == "" {
		return 0, fmt.Errorf("ffprobe output has no duration")
	}

	d, err := strconv.ParseFloat(out.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", out.Format.Duration, err)
	}

	return d, nil
}
