package media

import "context"

// ConvertStats reports the outcome of a batch conversion.
type ConvertStats struct {
	Converted int
	Failed    int
}

// Media defines the interface for ffmpeg-based audio operations
type Media interface {
	EnsureFFmpeg(ctx context.Context) error
	ExtractWAV(ctx context.Context, srcPath, destDir string) (string, error)
	ConvertToMP3(ctx context.Context, wavPath string) (string, error)
	ConvertAll(ctx context.Context, root string) (ConvertStats, error)
	Duration(ctx context.Context, path string) (float64, error)
}
