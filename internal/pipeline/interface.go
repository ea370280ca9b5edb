package pipeline

import "context"

// DurationProber reports a recording's playback length in seconds.
type DurationProber interface {
	Duration(ctx context.Context, path string) (float64, error)
}

// Pipeline defines the interface for batch transcription runs
type Pipeline interface {
	DiscoverInputs(ctx context.Context, explicit []string) ([]AudioInput, error)
	TranscribeOne(ctx context.Context, in AudioInput, language string) Transcript
	Persist(tr Transcript, outputDir string) (string, error)
	Run(ctx context.Context, inputs []AudioInput, language, outputDir string) (RunSummary, error)
}
