package transcribe

import "context"

// Segment is a timed span of recognized speech.
type Segment struct {
	Start float64
	End   float64
	Text  string
}

// Result is the raw output of a transcription backend.
type Result struct {
	Text     string
	Segments []Segment
}

// Transcriber defines the interface for speech-to-text backends
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, language string) (Result, error)
}
