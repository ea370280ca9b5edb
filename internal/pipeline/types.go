package pipeline

import "github.com/kevinzjpeng/voice-record/internal/transcribe"

// AudioInput is a reference to one source recording.
type AudioInput struct {
	Path string
	// DurationHint is the playback length in seconds, 0 when unknown.
	DurationHint float64
}

// Outcome is the terminal state of one transcription attempt.
type Outcome int

const (
	OutcomeSucceeded Outcome = iota
	OutcomeFailed
)

// Transcript is the result of transcribing one AudioInput. Exactly one
// Transcript exists per attempted input, whether the attempt succeeded or not.
type Transcript struct {
	SourcePath    string
	Language      string
	FullText      string
	Segments      []transcribe.Segment
	Outcome       Outcome
	FailureReason string
}

// Failure records one input that could not be transcribed.
type Failure struct {
	Path   string
	Reason string
}

// RunSummary is the aggregate result of a batch.
// Attempted == Succeeded + len(Failures) always holds.
type RunSummary struct {
	Attempted int
	Succeeded int
	Failures  []Failure
}
