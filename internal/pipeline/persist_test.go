package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kevinzjpeng/voice-record/internal/config"
	"github.com/kevinzjpeng/voice-record/internal/logger"
	"github.com/kevinzjpeng/voice-record/internal/transcribe"
)

func newPersistPipeline(t *testing.T) Pipeline {
	t.Helper()
	return New(config.Default(), &fakeTranscriber{}, nil, logger.New("error"))
}

func TestPersistArtifactLayout(t *testing.T) {
	out := t.TempDir()
	p := newPersistPipeline(t)

	tr := Transcript{
		SourcePath: filepath.Join("voice-record", "2024", "rec001.mp3"),
		Language:   "yue",
		FullText:   "First sentence. Second sentence.",
		Segments: []transcribe.Segment{
			{Start: 0, End: 1.5, Text: "First sentence."},
			{Start: 1.5, End: 3.0, Text: "Second sentence."},
		},
		Outcome: OutcomeSucceeded,
	}

	path, err := p.Persist(tr, out)
	if err != nil {
		t.Fatalf("Persist() error = %v", err)
	}
	if path != filepath.Join(out, "rec001.txt") {
		t.Errorf("path = %s, want %s", path, filepath.Join(out, "rec001.txt"))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	sep := strings.Repeat("=", 60)
	want := "Transcript of: rec001.mp3\n" +
		"Language: Cantonese\n" +
		sep + "\n\n" +
		"First sentence. Second sentence.\n\n" +
		sep + "\n" +
		"Detailed segments:\n\n" +
		"[00:00:00 -> 00:00:01] First sentence.\n" +
		"[00:00:01 -> 00:00:03] Second sentence.\n"

	if string(data) != want {
		t.Errorf("artifact mismatch\ngot:\n%s\nwant:\n%s", data, want)
	}
}

func TestPersistFailedTranscript(t *testing.T) {
	out := t.TempDir()
	p := newPersistPipeline(t)

	tr := Transcript{
		SourcePath:    "broken.wav",
		Language:      "en",
		Outcome:       OutcomeFailed,
		FailureReason: "corrupt audio",
	}

	path, err := p.Persist(tr, out)
	if err != nil {
		t.Fatalf("Persist() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)

	if !strings.Contains(text, "Transcription failed: corrupt audio") {
		t.Errorf("artifact missing failure reason:\n%s", text)
	}
	if !strings.HasSuffix(text, "Detailed segments:\n\n") {
		t.Errorf("failed artifact should end with an empty segment section:\n%q", text)
	}
}

func TestPersistOverwrites(t *testing.T) {
	out := t.TempDir()
	p := newPersistPipeline(t)

	tr := Transcript{SourcePath: "rec.mp3", Language: "en", FullText: "take one", Outcome: OutcomeSucceeded}
	if _, err := p.Persist(tr, out); err != nil {
		t.Fatal(err)
	}

	tr.FullText = "take two"
	path, err := p.Persist(tr, out)
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "take two") || strings.Contains(string(data), "take one") {
		t.Errorf("artifact was not overwritten:\n%s", data)
	}
}

func TestPersistCreatesNestedOutputDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "deep", "nested", "transcripts")
	p := newPersistPipeline(t)

	tr := Transcript{SourcePath: "rec.mp3", Language: "en", FullText: "hello", Outcome: OutcomeSucceeded}
	if _, err := p.Persist(tr, out); err != nil {
		t.Fatalf("Persist() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "rec.txt")); err != nil {
		t.Errorf("artifact not written: %v", err)
	}
}

func TestArtifactPath(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"rec001.mp3", "rec001.txt"},
		{filepath.Join("a", "b", "meeting.m4a"), "meeting.txt"},
		{"noext", "noext.txt"},
		{"dotted.name.wav", "dotted.name.txt"},
	}
	for _, tt := range tests {
		got := ArtifactPath("out", tt.source)
		if got != filepath.Join("out", tt.want) {
			t.Errorf("ArtifactPath(out, %s) = %s, want %s", tt.source, got, filepath.Join("out", tt.want))
		}
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00"},
		{1.5, "00:00:01"},
		{59.999, "00:00:59"},
		{61, "00:01:01"},
		{3599, "00:59:59"},
		{3661.9, "01:01:01"},
		{86399, "23:59:59"},
	}
	for _, tt := range tests {
		if got := formatTimestamp(tt.seconds); got != tt.want {
			t.Errorf("formatTimestamp(%v) = %s, want %s", tt.seconds, got, tt.want)
		}
	}
}

func TestLanguageLabel(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"en", "English"},
		{"yue", "Cantonese"},
		{"zh", "Mandarin"},
		{"xx", "xx"},
	}
	for _, tt := range tests {
		if got := languageLabel(tt.code); got != tt.want {
			t.Errorf("languageLabel(%s) = %s, want %s", tt.code, got, tt.want)
		}
	}
}
