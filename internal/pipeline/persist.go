package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const separator = "============================================================"

// languageLabels maps recording language codes to the labels written in
// transcript headers.
var languageLabels = map[string]string{
	"en":  "English",
	"yue": "Cantonese",
	"zh":  "Mandarin",
}

// Persist writes the transcript artifact and returns its path. Failed
// transcripts are persisted too, with the failure reason in place of the
// body, so every attempted input leaves a record. Existing artifacts are
// overwritten.
func (p *implPipeline) Persist(tr Transcript, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", &PersistenceError{Path: outputDir, Err: err}
	}

	path := ArtifactPath(outputDir, tr.SourcePath)
	if err := os.WriteFile(path, []byte(formatArtifact(tr)), 0644); err != nil {
		return "", &PersistenceError{Path: path, Err: err}
	}

	return path, nil
}

// ArtifactPath returns where Persist writes the transcript for sourcePath:
// the source filename with its extension replaced by .txt, under outputDir.
func ArtifactPath(outputDir, sourcePath string) string {
	base := filepath.Base(sourcePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outputDir, stem+".txt")
}

// formatArtifact renders the fixed transcript layout. Downstream tooling
// parses this file; the layout must not change.
func formatArtifact(tr Transcript) string {
	var b strings.Builder

	body := tr.FullText
	if tr.Outcome != OutcomeSucceeded {
		body = "Transcription failed: " + tr.FailureReason
	}

	fmt.Fprintf(&b, "Transcript of: %s\n", filepath.Base(tr.SourcePath))
	fmt.Fprintf(&b, "Language: %s\n", languageLabel(tr.Language))
	b.WriteString(separator + "\n\n")
	b.WriteString(body)
	b.WriteString("\n\n")
	b.WriteString(separator + "\n")
	b.WriteString("Detailed segments:\n\n")

	for _, seg := range tr.Segments {
		fmt.Fprintf(&b, "[%s -> %s] %s\n", formatTimestamp(seg.Start), formatTimestamp(seg.End), seg.Text)
	}

	return b.String()
}

// languageLabel returns the header label for a language code, or the code
// itself when no label is known.
func languageLabel(code string) string {
	if label, ok := languageLabels[code]; ok {
		return label
	}
	return code
}

// formatTimestamp renders seconds as zero-padded HH:MM:SS, truncating
// sub-second precision.
func formatTimestamp(seconds float64) string {
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}
