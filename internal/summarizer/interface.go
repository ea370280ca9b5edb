package summarizer

import "context"

// Summarizer reads transcript files and produces LLM-generated markdown summaries.
type Summarizer interface {
	SummarizeAll(ctx context.Context, transcriptDir, destDir string) error
}
