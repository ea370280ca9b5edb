package render

import "context"

// Stats reports the outcome of a directory render.
type Stats struct {
	Converted int
	Failed    int
}

// Renderer converts markdown summaries and transcript files into docx documents.
type Renderer interface {
	File(ctx context.Context, srcPath, outputPath string) error
	Dir(ctx context.Context, srcDir, outDir string) (Stats, error)
}
