package render

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// File converts a single markdown or transcript file into a docx document.
func (r *implRenderer) File(ctx context.Context, srcPath, outputPath string) error {
	content, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", srcPath, err)
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	ext := strings.ToLower(filepath.Ext(srcPath))
	title := strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath))

	switch ext {
	case ".txt":
		err = transcriptToDocx(title, string(content), outputPath)
	default:
		err = markdownToDocx(title, string(content), outputPath)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", srcPath, err)
	}

	r.logger.Info(ctx, "Document saved: %s", outputPath)
	return nil
}

// Dir converts every renderable file under srcDir, mirroring the directory
// layout into outDir. Individual failures are logged and counted, the walk
// carries on.
func (r *implRenderer) Dir(ctx context.Context, srcDir, outDir string) (Stats, error) {
	var stats Stats

	sources, err := findRenderable(srcDir)
	if err != nil {
		return stats, fmt.Errorf("scan %s: %w", srcDir, err)
	}

	if len(sources) == 0 {
		r.logger.Info(ctx, "No renderable files found in %s", srcDir)
		return stats, nil
	}

	for i, src := range sources {
		rel, err := filepath.Rel(srcDir, src)
		if err != nil {
			r.logger.Error(ctx, "Failed to resolve %s: %v", src, err)
			stats.Failed++
			continue
		}

		outPath := filepath.Join(outDir, docxName(rel))
		r.logger.Info(ctx, "[%d/%d] Rendering: %s", i+1, len(sources), rel)

		if err := r.File(ctx, src, outPath); err != nil {
			r.logger.Error(ctx, "Failed to render %s: %v", src, err)
			stats.Failed++
			continue
		}
		stats.Converted++
	}

	r.logger.Info(ctx, "Render complete: %d converted, %d failed", stats.Converted, stats.Failed)
	return stats, nil
}

// findRenderable returns the markdown and transcript files under root, sorted.
func findRenderable(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".md", ".markdown", ".txt":
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

func docxName(relPath string) string {
	ext := filepath.Ext(relPath)
	return strings.TrimSuffix(relPath, ext) + ".docx"
}
