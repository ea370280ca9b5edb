package pipeline

import (
	"bufio"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// audioExtensions lists the recording formats discovery accepts.
var audioExtensions = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".m4a":  true,
	".flac": true,
	".ogg":  true,
}

// IsAudioFile reports whether path has a recognized audio extension.
func IsAudioFile(path string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(path))]
}

// DiscoverInputs resolves the batch's inputs. With a non-empty explicit list
// it keeps the given order and drops entries that do not exist, logging a
// warning so a typo'd path does not vanish silently. With no explicit list it
// scans paths.audio recursively for audio files in lexicographic order.
func (p *implPipeline) DiscoverInputs(ctx context.Context, explicit []string) ([]AudioInput, error) {
	var paths []string

	if len(explicit) > 0 {
		for _, path := range explicit {
			info, err := os.Stat(path)
			if err != nil {
				p.logger.Warn(ctx, "Skipping %s: %v", path, err)
				continue
			}
			if info.IsDir() {
				p.logger.Warn(ctx, "Skipping %s: is a directory", path)
				continue
			}
			paths = append(paths, path)
		}
	} else {
		root := p.cfg.Paths.Audio

		info, err := os.Stat(root)
		if err != nil {
			return nil, &DiscoveryError{Root: root, Err: err}
		}
		if !info.IsDir() {
			return nil, &DiscoveryError{Root: root, Err: fmt.Errorf("not a directory")}
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if IsAudioFile(path) {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, &DiscoveryError{Root: root, Err: err}
		}

		sort.Strings(paths)
	}

	inputs := make([]AudioInput, 0, len(paths))
	for _, path := range paths {
		in := AudioInput{Path: path}
		if p.prober != nil {
			if d, err := p.prober.Duration(ctx, path); err == nil {
				in.DurationHint = d
			} else {
				p.logger.Debug(ctx, "No duration hint for %s: %v", path, err)
			}
		}
		inputs = append(inputs, in)
	}

	return inputs, nil
}

// ReadInputList parses a plain-text list of audio paths, one per line.
// Blank lines are ignored.
func ReadInputList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var paths []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return paths, nil
}
