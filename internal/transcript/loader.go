package transcript

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotFound indicates the transcripts directory does not exist.
var ErrNotFound = errors.New("transcripts directory not found")

// Load reads every .txt file in dir and returns one Chunk per file.
// Non-text files, dot-files and subdirectories are skipped. An existing
// but empty directory yields an empty slice, not an error, so a run
// over zero transcripts still regenerates (empty) output files.
func (l *implLoader) Load(ctx context.Context, dir string) ([]Chunk, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, dir)
		}
		return nil, fmt.Errorf("read transcripts dir: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if strings.ToLower(filepath.Ext(e.Name())) != ".txt" {
			l.logger.Debug(ctx, "Ignoring non-transcript file: %s", e.Name())
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}

	// Listing order is platform dependent, sort for stable logs.
	// The dataset builder shuffles before splitting, so load order
	// never influences the split.
	sort.Strings(paths)

	var chunks []Chunk
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read transcript %s: %w", path, err)
		}

		text := strings.TrimSpace(string(data))
		if text == "" {
			l.logger.Warn(ctx, "Skipping empty transcript: %s", path)
			continue
		}

		chunks = append(chunks, Chunk{
			Source: path,
			Name:   strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
			Text:   text,
		})
	}

	l.logger.Info(ctx, "Loaded %d transcript chunks from %s", len(chunks), dir)
	return chunks, nil
}
