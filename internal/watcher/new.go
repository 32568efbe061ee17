package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/stylepipe/stylepipe/internal/logger"
)

// New creates a new Watcher over the transcripts directory. Runs are
// serialized through a single-slot semaphore: a rebuild regenerates
// both output files, so overlapping runs would race on them.
func New(inputDir string, handler EventHandler, log logger.Logger) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		inputDir:  inputDir,
		handler:   handler,
		logger:    log,
		watcher:   watcher,
		semaphore: make(chan struct{}, 1),
	}, nil
}
