package watcher

import "context"

// Watcher defines the interface for monitoring a directory for new recordings
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is a function that handles a newly detected audio file
type EventHandler func(ctx context.Context, filePath string) error
