package watcher

import "context"

// Watcher defines the interface for file system monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one newly dropped audio file. subtitlePath is the
// sibling .srt with the same stem, or empty when none exists yet.
type EventHandler func(ctx context.Context, audioPath, subtitlePath string) error
