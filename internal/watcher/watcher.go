package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/silence-align/internal/logger"
)

// settleDelay gives the writer time to finish before the file is read.
const settleDelay = 500 * time.Millisecond

type implWatcher struct {
	inputDir      string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	semaphore     chan struct{}
	wg            sync.WaitGroup
}

// Start monitors the input directory for new audio files and runs the
// handler for each, pairing it with a same-stem subtitle file when present.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inputDir)
	w.logger.Info(ctx, "Supported formats: .wav, .mp3, .m4a, .flac, .ogg")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !isAudioFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-audio file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New audio file detected: %s", event.Name)
			time.Sleep(settleDelay)

			select {
			case w.semaphore <- struct{}{}:
				w.wg.Add(1)
				go func(audioPath string) {
					defer w.wg.Done()
					defer func() { <-w.semaphore }()

					subtitlePath := siblingSubtitle(audioPath)
					if subtitlePath == "" {
						w.logger.Info(ctx, "No subtitle file next to %s; reporting silence only", audioPath)
					}
					if err := w.handler(ctx, audioPath, subtitlePath); err != nil {
						w.logger.Error(ctx, "Failed to process %s: %v", audioPath, err)
					}
				}(event.Name)
			case <-ctx.Done():
				return ctx.Err()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func isAudioFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range []string{".wav", ".mp3", ".m4a", ".flac", ".ogg"} {
		if ext == format {
			return true
		}
	}
	return false
}

// siblingSubtitle returns the .srt sharing the audio file's stem, or "".
func siblingSubtitle(audioPath string) string {
	candidate := strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + ".srt"
	if _, err := os.Stat(candidate); err != nil {
		return ""
	}
	return candidate
}
