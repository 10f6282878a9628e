package nonspeech

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/silence-align/internal/timeline"
)

// Extract writes one WAV clip per orphan region into dir and returns the
// matching entries. A failed extraction is logged and skipped without
// consuming a sequence number; the remaining orphans are still processed.
func (e *implExtractor) Extract(ctx context.Context, audioPath, dir string, orphans []timeline.Orphan) ([]Entry, error) {
	if len(orphans) == 0 {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create non-speech dir: %w", err)
	}

	var entries []Entry
	seq := 1

	for _, o := range orphans {
		name := fmt.Sprintf("%04d.wav", seq)
		dst := filepath.Join(dir, name)

		if err := e.audio.Clip(ctx, audioPath, dst, o.Region.Start, o.Region.End); err != nil {
			e.logger.Error(ctx, "Failed to save non-speech clip %s: %v", name, err)
			continue
		}

		entries = append(entries, Entry{
			Seq:   seq,
			Start: o.Region.Start,
			End:   o.Region.End,
			Text:  describe(o),
		})
		e.logger.Info(ctx, "Saved non-speech clip %s [%.3f, %.3f)", name, o.Region.Start, o.Region.End)
		seq++
	}

	return entries, nil
}

// describe names the orphan's subtitle neighbors so an annotator can place
// the clip without opening the full recording.
func describe(o timeline.Orphan) string {
	prev := "start of audio"
	if o.Prev != nil {
		prev = fmt.Sprintf("%d %s", o.Prev.Index, o.Prev.Text)
	}
	next := "end of audio"
	if o.Next != nil {
		next = fmt.Sprintf("%d %s", o.Next.Index, o.Next.Text)
	}
	return fmt.Sprintf("Non-speech segment detected between segment '%s' and segment '%s'.", prev, next)
}
