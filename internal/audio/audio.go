package audio

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Duration probes the container duration of an audio file.
func (t *implToolkit) Duration(ctx context.Context, path string) (float64, error) {
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}

	out, err := t.executor.Execute(ctx, "ffprobe", args...)
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %w", err)
	}

	dur, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, fmt.Errorf("parse ffprobe duration %q: %w", strings.TrimSpace(out), err)
	}
	return dur, nil
}

// Clip extracts [start, end) of src into dst as 16-bit PCM WAV, the format
// downstream annotation tools expect for the non-speech snippets.
func (t *implToolkit) Clip(ctx context.Context, src, dst string, start, end float64) error {
	args := []string{
		"-y",
		"-i", src,
		"-ss", formatSeconds(start),
		"-to", formatSeconds(end),
		"-vn",
		"-c:a", "pcm_s16le",
		dst,
	}

	t.logger.Debug(ctx, "Extracting clip [%s, %s) from %s", formatSeconds(start), formatSeconds(end), src)

	if _, err := t.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return fmt.Errorf("ffmpeg clip: %w", err)
	}
	return nil
}

// TrimTo re-cuts src from `start` for `duration` seconds into dst without
// re-encoding.
func (t *implToolkit) TrimTo(ctx context.Context, src, dst string, start, duration float64) error {
	args := []string{
		"-y",
		"-ss", formatSeconds(start),
		"-i", src,
		"-t", formatSeconds(duration),
		"-c", "copy",
		dst,
	}

	if _, err := t.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return fmt.Errorf("ffmpeg trim: %w", err)
	}
	return nil
}

// formatSeconds renders a time offset with millisecond precision for ffmpeg
// arguments.
func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
