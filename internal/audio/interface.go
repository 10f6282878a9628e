package audio

import "context"

// Toolkit wraps the ffmpeg/ffprobe operations the pipeline needs. All times
// are seconds; millisecond quantization stays inside this package.
type Toolkit interface {
	// Duration returns the total duration of an audio file.
	Duration(ctx context.Context, path string) (float64, error)
	// Clip writes the [start, end) range of src to dst as PCM WAV.
	Clip(ctx context.Context, src, dst string, start, end float64) error
	// TrimTo writes `duration` seconds of src starting at `start` to dst,
	// preserving the source codec.
	TrimTo(ctx context.Context, src, dst string, start, duration float64) error
}
