package srt

import "context"

// Segment is one SubRip record: a 1-based index, start/end in seconds and the
// caption text with newlines collapsed.
type Segment struct {
	Index int
	Start float64
	End   float64
	Text  string
}

// FileStore reads and writes SubRip subtitle files.
type FileStore interface {
	// Parse returns the segments of an SRT file sorted by index. Malformed
	// records are skipped with a warning; a well-formed file with no valid
	// records yields an empty slice and no error.
	Parse(ctx context.Context, path string) ([]Segment, error)
	// Write serializes segments as sequential blank-line-delimited records
	// in the given order.
	Write(ctx context.Context, path string, segments []Segment) error
}
