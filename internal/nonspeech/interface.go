package nonspeech

import (
	"context"

	"github.com/nguyentantai21042004/silence-align/internal/timeline"
)

// Entry is one extracted non-speech artifact: a clip on disk plus the record
// that goes into the companion subtitle file. Seq starts at 1 in detection
// order and matches the clip filename.
type Entry struct {
	Seq   int
	Start float64
	End   float64
	Text  string
}

// Extractor turns orphan acoustic regions into audio clips and entries for
// the companion subtitle file.
type Extractor interface {
	Extract(ctx context.Context, audioPath, dir string, orphans []timeline.Orphan) ([]Entry, error)
}
