package processor

import (
	"context"

	"github.com/nguyentantai21042004/silence-align/internal/detect"
)

// Processor runs the alignment and trimming workflows for one file at a time.
type Processor interface {
	// Align detects acoustic events in the request's audio file and either
	// reports them as an SRT, or corrects the given subtitle file against
	// the derived silence timeline.
	Align(ctx context.Context, req AlignRequest) (*AlignReport, error)
	// Trim removes leading silence from one audio file. It returns whether
	// the file was (or in dry-run mode, would be) modified.
	Trim(ctx context.Context, req TrimRequest) (bool, error)
	// Restore moves .bak backups created by Trim back over the originals
	// matched by the given glob patterns and returns the restored count.
	Restore(ctx context.Context, patterns []string) (int, error)
}

// AlignRequest describes one audio/subtitle alignment run.
type AlignRequest struct {
	AudioPath    string
	SubtitlePath string // empty: write the silence (or event) report only
	OutputPath   string
	Detection    detect.Params
	MinSilence   float64
	ReportEvents bool // write detected events instead of silence; needs no subtitle file
	SubtractOnly bool
	NonSpeechDir string // empty disables non-speech clip extraction
}

// AlignReport summarizes one alignment run.
type AlignReport struct {
	Events         int
	Silences       int
	Subtitles      int
	AdjustedStarts int
	AdjustedEnds   int
	Orphans        int
	NonSpeechClips int
	OutputPath     string
	NonSpeechSRT   string
}

// TrimRequest describes one leading-silence trim.
type TrimRequest struct {
	Path      string
	Detection detect.Params
	OutputDir string // empty: overwrite in place
	Backup    bool   // back up before overwriting (ignored with OutputDir)
	DryRun    bool
}
