package detect

import (
	"context"

	"github.com/nguyentantai21042004/silence-align/internal/timeline"
)

// Params are the knobs of the energy-based event detector.
type Params struct {
	// EnergyThreshold is the energy level above which audio counts as an
	// event. Around 35 only near-silence separates events; around 55 quiet
	// speech starts getting lost.
	EnergyThreshold float64
	// MinEventDuration is the shortest event kept, in seconds.
	MinEventDuration float64
	// MaxEventDuration caps a single event, in seconds.
	MaxEventDuration float64
	// MaxInternalSilence is the longest silence tolerated inside one event
	// before it is split, in seconds.
	MaxInternalSilence float64
	// AnalysisWindow is the energy analysis window, in seconds. It doubles
	// as the edge tolerance for all downstream boundary math.
	AnalysisWindow float64
}

// Detector produces the acoustic events of one audio source: non-overlapping
// intervals ascending by start. An empty result is valid and means the
// detector found no audio above the threshold.
type Detector interface {
	Detect(ctx context.Context, audioPath string, p Params) ([]timeline.Interval, error)
}
