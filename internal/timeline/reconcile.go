package timeline

import "fmt"

// Mode selects the boundary-adjustment policy for one reconciliation pass.
type Mode int

const (
	// ModeExpandSubtract may both shrink and extend subtitle boundaries so
	// they abut neighboring silence, and flags orphan acoustic regions
	// between back-to-back silences.
	ModeExpandSubtract Mode = iota
	// ModeSubtractOnly only ever shrinks subtitle boundaries where they
	// overlap detected silence. It never extends and never flags orphans.
	ModeSubtractOnly
)

// Options control one reconciliation pass. EdgeTolerance is applied when
// deriving orphan regions from the inner edges of adjacent silences.
type Options struct {
	Mode          Mode
	EdgeTolerance float64
}

// Orphan is unexplained acoustic activity sitting between two silence gaps
// with no subtitle entry in between. Prev and Next are the nearest subtitle
// neighbors in the merged timeline; nil means start or end of audio.
type Orphan struct {
	Region Interval
	Prev   *Subtitle
	Next   *Subtitle
}

// Result of one reconciliation pass. Subtitles are fresh copies in index
// order. DroppedOrphans counts orphan candidates discarded because their
// tolerance-adjusted range had non-positive duration.
type Result struct {
	Subtitles      []Subtitle
	Orphans        []Orphan
	DroppedOrphans int
}

// BoundsError reports a subtitle whose adjusted start crossed its adjusted
// end. It marks inconsistent or overlapping source timelines that the
// algorithm cannot resolve, so the violation is surfaced instead of clamped.
type BoundsError struct {
	Index int
	Start float64
	End   float64
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("subtitle %d: adjusted start %.3f exceeds end %.3f", e.Index, e.Start, e.End)
}

// Reconcile corrects subtitle boundaries against the silence timeline. It is
// a pure function of its inputs: neither slice is mutated and the corrected
// subtitles are copies.
func Reconcile(silences []Interval, subs []Subtitle, opts Options) (Result, error) {
	corrected := NormalizeSubtitles(subs)

	if opts.Mode == ModeSubtractOnly {
		subtractOnly(silences, corrected)
		return Result{Subtitles: corrected}, nil
	}

	orphans, dropped, err := expandSubtract(silences, corrected, opts.EdgeTolerance)
	if err != nil {
		return Result{}, err
	}
	return Result{Subtitles: corrected, Orphans: orphans, DroppedOrphans: dropped}, nil
}

// expandSubtract walks the merged timeline once. A subtitle directly preceded
// by a silence whose end lies inside it gets its start pulled to that end; a
// subtitle directly followed by a silence gets its end pulled to that start,
// shrinking or extending as needed. Two silences in a row with nothing in
// between flag the audio between their inner edges as an orphan region.
func expandSubtract(silences []Interval, subs []Subtitle, tol float64) ([]Orphan, int, error) {
	ptrs := make([]*Subtitle, len(subs))
	for i := range subs {
		ptrs[i] = &subs[i]
	}
	entries := mergeTimeline(silences, ptrs)

	var orphans []Orphan
	dropped := 0

	for i, e := range entries {
		switch e.kind {
		case kindSubtitle:
			s := e.subtitle
			if i > 0 && entries[i-1].kind == kindSilence && entries[i-1].silence.End < s.End {
				s.Start = entries[i-1].silence.End
			}
			if i+1 < len(entries) && entries[i+1].kind == kindSilence {
				s.End = entries[i+1].silence.Start
			}
			if s.Start > s.End {
				return nil, 0, &BoundsError{Index: s.Index, Start: s.Start, End: s.End}
			}

		case kindSilence:
			if i+1 >= len(entries) || entries[i+1].kind != kindSilence {
				continue
			}
			region := Interval{
				Start: e.silence.End + tol,
				End:   entries[i+1].silence.Start - tol,
			}
			if region.Duration() <= 0 {
				dropped++
				continue
			}
			orphans = append(orphans, Orphan{
				Region: region,
				Prev:   previousSubtitle(entries, i),
				Next:   followingSubtitle(entries, i+2),
			})
		}
	}

	return orphans, dropped, nil
}

// subtractOnly advances one monotone pointer over the silence list and
// shrinks each subtitle where a silence overlaps its leading or trailing
// edge. Boundaries are never extended, so a corrected subtitle is always a
// subset of the original window.
func subtractOnly(silences []Interval, subs []Subtitle) {
	idx := 0
	for i := range subs {
		s := &subs[i]

		for idx < len(silences) && silences[idx].End < s.Start {
			idx++
		}
		if idx < len(silences) {
			sil := silences[idx]
			if sil.Start < s.Start && s.Start < sil.End && sil.End < s.End {
				s.Start = sil.End
			}
		}

		for idx < len(silences) && silences[idx].End < s.End {
			idx++
		}
		if idx < len(silences) {
			sil := silences[idx]
			if sil.Start > s.Start && s.End < sil.End && sil.Start < s.End {
				s.End = sil.Start
			}
		}
	}
}

func previousSubtitle(entries []entry, from int) *Subtitle {
	for i := from - 1; i >= 0; i-- {
		if entries[i].kind == kindSubtitle {
			return entries[i].subtitle
		}
	}
	return nil
}

func followingSubtitle(entries []entry, from int) *Subtitle {
	for i := from; i < len(entries); i++ {
		if entries[i].kind == kindSubtitle {
			return entries[i].subtitle
		}
	}
	return nil
}
