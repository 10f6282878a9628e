package timeline

import "sort"

type entryKind int

const (
	kindSilence entryKind = iota
	kindSubtitle
)

// entry is one element of the merged timeline. The payload selected by kind
// is the only meaningful one.
type entry struct {
	kind     entryKind
	silence  Interval
	subtitle *Subtitle
}

func (e entry) start() float64 {
	if e.kind == kindSubtitle {
		return e.subtitle.Start
	}
	return e.silence.Start
}

// mergeTimeline interleaves silences and subtitles into one sequence ordered
// by start time. Silences are appended first and the sort is stable, so a
// silence precedes a subtitle that starts at the exact same instant. The
// tie-break is arbitrary but must stay deterministic for reproducible output.
func mergeTimeline(silences []Interval, subs []*Subtitle) []entry {
	entries := make([]entry, 0, len(silences)+len(subs))
	for _, s := range silences {
		entries = append(entries, entry{kind: kindSilence, silence: s})
	}
	for _, s := range subs {
		entries = append(entries, entry{kind: kindSubtitle, subtitle: s})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].start() < entries[j].start()
	})
	return entries
}
