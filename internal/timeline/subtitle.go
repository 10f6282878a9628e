package timeline

import "sort"

// Subtitle is a timed text record. Index is the stable identity carried over
// from the source file and is never rewritten; Start and End may be adjusted
// by reconciliation.
type Subtitle struct {
	Index int
	Start float64
	End   float64
	Text  string
}

// NormalizeSubtitles returns a copy of subs sorted by index ascending, the
// structural order of the source file. Index order is the output order even
// when upstream timestamps are locally out of order.
func NormalizeSubtitles(subs []Subtitle) []Subtitle {
	out := make([]Subtitle, len(subs))
	copy(out, subs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Index < out[j].Index
	})
	return out
}
