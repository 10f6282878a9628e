package timeline

// BuildSilences derives the silence gaps between detected acoustic events.
//
// The cursor starts at position 0, so a gap before the first event is derived
// when the recording opens with silence; no edge tolerance is applied at
// position 0. Every inter-event candidate is tightened by edgeTolerance on
// both sides to absorb detector jitter. No gap is derived after the last
// event. Candidates shorter than minSilenceDur are dropped while the cursor
// still advances past the event that closed them.
//
// Events must be non-overlapping and ascending by start, which makes the
// returned silences pairwise disjoint and strictly increasing by start.
func BuildSilences(events []Interval, edgeTolerance, minSilenceDur float64) []Interval {
	var silences []Interval
	cursor := 0.0

	for _, ev := range events {
		start := cursor
		end := ev.Start
		cursor = ev.End

		if start > 0 {
			start += edgeTolerance
		}
		end -= edgeTolerance

		if end-start < minSilenceDur {
			continue
		}
		silences = append(silences, Interval{Start: start, End: end})
	}

	return silences
}
