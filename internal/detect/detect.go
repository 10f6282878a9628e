package detect

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/silence-align/internal/timeline"
)

// Detect runs the auditok splitter over one audio file and parses the
// reported events. The print format is pinned so upstream default changes
// cannot break parsing.
func (d *implDetector) Detect(ctx context.Context, audioPath string, p Params) ([]timeline.Interval, error) {
	args := []string{
		"-i", audioPath,
		"--energy-threshold", formatSeconds(p.EnergyThreshold),
		"--min-duration", formatSeconds(p.MinEventDuration),
		"--max-duration", formatSeconds(p.MaxEventDuration),
		"--max-silence", formatSeconds(p.MaxInternalSilence),
		"--analysis-window", formatSeconds(p.AnalysisWindow),
		"--printf", "{id} {start} {end}",
	}

	out, err := d.executor.Execute(ctx, "auditok", args...)
	if err != nil {
		return nil, fmt.Errorf("auditok split: %w", err)
	}

	events, err := parseEvents(out, func(format string, a ...interface{}) {
		d.logger.Warn(ctx, format, a...)
	})
	if err != nil {
		return nil, err
	}

	d.logger.Debug(ctx, "Detector reported %d events for %s", len(events), audioPath)
	return events, nil
}

// parseEvents reads "id start end" lines. Unparseable lines are skipped via
// warn; an event list that goes backwards in time is an error because every
// downstream walk assumes ascending, non-overlapping input.
func parseEvents(out string, warn func(format string, a ...interface{})) ([]timeline.Interval, error) {
	var events []timeline.Interval

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			warn("Skipping unparseable detector line %q", line)
			continue
		}

		start, errS := strconv.ParseFloat(fields[1], 64)
		end, errE := strconv.ParseFloat(fields[2], 64)
		if errS != nil || errE != nil || end < start {
			warn("Skipping unparseable detector line %q", line)
			continue
		}

		if n := len(events); n > 0 && start < events[n-1].End {
			return nil, fmt.Errorf("detector events out of order near %.3f", start)
		}
		events = append(events, timeline.Interval{Start: start, End: end})
	}

	return events, nil
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
