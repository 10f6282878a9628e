package srt

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Parse reads an SRT file into segments sorted by index.
func (f *implFileStore) Parse(ctx context.Context, path string) ([]Segment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read srt: %w", err)
	}

	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, nil
	}

	var segments []Segment
	for _, block := range strings.Split(content, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		lines := strings.Split(block, "\n")
		if len(lines) < 3 {
			f.logger.Warn(ctx, "Skipping malformed subtitle record %q in %s", firstLine(block), path)
			continue
		}

		index, err := strconv.Atoi(strings.TrimSpace(lines[0]))
		if err != nil {
			f.logger.Warn(ctx, "Skipping record with invalid index %q in %s", lines[0], path)
			continue
		}

		start, end, err := parseTimingLine(lines[1])
		if err != nil {
			f.logger.Warn(ctx, "Skipping segment %d due to time parse error: %v", index, err)
			continue
		}

		segments = append(segments, Segment{
			Index: index,
			Start: start,
			End:   end,
			Text:  strings.TrimSpace(strings.Join(lines[2:], " ")),
		})
	}

	// Index order is the stable identity, even when timestamps are locally
	// out of order upstream.
	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].Index < segments[j].Index
	})
	return segments, nil
}

// Write serializes segments in the given order.
func (f *implFileStore) Write(ctx context.Context, path string, segments []Segment) error {
	var b strings.Builder
	for _, s := range segments {
		fmt.Fprintf(&b, "%d\n", s.Index)
		fmt.Fprintf(&b, "%s --> %s\n", FormatTimestamp(s.Start), FormatTimestamp(s.End))
		fmt.Fprintf(&b, "%s\n\n", s.Text)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write srt: %w", err)
	}
	return nil
}

func parseTimingLine(line string) (float64, float64, error) {
	parts := strings.Split(line, "-->")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid timing line %q", line)
	}
	start, err := ParseTimestamp(parts[0])
	if err != nil {
		return 0, 0, err
	}
	end, err := ParseTimestamp(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// ParseTimestamp converts an SRT timestamp (HH:MM:SS,mmm, period separator
// tolerated) to seconds.
func ParseTimestamp(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}

	// Normalize period to comma (the SRT standard uses a comma before the
	// milliseconds, but period variants are common in the wild)
	value = strings.ReplaceAll(value, ".", ",")
	timeParts := strings.Split(value, ",")
	if len(timeParts) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}

	hms := strings.Split(timeParts[0], ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}

	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(hms[2])
	millis, errMS := strconv.Atoi(padMillis(timeParts[1]))
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}

	return float64(hours*3600+minutes*60+seconds) + float64(millis)/1000, nil
}

// FormatTimestamp renders seconds as HH:MM:SS,mmm. The conversion to
// milliseconds goes through decimal so values like 2.999 do not drift to
// 2998 ms on the way out.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	ms := decimal.NewFromFloat(seconds).Mul(decimal.NewFromInt(1000)).Round(0).IntPart()

	h := ms / 3_600_000
	ms -= h * 3_600_000
	m := ms / 60_000
	ms -= m * 60_000
	s := ms / 1000
	ms -= s * 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

// padMillis right-pads or truncates a millisecond field to three digits, so
// "5" reads as 500 ms rather than 5 ms.
func padMillis(s string) string {
	s = strings.TrimSpace(s)
	for len(s) < 3 {
		s += "0"
	}
	return s[:3]
}

func firstLine(block string) string {
	if i := strings.IndexByte(block, '\n'); i >= 0 {
		return block[:i]
	}
	return block
}
