package processor

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/nguyentantai21042004/silence-align/internal/nonspeech"
	"github.com/nguyentantai21042004/silence-align/internal/srt"
	"github.com/nguyentantai21042004/silence-align/internal/timeline"
)

// nonSpeechSRTName is the companion subtitle file written next to extracted
// non-speech clips.
const nonSpeechSRTName = "non-speech.srt"

// Align orchestrates one detection + reconciliation pass.
func (p *implProcessor) Align(ctx context.Context, req AlignRequest) (*AlignReport, error) {
	events, err := p.detector.Detect(ctx, req.AudioPath, req.Detection)
	if err != nil {
		return nil, fmt.Errorf("detect events: %w", err)
	}
	p.logger.Info(ctx, "Detected %d audio events in %s", len(events), req.AudioPath)

	report := &AlignReport{Events: len(events), OutputPath: req.OutputPath}

	if req.ReportEvents {
		if err := p.subtitles.Write(ctx, req.OutputPath, eventSegments(events)); err != nil {
			return nil, fmt.Errorf("write event report: %w", err)
		}
		p.logger.Info(ctx, "Wrote %d events to %s", len(events), req.OutputPath)
		return report, nil
	}

	silences := timeline.BuildSilences(events, req.Detection.AnalysisWindow, req.MinSilence)
	report.Silences = len(silences)

	if req.SubtitlePath == "" {
		if err := p.subtitles.Write(ctx, req.OutputPath, silenceSegments(silences)); err != nil {
			return nil, fmt.Errorf("write silence report: %w", err)
		}
		p.logger.Info(ctx, "Wrote %d silence segments to %s", len(silences), req.OutputPath)
		return report, nil
	}

	subs, err := p.subtitles.Parse(ctx, req.SubtitlePath)
	if err != nil {
		return nil, fmt.Errorf("parse subtitles: %w", err)
	}
	if len(subs) == 0 {
		return nil, fmt.Errorf("no subtitle segments parsed from %s", req.SubtitlePath)
	}
	report.Subtitles = len(subs)

	opts := timeline.Options{Mode: timeline.ModeExpandSubtract, EdgeTolerance: req.Detection.AnalysisWindow}
	if req.SubtractOnly {
		opts.Mode = timeline.ModeSubtractOnly
	}

	original := subtitlesFromSegments(subs)
	result, err := timeline.Reconcile(silences, original, opts)
	if err != nil {
		return nil, fmt.Errorf("reconcile %s: %w", req.SubtitlePath, err)
	}
	if result.DroppedOrphans > 0 {
		p.logger.Warn(ctx, "Dropped %d orphan regions with non-positive duration", result.DroppedOrphans)
	}

	countAdjustments(original, result.Subtitles, report)

	if err := p.subtitles.Write(ctx, req.OutputPath, segmentsFromSubtitles(result.Subtitles)); err != nil {
		return nil, fmt.Errorf("write corrected subtitles: %w", err)
	}
	p.logger.Info(ctx, "Wrote %d corrected segments to %s (%d starts, %d ends adjusted)",
		len(result.Subtitles), req.OutputPath, report.AdjustedStarts, report.AdjustedEnds)

	report.Orphans = len(result.Orphans)
	if req.NonSpeechDir == "" || len(result.Orphans) == 0 {
		return report, nil
	}

	entries, err := p.nonspeech.Extract(ctx, req.AudioPath, req.NonSpeechDir, result.Orphans)
	if err != nil {
		return nil, fmt.Errorf("extract non-speech clips: %w", err)
	}
	report.NonSpeechClips = len(entries)

	if len(entries) > 0 {
		nsPath := filepath.Join(req.NonSpeechDir, nonSpeechSRTName)
		if err := p.subtitles.Write(ctx, nsPath, nonSpeechSegments(entries)); err != nil {
			return nil, fmt.Errorf("write non-speech subtitles: %w", err)
		}
		report.NonSpeechSRT = nsPath
		p.logger.Info(ctx, "Non-speech subtitle file written to %s", nsPath)
	}

	return report, nil
}

func subtitlesFromSegments(segments []srt.Segment) []timeline.Subtitle {
	subs := make([]timeline.Subtitle, len(segments))
	for i, s := range segments {
		subs[i] = timeline.Subtitle{Index: s.Index, Start: s.Start, End: s.End, Text: s.Text}
	}
	return subs
}

func segmentsFromSubtitles(subs []timeline.Subtitle) []srt.Segment {
	segments := make([]srt.Segment, len(subs))
	for i, s := range subs {
		segments[i] = srt.Segment{Index: s.Index, Start: s.Start, End: s.End, Text: s.Text}
	}
	return segments
}

func eventSegments(events []timeline.Interval) []srt.Segment {
	segments := make([]srt.Segment, len(events))
	for i, ev := range events {
		segments[i] = srt.Segment{
			Index: i + 1,
			Start: ev.Start,
			End:   ev.End,
			Text:  fmt.Sprintf("Event %d", i+1),
		}
	}
	return segments
}

func silenceSegments(silences []timeline.Interval) []srt.Segment {
	segments := make([]srt.Segment, len(silences))
	for i, s := range silences {
		segments[i] = srt.Segment{
			Index: i + 1,
			Start: s.Start,
			End:   s.End,
			Text:  fmt.Sprintf("Silence %d", i+1),
		}
	}
	return segments
}

func nonSpeechSegments(entries []nonspeech.Entry) []srt.Segment {
	segments := make([]srt.Segment, len(entries))
	for i, e := range entries {
		segments[i] = srt.Segment{Index: e.Seq, Start: e.Start, End: e.End, Text: e.Text}
	}
	return segments
}

// countAdjustments compares the corrected subtitles to the originals by
// index. Both slices are in index order.
func countAdjustments(original, corrected []timeline.Subtitle, report *AlignReport) {
	for i := range corrected {
		if corrected[i].Start != original[i].Start {
			report.AdjustedStarts++
		}
		if corrected[i].End != original[i].End {
			report.AdjustedEnds++
		}
	}
}
