package processor

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/silence-align/internal/detect"
	"github.com/nguyentantai21042004/silence-align/internal/logger"
	"github.com/nguyentantai21042004/silence-align/internal/nonspeech"
	"github.com/nguyentantai21042004/silence-align/internal/srt"
	"github.com/nguyentantai21042004/silence-align/internal/timeline"
)

type fakeDetector struct {
	events []timeline.Interval
	err    error
}

func (f *fakeDetector) Detect(ctx context.Context, audioPath string, p detect.Params) ([]timeline.Interval, error) {
	return f.events, f.err
}

type fakeToolkit struct {
	duration float64
	clips    []string
	trims    []string
}

func (f *fakeToolkit) Duration(ctx context.Context, path string) (float64, error) {
	return f.duration, nil
}

func (f *fakeToolkit) Clip(ctx context.Context, src, dst string, start, end float64) error {
	f.clips = append(f.clips, filepath.Base(dst))
	return os.WriteFile(dst, []byte("clip"), 0644)
}

func (f *fakeToolkit) TrimTo(ctx context.Context, src, dst string, start, duration float64) error {
	f.trims = append(f.trims, dst)
	return os.WriteFile(dst, []byte("trimmed"), 0644)
}

func newTestProcessor(det *fakeDetector, tk *fakeToolkit) Processor {
	log := logger.New("error")
	store := srt.New(log)
	return New(det, tk, store, nonspeech.New(tk, log), log)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestAlignCorrectsSubtitles(t *testing.T) {
	dir := t.TempDir()
	subPath := filepath.Join(dir, "in.srt")
	outPath := filepath.Join(dir, "out.srt")

	// Events leave silences [2+tol, 5-tol] between speech bursts.
	det := &fakeDetector{events: []timeline.Interval{
		{Start: 0, End: 2},
		{Start: 5, End: 7},
	}}

	writeFile(t, subPath, "1\n00:00:00,500 --> 00:00:02,400\nhello\n\n")

	proc := newTestProcessor(det, &fakeToolkit{})
	report, err := proc.Align(context.Background(), AlignRequest{
		AudioPath:    filepath.Join(dir, "in.wav"),
		SubtitlePath: subPath,
		OutputPath:   outPath,
		Detection:    detect.Params{AnalysisWindow: 0.01},
		MinSilence:   0.05,
	})
	if err != nil {
		t.Fatalf("Align() error = %v", err)
	}

	if report.Silences != 1 || report.Subtitles != 1 {
		t.Errorf("report = %+v, want 1 silence and 1 subtitle", report)
	}
	if report.AdjustedEnds != 1 {
		t.Errorf("AdjustedEnds = %d, want 1", report.AdjustedEnds)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	// End pulled back to the silence start at 2.01
	if !strings.Contains(string(data), "00:00:00,500 --> 00:00:02,010") {
		t.Errorf("corrected output = %q, want end moved to 00:00:02,010", string(data))
	}
}

func TestAlignWritesSilenceReportWithoutSubtitleFile(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "silences.srt")

	det := &fakeDetector{events: []timeline.Interval{
		{Start: 1, End: 2},
		{Start: 5, End: 6},
	}}

	proc := newTestProcessor(det, &fakeToolkit{})
	report, err := proc.Align(context.Background(), AlignRequest{
		AudioPath:  "in.wav",
		OutputPath: outPath,
		Detection:  detect.Params{AnalysisWindow: 0.01},
		MinSilence: 0.05,
	})
	if err != nil {
		t.Fatalf("Align() error = %v", err)
	}
	if report.Silences != 2 {
		t.Errorf("Silences = %d, want 2", report.Silences)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Silence 1") || !strings.Contains(string(data), "Silence 2") {
		t.Errorf("silence report = %q, want Silence 1 and Silence 2", string(data))
	}
}

func TestAlignReportEvents(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "events.srt")

	det := &fakeDetector{events: []timeline.Interval{{Start: 0.25, End: 1.4}}}

	proc := newTestProcessor(det, &fakeToolkit{})
	report, err := proc.Align(context.Background(), AlignRequest{
		AudioPath:    "in.wav",
		OutputPath:   outPath,
		ReportEvents: true,
	})
	if err != nil {
		t.Fatalf("Align() error = %v", err)
	}
	if report.Events != 1 {
		t.Errorf("Events = %d, want 1", report.Events)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "00:00:00,250 --> 00:00:01,400") {
		t.Errorf("event report = %q, want the event interval", string(data))
	}
}

func TestAlignExtractsNonSpeech(t *testing.T) {
	dir := t.TempDir()
	nsDir := filepath.Join(dir, "ns")
	subPath := filepath.Join(dir, "in.srt")
	outPath := filepath.Join(dir, "out.srt")

	// Speech, a cough, more speech: silences on both sides of the cough
	// with no subtitle in between flag an orphan.
	det := &fakeDetector{events: []timeline.Interval{
		{Start: 0, End: 2},
		{Start: 4, End: 4.5},
		{Start: 8, End: 10},
	}}

	writeFile(t, subPath,
		"1\n00:00:00,000 --> 00:00:02,000\nfirst\n\n2\n00:00:08,000 --> 00:00:10,000\nsecond\n\n")

	tk := &fakeToolkit{}
	proc := newTestProcessor(det, tk)
	report, err := proc.Align(context.Background(), AlignRequest{
		AudioPath:    filepath.Join(dir, "in.wav"),
		SubtitlePath: subPath,
		OutputPath:   outPath,
		Detection:    detect.Params{AnalysisWindow: 0.01},
		MinSilence:   0.05,
		NonSpeechDir: nsDir,
	})
	if err != nil {
		t.Fatalf("Align() error = %v", err)
	}

	if report.Orphans != 1 || report.NonSpeechClips != 1 {
		t.Fatalf("report = %+v, want 1 orphan and 1 clip", report)
	}
	if len(tk.clips) != 1 || tk.clips[0] != "0001.wav" {
		t.Errorf("clips = %v, want [0001.wav]", tk.clips)
	}

	data, err := os.ReadFile(filepath.Join(nsDir, "non-speech.srt"))
	if err != nil {
		t.Fatalf("non-speech.srt not written: %v", err)
	}
	if !strings.Contains(string(data), "'1 first'") || !strings.Contains(string(data), "'2 second'") {
		t.Errorf("non-speech description = %q, want neighbor references", string(data))
	}
}

func TestAlignSubtractOnlyProducesNoClips(t *testing.T) {
	dir := t.TempDir()
	subPath := filepath.Join(dir, "in.srt")

	det := &fakeDetector{events: []timeline.Interval{
		{Start: 0, End: 2},
		{Start: 4, End: 4.5},
		{Start: 8, End: 10},
	}}
	writeFile(t, subPath, "1\n00:00:00,000 --> 00:00:02,000\nfirst\n\n")

	tk := &fakeToolkit{}
	proc := newTestProcessor(det, tk)
	report, err := proc.Align(context.Background(), AlignRequest{
		AudioPath:    filepath.Join(dir, "in.wav"),
		SubtitlePath: subPath,
		OutputPath:   filepath.Join(dir, "out.srt"),
		Detection:    detect.Params{AnalysisWindow: 0.01},
		MinSilence:   0.05,
		SubtractOnly: true,
		NonSpeechDir: filepath.Join(dir, "ns"),
	})
	if err != nil {
		t.Fatalf("Align() error = %v", err)
	}
	if report.Orphans != 0 || len(tk.clips) != 0 {
		t.Errorf("subtract-only produced orphans/clips: %+v, clips %v", report, tk.clips)
	}
}

func TestAlignFailsOnEmptySubtitleFile(t *testing.T) {
	dir := t.TempDir()
	subPath := filepath.Join(dir, "empty.srt")
	writeFile(t, subPath, "\n")

	proc := newTestProcessor(&fakeDetector{}, &fakeToolkit{})
	_, err := proc.Align(context.Background(), AlignRequest{
		AudioPath:    "in.wav",
		SubtitlePath: subPath,
		OutputPath:   filepath.Join(dir, "out.srt"),
	})
	if err == nil {
		t.Error("Align() should report a subtitle file that yields zero segments")
	}
}

func TestTrimRemovesLeadingSilence(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		t.Fatal(err)
	}
	src := filepath.Join(dir, "in.wav")
	writeFile(t, src, "original")

	det := &fakeDetector{events: []timeline.Interval{{Start: 1.5, End: 3}}}
	tk := &fakeToolkit{duration: 5}

	proc := newTestProcessor(det, tk)
	modified, err := proc.Trim(context.Background(), TrimRequest{
		Path:      src,
		Detection: detect.Params{AnalysisWindow: 0.01},
		OutputDir: outDir,
	})
	if err != nil {
		t.Fatalf("Trim() error = %v", err)
	}
	if !modified {
		t.Error("Trim() = false, want modified")
	}
	if len(tk.trims) != 1 || tk.trims[0] != filepath.Join(outDir, "in.wav") {
		t.Errorf("trims = %v, want output-dir destination", tk.trims)
	}
}

func TestTrimSkipsWhenAudioStartsImmediately(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.wav")
	writeFile(t, src, "original")

	det := &fakeDetector{events: []timeline.Interval{{Start: 0.005, End: 3}}}
	tk := &fakeToolkit{duration: 5}

	proc := newTestProcessor(det, tk)
	modified, err := proc.Trim(context.Background(), TrimRequest{
		Path:      src,
		Detection: detect.Params{AnalysisWindow: 0.01},
	})
	if err != nil {
		t.Fatalf("Trim() error = %v", err)
	}
	if modified {
		t.Error("Trim() = true, want skip for negligible leading silence")
	}
	if len(tk.trims) != 0 {
		t.Errorf("trims = %v, want none", tk.trims)
	}
}

func TestTrimDryRun(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.wav")
	writeFile(t, src, "original")

	det := &fakeDetector{events: []timeline.Interval{{Start: 2, End: 3}}}
	tk := &fakeToolkit{duration: 5}

	proc := newTestProcessor(det, tk)
	modified, err := proc.Trim(context.Background(), TrimRequest{
		Path:      src,
		Detection: detect.Params{AnalysisWindow: 0.01},
		DryRun:    true,
	})
	if err != nil {
		t.Fatalf("Trim() error = %v", err)
	}
	if !modified {
		t.Error("Trim() = false, want true in dry-run for a trimmable file")
	}
	if len(tk.trims) != 0 {
		t.Errorf("dry-run ran ffmpeg: %v", tk.trims)
	}
	data, _ := os.ReadFile(src)
	if string(data) != "original" {
		t.Error("dry-run modified the source file")
	}
}

func TestTrimBackupAndRestore(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "take.wav")
	writeFile(t, src, "original")

	det := &fakeDetector{events: []timeline.Interval{{Start: 2, End: 3}}}
	tk := &fakeToolkit{duration: 5}

	proc := newTestProcessor(det, tk)
	modified, err := proc.Trim(context.Background(), TrimRequest{
		Path:      src,
		Detection: detect.Params{AnalysisWindow: 0.01},
		Backup:    true,
	})
	if err != nil {
		t.Fatalf("Trim() error = %v", err)
	}
	if !modified {
		t.Fatal("Trim() = false, want modified")
	}

	bak := filepath.Join(dir, "take.bak.wav")
	if data, err := os.ReadFile(bak); err != nil || string(data) != "original" {
		t.Fatalf("backup = %q (err %v), want original content", data, err)
	}
	if data, _ := os.ReadFile(src); string(data) != "trimmed" {
		t.Errorf("source = %q, want trimmed content", data)
	}

	restored, err := proc.Restore(context.Background(), []string{filepath.Join(dir, "*.wav")})
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if restored != 1 {
		t.Errorf("Restore() = %d, want 1", restored)
	}
	if data, _ := os.ReadFile(src); string(data) != "original" {
		t.Errorf("restored source = %q, want original", data)
	}
}
