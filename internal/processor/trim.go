package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Trim removes leading silence from one audio file. Trailing silence is left
// alone: recordings in this workflow are cut off mid-word at the end often
// enough that trailing trim destroyed content, so only the leading edge is
// touched.
func (p *implProcessor) Trim(ctx context.Context, req TrimRequest) (bool, error) {
	duration, err := p.audio.Duration(ctx, req.Path)
	if err != nil {
		return false, fmt.Errorf("probe duration: %w", err)
	}

	events, err := p.detector.Detect(ctx, req.Path, req.Detection)
	if err != nil {
		return false, fmt.Errorf("detect events: %w", err)
	}

	if len(events) == 0 {
		p.logger.Warn(ctx, "No audio events detected in %s above threshold; skipping", req.Path)
		return false, p.passThrough(ctx, req)
	}

	// The first sound starts one analysis window before the first event,
	// never before 0.
	firstSound := events[0].Start - req.Detection.AnalysisWindow
	if firstSound < 0 {
		firstSound = 0
	}

	// Anything within one analysis window of 0 is detection jitter, not
	// silence worth cutting.
	if firstSound < req.Detection.AnalysisWindow {
		p.logger.Info(ctx, "No significant leading silence in %s; skipping", req.Path)
		return false, p.passThrough(ctx, req)
	}

	content := duration - firstSound
	if content <= 0 {
		p.logger.Warn(ctx, "Content duration for %s is zero or negative (%.3fs); skipping", req.Path, content)
		return false, nil
	}

	p.logger.Info(ctx, "Trimming %s: %.3fs -> %.3fs (audio starts at %.3fs)",
		req.Path, duration, content, firstSound)

	if req.DryRun {
		p.logger.Info(ctx, "[DRY RUN] Would trim %s to %.3fs", req.Path, content)
		return true, nil
	}

	if req.OutputDir != "" {
		dst := filepath.Join(req.OutputDir, filepath.Base(req.Path))
		if err := p.audio.TrimTo(ctx, req.Path, dst, firstSound, content); err != nil {
			return false, err
		}
		p.logger.Info(ctx, "Saved trimmed audio to %s", dst)
		return true, nil
	}

	if req.Backup {
		bak := backupPath(req.Path)
		p.logger.Info(ctx, "Backing up original file to %s", bak)
		if err := copyFile(req.Path, bak); err != nil {
			return false, fmt.Errorf("backup: %w", err)
		}
	}

	// ffmpeg cannot write over its own input, so go through a sibling temp
	// file and rename into place.
	tmp := req.Path + ".trim.tmp" + filepath.Ext(req.Path)
	if err := p.audio.TrimTo(ctx, req.Path, tmp, firstSound, content); err != nil {
		os.Remove(tmp)
		return false, err
	}
	if err := os.Rename(tmp, req.Path); err != nil {
		os.Remove(tmp)
		return false, fmt.Errorf("replace original: %w", err)
	}

	p.logger.Info(ctx, "Saved trimmed audio to %s", req.Path)
	return true, nil
}

// Restore moves .bak backups back over the originals.
func (p *implProcessor) Restore(ctx context.Context, patterns []string) (int, error) {
	restored := 0
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return restored, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		for _, path := range matches {
			bak := backupPath(path)
			if _, err := os.Stat(bak); err != nil {
				p.logger.Warn(ctx, "Backup not found: %s", bak)
				continue
			}
			if err := os.Rename(bak, path); err != nil {
				return restored, fmt.Errorf("restore %s: %w", path, err)
			}
			p.logger.Info(ctx, "Restored: %s", path)
			restored++
		}
	}
	return restored, nil
}

// passThrough copies an unmodified file into the output directory so a batch
// run still produces a complete output set.
func (p *implProcessor) passThrough(ctx context.Context, req TrimRequest) error {
	if req.OutputDir == "" || req.DryRun {
		return nil
	}
	dst := filepath.Join(req.OutputDir, filepath.Base(req.Path))
	if err := copyFile(req.Path, dst); err != nil {
		return fmt.Errorf("copy unmodified file: %w", err)
	}
	p.logger.Info(ctx, "Saved unmodified audio to %s", dst)
	return nil
}

// backupPath inserts .bak before the extension: sample.wav -> sample.bak.wav.
func backupPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".bak" + ext
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("write destination: %w", err)
	}
	return nil
}
