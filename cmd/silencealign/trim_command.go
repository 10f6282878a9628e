package main

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/silence-align/internal/detect"
	"github.com/nguyentantai21042004/silence-align/internal/processor"
)

func newTrimCommand(ctx *commandContext) *cobra.Command {
	var (
		outputDirFlag string
		backupFlag    bool
		restoreFlag   bool
		dryRunFlag    bool
		thresholdFlag float64
		minDurFlag    float64
	)

	cmd := &cobra.Command{
		Use:   "trim <files or globs...>",
		Short: "Remove leading silence from audio files",
		Long: "trim detects where the audio actually starts in each file and cuts off\n" +
			"the silence before it. Originals are backed up unless --backup=false;\n" +
			"--restore puts backups back.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.loadConfig()
			if err != nil {
				return err
			}
			log := ctx.buildLogger(cfg)
			proc := buildProcessor(log)

			if restoreFlag {
				restored, err := proc.Restore(cmd.Context(), args)
				if err != nil {
					return err
				}
				log.Info(cmd.Context(), "Restore complete: %d file(s) restored", restored)
				return nil
			}

			paths, err := expandGlobs(args)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				log.Info(cmd.Context(), "No input files to process")
				return nil
			}

			if backupFlag && outputDirFlag != "" {
				// Originals are not overwritten when writing elsewhere
				backupFlag = false
			}
			if dryRunFlag {
				log.Info(cmd.Context(), "--- DRY RUN MODE ENABLED: No files will be modified ---")
			}

			modified := 0
			failed := 0
			for _, path := range paths {
				ok, err := proc.Trim(cmd.Context(), processor.TrimRequest{
					Path: path,
					Detection: detect.Params{
						EnergyThreshold:    thresholdFlag,
						MinEventDuration:   minDurFlag,
						MaxEventDuration:   cfg.Detection.MaxEventDuration,
						MaxInternalSilence: cfg.Detection.MaxInternalSilence,
						AnalysisWindow:     cfg.Detection.AnalysisWindow,
					},
					OutputDir: outputDirFlag,
					Backup:    backupFlag,
					DryRun:    dryRunFlag,
				})
				if err != nil {
					log.Error(cmd.Context(), "Failed to process %s: %v", path, err)
					failed++
					continue
				}
				if ok {
					modified++
				}
			}

			log.Info(cmd.Context(), "Processing complete: %d scanned, %d modified, %d failed",
				len(paths), modified, failed)
			if failed > 0 {
				return fmt.Errorf("%d file(s) failed", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDirFlag, "output-dir", "o", "", "Directory for modified files; originals are overwritten when unset")
	cmd.Flags().BoolVar(&backupFlag, "backup", true, "Create a .bak copy before overwriting")
	cmd.Flags().BoolVar(&restoreFlag, "restore", false, "Restore original files from .bak backups and exit")
	cmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Analyze and log, but do not modify any files")
	cmd.Flags().Float64VarP(&thresholdFlag, "threshold", "t", 45, "Energy threshold for event detection")
	cmd.Flags().Float64VarP(&minDurFlag, "min-dur", "m", 0.1, "Minimum duration of a valid audio event in seconds")

	return cmd
}

// expandGlobs resolves patterns to a sorted, deduplicated path list.
func expandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var paths []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			paths = append(paths, m)
		}
	}
	sort.Strings(paths)
	return paths, nil
}
