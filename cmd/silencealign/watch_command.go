package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/silence-align/internal/config"
	"github.com/nguyentantai21042004/silence-align/internal/detect"
	"github.com/nguyentantai21042004/silence-align/internal/processor"
	"github.com/nguyentantai21042004/silence-align/internal/watcher"
)

func newWatchCommand(cmdCtx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch a directory and align every audio file dropped into it",
		Long: "watch monitors paths.input from the configuration file. Each new audio\n" +
			"file is aligned against its same-stem .srt sibling (when present) and\n" +
			"the result is written into paths.output.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.ValidateWatch(); err != nil {
				return err
			}

			log := cmdCtx.buildLogger(cfg)
			proc := buildProcessor(log)

			if err := os.MkdirAll(cfg.Paths.Output, 0755); err != nil {
				return err
			}

			handler := func(ctx context.Context, audioPath, subtitlePath string) error {
				stem := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
				report, err := proc.Align(ctx, processor.AlignRequest{
					AudioPath:    audioPath,
					SubtitlePath: subtitlePath,
					OutputPath:   filepath.Join(cfg.Paths.Output, stem+".srt"),
					Detection:    detectParams(cfg),
					MinSilence:   cfg.Align.MinSilenceDuration,
					SubtractOnly: cfg.Align.SubtractOnly,
					NonSpeechDir: cfg.Align.NonSpeechDir,
				})
				if err != nil {
					return err
				}
				log.Info(ctx, "Aligned %s -> %s", audioPath, report.OutputPath)
				return nil
			}

			w, err := watcher.New(cfg.Paths.Input, handler, log, cfg.Performance.MaxConcurrent)
			if err != nil {
				return err
			}
			defer w.Stop()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

			errChan := make(chan error, 1)
			go func() {
				if err := w.Start(ctx); err != nil && err != context.Canceled {
					errChan <- err
				}
			}()

			log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
			log.Info(ctx, "Output: %s", cfg.Paths.Output)
			log.Info(ctx, "Press Ctrl+C to stop")

			select {
			case <-sigChan:
				log.Info(ctx, "Shutdown signal received")
			case err := <-errChan:
				return err
			}

			cancel()
			return nil
		},
	}

	return cmd
}

func detectParams(cfg *config.Config) detect.Params {
	return detect.Params{
		EnergyThreshold:    cfg.Detection.EnergyThreshold,
		MinEventDuration:   cfg.Detection.MinEventDuration,
		MaxEventDuration:   cfg.Detection.MaxEventDuration,
		MaxInternalSilence: cfg.Detection.MaxInternalSilence,
		AnalysisWindow:     cfg.Detection.AnalysisWindow,
	}
}
