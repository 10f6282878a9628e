package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/silence-align/internal/detect"
	"github.com/nguyentantai21042004/silence-align/internal/processor"
)

func newAlignCommand(ctx *commandContext) *cobra.Command {
	var (
		inputFlag        string
		fileFlag         string
		outputFlag       string
		thresholdFlag    float64
		minDurFlag       float64
		maxDurFlag       float64
		minSilenceFlag   float64
		negateFlag       bool
		subtractOnlyFlag bool
		nonSpeechDirFlag string
	)

	cmd := &cobra.Command{
		Use:   "align",
		Short: "Correct an SRT file against silence detected in an audio file",
		Long: "align detects silence in the input audio and adjusts the boundaries of\n" +
			"the given SRT file to match. Without --file it writes the detected\n" +
			"silence segments (or, with --negate, the audio events) as an SRT.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if negateFlag && fileFlag != "" {
				return fmt.Errorf("cannot use --negate together with --file")
			}

			cfg, err := ctx.loadConfig()
			if err != nil {
				return err
			}
			log := ctx.buildLogger(cfg)
			proc := buildProcessor(log)

			req := processor.AlignRequest{
				AudioPath:    inputFlag,
				SubtitlePath: fileFlag,
				OutputPath:   outputFlag,
				Detection: detect.Params{
					EnergyThreshold:    thresholdFlag,
					MinEventDuration:   minDurFlag,
					MaxEventDuration:   maxDurFlag,
					MaxInternalSilence: cfg.Detection.MaxInternalSilence,
					AnalysisWindow:     cfg.Detection.AnalysisWindow,
				},
				MinSilence:   minSilenceFlag,
				ReportEvents: negateFlag,
				SubtractOnly: subtractOnlyFlag,
				NonSpeechDir: nonSpeechDirFlag,
			}

			report, err := proc.Align(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Println(renderAlignReport(report))
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFlag, "input", "i", "", "Input audio file (just speech)")
	cmd.Flags().StringVarP(&fileFlag, "file", "f", "", "SRT file to fix; if not given, outputs just the silence segments")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "output.srt", "Output SRT file")
	cmd.Flags().Float64VarP(&thresholdFlag, "threshold", "t", 40, "Energy threshold for event detection")
	cmd.Flags().Float64VarP(&minDurFlag, "min-dur", "m", 0.1, "Minimum duration of a valid audio event in seconds")
	cmd.Flags().Float64VarP(&maxDurFlag, "max-dur", "M", 24*60*60, "Maximum duration of an audio event in seconds")
	cmd.Flags().Float64VarP(&minSilenceFlag, "min-silence-dur", "s", 0.05, "Minimum duration of silence in seconds")
	cmd.Flags().BoolVarP(&negateFlag, "negate", "n", false, "Report audio events rather than silence")
	cmd.Flags().BoolVar(&subtractOnlyFlag, "subtract-only", false, "Only shorten SRT segments by detected silence, never extend")
	cmd.Flags().StringVar(&nonSpeechDirFlag, "non-speech-dir", "", "Directory for extracted non-speech clips and their non-speech.srt")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
