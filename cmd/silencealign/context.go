package main

import (
	"os"

	"github.com/nguyentantai21042004/silence-align/internal/audio"
	"github.com/nguyentantai21042004/silence-align/internal/config"
	"github.com/nguyentantai21042004/silence-align/internal/detect"
	"github.com/nguyentantai21042004/silence-align/internal/logger"
	"github.com/nguyentantai21042004/silence-align/internal/nonspeech"
	"github.com/nguyentantai21042004/silence-align/internal/processor"
	"github.com/nguyentantai21042004/silence-align/internal/srt"
	"github.com/nguyentantai21042004/silence-align/pkg/executor"
)

const defaultConfigFile = "config.yaml"

// commandContext carries the persistent flags and builds the shared
// dependencies for each subcommand.
type commandContext struct {
	configFlag  *string
	verboseFlag *bool
}

func newCommandContext(configFlag *string, verboseFlag *bool) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		verboseFlag: verboseFlag,
	}
}

// loadConfig reads the explicit --config file, or config.yaml when present,
// or falls back to the built-in defaults.
func (c *commandContext) loadConfig() (*config.Config, error) {
	if *c.configFlag != "" {
		return config.Load(*c.configFlag)
	}
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return config.Load(defaultConfigFile)
	}
	return config.Default(), nil
}

func (c *commandContext) buildLogger(cfg *config.Config) logger.Logger {
	level := cfg.Logging.Level
	if *c.verboseFlag {
		level = "debug"
	}
	return logger.New(level)
}

func buildProcessor(log logger.Logger) processor.Processor {
	exec := executor.New()
	tk := audio.New(exec, log)
	return processor.New(
		detect.New(exec, log),
		tk,
		srt.New(log),
		nonspeech.New(tk, log),
		log,
	)
}
