package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Detection   DetectionConfig   `yaml:"detection"`
	Align       AlignConfig       `yaml:"align"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

// DetectionConfig holds the knobs passed to the energy-based event detector.
type DetectionConfig struct {
	EnergyThreshold    float64 `yaml:"energy_threshold"`
	MinEventDuration   float64 `yaml:"min_event_duration"`
	MaxEventDuration   float64 `yaml:"max_event_duration"`
	MaxInternalSilence float64 `yaml:"max_internal_silence"`
	AnalysisWindow     float64 `yaml:"analysis_window"`
}

// AlignConfig holds defaults for subtitle alignment runs.
type AlignConfig struct {
	MinSilenceDuration float64 `yaml:"min_silence_duration"`
	SubtractOnly       bool    `yaml:"subtract_only"`
	NonSpeechDir       string  `yaml:"non_speech_dir"`
}

// PathsConfig is used by watch mode: audio dropped into Input is aligned
// against its sibling subtitle file and written into Output.
type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads a YAML config file and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// Default returns the built-in configuration used when no config file is
// present.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

// Validate fills in defaults for unset fields. The detection defaults mirror
// the detector's own: a 10 ms analysis window, 0.1 s minimum event and a
// 50 ms silence floor.
func (c *Config) Validate() error {
	if c.Detection.EnergyThreshold < 0 {
		return fmt.Errorf("detection.energy_threshold must not be negative")
	}
	if c.Detection.EnergyThreshold == 0 {
		c.Detection.EnergyThreshold = 40
	}
	if c.Detection.MinEventDuration == 0 {
		c.Detection.MinEventDuration = 0.1
	}
	if c.Detection.MaxEventDuration == 0 {
		c.Detection.MaxEventDuration = 24 * 60 * 60
	}
	if c.Detection.MaxInternalSilence == 0 {
		c.Detection.MaxInternalSilence = 0.05
	}
	if c.Detection.AnalysisWindow == 0 {
		c.Detection.AnalysisWindow = 0.01
	}
	if c.Align.MinSilenceDuration == 0 {
		c.Align.MinSilenceDuration = 0.05
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent <= 0 {
		c.Performance.MaxConcurrent = 2
	}
	return nil
}

// ValidateWatch checks the extra fields watch mode needs.
func (c *Config) ValidateWatch() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required for watch mode")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required for watch mode")
	}
	return nil
}
