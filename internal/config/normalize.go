package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeAnalysis()
	c.normalizeEDL()
	c.normalizeAudio()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.LibraryDir, err = expandPath(c.Paths.LibraryDir); err != nil {
		return fmt.Errorf("paths.library_dir: %w", err)
	}
	if c.Paths.StagingDir, err = expandPath(c.Paths.StagingDir); err != nil {
		return fmt.Errorf("paths.staging_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.DBPath) == "" {
		c.Paths.DBPath = defaultLibraryDBPath()
	}
	if c.Paths.DBPath, err = expandPath(c.Paths.DBPath); err != nil {
		return fmt.Errorf("paths.db_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeAnalysis() {
	a := &c.Analysis
	if a.MaximumFingerprintPointDifferences <= 0 {
		a.MaximumFingerprintPointDifferences = defaultMaximumFingerprintPointDifferences
	}
	if a.InvertedIndexShift <= 0 {
		a.InvertedIndexShift = defaultInvertedIndexShift
	}
	if a.MaximumTimeSkip <= 0 {
		a.MaximumTimeSkip = defaultMaximumTimeSkip
	}
	if a.SilenceDetectionMinimumDuration <= 0 {
		a.SilenceDetectionMinimumDuration = defaultSilenceDetectionMinimumDuration
	}
	if a.MinimumIntroDuration <= 0 {
		a.MinimumIntroDuration = defaultMinimumIntroDuration
	}
	if a.MaximumIntroDuration <= 0 {
		a.MaximumIntroDuration = defaultMaximumIntroDuration
	}
	if a.MaxParallelism <= 0 {
		a.MaxParallelism = defaultMaxParallelism
	}
}

func (c *Config) normalizeEDL() {
	c.EDL.Action = EDLAction(strings.ToLower(strings.TrimSpace(string(c.EDL.Action))))
	switch c.EDL.Action {
	case EDLActionNone, EDLActionRemove, EDLActionComskip:
	case "":
		c.EDL.Action = EDLActionRemove
	default:
		c.EDL.Action = EDLActionRemove
	}
}

func (c *Config) normalizeAudio() {
	if c.Audio.SampleRate <= 0 {
		c.Audio.SampleRate = defaultAudioSampleRate
	}
	if c.Audio.FingerprintHop <= 0 {
		c.Audio.FingerprintHop = defaultFingerprintHopSeconds
	}
	c.Audio.FFmpegBinary = strings.TrimSpace(c.Audio.FFmpegBinary)
	if c.Audio.FFmpegBinary == "" {
		c.Audio.FFmpegBinary = defaultFFmpegBinary
	}
	if c.Audio.NoiseThresholddB == 0 {
		c.Audio.NoiseThresholddB = defaultNoiseThresholddB
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
