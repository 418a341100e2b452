package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateAnalysis(); err != nil {
		return err
	}
	if err := c.validateEDL(); err != nil {
		return err
	}
	if err := c.validateAudio(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.LibraryDir == "" {
		return errors.New("paths.library_dir must be set")
	}
	if c.Paths.DBPath == "" {
		return errors.New("paths.db_path must be set")
	}
	return nil
}

func (c *Config) validateAnalysis() error {
	a := c.Analysis
	if err := ensurePositiveInt(map[string]int{
		"analysis.maximum_fingerprint_point_differences": a.MaximumFingerprintPointDifferences,
		"analysis.inverted_index_shift":                  a.InvertedIndexShift,
		"analysis.max_parallelism":                        a.MaxParallelism,
	}); err != nil {
		return err
	}
	if err := ensurePositiveFloat(map[string]float64{
		"analysis.maximum_time_skip":                  a.MaximumTimeSkip,
		"analysis.silence_detection_minimum_duration": a.SilenceDetectionMinimumDuration,
		"analysis.minimum_intro_duration":              a.MinimumIntroDuration,
		"analysis.maximum_intro_duration":              a.MaximumIntroDuration,
	}); err != nil {
		return err
	}
	if a.MaximumIntroDuration <= a.MinimumIntroDuration {
		return errors.New("analysis.maximum_intro_duration must be greater than analysis.minimum_intro_duration")
	}
	return nil
}

func (c *Config) validateEDL() error {
	switch c.EDL.Action {
	case EDLActionNone, EDLActionRemove, EDLActionComskip:
		return nil
	default:
		return fmt.Errorf("edl.action %q is not one of none, remove, comskip", c.EDL.Action)
	}
}

func (c *Config) validateAudio() error {
	if c.Audio.SampleRate <= 0 {
		return errors.New("audio.sample_rate must be positive")
	}
	if c.Audio.FingerprintHop <= 0 {
		return errors.New("audio.fingerprint_hop_seconds must be positive")
	}
	if c.Audio.FFmpegBinary == "" {
		return errors.New("audio.ffmpeg_binary must be set")
	}
	return nil
}

func ensurePositiveInt(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}

func ensurePositiveFloat(values map[string]float64) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
