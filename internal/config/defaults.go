package config

const (
	defaultLibraryDir                         = "~/library"
	defaultStagingDir                         = "~/.local/share/introscan/staging"
	defaultLogDir                             = "~/.local/share/introscan/logs"
	defaultLogFormat                          = "console"
	defaultLogLevel                           = "info"
	defaultMaximumFingerprintPointDifferences = 6
	defaultInvertedIndexShift                 = 2
	defaultMaximumTimeSkip                    = 3.5
	defaultSilenceDetectionMinimumDuration    = 0.33
	defaultMinimumIntroDuration               = 15.0
	defaultMaximumIntroDuration               = 900.0
	defaultMaxParallelism                     = 4
	defaultAudioSampleRate                    = 8000
	defaultFingerprintHopSeconds              = 0.128
	defaultFFmpegBinary                       = "ffmpeg"
	defaultNoiseThresholddB                   = -50.0
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LibraryDir: defaultLibraryDir,
			StagingDir: defaultStagingDir,
			LogDir:     defaultLogDir,
			DBPath:     defaultLibraryDBPath(),
		},
		Analysis: Analysis{
			MaximumFingerprintPointDifferences: defaultMaximumFingerprintPointDifferences,
			InvertedIndexShift:                 defaultInvertedIndexShift,
			MaximumTimeSkip:                    defaultMaximumTimeSkip,
			SilenceDetectionMinimumDuration:     defaultSilenceDetectionMinimumDuration,
			MinimumIntroDuration:                defaultMinimumIntroDuration,
			MaximumIntroDuration:                defaultMaximumIntroDuration,
			MaxParallelism:                      defaultMaxParallelism,
			AnalyzeSeasonZero:                   false,
			RegenerateEDLFiles:                  false,
		},
		EDL: EDL{
			Action: EDLActionRemove,
		},
		Audio: Audio{
			SampleRate:       defaultAudioSampleRate,
			FingerprintHop:   defaultFingerprintHopSeconds,
			FFmpegBinary:     defaultFFmpegBinary,
			NoiseThresholddB: defaultNoiseThresholddB,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
