package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory and database location configuration.
type Paths struct {
	LibraryDir string `toml:"library_dir"`
	StagingDir string `toml:"staging_dir"`
	LogDir     string `toml:"log_dir"`
	DBPath     string `toml:"db_path"`
}

// Analysis contains the matcher and season-pipeline parameters enumerated
// in the detection algorithm's own configuration surface.
type Analysis struct {
	MaximumFingerprintPointDifferences int     `toml:"maximum_fingerprint_point_differences"`
	InvertedIndexShift                 int     `toml:"inverted_index_shift"`
	MaximumTimeSkip                    float64 `toml:"maximum_time_skip"`
	SilenceDetectionMinimumDuration    float64 `toml:"silence_detection_minimum_duration"`
	MinimumIntroDuration               float64 `toml:"minimum_intro_duration"`
	MaximumIntroDuration               float64 `toml:"maximum_intro_duration"`
	MaxParallelism                     int     `toml:"max_parallelism"`
	AnalyzeSeasonZero                  bool    `toml:"analyze_season_zero"`
	RegenerateEDLFiles                 bool    `toml:"regenerate_edl_files"`
}

// EDLAction selects what, if anything, a scan writes alongside a detected
// intro.
type EDLAction string

const (
	EDLActionNone    EDLAction = "none"
	EDLActionRemove  EDLAction = "remove"
	EDLActionComskip EDLAction = "comskip"
)

// EDL contains edit-decision-list emission configuration.
type EDL struct {
	Action EDLAction `toml:"action"`
}

// Audio contains configuration for the bundled fingerprinter and external
// silence-detection tool.
type Audio struct {
	SampleRate       int     `toml:"sample_rate"`
	FingerprintHop   float64 `toml:"fingerprint_hop_seconds"`
	FFmpegBinary     string  `toml:"ffmpeg_binary"`
	NoiseThresholddB float64 `toml:"noise_threshold_db"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for introscan.
//
// Configuration sections by subsystem:
//   - Paths: library root, staging directory, log directory, introstore path
//   - Analysis: matcher thresholds and driver parallelism
//   - EDL: edit-decision-list emission policy
//   - Audio: sample rate, fingerprint hop, external tool binaries
//   - Logging: log format and level
type Config struct {
	Paths    Paths    `toml:"paths"`
	Analysis Analysis `toml:"analysis"`
	EDL      EDL      `toml:"edl"`
	Audio    Audio    `toml:"audio"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/introscan/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath("~/.config/introscan/config.toml")
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("introscan.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates required directories for a scan.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.StagingDir, c.Paths.LogDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	if dbDir := filepath.Dir(c.Paths.DBPath); dbDir != "." && dbDir != "" {
		if err := os.MkdirAll(dbDir, 0o755); err != nil {
			return fmt.Errorf("create introstore directory %q: %w", dbDir, err)
		}
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

func defaultLibraryDBPath() string {
	if base, ok := os.LookupEnv("XDG_DATA_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "introscan", "introstore.db")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "~/.local/share/introscan/introstore.db"
	}
	return filepath.Join(home, ".local", "share", "introscan", "introstore.db")
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	sample := sampleConfig

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
