package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"introscan/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("XDG_DATA_HOME", "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantStaging := filepath.Join(tempHome, ".local", "share", "introscan", "staging")
	if cfg.Paths.StagingDir != wantStaging {
		t.Fatalf("unexpected staging dir: got %q want %q", cfg.Paths.StagingDir, wantStaging)
	}
	if cfg.Paths.LibraryDir != filepath.Join(tempHome, "library") {
		t.Fatalf("unexpected library dir: %q", cfg.Paths.LibraryDir)
	}
	if cfg.Analysis.InvertedIndexShift != 2 {
		t.Fatalf("unexpected inverted index shift: %d", cfg.Analysis.InvertedIndexShift)
	}
	if cfg.EDL.Action != config.EDLActionRemove {
		t.Fatalf("unexpected default edl action: %q", cfg.EDL.Action)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.StagingDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be a directory", dir)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "introscan.toml")

	type payload struct {
		Analysis struct {
			MinimumIntroDuration float64 `toml:"minimum_intro_duration"`
			MaxParallelism       int     `toml:"max_parallelism"`
		} `toml:"analysis"`
		EDL struct {
			Action string `toml:"action"`
		} `toml:"edl"`
	}
	custom := payload{}
	custom.Analysis.MinimumIntroDuration = 20
	custom.Analysis.MaxParallelism = 8
	custom.EDL.Action = "comskip"

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Analysis.MinimumIntroDuration != 20 {
		t.Fatalf("expected minimum_intro_duration 20, got %v", cfg.Analysis.MinimumIntroDuration)
	}
	if cfg.Analysis.MaxParallelism != 8 {
		t.Fatalf("expected max_parallelism 8, got %d", cfg.Analysis.MaxParallelism)
	}
	if cfg.EDL.Action != config.EDLActionComskip {
		t.Fatalf("expected edl action comskip, got %q", cfg.EDL.Action)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "max_parallelism") {
		t.Fatalf("sample config missing analysis section: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if !strings.Contains(cfg.Paths.StagingDir, "introscan") {
		t.Fatalf("expected staging dir to contain introscan, got %q", cfg.Paths.StagingDir)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.Analysis.MaxParallelism = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-positive parallelism")
	}

	cfg = config.Default()
	cfg.Analysis.MaximumIntroDuration = cfg.Analysis.MinimumIntroDuration
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when maximum_intro_duration <= minimum_intro_duration")
	}

	cfg = config.Default()
	cfg.EDL.Action = "bogus"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid edl.action")
	}

	cfg = config.Default()
	cfg.Paths.LibraryDir = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when library_dir is empty")
	}
}
