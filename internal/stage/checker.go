package stage

import (
	"context"
	"os"
	"os/exec"
	"time"

	"introscan/internal/config"
)

// Checker performs a single readiness check and reports its result as a Health.
type Checker func(ctx context.Context, cfg *config.Config) Health

// defaultCheckTimeout bounds any single check so a hung external command
// cannot stall the whole preflight pass.
const defaultCheckTimeout = 5 * time.Second

// RunChecks runs every checker and returns one Health per checker, in order.
func RunChecks(ctx context.Context, cfg *config.Config, checkers ...Checker) []Health {
	results := make([]Health, 0, len(checkers))
	for _, check := range checkers {
		results = append(results, check(ctx, cfg))
	}
	return results
}

// AllReady reports whether every Health in results is ready.
func AllReady(results []Health) bool {
	for _, result := range results {
		if !result.Ready {
			return false
		}
	}
	return true
}

// CheckFFmpegBinary verifies the configured ffmpeg binary resolves on PATH
// and responds to -version within the check timeout.
func CheckFFmpegBinary(ctx context.Context, cfg *config.Config) Health {
	const name = "ffmpeg"

	binary := cfg.Audio.FFmpegBinary
	if binary == "" {
		return Unhealthy(name, "no ffmpeg binary configured")
	}
	if _, err := exec.LookPath(binary); err != nil {
		return Unhealthy(name, "binary not found on PATH: "+err.Error())
	}

	checkCtx, cancel := context.WithTimeout(ctx, defaultCheckTimeout)
	defer cancel()

	if err := exec.CommandContext(checkCtx, binary, "-version").Run(); err != nil {
		return Unhealthy(name, "binary did not respond to -version: "+err.Error())
	}
	return Healthy(name)
}

// CheckLibraryDir verifies the configured library directory exists and is readable.
func CheckLibraryDir(ctx context.Context, cfg *config.Config) Health {
	const name = "library_dir"
	return checkDirReadable(name, cfg.Paths.LibraryDir)
}

// CheckStagingDir verifies the staging directory exists (or can be created) and is writable.
func CheckStagingDir(ctx context.Context, cfg *config.Config) Health {
	const name = "staging_dir"
	return checkDirWritable(name, cfg.Paths.StagingDir)
}

// CheckLogDir verifies the log directory exists (or can be created) and is writable.
func CheckLogDir(ctx context.Context, cfg *config.Config) Health {
	const name = "log_dir"
	return checkDirWritable(name, cfg.Paths.LogDir)
}

func checkDirReadable(name, dir string) Health {
	if dir == "" {
		return Unhealthy(name, "no directory configured")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return Unhealthy(name, "cannot stat "+dir+": "+err.Error())
	}
	if !info.IsDir() {
		return Unhealthy(name, dir+" is not a directory")
	}
	return Healthy(name)
}

func checkDirWritable(name, dir string) Health {
	if dir == "" {
		return Unhealthy(name, "no directory configured")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Unhealthy(name, "cannot create "+dir+": "+err.Error())
	}
	probe, err := os.CreateTemp(dir, ".introscan-writable-*")
	if err != nil {
		return Unhealthy(name, dir+" is not writable: "+err.Error())
	}
	path := probe.Name()
	probe.Close()
	os.Remove(path)
	return Healthy(name)
}

// DefaultCheckers returns the standard set of pre-scan readiness checks.
func DefaultCheckers() []Checker {
	return []Checker{
		CheckLibraryDir,
		CheckStagingDir,
		CheckLogDir,
		CheckFFmpegBinary,
	}
}
