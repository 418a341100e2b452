// Package audiotool composes the bundled fingerprinter and the ffmpeg
// silence detector into the single collaborator season.Analyzer depends
// on, so callers only need to build and pass around one value.
package audiotool

import (
	"context"
	"strconv"

	"introscan/internal/audiotool/ffmpegsilence"
	"introscan/internal/audiotool/spectralfp"
	"introscan/internal/fingerprint"
	"introscan/internal/timerange"
)

// Tool implements season.AudioTool by pairing the pure-Go spectral
// fingerprinter with an ffmpeg-backed silence detector.
type Tool struct {
	fingerprinter spectralfp.Fingerprinter
	silence       *ffmpegsilence.Detector
}

// New builds a Tool. ffmpegBinary and noiseThreshold configure the
// silence detector; the fingerprinter has no external dependency.
func New(ffmpegBinary string, noiseThresholdDB float64) *Tool {
	threshold := formatThreshold(noiseThresholdDB)
	return &Tool{
		fingerprinter: spectralfp.New(),
		silence:       ffmpegsilence.New(ffmpegsilence.WithBinary(ffmpegBinary), ffmpegsilence.WithNoiseThreshold(threshold)),
	}
}

// Fingerprint implements season.AudioTool.
func (t *Tool) Fingerprint(ctx context.Context, path string) (fingerprint.Stream, error) {
	return t.fingerprinter.Fingerprint(ctx, path)
}

// DetectSilence implements season.AudioTool.
func (t *Tool) DetectSilence(ctx context.Context, path string, durationSeconds float64) ([]timerange.Range, error) {
	return t.silence.DetectSilence(ctx, path, durationSeconds)
}

func formatThreshold(db float64) string {
	if db == 0 {
		return "-30dB"
	}
	return strconv.FormatFloat(db, 'f', -1, 64) + "dB"
}
