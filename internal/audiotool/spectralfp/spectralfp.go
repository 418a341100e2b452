// Package spectralfp is the default AudioTool.Fingerprint implementation:
// it decodes a WAV's PCM samples, runs a windowed FFT over fixed-size
// frames, and hashes each frame's band energies into one 32-bit
// fingerprint element per 0.128s, matching the stream contract
// introscan's matcher package expects.
package spectralfp

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/wav"
	"github.com/mjibson/go-dsp/fft"

	"introscan/internal/fingerprint"
)

const (
	frameSeconds = fingerprint.SamplesToSeconds
	bandCount    = 32
)

// Fingerprinter decodes WAV files and produces fingerprint.Stream values.
type Fingerprinter struct{}

func New() Fingerprinter { return Fingerprinter{} }

// Fingerprint implements season.AudioTool.Fingerprint for path. ctx is
// unused: decoding and FFT here are pure CPU work with no natural
// cancellation point shorter than the call itself.
func (Fingerprinter) Fingerprint(ctx context.Context, path string) (fingerprint.Stream, error) {
	samples, sampleRate, err := decodeMono(path)
	if err != nil {
		return nil, fmt.Errorf("spectralfp: decode %s: %w", path, err)
	}
	if len(samples) == 0 {
		return nil, nil
	}
	return hashFrames(samples, sampleRate), nil
}

func decodeMono(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, 0, fmt.Errorf("not a valid WAV file")
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, 0, err
	}

	channels := buf.Format.NumChannels
	if channels < 1 {
		channels = 1
	}
	maxVal := float64(int(1) << (uint(decoder.BitDepth) - 1))
	if maxVal == 0 {
		maxVal = 1
	}

	frames := len(buf.Data) / channels
	samples := make([]float64, frames)
	for i := 0; i < frames; i++ {
		var sum float64
		for c := 0; c < channels; c++ {
			sum += float64(buf.Data[i*channels+c])
		}
		samples[i] = (sum / float64(channels)) / maxVal
	}

	return samples, int(decoder.SampleRate), nil
}

// hashFrames slices samples into non-overlapping frameSeconds windows,
// FFTs each, buckets the magnitude spectrum into bandCount log-spaced
// bands, and sets bit i of the element whenever band i's energy exceeds
// the previous frame's - the same relative-energy-delta hash AcousticDNA's
// spectrogram pipeline feeds into its fingerprint, narrowed to one 32-bit
// word per frame instead of a band-count-sized vector.
func hashFrames(samples []float64, sampleRate int) fingerprint.Stream {
	frameLen := int(float64(sampleRate) * frameSeconds)
	if frameLen < bandCount {
		return nil
	}

	window := hammingWindow(frameLen)
	numFrames := len(samples) / frameLen
	stream := make(fingerprint.Stream, 0, numFrames)

	prevEnergies := make([]float64, bandCount)

	for i := 0; i < numFrames; i++ {
		frame := make([]float64, frameLen)
		copy(frame, samples[i*frameLen:(i+1)*frameLen])
		for j := range frame {
			frame[j] *= window[j]
		}

		spectrum := fft.FFTReal(frame)
		energies := bandEnergies(spectrum, bandCount)

		var word uint32
		for b := 0; b < bandCount; b++ {
			if energies[b] > prevEnergies[b] {
				word |= 1 << uint(b)
			}
		}
		stream = append(stream, word)
		prevEnergies = energies
	}

	return stream
}

func hammingWindow(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}
	return w
}

func bandEnergies(spectrum []complex128, bands int) []float64 {
	half := len(spectrum) / 2
	energies := make([]float64, bands)
	if half == 0 {
		return energies
	}

	// Log-spaced band edges across the positive-frequency half of the
	// spectrum, so low bands carry narrow bass ranges and high bands carry
	// wide treble ranges - the same shape a mel-like filterbank would give
	// without needing the reciprocal mapping back to Hz.
	for b := 0; b < bands; b++ {
		lo := bandEdge(b, bands, half)
		hi := bandEdge(b+1, bands, half)
		if hi <= lo {
			hi = lo + 1
		}
		var sum float64
		for i := lo; i < hi && i < half; i++ {
			mag := cmplxAbs(spectrum[i])
			sum += mag * mag
		}
		energies[b] = sum
	}
	return energies
}

func bandEdge(i, bands, half int) int {
	frac := math.Pow(float64(half), float64(i)/float64(bands))
	return int(frac)
}

func cmplxAbs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}
