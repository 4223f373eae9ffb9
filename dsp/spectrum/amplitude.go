package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-seismic/dsp/core"
	"github.com/cwbudde/algo-seismic/dsp/fft"
)

// Amplitude is a single-sided amplitude spectrum: bins 0..N/2 of an N-point
// transform, where N is the padded transform size.
type Amplitude struct {
	Frequency  []float64 `json:"frequency" yaml:"frequency"`
	Magnitude  []float64 `json:"magnitude" yaml:"magnitude"`
	FFTSize    int       `json:"fft_size" yaml:"fft_size"`
	SampleRate float64   `json:"sample_rate" yaml:"sample_rate"`
}

// BinWidth returns the frequency spacing fs/N.
func (a Amplitude) BinWidth() float64 {
	if a.FFTSize == 0 {
		return 0
	}
	return a.SampleRate / float64(a.FFTSize)
}

// Smoothed returns a copy whose magnitudes, excluding the DC bin, are
// smoothed over 1/fraction-octave bands. The DC bin is carried unchanged.
func (a Amplitude) Smoothed(fraction int) (Amplitude, error) {
	if len(a.Magnitude) < 2 {
		return a, nil
	}
	sm, err := SmoothFractionalOctave(a.Frequency[1:], a.Magnitude[1:], fraction)
	if err != nil {
		return Amplitude{}, err
	}
	out := a
	out.Magnitude = append([]float64{a.Magnitude[0]}, sm...)
	out.Frequency = core.Clone(a.Frequency)
	return out, nil
}

// BinFrequencies returns i*fs/n for i = 0..count-1.
func BinFrequencies(count, n int, sampleRate float64) []float64 {
	out := make([]float64, count)
	if n == 0 {
		return out
	}
	df := sampleRate / float64(n)
	for i := range out {
		out[i] = float64(i) * df
	}
	return out
}

// SingleSided converts a full N-point spectrum to its single-sided
// amplitude representation.
func SingleSided(spec fft.Spectrum, sampleRate float64) Amplitude {
	n := len(spec)
	if n == 0 {
		return Amplitude{SampleRate: sampleRate}
	}
	half := n/2 + 1
	return Amplitude{
		Frequency:  BinFrequencies(half, n, sampleRate),
		Magnitude:  Magnitude(spec[:half]),
		FFTSize:    n,
		SampleRate: sampleRate,
	}
}

// FourierAmplitude transforms x with t and returns its single-sided
// amplitude spectrum. A nil t selects [fft.Radix2].
func FourierAmplitude(t fft.Transformer, x []float64, sampleRate float64) (Amplitude, error) {
	if len(x) == 0 {
		return Amplitude{}, fmt.Errorf("spectrum: empty input: %w", core.ErrInvalidInput)
	}
	if !(sampleRate > 0) {
		return Amplitude{}, fmt.Errorf("spectrum: sample rate must be > 0: %v: %w", sampleRate, core.ErrInvalidInput)
	}
	if t == nil {
		t = fft.Radix2{}
	}
	spec, err := t.Forward(fft.FromReal(x))
	if err != nil {
		return Amplitude{}, err
	}
	return SingleSided(spec, sampleRate), nil
}
