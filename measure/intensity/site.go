package intensity

import (
	"github.com/cwbudde/algo-seismic/dsp/fft"
	"github.com/cwbudde/algo-seismic/dsp/spectrum"
)

// firstSearchBin excludes the DC bin from the dominant-frequency search.
const firstSearchBin = 1

// SiteFrequency is the dominant frequency of a record.
type SiteFrequency struct {
	Frequency float64 `json:"frequency" yaml:"frequency"` // Hz
	Amplitude float64 `json:"amplitude" yaml:"amplitude"` // |X| at the peak bin
	Bin       int     `json:"bin" yaml:"bin"`
	FFTSize   int     `json:"fft_size" yaml:"fft_size"`
}

// DominantFrequency searches the single-sided spectrum for its largest
// non-DC bin. Ties resolve to the lowest frequency. A spectrum with no
// non-DC bins yields the zero value with Bin -1.
func DominantFrequency(amp spectrum.Amplitude) SiteFrequency {
	bin := spectrum.PeakBin(amp.Magnitude, firstSearchBin)
	if bin < 0 {
		return SiteFrequency{Bin: -1, FFTSize: amp.FFTSize}
	}
	return SiteFrequency{
		Frequency: amp.Frequency[bin],
		Amplitude: amp.Magnitude[bin],
		Bin:       bin,
		FFTSize:   amp.FFTSize,
	}
}

// SiteFrequencyOf transforms x with t (nil selects [fft.Radix2]) and
// returns its dominant frequency.
func SiteFrequencyOf(t fft.Transformer, x []float64, sampleRate float64) (SiteFrequency, error) {
	amp, err := spectrum.FourierAmplitude(t, x, sampleRate)
	if err != nil {
		return SiteFrequency{}, err
	}
	return DominantFrequency(amp), nil
}
