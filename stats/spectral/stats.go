// Package spectral computes shape descriptors of a single-sided Fourier
// amplitude spectrum.
//
// The DC bin is ignored by every descriptor.
package spectral

import (
	"math"

	"github.com/cwbudde/algo-seismic/dsp/spectrum"
)

// Band limits of the mean period, in Hz.
const (
	MeanPeriodLow  = 0.25
	MeanPeriodHigh = 20.0
)

// DefaultRolloff is the energy fraction used by Calculate.
const DefaultRolloff = 0.95

// Stats holds spectral shape descriptors. Frequencies are in Hz, periods in
// seconds.
type Stats struct {
	Centroid float64 `json:"centroid" yaml:"centroid"`
	Spread   float64 `json:"spread" yaml:"spread"`
	Rolloff  float64 `json:"rolloff" yaml:"rolloff"`
	Flatness float64 `json:"flatness" yaml:"flatness"` // 0..1

	// MeanPeriod is sum(C²/f)/sum(C²) over MeanPeriodLow..MeanPeriodHigh.
	MeanPeriod float64 `json:"mean_period" yaml:"mean_period"`
}

// Calculate computes every descriptor of amp.
func Calculate(amp spectrum.Amplitude) Stats {
	cent := Centroid(amp)
	return Stats{
		Centroid:   cent,
		Spread:     spread(amp, cent),
		Rolloff:    Rolloff(amp, DefaultRolloff),
		Flatness:   Flatness(amp),
		MeanPeriod: MeanPeriod(amp),
	}
}

// Centroid returns sum(f·|X|)/sum(|X|).
func Centroid(amp spectrum.Amplitude) float64 {
	var sum, weighted float64
	for i := 1; i < len(amp.Magnitude); i++ {
		sum += amp.Magnitude[i]
		weighted += amp.Frequency[i] * amp.Magnitude[i]
	}
	if sum == 0 {
		return 0
	}
	return weighted / sum
}

// spread is the magnitude-weighted standard deviation around the centroid.
func spread(amp spectrum.Amplitude, cent float64) float64 {
	var sum, weighted float64
	for i := 1; i < len(amp.Magnitude); i++ {
		d := amp.Frequency[i] - cent
		sum += amp.Magnitude[i]
		weighted += d * d * amp.Magnitude[i]
	}
	if sum == 0 {
		return 0
	}
	return math.Sqrt(weighted / sum)
}

// Rolloff returns the lowest frequency below which fraction of the energy
// lies.
func Rolloff(amp spectrum.Amplitude, fraction float64) float64 {
	var total float64
	for i := 1; i < len(amp.Magnitude); i++ {
		total += amp.Magnitude[i] * amp.Magnitude[i]
	}
	if total == 0 {
		return 0
	}

	threshold := fraction * total
	var cum float64
	for i := 1; i < len(amp.Magnitude); i++ {
		cum += amp.Magnitude[i] * amp.Magnitude[i]
		if cum >= threshold {
			return amp.Frequency[i]
		}
	}
	return amp.Frequency[len(amp.Frequency)-1]
}

// Flatness returns the ratio of geometric to arithmetic mean magnitude. Any
// zero bin makes it zero.
func Flatness(amp spectrum.Amplitude) float64 {
	n := len(amp.Magnitude) - 1
	if n < 1 {
		return 0
	}

	var sumLin, sumLog float64
	for i := 1; i <= n; i++ {
		v := amp.Magnitude[i]
		if v <= 0 {
			return 0
		}
		sumLin += v
		sumLog += math.Log(v)
	}
	return math.Exp(sumLog/float64(n)) / (sumLin / float64(n))
}

// MeanPeriod returns the squared-amplitude weighted mean of 1/f over the
// MeanPeriodLow..MeanPeriodHigh band, or zero when the band holds no energy.
func MeanPeriod(amp spectrum.Amplitude) float64 {
	var num, den float64
	for i := 1; i < len(amp.Magnitude); i++ {
		f := amp.Frequency[i]
		if f < MeanPeriodLow || f > MeanPeriodHigh {
			continue
		}
		c2 := amp.Magnitude[i] * amp.Magnitude[i]
		num += c2 / f
		den += c2
	}
	if den == 0 {
		return 0
	}
	return num / den
}
