package testutil

import (
	"math"
	"math/rand"
)

// TimeAxis returns n uniformly spaced time stamps starting at 0.
func TimeAxis(n int, dt float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) * dt
	}
	return out
}

// DeterministicSine generates amplitude*sin(2*pi*freqHz*t) sampled at sampleRate.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// SymmetricPulse returns a ground acceleration record of length n that is
// quiet for lead samples, +amplitude for width samples, -amplitude for width
// samples and quiet afterwards. Ground velocity returns to zero after the
// pulse and displacement settles at amplitude*(width*dt)^2.
func SymmetricPulse(n, lead, width int, amplitude float64) []float64 {
	out := make([]float64, n)
	for i := lead; i < lead+width && i < n; i++ {
		out[i] = amplitude
	}
	for i := lead + width; i < lead+2*width && i < n; i++ {
		out[i] = -amplitude
	}
	return out
}

// GaussianWavelet returns a sine carrier at freqHz under a Gaussian envelope
// centred at center seconds, a smooth stand-in for a strong-motion record.
func GaussianWavelet(freqHz, sampleRate, amplitude, center float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		t := float64(i) / sampleRate
		env := math.Exp(-(t - center) * (t - center))
		out[i] = amplitude * env * math.Sin(2*math.Pi*freqHz*t)
	}
	return out
}
