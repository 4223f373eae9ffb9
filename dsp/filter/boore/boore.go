package boore

import (
	"fmt"

	"github.com/cwbudde/algo-seismic/dsp/core"
	"github.com/cwbudde/algo-seismic/dsp/detrend"
	"github.com/cwbudde/algo-seismic/dsp/fft"
)

// Errors returned for invalid filter parameters.
var (
	ErrInvalidSampleRate      = fmt.Errorf("boore: sample rate must be > 0: %w", core.ErrInvalidInput)
	ErrInvalidCornerFrequency = fmt.Errorf("boore: corner frequency must be > 0: %w", core.ErrInvalidInput)
)

// Config holds the high-pass parameters. A corner at or above SampleRate/2
// is accepted and removes (almost) everything.
type Config struct {
	SampleRate      float64 `json:"sample_rate" yaml:"sample_rate"`
	CornerFrequency float64 `json:"corner_frequency" yaml:"corner_frequency"`
}

// Validate checks that both frequencies are positive and finite.
func (c Config) Validate() error {
	if !(c.SampleRate > 0) || !core.IsFinite(c.SampleRate) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, c.SampleRate)
	}
	if !(c.CornerFrequency > 0) || !core.IsFinite(c.CornerFrequency) {
		return fmt.Errorf("%w: %v", ErrInvalidCornerFrequency, c.CornerFrequency)
	}
	return nil
}

// Filter applies a Boore high-pass with a fixed configuration.
type Filter struct {
	cfg Config
	fft fft.Transformer
}

// New validates cfg and returns a Filter. A nil transformer selects
// [fft.Radix2].
func New(cfg Config, t fft.Transformer) (*Filter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if t == nil {
		t = fft.Radix2{}
	}
	return &Filter{cfg: cfg, fft: t}, nil
}

// Config returns the filter configuration.
func (f *Filter) Config() Config { return f.cfg }

// HighPass is a one-shot filter run with the radix-2 backend.
func HighPass(data []float64, sampleRate, cornerFrequency float64) ([]float64, error) {
	f, err := New(Config{SampleRate: sampleRate, CornerFrequency: cornerFrequency}, nil)
	if err != nil {
		return nil, err
	}
	return f.Apply(data)
}

// Apply filters data and returns a new slice of the same length.
func (f *Filter) Apply(data []float64) ([]float64, error) {
	if len(data) == 0 {
		return []float64{}, nil
	}

	spec, err := f.fft.Forward(fft.FromReal(detrend.Linear(data)))
	if err != nil {
		return nil, err
	}

	mask := Mask(len(spec), f.cfg.SampleRate, f.cfg.CornerFrequency)

	out, err := f.fft.Inverse(spec.MulReal(mask))
	if err != nil {
		return nil, err
	}
	return out.Real(len(data)), nil
}

// Mask returns the binary high-pass gains for an n-point transform:
// 1 where i*fs/n >= fc, 0 otherwise, mirrored about the Nyquist bin so that
// mask[i] == mask[n-i] for every bin past it.
func Mask(n int, sampleRate, cornerFrequency float64) []float64 {
	mask := make([]float64, n)
	if n == 0 {
		return mask
	}

	df := sampleRate / float64(n)
	for i := range mask {
		if float64(i)*df >= cornerFrequency {
			mask[i] = 1
		}
	}

	start := (n + 1) / 2
	if n%2 == 0 {
		start = n/2 + 1
	}
	for i := start; i < n; i++ {
		mask[i] = mask[n-i]
	}
	return mask
}
