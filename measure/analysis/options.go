package analysis

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-seismic/dsp/core"
	"github.com/cwbudde/algo-seismic/dsp/fft"
	"github.com/cwbudde/algo-seismic/measure/arrival"
	"github.com/cwbudde/algo-seismic/measure/intensity"
	"github.com/cwbudde/algo-seismic/measure/response"
)

// DefaultCornerFrequency is the Boore high-pass corner in Hz.
const DefaultCornerFrequency = 0.05

// Config holds the parameters shared by every record an Analyzer sees.
type Config struct {
	// CornerFrequency of the high-pass filter in Hz.
	CornerFrequency float64

	// SampleRate overrides the rate derived from the time stamps when > 0.
	SampleRate float64

	Damping      float64
	BracketRatio float64

	// Periods for the response spectrum; nil selects the default grid.
	Periods []float64

	Arrival arrival.Config

	// FourierSmoothing smooths the reported Fourier spectrum over
	// 1/FourierSmoothing-octave bands; 0 reports it raw.
	FourierSmoothing int

	// Transformer is the FFT backend; nil selects fft.Radix2.
	Transformer fft.Transformer

	// Workers bounds the period sweep; <= 0 selects GOMAXPROCS.
	Workers int

	Logger zerolog.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the standard processing parameters.
func DefaultConfig() Config {
	return Config{
		CornerFrequency: DefaultCornerFrequency,
		Damping:         response.DefaultDamping,
		BracketRatio:    intensity.DefaultBracketRatio,
		Arrival:         arrival.DefaultConfig(),
		Transformer:     fft.Radix2{},
		Logger:          zerolog.Nop(),
	}
}

// WithCornerFrequency sets the high-pass corner in Hz.
func WithCornerFrequency(fc float64) Option {
	return func(cfg *Config) { cfg.CornerFrequency = fc }
}

// WithSampleRate fixes the sample rate instead of deriving it from time.
func WithSampleRate(fs float64) Option {
	return func(cfg *Config) { cfg.SampleRate = fs }
}

// WithDamping sets the oscillator damping ratio.
func WithDamping(zeta float64) Option {
	return func(cfg *Config) { cfg.Damping = zeta }
}

// WithBracketRatio sets the bracketed-duration threshold as a fraction of PGA.
func WithBracketRatio(ratio float64) Option {
	return func(cfg *Config) { cfg.BracketRatio = ratio }
}

// WithPeriods sets the response-spectrum period grid.
func WithPeriods(periods []float64) Option {
	return func(cfg *Config) { cfg.Periods = core.Clone(periods) }
}

// WithArrival sets the STA/LTA trigger parameters.
func WithArrival(ac arrival.Config) Option {
	return func(cfg *Config) { cfg.Arrival = ac }
}

// WithFourierSmoothing smooths the reported Fourier amplitude spectrum over
// 1/fraction-octave bands. Site frequency and spectral statistics always use
// the raw spectrum.
func WithFourierSmoothing(fraction int) Option {
	return func(cfg *Config) { cfg.FourierSmoothing = fraction }
}

// WithTransformer selects the FFT backend.
func WithTransformer(t fft.Transformer) Option {
	return func(cfg *Config) {
		if t != nil {
			cfg.Transformer = t
		}
	}
}

// WithWorkers bounds the concurrency of the period sweep.
func WithWorkers(n int) Option {
	return func(cfg *Config) { cfg.Workers = n }
}

// WithLogger sets the logger used for stage timings.
func WithLogger(l zerolog.Logger) Option {
	return func(cfg *Config) { cfg.Logger = l }
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate checks the record-independent parameters.
func (c Config) Validate() error {
	if !(c.CornerFrequency > 0) || !core.IsFinite(c.CornerFrequency) {
		return fmt.Errorf("analysis: corner frequency must be > 0, got %v: %w", c.CornerFrequency, core.ErrInvalidInput)
	}
	if c.SampleRate < 0 || !core.IsFinite(c.SampleRate) {
		return fmt.Errorf("analysis: sample rate must be >= 0, got %v: %w", c.SampleRate, core.ErrInvalidInput)
	}
	if !(c.Damping >= 0) || !core.IsFinite(c.Damping) {
		return fmt.Errorf("%w: %v", response.ErrInvalidDamping, c.Damping)
	}
	if !(c.BracketRatio > 0 && c.BracketRatio <= 1) {
		return fmt.Errorf("%w: %v", intensity.ErrInvalidRatio, c.BracketRatio)
	}
	if c.FourierSmoothing < 0 {
		return fmt.Errorf("analysis: fourier smoothing must be >= 0, got %d: %w", c.FourierSmoothing, core.ErrInvalidInput)
	}
	return c.Arrival.Validate()
}
