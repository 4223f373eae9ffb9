package arrival

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-seismic/dsp/core"
)

// Default trigger parameters.
const (
	DefaultShortWindow = 0.5
	DefaultLongWindow  = 5.0
	DefaultTrigger     = 3.0
)

// Errors returned for invalid trigger parameters.
var (
	ErrInvalidSampleRate = fmt.Errorf("arrival: sample rate must be > 0: %w", core.ErrInvalidInput)
	ErrInvalidWindow     = fmt.Errorf("arrival: windows must satisfy 0 < short < long: %w", core.ErrInvalidInput)
	ErrInvalidTrigger    = fmt.Errorf("arrival: trigger ratio must be > 0: %w", core.ErrInvalidInput)
)

// Config holds window lengths in seconds and the trigger ratio.
type Config struct {
	ShortWindow float64 `json:"short_window" yaml:"short_window"`
	LongWindow  float64 `json:"long_window" yaml:"long_window"`
	Trigger     float64 `json:"trigger" yaml:"trigger"`
}

// DefaultConfig returns 0.5 s / 5 s windows with a trigger of 3.
func DefaultConfig() Config {
	return Config{
		ShortWindow: DefaultShortWindow,
		LongWindow:  DefaultLongWindow,
		Trigger:     DefaultTrigger,
	}
}

// Validate checks window ordering and the trigger ratio.
func (c Config) Validate() error {
	if !(c.ShortWindow > 0) || !(c.LongWindow > c.ShortWindow) || !core.IsFinite(c.LongWindow) {
		return fmt.Errorf("%w: short=%v long=%v", ErrInvalidWindow, c.ShortWindow, c.LongWindow)
	}
	if !(c.Trigger > 0) || !core.IsFinite(c.Trigger) {
		return fmt.Errorf("%w: %v", ErrInvalidTrigger, c.Trigger)
	}
	return nil
}

// windows converts the configured durations to sample counts.
func (c Config) windows(sampleRate float64) (short, long int) {
	short = max(1, int(math.Round(c.ShortWindow*sampleRate)))
	long = max(short+1, int(math.Round(c.LongWindow*sampleRate)))
	return short, long
}

// STALTA returns the STA/LTA ratio for every sample of x.
func STALTA(x []float64, sampleRate float64, cfg Config) ([]float64, error) {
	if !(sampleRate > 0) || !core.IsFinite(sampleRate) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ns, nl := cfg.windows(sampleRate)
	out := make([]float64, len(x))
	if len(x) < nl {
		return out, nil
	}

	// Running energy; cum[i] is the sum of x[:i]^2.
	cum := make([]float64, len(x)+1)
	for i, v := range x {
		cum[i+1] = cum[i] + v*v
	}

	for i := nl - 1; i < len(x); i++ {
		lta := (cum[i+1] - cum[i+1-nl]) / float64(nl)
		if lta <= 0 {
			continue
		}
		sta := (cum[i+1] - cum[i+1-ns]) / float64(ns)
		out[i] = sta / lta
	}
	return out, nil
}

// Arrival is the first trigger of the STA/LTA detector. Index is
// NoArrival and Time is zero when the ratio never reaches the trigger.
type Arrival struct {
	Index int     `json:"index" yaml:"index"`
	Time  float64 `json:"time" yaml:"time"`
	Ratio float64 `json:"ratio" yaml:"ratio"`
	Found bool    `json:"found" yaml:"found"`
}

// NoArrival is the index reported when nothing triggers.
const NoArrival = -1

// Pick returns the first sample whose STA/LTA ratio reaches cfg.Trigger.
// Time is measured from the first sample.
func Pick(x []float64, sampleRate float64, cfg Config) (Arrival, error) {
	ratio, err := STALTA(x, sampleRate, cfg)
	if err != nil {
		return Arrival{}, err
	}
	for i, r := range ratio {
		if r >= cfg.Trigger {
			return Arrival{
				Index: i,
				Time:  float64(i) / sampleRate,
				Ratio: r,
				Found: true,
			}, nil
		}
	}
	return Arrival{Index: NoArrival}, nil
}
