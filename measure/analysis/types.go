package analysis

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-seismic/dsp/core"
	"github.com/cwbudde/algo-seismic/dsp/spectrum"
	"github.com/cwbudde/algo-seismic/measure/arrival"
	"github.com/cwbudde/algo-seismic/measure/intensity"
	"github.com/cwbudde/algo-seismic/measure/response"
	"github.com/cwbudde/algo-seismic/stats/motion"
	"github.com/cwbudde/algo-seismic/stats/spectral"
)

const minSamples = 2

// Errors returned for malformed records.
var (
	ErrTooShort         = fmt.Errorf("analysis: series needs at least %d samples: %w", minSamples, core.ErrInvalidInput)
	ErrLengthMismatch   = fmt.Errorf("analysis: time and value lengths differ: %w", core.ErrInvalidInput)
	ErrNonMonotonicTime = fmt.Errorf("analysis: time must be strictly increasing: %w", core.ErrInvalidInput)
	ErrNonFinite        = fmt.Errorf("analysis: series contains NaN or Inf: %w", core.ErrInvalidInput)
	ErrInvalidDirection = fmt.Errorf("analysis: unknown direction: %w", core.ErrInvalidInput)
)

// TimeSeries is an acceleration record in cm/s² with time stamps in seconds.
type TimeSeries struct {
	Time   []float64 `json:"time" yaml:"time"`
	Values []float64 `json:"values" yaml:"values"`
}

// NewTimeSeries copies time and values and validates the result.
func NewTimeSeries(time, values []float64) (TimeSeries, error) {
	ts := TimeSeries{Time: core.Clone(time), Values: core.Clone(values)}
	if err := ts.Validate(); err != nil {
		return TimeSeries{}, err
	}
	return ts, nil
}

// UniformTimeSeries builds a series starting at t=0 with spacing dt.
func UniformTimeSeries(values []float64, dt float64) (TimeSeries, error) {
	if !(dt > 0) || !core.IsFinite(dt) {
		return TimeSeries{}, fmt.Errorf("%w: dt=%v", ErrNonMonotonicTime, dt)
	}
	time := make([]float64, len(values))
	for i := range time {
		time[i] = float64(i) * dt
	}
	return NewTimeSeries(time, values)
}

// Validate checks length, ordering and finiteness.
func (ts TimeSeries) Validate() error {
	if len(ts.Time) != len(ts.Values) {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(ts.Time), len(ts.Values))
	}
	if len(ts.Values) < minSamples {
		return fmt.Errorf("%w: got %d", ErrTooShort, len(ts.Values))
	}
	if !core.AllFinite(ts.Time) || !core.AllFinite(ts.Values) {
		return ErrNonFinite
	}
	for i := 1; i < len(ts.Time); i++ {
		if ts.Time[i] <= ts.Time[i-1] {
			return fmt.Errorf("%w: t[%d]=%v after t[%d]=%v", ErrNonMonotonicTime, i, ts.Time[i], i-1, ts.Time[i-1])
		}
	}
	return nil
}

// Len returns the number of samples.
func (ts TimeSeries) Len() int { return len(ts.Values) }

// DT returns the mean sampling interval.
func (ts TimeSeries) DT() float64 {
	n := len(ts.Time)
	if n < minSamples {
		return 0
	}
	return (ts.Time[n-1] - ts.Time[0]) / float64(n-1)
}

// SampleRate returns 1/DT.
func (ts TimeSeries) SampleRate() float64 {
	dt := ts.DT()
	if dt == 0 {
		return 0
	}
	return 1 / dt
}

// Direction is the sensor component of a record.
type Direction string

// Components of a three-axis station.
const (
	East  Direction = "E"
	North Direction = "N"
	Up    Direction = "U"
)

// ParseDirection accepts E/N/U in either case, plus the long names.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "E", "EAST", "EW":
		return East, nil
	case "N", "NORTH", "NS":
		return North, nil
	case "U", "UP", "Z", "UD", "VERTICAL":
		return Up, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// Record is one component of a station recording.
type Record struct {
	ID        string     `json:"id" yaml:"id"`
	Direction Direction  `json:"direction" yaml:"direction"`
	Series    TimeSeries `json:"series" yaml:"series"`
}

// Result is the outcome of analysing one record. It is built once and not
// modified afterwards.
type Result struct {
	ID        string    `json:"id,omitempty" yaml:"id,omitempty"`
	Direction Direction `json:"direction,omitempty" yaml:"direction,omitempty"`

	SampleRate      float64 `json:"sample_rate" yaml:"sample_rate"`
	CornerFrequency float64 `json:"corner_frequency" yaml:"corner_frequency"`

	intensity.Peaks `yaml:",inline"`
	RawPGA          float64 `json:"raw_pga" yaml:"raw_pga"`

	Acceleration []float64 `json:"acceleration,omitempty" yaml:"acceleration,omitempty"`
	Velocity     []float64 `json:"velocity,omitempty" yaml:"velocity,omitempty"`
	Displacement []float64 `json:"displacement,omitempty" yaml:"displacement,omitempty"`

	BracketedDuration intensity.Bracket       `json:"bracketed_duration" yaml:"bracketed_duration"`
	SiteFrequency     intensity.SiteFrequency `json:"site_frequency" yaml:"site_frequency"`
	Arias             intensity.Arias         `json:"arias_intensity" yaml:"arias_intensity"`
	Fourier           spectrum.Amplitude      `json:"fourier_spectrum" yaml:"fourier_spectrum"`
	Arrival           arrival.Arrival         `json:"arrival" yaml:"arrival"`
	ResponseSpectrum  response.Spectrum       `json:"response_spectrum" yaml:"response_spectrum"`

	Motion   motion.Stats   `json:"motion_stats" yaml:"motion_stats"`
	Spectral spectral.Stats `json:"spectral_stats" yaml:"spectral_stats"`
}
