package response

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-seismic/dsp/core"
)

const (
	// DefaultDamping is the damping ratio used when none is configured.
	DefaultDamping = 0.05

	defaultPeriodStart = 0.01
	defaultPeriodStep  = 0.02
	defaultPeriodCount = 500
)

// Errors returned by Compute.
var (
	ErrEmptyInput     = fmt.Errorf("response: empty ground acceleration: %w", core.ErrInvalidInput)
	ErrInvalidStep    = fmt.Errorf("response: time step must be > 0: %w", core.ErrInvalidInput)
	ErrInvalidDamping = fmt.Errorf("response: damping ratio must be >= 0: %w", core.ErrInvalidInput)
)

// DefaultPeriods returns the 500-point grid 0.01, 0.03, ..., 9.99 s.
func DefaultPeriods() []float64 {
	out := make([]float64, defaultPeriodCount)
	for i := range out {
		out[i] = defaultPeriodStart + defaultPeriodStep*float64(i)
	}
	return out
}

// Config controls a spectrum sweep.
type Config struct {
	// Damping is the ratio of critical damping shared by every period.
	Damping float64

	// Periods in seconds; nil selects DefaultPeriods.
	Periods []float64

	// Workers bounds concurrent periods; <= 0 selects GOMAXPROCS.
	Workers int
}

// Spectrum is a response spectrum over a period grid.
type Spectrum struct {
	Damping float64   `json:"damping" yaml:"damping"`
	Periods []float64 `json:"periods" yaml:"periods"`
	SD      []float64 `json:"sd" yaml:"sd"`
	PSV     []float64 `json:"psv" yaml:"psv"`
	PSA     []float64 `json:"psa" yaml:"psa"`

	// Degenerate lists the periods whose oscillator broke down and were
	// reported as zero.
	Degenerate []float64 `json:"degenerate,omitempty" yaml:"degenerate,omitempty"`
}

// At returns the response at period index i.
func (s Spectrum) At(i int) Response {
	return Response{Period: s.Periods[i], SD: s.SD[i], PSV: s.PSV[i], PSA: s.PSA[i]}
}

// DegenerateErr reports the degenerate periods as an error wrapping
// core.ErrNumericDegeneracy, or nil when every period was integrated.
func (s Spectrum) DegenerateErr() error {
	if len(s.Degenerate) == 0 {
		return nil
	}
	return fmt.Errorf("response: %d period(s) replaced by zero %v: %w",
		len(s.Degenerate), s.Degenerate, core.ErrNumericDegeneracy)
}

// Compute sweeps the oscillator over cfg.Periods. Periods run concurrently;
// each writes only its own slot. ctx is observed between periods and its
// error is returned on cancellation.
func Compute(ctx context.Context, ag []float64, dt float64, cfg Config) (Spectrum, error) {
	if len(ag) == 0 {
		return Spectrum{}, ErrEmptyInput
	}
	if !(dt > 0) || !core.IsFinite(dt) {
		return Spectrum{}, fmt.Errorf("%w: %v", ErrInvalidStep, dt)
	}
	if !(cfg.Damping >= 0) || !core.IsFinite(cfg.Damping) {
		return Spectrum{}, fmt.Errorf("%w: %v", ErrInvalidDamping, cfg.Damping)
	}

	periods := cfg.Periods
	if periods == nil {
		periods = DefaultPeriods()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Response, len(periods))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, period := range periods {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = Oscillator(ag, dt, cfg.Damping, period)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Spectrum{}, err
	}
	if err := ctx.Err(); err != nil {
		return Spectrum{}, err
	}

	out := Spectrum{
		Damping: cfg.Damping,
		Periods: core.Clone(periods),
		SD:      make([]float64, len(periods)),
		PSV:     make([]float64, len(periods)),
		PSA:     make([]float64, len(periods)),
	}
	for i, r := range results {
		out.SD[i], out.PSV[i], out.PSA[i] = r.SD, r.PSV, r.PSA
		if r.Degenerate {
			out.Degenerate = append(out.Degenerate, r.Period)
		}
	}
	return out, nil
}
