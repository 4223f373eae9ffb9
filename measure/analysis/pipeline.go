package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-seismic/dsp/filter/boore"
	"github.com/cwbudde/algo-seismic/dsp/integrate"
	"github.com/cwbudde/algo-seismic/dsp/spectrum"
	"github.com/cwbudde/algo-seismic/measure/arrival"
	"github.com/cwbudde/algo-seismic/measure/intensity"
	"github.com/cwbudde/algo-seismic/measure/response"
	"github.com/cwbudde/algo-seismic/stats/motion"
	"github.com/cwbudde/algo-seismic/stats/spectral"
)

// cmToSI converts cm/s² to m/s².
const cmToSI = 0.01

// Analyzer runs the processing chain with a fixed Config. It holds no
// per-record state and is safe for concurrent use.
type Analyzer struct {
	cfg Config
}

// New validates the configuration built from opts and returns an Analyzer.
func New(opts ...Option) (*Analyzer, error) {
	cfg := ApplyOptions(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Analyzer{cfg: cfg}, nil
}

// Config returns the analyzer configuration.
func (a *Analyzer) Config() Config { return a.cfg }

// AnalyzeRecord analyses rec.Series and tags the result with the record
// identity.
func (a *Analyzer) AnalyzeRecord(ctx context.Context, rec Record) (Result, error) {
	res, err := a.Analyze(ctx, rec.Series)
	if err != nil {
		return Result{}, fmt.Errorf("analysis: record %q (%s): %w", rec.ID, rec.Direction, err)
	}
	res.ID = rec.ID
	res.Direction = rec.Direction
	return res, nil
}

// Analyze runs the full chain on ts. The input slices are not modified.
func (a *Analyzer) Analyze(ctx context.Context, ts TimeSeries) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := ts.Validate(); err != nil {
		return Result{}, err
	}

	log := a.cfg.Logger.With().Int("samples", ts.Len()).Logger()
	started := time.Now()

	fs := a.cfg.SampleRate
	if fs == 0 {
		fs = ts.SampleRate()
	}
	res := Result{SampleRate: fs, CornerFrequency: a.cfg.CornerFrequency}

	filter, err := boore.New(boore.Config{SampleRate: fs, CornerFrequency: a.cfg.CornerFrequency}, a.cfg.Transformer)
	if err != nil {
		return Result{}, err
	}
	acc, err := filter.Apply(ts.Values)
	if err != nil {
		return Result{}, err
	}
	log.Debug().Dur("elapsed", time.Since(started)).Msg("high-pass done")

	vel, disp, err := integrate.Twice(ts.Time, acc)
	if err != nil {
		return Result{}, err
	}
	res.Acceleration, res.Velocity, res.Displacement = acc, vel, disp
	res.Peaks = intensity.PeakValues(acc, vel, disp)
	res.RawPGA, _ = intensity.PeakAbs(ts.Values)

	res.BracketedDuration, err = intensity.BracketedDuration(ts.Time, ts.Values, a.cfg.BracketRatio)
	if err != nil {
		return Result{}, err
	}

	res.Fourier, err = spectrum.FourierAmplitude(a.cfg.Transformer, acc, fs)
	if err != nil {
		return Result{}, err
	}
	res.SiteFrequency = intensity.DominantFrequency(res.Fourier)
	res.Spectral = spectral.Calculate(res.Fourier)
	if a.cfg.FourierSmoothing > 0 {
		res.Fourier, err = res.Fourier.Smoothed(a.cfg.FourierSmoothing)
		if err != nil {
			return Result{}, err
		}
	}

	res.Motion, err = motion.Calculate(ts.Time, acc)
	if err != nil {
		return Result{}, err
	}

	res.Arias, err = intensity.AriasIntensity(ts.Time, acc)
	if err != nil {
		return Result{}, err
	}

	res.Arrival, err = arrival.Pick(acc, fs, a.cfg.Arrival)
	if err != nil {
		return Result{}, err
	}
	if res.Arrival.Found {
		res.Arrival.Time = ts.Time[res.Arrival.Index]
	}
	log.Debug().Dur("elapsed", time.Since(started)).Msg("intensity measures done")

	res.ResponseSpectrum, err = response.Compute(ctx, toSI(acc), ts.DT(), response.Config{
		Damping: a.cfg.Damping,
		Periods: a.cfg.Periods,
		Workers: a.cfg.Workers,
	})
	if err != nil {
		return Result{}, err
	}
	if err := res.ResponseSpectrum.DegenerateErr(); err != nil {
		log.Warn().Err(err).Msg("degenerate oscillator periods")
	}

	log.Debug().
		Dur("elapsed", time.Since(started)).
		Float64("pga", res.PGA).
		Float64("site_frequency", res.SiteFrequency.Frequency).
		Msg("analysis done")

	return res, nil
}

// toSI is the single point where acceleration leaves cm/s² for the
// response spectrum.
func toSI(accCm []float64) []float64 {
	out := make([]float64, len(accCm))
	vecmath.ScaleBlock(out, accCm, cmToSI)
	return out
}
