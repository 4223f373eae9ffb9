// Package motion computes time-domain statistics of a ground-motion record.
package motion

import (
	"math"

	"github.com/cwbudde/algo-seismic/dsp/integrate"
)

// Stats holds time-domain statistics of an acceleration record.
type Stats struct {
	Length    int     `json:"length" yaml:"length"`
	Mean      float64 `json:"mean" yaml:"mean"`
	RMS       float64 `json:"rms" yaml:"rms"`
	Peak      float64 `json:"peak" yaml:"peak"`
	PeakIndex int     `json:"peak_index" yaml:"peak_index"`

	CrestFactor   float64 `json:"crest_factor" yaml:"crest_factor"` // peak / RMS
	ZeroCrossings int     `json:"zero_crossings" yaml:"zero_crossings"`

	// ZeroCrossingPeriod is twice the record duration divided by the number
	// of zero crossings, or zero without crossings.
	ZeroCrossingPeriod float64 `json:"zero_crossing_period" yaml:"zero_crossing_period"`

	// CAV is the cumulative absolute velocity, the time integral of |a|.
	CAV float64 `json:"cav" yaml:"cav"`

	Variance float64 `json:"variance" yaml:"variance"`
	Skewness float64 `json:"skewness" yaml:"skewness"`
	Kurtosis float64 `json:"kurtosis" yaml:"kurtosis"` // excess
}

// Calculate computes all statistics of acc sampled at time. Moments use
// Welford's online update.
func Calculate(time, acc []float64) (Stats, error) {
	abs := make([]float64, len(acc))
	for i, v := range acc {
		abs[i] = math.Abs(v)
	}
	cav, err := integrate.Trapezoid(time, abs)
	if err != nil {
		return Stats{}, err
	}

	st := Stats{Length: len(acc), PeakIndex: -1, CAV: cav}

	var m welford
	var sumSq float64
	for i, x := range acc {
		m.add(x)
		sumSq += x * x
		if abs[i] > st.Peak || st.PeakIndex < 0 {
			st.Peak, st.PeakIndex = abs[i], i
		}
		if i > 0 && acc[i-1]*x < 0 {
			st.ZeroCrossings++
		}
	}

	st.RMS = math.Sqrt(sumSq / float64(len(acc)))
	if st.RMS > 0 {
		st.CrestFactor = st.Peak / st.RMS
	}
	if st.ZeroCrossings > 0 {
		st.ZeroCrossingPeriod = 2 * (time[len(time)-1] - time[0]) / float64(st.ZeroCrossings)
	}
	st.Mean, st.Variance, st.Skewness, st.Kurtosis = m.result()
	return st, nil
}

// RMS returns the root-mean-square of x.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	var sumSq float64
	for _, v := range x {
		sumSq += v * v
	}
	return math.Sqrt(sumSq / float64(len(x)))
}

// ZeroCrossings counts sign changes between consecutive samples.
func ZeroCrossings(x []float64) int {
	var count int
	for i := 1; i < len(x); i++ {
		if x[i-1]*x[i] < 0 {
			count++
		}
	}
	return count
}

// Moments returns the mean, population variance, skewness and excess
// kurtosis of x.
func Moments(x []float64) (mean, variance, skewness, kurtosis float64) {
	var m welford
	for _, v := range x {
		m.add(v)
	}
	return m.result()
}

// welford accumulates central moments up to the fourth order.
type welford struct {
	n          int
	mean       float64
	m2, m3, m4 float64
}

func (w *welford) add(x float64) {
	prev := float64(w.n)
	w.n++
	n := float64(w.n)

	delta := x - w.mean
	deltaN := delta / n
	deltaN2 := deltaN * deltaN
	term1 := delta * deltaN * prev

	// m4 before m3 before m2.
	w.m4 += term1*deltaN2*(n*n-3*n+3) + 6*deltaN2*w.m2 - 4*deltaN*w.m3
	w.m3 += term1*deltaN*(n-2) - 3*deltaN*w.m2
	w.m2 += term1
	w.mean += deltaN
}

func (w *welford) result() (mean, variance, skewness, kurtosis float64) {
	if w.n == 0 {
		return 0, 0, 0, 0
	}
	n := float64(w.n)
	variance = w.m2 / n
	if variance > 0 {
		skewness = (w.m3 / n) / (variance * math.Sqrt(variance))
		kurtosis = (w.m4/n)/(variance*variance) - 3
	}
	return w.mean, variance, skewness, kurtosis
}
