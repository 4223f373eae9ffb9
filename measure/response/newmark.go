package response

import (
	"math"

	"github.com/cwbudde/algo-seismic/dsp/core"
)

const (
	newmarkBeta  = 0.25
	newmarkGamma = 0.5
)

// Response is the peak response of one oscillator.
type Response struct {
	Period float64 `json:"period" yaml:"period"`
	SD     float64 `json:"sd" yaml:"sd"`
	PSV    float64 `json:"psv" yaml:"psv"`
	PSA    float64 `json:"psa" yaml:"psa"`

	// Degenerate is set when the oscillator could not be integrated and the
	// peaks were replaced by zero.
	Degenerate bool `json:"degenerate,omitempty" yaml:"degenerate,omitempty"`
}

// coefficients are the Newmark integration constants for one time step.
type coefficients struct {
	a0, a1, a2, a3, a4, a5 float64
}

func newCoefficients(dt float64) coefficients {
	b, g := newmarkBeta, newmarkGamma
	return coefficients{
		a0: 1 / (b * dt * dt),
		a1: g / (b * dt),
		a2: 1 / (b * dt),
		a3: 1/(2*b) - 1,
		a4: g/b - 1,
		a5: dt * (g/(2*b) - 1),
	}
}

// Oscillator integrates a unit-mass SDOF oscillator with natural period
// period and damping ratio damping under ground acceleration ag sampled at
// dt, and returns its peak responses.
//
// A non-positive period, a non-finite or non-positive effective stiffness,
// or a non-finite final state produce a zero response flagged Degenerate.
func Oscillator(ag []float64, dt, damping, period float64) Response {
	res := Response{Period: period}
	if len(ag) == 0 {
		return res
	}
	if !(period > 0) {
		res.Degenerate = true
		return res
	}

	const m = 1.0
	omega := 2 * math.Pi / period
	k := m * omega * omega
	c := 2 * damping * m * omega

	co := newCoefficients(dt)
	kEff := k + co.a0*m + co.a1*c
	if !core.IsFinite(kEff) || kEff <= 0 {
		res.Degenerate = true
		return res
	}

	// Incremental-form multipliers for the previous velocity and
	// acceleration.
	velTerm := co.a2*m + (co.a4+1)*c
	accTerm := (co.a3+1)*m + co.a5*c

	// Start at rest; initial relative acceleration from equilibrium.
	u, v := 0.0, 0.0
	acc := -ag[0]

	sd, sv := 0.0, 0.0
	sa := math.Abs(acc + ag[0])

	for j := 1; j < len(ag); j++ {
		dp := -m * (ag[j] - ag[j-1])
		rhs := dp + velTerm*v + accTerm*acc

		du := rhs / kEff
		dv := co.a1*du - (co.a4+1)*v - co.a5*acc
		da := co.a0*du - co.a2*v - (co.a3+1)*acc

		u += du
		v += dv
		acc += da

		if a := math.Abs(u); a > sd {
			sd = a
		}
		if a := math.Abs(v); a > sv {
			sv = a
		}
		if a := math.Abs(acc + ag[j]); a > sa {
			sa = a
		}
	}

	if !core.IsFinite(u) || !core.IsFinite(v) || !core.IsFinite(acc) ||
		!core.IsFinite(sd) || !core.IsFinite(sv) || !core.IsFinite(sa) {
		res.Degenerate = true
		return res
	}

	res.SD, res.PSV, res.PSA = sd, sv, sa
	return res
}
