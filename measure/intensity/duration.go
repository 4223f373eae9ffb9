package intensity

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-seismic/dsp/core"
)

// DefaultBracketRatio is the fraction of PGA used as bracketed-duration
// threshold.
const DefaultBracketRatio = 0.05

// NoExceedance is the index reported when no sample reaches the threshold.
const NoExceedance = -1

// ErrInvalidRatio is returned for a threshold ratio outside (0, 1].
var ErrInvalidRatio = fmt.Errorf("intensity: threshold ratio must be in (0,1]: %w", core.ErrInvalidInput)

// Bracket is a bracketed-duration measurement. When Found is false the
// indices are NoExceedance, Start and End are zero and Duration is zero.
type Bracket struct {
	Threshold  float64 `json:"threshold" yaml:"threshold"`
	Ratio      float64 `json:"ratio" yaml:"ratio"`
	FirstIndex int     `json:"first_index" yaml:"first_index"`
	LastIndex  int     `json:"last_index" yaml:"last_index"`
	Start      float64 `json:"start" yaml:"start"`
	End        float64 `json:"end" yaml:"end"`
	Duration   float64 `json:"duration" yaml:"duration"`
	Found      bool    `json:"found" yaml:"found"`
}

// BracketedDuration locates the first and last samples with
// |acc| >= ratio*max|acc| and returns the time span between them.
func BracketedDuration(time, acc []float64, ratio float64) (Bracket, error) {
	if len(time) != len(acc) {
		return Bracket{}, fmt.Errorf("intensity: time and acceleration length mismatch: %d != %d: %w",
			len(time), len(acc), core.ErrInvalidInput)
	}
	if !(ratio > 0 && ratio <= 1) {
		return Bracket{}, fmt.Errorf("%w: %v", ErrInvalidRatio, ratio)
	}

	pga, _ := PeakAbs(acc)
	b := Bracket{
		Threshold:  ratio * pga,
		Ratio:      ratio,
		FirstIndex: NoExceedance,
		LastIndex:  NoExceedance,
	}
	if pga == 0 {
		return b, nil
	}

	for i, v := range acc {
		if math.Abs(v) >= b.Threshold {
			if b.FirstIndex == NoExceedance {
				b.FirstIndex = i
			}
			b.LastIndex = i
		}
	}
	if b.FirstIndex == NoExceedance {
		return b, nil
	}

	b.Found = true
	b.Start = time[b.FirstIndex]
	b.End = time[b.LastIndex]
	b.Duration = b.End - b.Start
	return b, nil
}
