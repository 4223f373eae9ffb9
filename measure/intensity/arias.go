package intensity

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-seismic/dsp/integrate"
)

const (
	// Gravity is the standard gravitational acceleration in m/s².
	Gravity = 9.81

	cmToM = 0.01
	mToCm = 100
)

// Arias holds the Arias intensity of a record in cm/s.
type Arias struct {
	Total float64   `json:"total" yaml:"total"`
	Curve []float64 `json:"curve" yaml:"curve"`

	// Times at which the cumulative curve reaches 5% and 95% of Total, and
	// the significant duration between them. All zero when Total is zero.
	T05                 float64 `json:"t05" yaml:"t05"`
	T95                 float64 `json:"t95" yaml:"t95"`
	SignificantDuration float64 `json:"significant_duration" yaml:"significant_duration"`
}

// AriasIntensity computes AI(t) = (pi/2g) * integral of a(t)² with the
// acceleration converted from cm/s² to m/s²; the result is reported in cm/s.
func AriasIntensity(time, accCm []float64) (Arias, error) {
	acc := make([]float64, len(accCm))
	vecmath.ScaleBlock(acc, accCm, cmToM)

	sq := make([]float64, len(acc))
	vecmath.MulBlock(sq, acc, acc)

	curve, err := integrate.CumulativeTrapezoid(time, sq)
	if err != nil {
		return Arias{}, err
	}

	scaled := make([]float64, len(curve))
	vecmath.ScaleBlock(scaled, curve, math.Pi/(2*Gravity)*mToCm)

	out := Arias{Curve: scaled, Total: scaled[len(scaled)-1]}
	if out.Total > 0 {
		out.T05 = crossing(time, scaled, 0.05*out.Total)
		out.T95 = crossing(time, scaled, 0.95*out.Total)
		out.SignificantDuration = out.T95 - out.T05
	}
	return out, nil
}

// crossing returns the first time at which the non-decreasing curve reaches
// level.
func crossing(time, curve []float64, level float64) float64 {
	for i, v := range curve {
		if v >= level {
			return time[i]
		}
	}
	return time[len(time)-1]
}
