package intensity

import "math"

// Peaks holds peak ground motion values.
type Peaks struct {
	PGA float64 `json:"pga" yaml:"pga"` // cm/s²
	PGV float64 `json:"pgv" yaml:"pgv"` // cm/s
	PGD float64 `json:"pgd" yaml:"pgd"` // cm
}

// PeakAbs returns max|x| and the first index where it occurs. An empty
// slice yields (0, -1).
func PeakAbs(x []float64) (float64, int) {
	best, idx := 0.0, -1
	for i, v := range x {
		a := math.Abs(v)
		if idx < 0 || a > best {
			best, idx = a, i
		}
	}
	return best, idx
}

// PeakValues returns PGA, PGV and PGD over the whole series.
func PeakValues(acc, vel, disp []float64) Peaks {
	pga, _ := PeakAbs(acc)
	pgv, _ := PeakAbs(vel)
	pgd, _ := PeakAbs(disp)
	return Peaks{PGA: pga, PGV: pgv, PGD: pgd}
}
