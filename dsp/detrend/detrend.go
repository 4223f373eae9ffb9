// Package detrend removes linear trends from sampled records.
package detrend

// Linear fits an ordinary least-squares line over the sample index
// i = 0..n-1 (not physical time) and returns x minus that line. Inputs with
// fewer than two samples are returned as an unchanged copy. x is never
// modified.
func Linear(x []float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)

	n := len(x)
	if n < 2 {
		return out
	}

	slope, intercept := Fit(x)
	for i := range out {
		out[i] -= intercept + slope*float64(i)
	}
	return out
}

// Fit returns the least-squares slope and intercept of x against its sample
// index. Fewer than two samples yield a zero slope and the mean (or zero) as
// intercept.
func Fit(x []float64) (slope, intercept float64) {
	n := len(x)
	if n == 0 {
		return 0, 0
	}

	nf := float64(n)
	meanI := (nf - 1) / 2

	var meanY float64
	for _, v := range x {
		meanY += v
	}
	meanY /= nf

	if n < 2 {
		return 0, meanY
	}

	var sxy, sxx float64
	for i, v := range x {
		di := float64(i) - meanI
		sxy += di * (v - meanY)
		sxx += di * di
	}

	slope = sxy / sxx
	intercept = meanY - slope*meanI
	return slope, intercept
}
