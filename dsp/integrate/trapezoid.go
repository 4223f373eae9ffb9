// Package integrate provides trapezoidal integration over sampled records.
//
// Acceleration is integrated to velocity and velocity to displacement by
// applying [CumulativeTrapezoid] twice.
package integrate

import (
	"fmt"

	"github.com/cwbudde/algo-seismic/dsp/core"
)

// Errors returned by the integrators.
var (
	ErrEmptyInput       = fmt.Errorf("integrate: empty input: %w", core.ErrInvalidInput)
	ErrLengthMismatch   = fmt.Errorf("integrate: time and values length mismatch: %w", core.ErrInvalidInput)
	ErrNonMonotonicTime = fmt.Errorf("integrate: time must be strictly increasing: %w", core.ErrInvalidInput)
)

func validate(time, values []float64) error {
	if len(time) == 0 || len(values) == 0 {
		return ErrEmptyInput
	}
	if len(time) != len(values) {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(time), len(values))
	}
	for i := 1; i < len(time); i++ {
		if !(time[i] > time[i-1]) {
			return fmt.Errorf("%w: index %d", ErrNonMonotonicTime, i)
		}
	}
	return nil
}

// CumulativeTrapezoid returns the running trapezoidal integral of values over
// time. result[0] is 0.
func CumulativeTrapezoid(time, values []float64) ([]float64, error) {
	if err := validate(time, values); err != nil {
		return nil, err
	}

	out := make([]float64, len(values))
	for i := 1; i < len(values); i++ {
		out[i] = out[i-1] + (time[i]-time[i-1])*(values[i]+values[i-1])/2
	}
	return out, nil
}

// Trapezoid returns the total trapezoidal integral of values over time.
func Trapezoid(time, values []float64) (float64, error) {
	if err := validate(time, values); err != nil {
		return 0, err
	}

	var sum float64
	for i := 1; i < len(values); i++ {
		sum += (time[i] - time[i-1]) * (values[i] + values[i-1]) / 2
	}
	return sum, nil
}

// Twice integrates acceleration to velocity and then to displacement.
func Twice(time, acceleration []float64) (velocity, displacement []float64, err error) {
	velocity, err = CumulativeTrapezoid(time, acceleration)
	if err != nil {
		return nil, nil, err
	}
	displacement, err = CumulativeTrapezoid(time, velocity)
	if err != nil {
		return nil, nil, err
	}
	return velocity, displacement, nil
}
