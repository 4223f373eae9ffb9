package integrate

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-seismic/dsp/core"
	"github.com/cwbudde/algo-seismic/internal/testutil"
)

func TestCumulativeTrapezoidZeros(t *testing.T) {
	time := testutil.TimeAxis(100, 0.01)
	got, err := CumulativeTrapezoid(time, make([]float64, 100))
	if err != nil {
		t.Fatalf("CumulativeTrapezoid: %v", err)
	}
	testutil.RequireAllNear(t, got, 0, 0)
}

func TestCumulativeTrapezoidConstant(t *testing.T) {
	const (
		c  = 4.2
		dt = 0.005
	)
	time := testutil.TimeAxis(64, dt)
	got, err := CumulativeTrapezoid(time, testutil.DC(c, 64))
	if err != nil {
		t.Fatalf("CumulativeTrapezoid: %v", err)
	}
	for i, v := range got {
		want := c * (time[i] - time[0])
		if !core.NearlyEqual(v, want, 1e-12) {
			t.Fatalf("index %d: got %v, want %v", i, v, want)
		}
	}
	if got[0] != 0 {
		t.Fatalf("result[0] = %v, want 0", got[0])
	}
}

func TestTrapezoidMatchesCumulativeTail(t *testing.T) {
	time := testutil.TimeAxis(200, 0.02)
	values := testutil.DeterministicSine(0.7, 50, 3, 200)

	total, err := Trapezoid(time, values)
	if err != nil {
		t.Fatalf("Trapezoid: %v", err)
	}
	cum, err := CumulativeTrapezoid(time, values)
	if err != nil {
		t.Fatalf("CumulativeTrapezoid: %v", err)
	}
	testutil.RequireNear(t, "total", total, cum[len(cum)-1], 1e-12)
}

func TestTrapezoidNonUniformLinear(t *testing.T) {
	time := []float64{0, 0.1, 0.5, 0.6, 2}
	values := make([]float64, len(time))
	for i, ti := range time {
		values[i] = 2 * ti
	}
	total, err := Trapezoid(time, values)
	if err != nil {
		t.Fatalf("Trapezoid: %v", err)
	}
	testutil.RequireNear(t, "integral of 2t over [0,2]", total, 4, 1e-12)
}

func TestTwice(t *testing.T) {
	time := testutil.TimeAxis(11, 0.1)
	vel, disp, err := Twice(time, testutil.DC(2, 11))
	if err != nil {
		t.Fatalf("Twice: %v", err)
	}
	testutil.RequireNear(t, "velocity(1s)", vel[10], 2, 1e-12)
	// Trapezoid of a linear ramp is exact: 0.5*a*t^2.
	testutil.RequireNear(t, "displacement(1s)", disp[10], 1, 1e-12)
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		time   []float64
		values []float64
		want   error
	}{
		{name: "empty", time: nil, values: nil, want: ErrEmptyInput},
		{name: "mismatch", time: []float64{0, 1}, values: []float64{1}, want: ErrLengthMismatch},
		{name: "repeated", time: []float64{0, 1, 1}, values: []float64{1, 2, 3}, want: ErrNonMonotonicTime},
		{name: "decreasing", time: []float64{0, 2, 1}, values: []float64{1, 2, 3}, want: ErrNonMonotonicTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CumulativeTrapezoid(tt.time, tt.values)
			if !errors.Is(err, tt.want) {
				t.Fatalf("CumulativeTrapezoid error = %v, want %v", err, tt.want)
			}
			if !errors.Is(err, core.ErrInvalidInput) {
				t.Fatalf("error %v does not wrap ErrInvalidInput", err)
			}
			if _, err := Trapezoid(tt.time, tt.values); !errors.Is(err, tt.want) {
				t.Fatalf("Trapezoid error = %v, want %v", err, tt.want)
			}
		})
	}
}
