package detrend

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-seismic/internal/testutil"
)

func TestLinearRemovesExactLine(t *testing.T) {
	x := make([]float64, 50)
	for i := range x {
		x[i] = 3.5 - 0.25*float64(i)
	}
	testutil.RequireAllNear(t, Linear(x), 0, 1e-12)
}

func TestLinearIsIdempotent(t *testing.T) {
	x := testutil.DeterministicNoise(5, 20, 257)
	for i := range x {
		x[i] += 0.1 * float64(i)
	}

	once := Linear(x)
	twice := Linear(once)
	testutil.RequireSliceNearlyEqual(t, twice, once, 1e-9)
}

func TestLinearUsesSampleIndex(t *testing.T) {
	x := []float64{0, 0, 0, 10, -10, 0, 0, 0}
	got := Linear(x)

	// slope = -10/42, intercept = 35/42 over index 0..7.
	slope := -10.0 / 42.0
	intercept := 35.0 / 42.0
	for i := range x {
		want := x[i] - (intercept + slope*float64(i))
		if math.Abs(got[i]-want) > 1e-12 {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want)
		}
	}
}

func TestLinearShortInputs(t *testing.T) {
	if got := Linear(nil); len(got) != 0 {
		t.Fatalf("Linear(nil) = %v", got)
	}

	one := []float64{42}
	got := Linear(one)
	if len(got) != 1 || got[0] != 42 {
		t.Fatalf("Linear(single) = %v, want [42]", got)
	}
	got[0] = 0
	if one[0] != 42 {
		t.Fatal("Linear aliased its input")
	}
}

func TestLinearDoesNotMutateInput(t *testing.T) {
	x := []float64{1, 2, 4, 8}
	_ = Linear(x)
	testutil.RequireSliceNearlyEqual(t, x, []float64{1, 2, 4, 8}, 0)
}

func TestFit(t *testing.T) {
	slope, intercept := Fit([]float64{1, 3, 5, 7})
	testutil.RequireNear(t, "slope", slope, 2, 1e-12)
	testutil.RequireNear(t, "intercept", intercept, 1, 1e-12)
}
