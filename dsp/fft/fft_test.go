package fft

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-seismic/dsp/core"
	"github.com/cwbudde/algo-seismic/internal/testutil"
)

func naiveDFT(x []complex128) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := range out {
		var sum complex128
		for j, v := range x {
			angle := -2 * math.Pi * float64(k) * float64(j) / float64(n)
			sum += v * complex(math.Cos(angle), math.Sin(angle))
		}
		out[k] = sum
	}
	return out
}

func requireComplexNear(t *testing.T, got, want []complex128, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if cmplx.Abs(got[i]-want[i]) > eps {
			t.Fatalf("bin %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestForwardMatchesDFT(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 64} {
		x := FromReal(testutil.DeterministicNoise(int64(n), 1, n))
		requireComplexNear(t, Forward(x), naiveDFT(x), 1e-9)
	}
}

func TestForwardPadsToPowerOfTwo(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	got := ForwardReal(x)
	if len(got) != 8 {
		t.Fatalf("len(Forward) = %d, want 8", len(got))
	}

	padded := make([]complex128, 8)
	for i, v := range x {
		padded[i] = complex(v, 0)
	}
	requireComplexNear(t, got, naiveDFT(padded), 1e-9)

	if x[4] != 5 || len(x) != 5 {
		t.Fatal("ForwardReal modified its input")
	}
}

func TestRoundTripPowerOfTwo(t *testing.T) {
	for _, n := range []int{2, 16, 256, 1024} {
		x := testutil.DeterministicNoise(7, 100, n)
		back := Inverse(ForwardReal(x)).Real(n)
		for i := range x {
			if !core.NearlyEqual(back[i], x[i], 1e-9) {
				t.Fatalf("n=%d index %d: got %v, want %v", n, i, back[i], x[i])
			}
		}
		for i, c := range Inverse(ForwardReal(x)) {
			if math.Abs(imag(c)) > 1e-9 {
				t.Fatalf("n=%d index %d: spurious imaginary part %v", n, i, imag(c))
			}
		}
	}
}

func TestRoundTripWithPaddingPreservesPrefix(t *testing.T) {
	x := testutil.DeterministicSine(3, 100, 1, 300)
	back := Inverse(ForwardReal(x))
	if len(back) != 512 {
		t.Fatalf("len(Inverse) = %d, want 512", len(back))
	}
	testutil.RequireSliceNearlyEqual(t, back.Real(len(x)), x, 1e-9)
	for i := len(x); i < len(back); i++ {
		if math.Abs(real(back[i])) > 1e-9 {
			t.Fatalf("pad tail index %d = %v, want 0", i, back[i])
		}
	}
}

func TestNonFinitePropagates(t *testing.T) {
	x := []float64{0, 1, math.NaN(), 3}
	out := ForwardReal(x)
	for i, c := range out {
		if !cmplx.IsNaN(c) {
			t.Fatalf("bin %d = %v, want NaN", i, c)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	if got := Forward(nil); len(got) != 0 {
		t.Fatalf("Forward(nil) len = %d", len(got))
	}
	if got := Inverse(nil); len(got) != 0 {
		t.Fatalf("Inverse(nil) len = %d", len(got))
	}
}

func TestPlannedMatchesRadix2(t *testing.T) {
	x := FromReal(testutil.DeterministicNoise(11, 50, 600))

	want, err := Radix2{}.Forward(x)
	if err != nil {
		t.Fatalf("Radix2.Forward: %v", err)
	}
	got, err := Planned{}.Forward(x)
	if err != nil {
		t.Fatalf("Planned.Forward: %v", err)
	}
	requireComplexNear(t, got, want, 1e-7)

	back, err := Planned{}.Inverse(got)
	if err != nil {
		t.Fatalf("Planned.Inverse: %v", err)
	}
	for i := range x {
		if cmplx.Abs(back[i]-x[i]) > 1e-9 {
			t.Fatalf("index %d: got %v, want %v", i, back[i], x[i])
		}
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"", "radix2", "planned"} {
		if _, err := ByName(name); err != nil {
			t.Fatalf("ByName(%q): %v", name, err)
		}
	}
	_, err := ByName("bluestein")
	if !errors.Is(err, core.ErrInvalidInput) {
		t.Fatalf("ByName(bluestein) error = %v, want ErrInvalidInput", err)
	}
}

func TestSpectrumHelpers(t *testing.T) {
	s := Spectrum{complex(1, 2), complex(-3, 4)}
	requireComplexNear(t, s.Conj(), []complex128{complex(1, -2), complex(-3, -4)}, 0)
	requireComplexNear(t, s.Scale(0.5), []complex128{complex(0.5, 1), complex(-1.5, 2)}, 0)
	requireComplexNear(t, s.MulReal([]float64{0, 1}), []complex128{0, complex(-3, 4)}, 0)
	if got := s.Real(10); len(got) != 2 || got[1] != -3 {
		t.Fatalf("Real(10) = %v", got)
	}
}
