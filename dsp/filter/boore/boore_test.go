package boore

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-seismic/dsp/core"
	"github.com/cwbudde/algo-seismic/dsp/detrend"
	"github.com/cwbudde/algo-seismic/dsp/fft"
	"github.com/cwbudde/algo-seismic/internal/testutil"
)

func TestHighPassConstantIsZero(t *testing.T) {
	for _, n := range []int{64, 100, 333} {
		got, err := HighPass(testutil.DC(5, n), 100, 0.05)
		if err != nil {
			t.Fatalf("HighPass: %v", err)
		}
		if len(got) != n {
			t.Fatalf("len = %d, want %d", len(got), n)
		}
		testutil.RequireAllNear(t, got, 0, 1e-9)
	}
}

func TestHighPassPulseRecord(t *testing.T) {
	x := []float64{0, 0, 0, 10, -10, 0, 0, 0}
	got, err := HighPass(x, 100, 0.05)
	if err != nil {
		t.Fatalf("HighPass: %v", err)
	}

	// Only the DC bin lies below 0.05 Hz and the detrended record has zero
	// mean, so the output equals the detrended record.
	testutil.RequireSliceNearlyEqual(t, got, detrend.Linear(x), 1e-9)
	testutil.RequireNear(t, "peak", got[3], 9.880952380952381, 1e-9)
	testutil.RequireSliceNearlyEqual(t, x, []float64{0, 0, 0, 10, -10, 0, 0, 0}, 0)
}

func TestHighPassRemovesBinsBelowCorner(t *testing.T) {
	const (
		n  = 1024
		fs = 100.0
		fc = 1.0
	)
	x := testutil.DeterministicSine(0.2, fs, 50, n)
	hf := testutil.DeterministicSine(10, fs, 5, n)
	for i := range x {
		x[i] += hf[i]
	}

	got, err := HighPass(x, fs, fc)
	if err != nil {
		t.Fatalf("HighPass: %v", err)
	}

	spec := fft.ForwardReal(got)
	for i := 0; i < n; i++ {
		k := i
		if k > n/2 {
			k = n - i
		}
		if float64(k)*fs/n < fc && cmplx.Abs(spec[i]) > 1e-8 {
			t.Fatalf("bin %d survived: |X| = %v", i, cmplx.Abs(spec[i]))
		}
	}
}

func TestHighPassAboveNyquistIsNearZero(t *testing.T) {
	x := testutil.DeterministicNoise(1, 1, 64)

	got, err := HighPass(x, 100, 60)
	if err != nil {
		t.Fatalf("HighPass: %v", err)
	}
	testutil.RequireAllNear(t, got, 0, 1e-12)

	// At exactly fs/2 only the Nyquist bin survives.
	nyq, err := HighPass(x, 100, 50)
	if err != nil {
		t.Fatalf("HighPass: %v", err)
	}
	for i := 1; i < len(nyq); i++ {
		if math.Abs(nyq[i]+nyq[i-1]) > 1e-12 {
			t.Fatalf("expected alternating Nyquist component at %d: %v, %v", i, nyq[i-1], nyq[i])
		}
	}
}

func TestHighPassInvalidParameters(t *testing.T) {
	tests := []struct {
		name   string
		fs, fc float64
		want   error
	}{
		{name: "zero fs", fs: 0, fc: 0.05, want: ErrInvalidSampleRate},
		{name: "negative fs", fs: -100, fc: 0.05, want: ErrInvalidSampleRate},
		{name: "nan fs", fs: math.NaN(), fc: 0.05, want: ErrInvalidSampleRate},
		{name: "zero fc", fs: 100, fc: 0, want: ErrInvalidCornerFrequency},
		{name: "negative fc", fs: 100, fc: -1, want: ErrInvalidCornerFrequency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := HighPass([]float64{1, 2, 3}, tt.fs, tt.fc)
			if !errors.Is(err, tt.want) || !errors.Is(err, core.ErrInvalidInput) {
				t.Fatalf("HighPass error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMaskSymmetry(t *testing.T) {
	for _, n := range []int{7, 8, 15, 16} {
		mask := Mask(n, 10, 2)
		for i := 1; i < n; i++ {
			if mask[i] != mask[n-i] {
				t.Fatalf("n=%d: mask[%d]=%v != mask[%d]=%v", n, i, mask[i], n-i, mask[n-i])
			}
		}
		if mask[0] != 0 {
			t.Fatalf("n=%d: DC bin passed", n)
		}
	}

	// n=8, fs=10: bins at 0, 1.25, 2.5, 3.75, 5 Hz then mirrored.
	testutil.RequireSliceNearlyEqual(t, Mask(8, 10, 2), []float64{0, 0, 1, 1, 1, 1, 1, 0}, 0)
}

func TestPlannedBackendMatchesRadix2(t *testing.T) {
	x := testutil.DeterministicNoise(3, 200, 1500)
	cfg := Config{SampleRate: 200, CornerFrequency: 0.1}

	radix, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	planned, err := New(cfg, fft.Planned{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	want, err := radix.Apply(x)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	got, err := planned.Apply(x)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-8)
}
