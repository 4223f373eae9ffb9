package spectrum

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-seismic/dsp/core"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

// Magnitude returns |X[k]| for each complex bin.
//
// The kernel dispatches to the SIMD implementations of algo-vecmath when
// available. Scratch buffers are pooled, so in steady state this allocates
// only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	scratchPool.Put(buf)
	return out
}

// PeakBin returns the index of the largest value in values[from:]. Ties
// resolve to the first occurrence. It returns -1 when the range is empty.
func PeakBin(values []float64, from int) int {
	if from < 0 {
		from = 0
	}
	best := -1
	for i := from; i < len(values); i++ {
		if best < 0 || values[i] > values[best] {
			best = i
		}
	}
	return best
}

// SmoothFractionalOctave applies 1/N-octave smoothing using the arithmetic
// mean over each band.
//
// freqHz and values must have equal length and freqHz must be strictly
// increasing with positive values.
func SmoothFractionalOctave(freqHz, values []float64, fraction int) ([]float64, error) {
	if len(freqHz) == 0 || len(values) == 0 {
		return nil, fmt.Errorf("spectrum: fractional-octave smoothing requires non-empty inputs: %w", core.ErrInvalidInput)
	}
	if len(freqHz) != len(values) {
		return nil, fmt.Errorf("spectrum: fractional-octave input length mismatch: %d != %d: %w", len(freqHz), len(values), core.ErrInvalidInput)
	}
	if fraction <= 0 {
		return nil, fmt.Errorf("spectrum: fractional-octave fraction must be > 0, got %d: %w", fraction, core.ErrInvalidInput)
	}
	for i := range freqHz {
		if freqHz[i] <= 0 {
			return nil, fmt.Errorf("spectrum: fractional-octave frequencies must be > 0 at index %d: %w", i, core.ErrInvalidInput)
		}
		if i > 0 && !(freqHz[i] > freqHz[i-1]) {
			return nil, fmt.Errorf("spectrum: fractional-octave frequencies must be strictly increasing at index %d: %w", i, core.ErrInvalidInput)
		}
	}

	out := make([]float64, len(values))
	halfBand := math.Pow(2, 1/(2*float64(fraction)))

	for i, f := range freqHz {
		i0 := sort.Search(len(freqHz), func(k int) bool { return freqHz[k] >= f/halfBand })
		i1 := sort.Search(len(freqHz), func(k int) bool { return freqHz[k] > f*halfBand })
		if i0 >= i1 {
			out[i] = values[i]
			continue
		}

		sum := 0.0
		for j := i0; j < i1; j++ {
			sum += values[j]
		}
		out[i] = sum / float64(i1-i0)
	}

	return out, nil
}
