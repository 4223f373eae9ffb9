package fft

import (
	"math"

	"github.com/cwbudde/algo-seismic/dsp/core"
)

func paddedSize(n int) int {
	if n == 0 {
		return 0
	}
	return core.NextPowerOf2(n)
}

// Forward computes the discrete Fourier transform of x after zero-padding
// to the next power of two. x is not modified.
func Forward(x []complex128) Spectrum {
	if len(x) == 0 {
		return Spectrum{}
	}
	return recursive(Spectrum(x).Pad())
}

// ForwardReal is Forward for real-valued samples.
func ForwardReal(x []float64) Spectrum {
	if len(x) == 0 {
		return Spectrum{}
	}
	return recursive(FromReal(x).Pad())
}

// Inverse computes the inverse transform as conj(Forward(conj(X)))/N where
// N is the padded length.
func Inverse(x []complex128) Spectrum {
	if len(x) == 0 {
		return Spectrum{}
	}
	padded := Spectrum(x).Pad()
	n := len(padded)
	return recursive(padded.Conj()).Conj().Scale(1 / float64(n))
}

// recursive expects len(x) to be a power of two.
func recursive(x Spectrum) Spectrum {
	n := len(x)
	if n <= 1 {
		out := make(Spectrum, n)
		copy(out, x)
		return out
	}

	half := n / 2
	even := make(Spectrum, half)
	odd := make(Spectrum, half)
	for i := 0; i < half; i++ {
		even[i] = x[2*i]
		odd[i] = x[2*i+1]
	}

	even = recursive(even)
	odd = recursive(odd)

	out := make(Spectrum, n)
	for k := 0; k < half; k++ {
		angle := -2 * math.Pi * float64(k) / float64(n)
		tw := complex(math.Cos(angle), math.Sin(angle)) * odd[k]
		out[k] = even[k] + tw
		out[k+half] = even[k] - tw
	}
	return out
}
