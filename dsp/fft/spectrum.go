package fft

// Spectrum is a sequence of complex frequency-domain (or time-domain) samples
// produced by a transform.
type Spectrum []complex128

// FromReal converts real samples into a complex sequence with zero imaginary
// part.
func FromReal(x []float64) Spectrum {
	out := make(Spectrum, len(x))
	for i, v := range x {
		out[i] = complex(v, 0)
	}
	return out
}

// Len returns the number of bins.
func (s Spectrum) Len() int { return len(s) }

// At returns bin i.
func (s Spectrum) At(i int) complex128 { return s[i] }

// Conj returns the elementwise complex conjugate.
func (s Spectrum) Conj() Spectrum {
	out := make(Spectrum, len(s))
	for i, c := range s {
		out[i] = complex(real(c), -imag(c))
	}
	return out
}

// Scale returns s multiplied by a real factor.
func (s Spectrum) Scale(factor float64) Spectrum {
	out := make(Spectrum, len(s))
	for i, c := range s {
		out[i] = complex(real(c)*factor, imag(c)*factor)
	}
	return out
}

// MulReal multiplies every bin by the matching real gain. gains must have
// the same length as s.
func (s Spectrum) MulReal(gains []float64) Spectrum {
	out := make(Spectrum, len(s))
	for i, c := range s {
		g := gains[i]
		out[i] = complex(real(c)*g, imag(c)*g)
	}
	return out
}

// Real returns the real parts of the first n bins. n is clamped to len(s).
func (s Spectrum) Real(n int) []float64 {
	if n > len(s) || n < 0 {
		n = len(s)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = real(s[i])
	}
	return out
}

// Pad returns a copy of s zero-extended to the next power of two.
func (s Spectrum) Pad() Spectrum {
	out := make(Spectrum, paddedSize(len(s)))
	copy(out, s)
	return out
}
