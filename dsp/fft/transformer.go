package fft

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-seismic/dsp/core"
)

// Transformer is a forward/inverse FFT backend. Implementations zero-pad to
// the next power of two and normalize the inverse by 1/N.
type Transformer interface {
	Forward(x []complex128) (Spectrum, error)
	Inverse(x []complex128) (Spectrum, error)
}

// Radix2 is the recursive Cooley-Tukey backend.
type Radix2 struct{}

// Forward implements [Transformer].
func (Radix2) Forward(x []complex128) (Spectrum, error) { return Forward(x), nil }

// Inverse implements [Transformer].
func (Radix2) Inverse(x []complex128) (Spectrum, error) { return Inverse(x), nil }

// Planned runs transforms on algo-fft plans. A fresh plan is created per
// call so a single Planned value can be shared between goroutines.
type Planned struct{}

// Forward implements [Transformer].
func (Planned) Forward(x []complex128) (Spectrum, error) {
	if len(x) == 0 {
		return Spectrum{}, nil
	}
	src := Spectrum(x).Pad()
	plan, err := algofft.NewPlan64(len(src))
	if err != nil {
		return nil, fmt.Errorf("fft: failed to create plan of size %d: %w: %w", len(src), core.ErrComputation, err)
	}

	out := make(Spectrum, len(src))
	if err := plan.Forward(out, src); err != nil {
		return nil, fmt.Errorf("fft: forward transform failed: %w: %w", core.ErrComputation, err)
	}
	return out, nil
}

// Inverse implements [Transformer].
func (Planned) Inverse(x []complex128) (Spectrum, error) {
	if len(x) == 0 {
		return Spectrum{}, nil
	}
	src := Spectrum(x).Pad()
	plan, err := algofft.NewPlan64(len(src))
	if err != nil {
		return nil, fmt.Errorf("fft: failed to create plan of size %d: %w: %w", len(src), core.ErrComputation, err)
	}

	out := make(Spectrum, len(src))
	if err := plan.Inverse(out, src); err != nil {
		return nil, fmt.Errorf("fft: inverse transform failed: %w: %w", core.ErrComputation, err)
	}
	return out, nil
}

// ByName maps a backend name ("radix2", "planned") to a Transformer.
func ByName(name string) (Transformer, error) {
	switch name {
	case "", "radix2":
		return Radix2{}, nil
	case "planned":
		return Planned{}, nil
	default:
		return nil, fmt.Errorf("fft: unknown backend %q: %w", name, core.ErrInvalidInput)
	}
}
