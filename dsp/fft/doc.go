// Package fft provides the radix-2 Cooley-Tukey transform used by the
// filtering and spectral stages.
//
// Inputs of any length are zero-padded up to the next power of two; they are
// never truncated. When padding occurred only the first original-length
// samples of an inverse transform are meaningful and callers slice them.
//
// Two [Transformer] backends are available:
//
//   - [Radix2]: the recursive even/odd split, bit-for-bit reproducible.
//   - [Planned]: the planned kernels of github.com/MeKo-Christian/algo-fft.
//
// Both follow the same padding and scaling contract, so they are
// interchangeable up to floating point round-off.
package fft
