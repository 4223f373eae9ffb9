// Package boore implements the frequency-domain brick-wall high-pass filter
// used to remove long-period drift from strong-motion accelerograms.
//
// The record is linearly detrended, transformed, multiplied by an ideal
// binary mask that keeps every bin at or above the corner frequency, and
// transformed back. The mask is mirrored about the Nyquist bin so the
// inverse transform of a real record stays real.
//
// # Usage
//
//	filtered, err := boore.HighPass(acc, 100, 0.05)
package boore
