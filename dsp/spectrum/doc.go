// Package spectrum provides single-sided amplitude spectra and the
// helpers used to locate and smooth spectral peaks.
//
// The package does not implement the transform itself; it consumes
// [fft.Spectrum] values from any [fft.Transformer] backend.
package spectrum
