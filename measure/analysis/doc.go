// Package analysis turns one ground-acceleration record into the full set of
// intensity measures.
//
// The pipeline is detrend and Boore high-pass, double integration, peak
// values, bracketed duration, site frequency, Arias intensity, Fourier
// amplitude, arrival pick and the elastic response spectrum. Time-domain
// quantities stay in cm/s², cm/s and cm. The spectrum sweep runs on the
// filtered acceleration converted to m/s², so SD, PSV and PSA are reported in
// m, m/s and m/s².
//
// Bracketed duration is measured on the unfiltered record against its own
// peak. The site frequency ignores the DC bin.
package analysis
