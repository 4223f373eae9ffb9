// Package response computes elastic response spectra of single-degree-of-
// freedom oscillators with the Newmark-Beta average-acceleration method
// (beta = 1/4, gamma = 1/2).
//
// For each natural period T the oscillator of unit mass, stiffness
// (2*pi/T)^2 and damping ratio zeta is driven by the ground acceleration.
// The spectrum records the peak relative displacement (SD), peak relative
// velocity (PSV) and peak absolute acceleration (PSA). Output units follow
// the input: ground acceleration in m/s² yields SD in m, PSV in m/s and PSA
// in m/s².
//
// Periods are independent, so [Compute] spreads them across a bounded
// worker group. The time-step recurrence inside one period is sequential;
// cancellation is checked between periods only.
//
// # Usage
//
//	spec, err := response.Compute(ctx, accSI, 0.01, response.Config{Damping: 0.05})
//	fmt.Println(spec.Periods[0], spec.PSA[0])
package response
