// Package intensity computes ground-motion intensity measures from a
// processed accelerogram and its integrals:
//
//   - PGA, PGV, PGD: peak absolute acceleration, velocity and displacement
//   - Bracketed duration: span between first and last threshold exceedance
//   - Site frequency: dominant frequency of the single-sided spectrum
//   - Arias intensity: (pi/2g) times the integral of squared acceleration
//
// Time-domain inputs are in cm/s², cm/s and cm.
package intensity
