// Package arrival picks the onset of strong shaking in a ground-motion
// record with a classic STA/LTA trigger.
//
// The characteristic function is the squared signal. Both averages use
// trailing windows ending at the current sample; the ratio is zero until the
// long window is full.
package arrival
