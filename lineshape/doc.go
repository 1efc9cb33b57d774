// Package lineshape turns a stick spectrum into a continuous absorption
// curve by Gaussian broadening.
//
// Synthesis runs in two phases. [Grid] lays out an evenly spaced energy axis
// that starts Range below the lowest stick and ends Range above the highest.
// [Evaluate] then sums one Gaussian per stick at every grid point:
//
//	A(x) = Σ f_s · exp(-0.5 · (x + shift - E_s)² / σ²)
//
// [Synthesize] runs both phases plus the wavelength conversion and returns
// an immutable [Curve]. It either returns a complete curve or an error.
//
// # Usage
//
//	p := lineshape.Params{GridSpacing: 0.01, Range: 1, Sigma: 0.1}
//	curve, err := lineshape.Synthesize(sticks, p)
//
// # Numerics
//
// Grid points are produced by repeated addition of GridSpacing, so the last
// point may overshoot the upper bound by less than one step. Every Gaussian
// tail is evaluated in full unless [WithTailCutoff] is given.
package lineshape
