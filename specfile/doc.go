// Package specfile renders a broadened spectrum as the plain-text
// ".spec.txt" table written by the uvspec command.
//
// A file holds up to three column groups side by side: the line-shape curve
// (energy, wavelength, intensity), the stick spectrum (state, energy,
// wavelength, oscillator strength) and a block of fit metadata. [Options]
// selects the groups.
package specfile
