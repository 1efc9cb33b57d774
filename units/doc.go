// Package units converts between photon energy and wavelength.
//
// Energies are in electron volts (eV) and wavelengths in nanometres (nm).
// The two are inversely proportional, E = K / λ, with K = [EVToNM]. The same
// function therefore maps in both directions; [ToWavelength] and [ToEnergy]
// exist for readability at call sites.
package units
