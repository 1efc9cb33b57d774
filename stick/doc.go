// Package stick holds the discrete transition model of an absorption
// spectrum and merges stick sets from several calculations.
//
// A [Stick] is one excited state: its excitation energy in eV and its
// oscillator strength. A [Set] is the ordered list of sticks in the order
// they were discovered.
//
// # Merging
//
// [Merge] folds any number of sets into one. The first set is the baseline
// and is kept as is. Sticks of later sets are appended only when their energy
// is not already present, where "present" means the energy formats to the
// same text as one already admitted:
//
//	merged := stick.Merge(first, second, third)
//
// The comparison is textual, not a numeric tolerance. Two energies from
// different runs that differ in the last printed digit are kept as two
// transitions.
package stick
