package stick

import (
	"math"

	"github.com/cwbudde/algo-uvspec/units"
)

// Stick is a single electronic transition.
type Stick struct {
	Energy   float64 // excitation energy in eV
	Strength float64 // oscillator strength, dimensionless
}

// Wavelength returns the transition wavelength in nm. A zero energy yields
// +Inf.
func (s Stick) Wavelength() float64 {
	wl, err := units.ToWavelength(s.Energy)
	if err != nil {
		return math.Inf(1)
	}

	return wl
}

// Set is an ordered, read-only sequence of sticks.
//
// The zero value is an empty set.
type Set struct {
	sticks []Stick
}

// NewSet returns a set holding a copy of sticks in the given order.
func NewSet(sticks ...Stick) Set {
	if len(sticks) == 0 {
		return Set{}
	}

	return Set{sticks: append([]Stick(nil), sticks...)}
}

// Len returns the number of sticks.
func (s Set) Len() int { return len(s.sticks) }

// At returns the i-th stick.
func (s Set) At(i int) Stick { return s.sticks[i] }

// Empty reports whether the set holds no sticks.
func (s Set) Empty() bool { return len(s.sticks) == 0 }

// Sticks returns a copy of the sticks.
func (s Set) Sticks() []Stick {
	return append([]Stick(nil), s.sticks...)
}

// Energies returns the excitation energies in set order.
func (s Set) Energies() []float64 {
	out := make([]float64, len(s.sticks))
	for i, st := range s.sticks {
		out[i] = st.Energy
	}

	return out
}

// Strengths returns the oscillator strengths in set order.
func (s Set) Strengths() []float64 {
	out := make([]float64, len(s.sticks))
	for i, st := range s.sticks {
		out[i] = st.Strength
	}

	return out
}

// Wavelengths returns the transition wavelengths in set order.
func (s Set) Wavelengths() ([]float64, error) {
	return units.ToWavelengths(s.Energies())
}

// MinEnergy returns the smallest energy. ok is false for an empty set.
func (s Set) MinEnergy() (e float64, ok bool) {
	if len(s.sticks) == 0 {
		return 0, false
	}

	e = s.sticks[0].Energy
	for _, st := range s.sticks[1:] {
		if st.Energy < e {
			e = st.Energy
		}
	}

	return e, true
}

// MaxEnergy returns the largest energy. ok is false for an empty set.
func (s Set) MaxEnergy() (e float64, ok bool) {
	if len(s.sticks) == 0 {
		return 0, false
	}

	e = s.sticks[0].Energy
	for _, st := range s.sticks[1:] {
		if st.Energy > e {
			e = st.Energy
		}
	}

	return e, true
}
