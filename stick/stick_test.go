package stick

import (
	"math"
	"testing"
)

func TestWavelength(t *testing.T) {
	s := Stick{Energy: 3.5, Strength: 0.1234}
	if math.Abs(s.Wavelength()-354.24) > 1e-9 {
		t.Fatalf("Wavelength=%v want=354.24", s.Wavelength())
	}

	if !math.IsInf(Stick{}.Wavelength(), 1) {
		t.Fatalf("zero-energy wavelength should be +Inf")
	}
}

func TestSetAccessors(t *testing.T) {
	in := []Stick{{4.0, 0.2}, {3.5, 0.1}, {4.5, 0.0}}
	set := NewSet(in...)

	// NewSet copies its input.
	in[0].Energy = 99

	if set.Len() != 3 || set.Empty() {
		t.Fatalf("Len=%d Empty=%v", set.Len(), set.Empty())
	}

	if got := set.At(0).Energy; got != 4.0 {
		t.Fatalf("At(0).Energy=%v want=4.0 (input aliasing?)", got)
	}

	energies := set.Energies()
	want := []float64{4.0, 3.5, 4.5}
	for i := range want {
		if energies[i] != want[i] {
			t.Fatalf("Energies[%d]=%v want=%v", i, energies[i], want[i])
		}
	}

	strengths := set.Strengths()
	if strengths[0] != 0.2 || strengths[1] != 0.1 || strengths[2] != 0 {
		t.Fatalf("Strengths=%v", strengths)
	}

	lo, ok := set.MinEnergy()
	if !ok || lo != 3.5 {
		t.Fatalf("MinEnergy=%v,%v", lo, ok)
	}

	hi, ok := set.MaxEnergy()
	if !ok || hi != 4.5 {
		t.Fatalf("MaxEnergy=%v,%v", hi, ok)
	}

	wl, err := set.Wavelengths()
	if err != nil {
		t.Fatalf("Wavelengths error: %v", err)
	}

	if len(wl) != 3 || math.Abs(wl[1]-354.24) > 1e-9 {
		t.Fatalf("Wavelengths=%v", wl)
	}

	cp := set.Sticks()
	cp[0].Energy = -1
	if set.At(0).Energy != 4.0 {
		t.Fatalf("Sticks() must return a copy")
	}
}

func TestEmptySet(t *testing.T) {
	var set Set
	if !set.Empty() || set.Len() != 0 {
		t.Fatalf("zero Set should be empty")
	}

	if _, ok := set.MinEnergy(); ok {
		t.Fatalf("MinEnergy ok on empty set")
	}

	if _, ok := set.MaxEnergy(); ok {
		t.Fatalf("MaxEnergy ok on empty set")
	}
}
