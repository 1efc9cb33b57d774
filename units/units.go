package units

import "fmt"

// EVToNM is the conversion factor between eV and nm (eV·nm).
const EVToNM = 1239.84

// ToWavelength converts an energy in eV to a wavelength in nm.
func ToWavelength(energy float64) (float64, error) {
	return invert(energy)
}

// ToEnergy converts a wavelength in nm to an energy in eV.
func ToEnergy(wavelength float64) (float64, error) {
	return invert(wavelength)
}

// ToWavelengths converts energies element-wise. The result has the same
// length and order as the input.
func ToWavelengths(energies []float64) ([]float64, error) {
	return invertAll(energies)
}

// ToEnergies converts wavelengths element-wise. The result has the same
// length and order as the input.
func ToEnergies(wavelengths []float64) ([]float64, error) {
	return invertAll(wavelengths)
}

func invert(v float64) (float64, error) {
	if v == 0 {
		return 0, ErrDivisionByZero
	}

	return EVToNM / v, nil
}

func invertAll(values []float64) ([]float64, error) {
	if len(values) == 0 {
		return nil, nil
	}

	out := make([]float64, len(values))
	for i, v := range values {
		if v == 0 {
			return nil, fmt.Errorf("index %d: %w", i, ErrDivisionByZero)
		}
		out[i] = EVToNM / v
	}

	return out, nil
}
