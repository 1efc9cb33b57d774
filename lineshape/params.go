package lineshape

import "math"

// maxGridPoints bounds the grid length so that a tiny spacing fails fast
// instead of exhausting memory.
const maxGridPoints = 1 << 24

// Params are the fit parameters of the Gaussian line shape. All values are
// in eV.
type Params struct {
	GridSpacing float64 // distance between grid points, > 0
	Range       float64 // padding beyond the extreme sticks, >= 0
	Sigma       float64 // Gaussian width, > 0
	Shift       float64 // offset of the energy axis, any finite value
}

// Validate reports the first invalid field.
func (p Params) Validate() error {
	switch {
	case !finite(p.GridSpacing) || p.GridSpacing <= 0:
		return invalidParam("grid spacing", "must be > 0: %v", p.GridSpacing)
	case !finite(p.Range) || p.Range < 0:
		return invalidParam("range", "must be >= 0: %v", p.Range)
	case !finite(p.Sigma) || p.Sigma <= 0:
		return invalidParam("sigma", "must be > 0: %v", p.Sigma)
	case !finite(p.Shift):
		return invalidParam("shift", "must be finite: %v", p.Shift)
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
