package lineshape

import (
	"time"

	"github.com/cwbudde/algo-uvspec/stick"
	"github.com/cwbudde/algo-uvspec/units"
)

// Curve is a broadened absorption spectrum.
//
// Energy, Wavelength and Absorbance are parallel and equally long. A Curve is
// built once by [Synthesize]; its slices must not be modified.
type Curve struct {
	Energy     []float64 // eV, ascending
	Wavelength []float64 // nm, derived from Energy
	Absorbance []float64 // arbitrary units

	Sticks  stick.Set
	Params  Params
	Created time.Time
}

// Synthesize builds the curve for sticks. On error no curve is returned.
func Synthesize(sticks stick.Set, p Params, opts ...Option) (*Curve, error) {
	cfg := buildConfig(opts)

	grid, err := Grid(sticks, p)
	if err != nil {
		return nil, err
	}

	wavelength, err := units.ToWavelengths(grid)
	if err != nil {
		return nil, err
	}

	return &Curve{
		Energy:     grid,
		Wavelength: wavelength,
		Absorbance: evaluate(grid, sticks, p, cfg),
		Sticks:     sticks,
		Params:     p,
		Created:    cfg.now(),
	}, nil
}

// Len returns the number of grid points.
func (c *Curve) Len() int { return len(c.Energy) }

// Peak describes the grid point of maximum absorbance.
type Peak struct {
	Index      int
	Energy     float64
	Wavelength float64
	Absorbance float64
}

// Peak returns the first grid point with the highest absorbance. ok is false
// for an empty curve.
func (c *Curve) Peak() (pk Peak, ok bool) {
	if c.Len() == 0 {
		return Peak{}, false
	}

	best := 0
	for i, a := range c.Absorbance {
		if a > c.Absorbance[best] {
			best = i
		}
	}

	return Peak{
		Index:      best,
		Energy:     c.Energy[best],
		Wavelength: c.Wavelength[best],
		Absorbance: c.Absorbance[best],
	}, true
}
