package lineshape

import (
	"math"

	"github.com/cwbudde/algo-uvspec/stick"
)

// Grid returns the energy axis for sticks: points from min(E)-Range in steps
// of GridSpacing up to and including max(E)+Range.
//
// Points are accumulated, not computed as start+i*step, so the final point
// can exceed the upper bound by a fraction of a step.
func Grid(sticks stick.Set, p Params) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	lo, ok := sticks.MinEnergy()
	if !ok {
		return nil, ErrEmptyStickSet
	}
	hi, _ := sticks.MaxEnergy()

	start := lo - p.Range
	end := hi + p.Range

	if n := (end-start)/p.GridSpacing + 2; n > maxGridPoints {
		return nil, invalidParam("grid spacing", "yields about %.0f points (max %d): %v", math.Ceil(n), maxGridPoints, p.GridSpacing)
	}

	for _, x := range []float64{start, end} {
		if x+p.GridSpacing == x {
			return nil, invalidParam("grid spacing", "too small to advance from %v: %v", x, p.GridSpacing)
		}
	}

	grid := make([]float64, 0, int((end-start)/p.GridSpacing)+2)
	for x := start; x <= end; x += p.GridSpacing {
		grid = append(grid, x)
	}

	return grid, nil
}
