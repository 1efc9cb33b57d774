package lineshape

import (
	"math"
	"time"

	"github.com/cwbudde/algo-uvspec/stick"
	"github.com/cwbudde/algo-vecmath"
)

// Option configures evaluation and synthesis.
type Option func(*config)

type config struct {
	tailCutoff float64 // in units of sigma, 0 = evaluate every tail
	now        func() time.Time
}

func defaultConfig() config {
	return config{now: time.Now}
}

func buildConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithTailCutoff skips Gaussian terms farther than n·sigma from the stick
// center. Values <= 0 keep the dense evaluation. At n = 12 the dropped terms
// are below 1e-31 of the stick strength.
func WithTailCutoff(n float64) Option {
	return func(c *config) {
		if n > 0 && !math.IsInf(n, 0) {
			c.tailCutoff = n
		} else {
			c.tailCutoff = 0
		}
	}
}

// WithClock sets the time source for [Curve.Created].
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}

// Evaluate returns the broadened absorbance at every grid point. The result
// has the same length and order as grid.
//
// Each stick contributes a term vector that is added into the result, so a
// point sums its sticks in set order.
func Evaluate(grid []float64, sticks stick.Set, p Params, opts ...Option) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if sticks.Empty() {
		return nil, ErrEmptyStickSet
	}

	cfg := buildConfig(opts)
	return evaluate(grid, sticks, p, cfg), nil
}

func evaluate(grid []float64, sticks stick.Set, p Params, cfg config) []float64 {
	absorbance := make([]float64, len(grid))
	if len(grid) == 0 {
		return absorbance
	}

	term := make([]float64, len(grid))
	sigma2 := p.Sigma * p.Sigma
	cutoff := cfg.tailCutoff * p.Sigma

	for i := 0; i < sticks.Len(); i++ {
		s := sticks.At(i)
		for j, x := range grid {
			d := x + p.Shift - s.Energy
			if cutoff > 0 && math.Abs(d) > cutoff {
				term[j] = 0
				continue
			}
			term[j] = s.Strength * math.Exp(-0.5*(d*d)/sigma2)
		}
		vecmath.AddBlockInPlace(absorbance, term)
	}

	return absorbance
}
