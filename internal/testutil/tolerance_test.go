package testutil

import (
	"math"
	"strings"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}

	if _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestRequireHelpersPass(t *testing.T) {
	grid := []float64{2.5, 3.0, 3.5, 4.0, 4.5}

	RequireUniformStep(t, grid, 0.5, 1e-12)
	RequireNonNegative(t, grid)
	RequireFinite(t, grid)
	RequireSliceNearlyEqual(t, grid, []float64{2.5, 3, 3.5, 4, 4.5 + 1e-13}, 1e-12)
}

func TestExcitedStateLineLayout(t *testing.T) {
	line := ExcitedStateLine(1, State{Energy: 3.5, Strength: 0.1234})

	if !strings.HasPrefix(line, " Excited State ") {
		t.Fatalf("missing marker: %q", line)
	}

	fields := strings.Fields(line)
	if len(fields) < 9 {
		t.Fatalf("fields=%v", fields)
	}

	if fields[4] != "3.5000" || fields[8] != "f=0.1234" {
		t.Fatalf("fields[4]=%q fields[8]=%q", fields[4], fields[8])
	}
}

func TestGaussianLogContainsEveryState(t *testing.T) {
	log := GaussianLog(State{3.5, 0.1}, State{4.0, 0.2}, State{4.5, 0})

	if n := strings.Count(log, "\n Excited State "); n != 3 {
		t.Fatalf("records=%d want=3", n)
	}
}
