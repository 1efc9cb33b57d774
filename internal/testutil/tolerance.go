// Package testutil holds assertions and fixtures shared by package tests.
package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if any
// element pair differs by more than eps.
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if diff := math.Abs(got[i] - want[i]); diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t testing.TB, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireNonNegative fails t if any element is below zero.
func RequireNonNegative(t testing.TB, data []float64) {
	t.Helper()
	for i, v := range data {
		if v < 0 {
			t.Fatalf("index %d: negative value %v", i, v)
		}
	}
}

// RequireUniformStep fails t unless data is strictly ascending with every
// consecutive difference within eps of step.
func RequireUniformStep(t testing.TB, data []float64, step, eps float64) {
	t.Helper()
	for i := 1; i < len(data); i++ {
		d := data[i] - data[i-1]
		if d <= 0 {
			t.Fatalf("index %d: not ascending (%v after %v)", i, data[i], data[i-1])
		}
		if math.Abs(d-step) > eps {
			t.Fatalf("index %d: step %v, want %v (eps %v)", i, d, step, eps)
		}
	}
}

// MaxAbsDiff returns the largest absolute element difference of a and b.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
