package testutil

import (
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1.5, 1, 3.25}
	got, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if got != 1 {
		t.Fatalf("MaxAbsDiff = %v, want 1", got)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	if _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestMaxAbsDiffIdentical(t *testing.T) {
	a := []float64{0.1, -0.2, 0.3}
	got, err := MaxAbsDiff(a, a)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Fatalf("MaxAbsDiff = %v, want 0", got)
	}
}

func TestRequireNearlyEqual(t *testing.T) {
	RequireNearlyEqual(t, 3.14159, 3.1416, 1e-4)
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1, 2 + 1e-12}, 1e-9)
}
