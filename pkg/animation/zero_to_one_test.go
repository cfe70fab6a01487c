package animation

import (
	"math"
	"testing"
)

func TestNewZeroToOneClamps(t *testing.T) {
	cases := []struct {
		in   float64
		want ZeroToOne
	}{
		{-1, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{1.5, 1},
	}
	for _, tc := range cases {
		if got := NewZeroToOne(tc.in); got != tc.want {
			t.Errorf("NewZeroToOne(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNewZeroToOnePanicsOnNaN(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected NewZeroToOne(NaN) to panic")
		}
	}()
	NewZeroToOne(math.NaN())
}

func TestDifferenceBetweenIsSymmetric(t *testing.T) {
	a := NewZeroToOne(0.2)
	b := NewZeroToOne(0.9)
	if a.DifferenceBetween(b) != b.DifferenceBetween(a) {
		t.Fatalf("expected symmetric difference, got %v and %v",
			a.DifferenceBetween(b), b.DifferenceBetween(a))
	}
	if got := a.DifferenceBetween(b); math.Abs(got.Float()-0.7) > 1e-9 {
		t.Fatalf("expected difference 0.7, got %v", got)
	}
}

func TestOneMinus(t *testing.T) {
	if got := NewZeroToOne(0.3).OneMinus(); math.Abs(got.Float()-0.7) > 1e-9 {
		t.Fatalf("expected 0.7, got %v", got)
	}
}

func TestCubicBezierEndpoints(t *testing.T) {
	curve := CubicBezier(0.4, 0.0, 0.2, 1.0)
	if got := curve(0); got != 0 {
		t.Errorf("expected curve(0) = 0, got %v", got)
	}
	if got := curve(1); got != 1 {
		t.Errorf("expected curve(1) = 1, got %v", got)
	}
	mid := curve(0.5)
	if mid <= 0 || mid >= 1 {
		t.Errorf("expected curve(0.5) inside (0, 1), got %v", mid)
	}
}

func TestCubicBezierIsMonotonicForStandardCurves(t *testing.T) {
	for name, curve := range map[string]Curve{
		"Ease":      Ease,
		"EaseIn":    EaseIn,
		"EaseOut":   EaseOut,
		"EaseInOut": EaseInOut,
	} {
		prev := 0.0
		for i := 1; i <= 100; i++ {
			v := curve(float64(i) / 100)
			if v < prev-1e-9 {
				t.Errorf("%s: expected monotonic output, got %v after %v", name, v, prev)
			}
			prev = v
		}
	}
}
