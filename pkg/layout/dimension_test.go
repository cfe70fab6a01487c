package layout

import "testing"

func TestDimensionZeroIsPhysicalZero(t *testing.T) {
	if !DimensionZero.IsZero() {
		t.Fatal("expected zero value to be zero")
	}
	if v, ok := DimensionZero.Px(); !ok || v != 0 {
		t.Fatalf("expected 0 physical pixels, got %v (ok=%v)", v, ok)
	}
	if _, ok := DimensionZero.Lp(); ok {
		t.Fatal("zero value should not report logical pixels")
	}
}

func TestDimensionArithmeticPreservesUnit(t *testing.T) {
	px := PxDimension(10)
	lp := LpDimension(10)

	if got := px.MulInt(3); got != PxDimension(30) {
		t.Errorf("px * 3 = %v", got)
	}
	if got := lp.MulInt(3); got != LpDimension(30) {
		t.Errorf("lp * 3 = %v", got)
	}
	if got := px.DivInt(4); got != PxDimension(2) {
		t.Errorf("px / 4 = %v", got)
	}
	if got := lp.MulFloat(1.25); got != LpDimension(13) {
		t.Errorf("lp * 1.25 = %v, expected rounding to 13", got)
	}
	if got := px.DivFloat(4); got != PxDimension(3) {
		t.Errorf("px / 4.0 = %v, expected rounding to 3", got)
	}
}

func TestDimensionIntoPxScalesLp(t *testing.T) {
	scale := NewFraction(2, 1)
	if got := PxDimension(7).IntoPx(scale); got != 7 {
		t.Errorf("physical pixels rescaled: %v", got)
	}
	if got := LpDimension(7).IntoPx(scale); got != 14 {
		t.Errorf("7lp at 2x = %v, want 14", got)
	}
	if got := LpDimension(-4).IntoUPx(scale); got != 0 {
		t.Errorf("negative lp should clamp to 0, got %v", got)
	}
}

func TestDimensionIntoLpInvertsScale(t *testing.T) {
	scale := NewFraction(2, 1)
	if got := LpDimension(7).IntoLp(scale); got != 7 {
		t.Errorf("logical pixels rescaled: %v", got)
	}
	if got := PxDimension(14).IntoLp(scale); got != 7 {
		t.Errorf("14px at 2x = %v lp, want 7", got)
	}
}

func TestFractionScaleUPxRounds(t *testing.T) {
	half := NewFraction(1, 2)
	if got := half.ScaleUPx(5); got != 3 {
		t.Errorf("5 * 1/2 = %v, want 3 (round half up)", got)
	}
	third := NewFraction(1, 3)
	if got := third.ScaleUPx(100); got != 33 {
		t.Errorf("100 * 1/3 = %v, want 33", got)
	}
}

func TestFractionZeroDenominatorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	NewFraction(1, 0)
}

func TestFlexibleDimension(t *testing.T) {
	if !AutoDimension.IsAuto() {
		t.Fatal("AutoDimension should be auto")
	}
	if _, ok := AutoDimension.Dimension(); ok {
		t.Fatal("auto should not report a fixed dimension")
	}
	fixed := FixedDimension(LpDimension(16))
	if fixed.IsAuto() {
		t.Fatal("fixed should not be auto")
	}
	if d, ok := fixed.Dimension(); !ok || d != LpDimension(16) {
		t.Fatalf("expected 16lp, got %v (ok=%v)", d, ok)
	}
}
