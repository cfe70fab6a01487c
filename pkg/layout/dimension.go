// Package layout provides the measurement types used when styling and
// positioning widgets: device pixels, device-independent "logical"
// pixels, fractional scales, and ranges of measurements.
package layout

import (
	"fmt"
	"math"
)

// Px is a signed measurement in physical device pixels.
type Px int32

// Lp is a signed measurement in logical pixels, a device-independent
// unit that is scaled by the display's ratio before painting.
type Lp int32

// UPx is an unsigned measurement in physical device pixels. Layout
// results are expressed in UPx since a widget can never be given a
// negative amount of space.
type UPx uint32

// Fraction is an exact ratio between two integers.
type Fraction struct {
	Numerator   int32
	Denominator int32
}

// OneFraction is the multiplicative identity.
var OneFraction = Fraction{Numerator: 1, Denominator: 1}

// NewFraction returns numerator/denominator. A zero denominator panics.
func NewFraction(numerator, denominator int32) Fraction {
	if denominator == 0 {
		panic("layout: fraction with zero denominator")
	}
	return Fraction{Numerator: numerator, Denominator: denominator}
}

// Float returns the fraction as a float64.
func (f Fraction) Float() float64 {
	return float64(f.Numerator) / float64(f.Denominator)
}

// ScaleUPx multiplies v by the fraction, rounding to the nearest pixel.
func (f Fraction) ScaleUPx(v UPx) UPx {
	scaled := int64(v) * int64(f.Numerator)
	d := int64(f.Denominator)
	if d < 0 {
		scaled, d = -scaled, -d
	}
	if scaled <= 0 {
		return 0
	}
	return UPx((scaled + d/2) / d)
}

// ScalePx multiplies v by the fraction, rounding toward zero.
func (f Fraction) ScalePx(v Px) Px {
	return Px(int64(v) * int64(f.Numerator) / int64(f.Denominator))
}

func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Numerator, f.Denominator)
}

// IntoPx converts logical pixels to device pixels at the given scale.
func (l Lp) IntoPx(scale Fraction) Px {
	return scale.ScalePx(Px(l))
}

// IntoLp converts device pixels to logical pixels at the given scale.
func (p Px) IntoLp(scale Fraction) Lp {
	return Lp(Fraction{Numerator: scale.Denominator, Denominator: scale.Numerator}.ScalePx(p))
}

// IntoUPx converts to unsigned pixels, clamping negatives to zero.
func (p Px) IntoUPx() UPx {
	if p < 0 {
		return 0
	}
	return UPx(p)
}

// IntoPx converts to signed pixels, saturating at the maximum.
func (u UPx) IntoPx() Px {
	if u > math.MaxInt32 {
		return math.MaxInt32
	}
	return Px(u)
}

// DimensionKind identifies which unit a Dimension stores.
type DimensionKind uint8

const (
	// DimensionPx measures in physical pixels.
	DimensionPx DimensionKind = iota
	// DimensionLp measures in logical pixels.
	DimensionLp
)

// Dimension is a measurement in either physical or logical pixels.
// The zero value is 0 physical pixels.
type Dimension struct {
	kind DimensionKind
	px   Px
	lp   Lp
}

// DimensionZero is zero physical pixels.
var DimensionZero = Dimension{}

// PxDimension returns a dimension measured in physical pixels.
func PxDimension(v Px) Dimension {
	return Dimension{kind: DimensionPx, px: v}
}

// LpDimension returns a dimension measured in logical pixels.
func LpDimension(v Lp) Dimension {
	return Dimension{kind: DimensionLp, lp: v}
}

// Kind reports which unit the dimension stores.
func (d Dimension) Kind() DimensionKind {
	return d.kind
}

// Px returns the stored physical-pixel value. The second result is
// false when the dimension is measured in logical pixels.
func (d Dimension) Px() (Px, bool) {
	return d.px, d.kind == DimensionPx
}

// Lp returns the stored logical-pixel value. The second result is
// false when the dimension is measured in physical pixels.
func (d Dimension) Lp() (Lp, bool) {
	return d.lp, d.kind == DimensionLp
}

// IsZero reports whether the measurement is zero in its own unit.
func (d Dimension) IsZero() bool {
	if d.kind == DimensionPx {
		return d.px == 0
	}
	return d.lp == 0
}

// IntoPx resolves the dimension to physical pixels at the given scale.
func (d Dimension) IntoPx(scale Fraction) Px {
	if d.kind == DimensionPx {
		return d.px
	}
	return d.lp.IntoPx(scale)
}

// IntoLp resolves the dimension to logical pixels at the given scale.
func (d Dimension) IntoLp(scale Fraction) Lp {
	if d.kind == DimensionLp {
		return d.lp
	}
	return d.px.IntoLp(scale)
}

// IntoUPx resolves to unsigned pixels, clamping negatives to zero.
func (d Dimension) IntoUPx(scale Fraction) UPx {
	return d.IntoPx(scale).IntoUPx()
}

// MulInt scales the measurement, preserving its unit.
func (d Dimension) MulInt(factor int32) Dimension {
	if d.kind == DimensionPx {
		return PxDimension(d.px * Px(factor))
	}
	return LpDimension(d.lp * Lp(factor))
}

// DivInt divides the measurement, preserving its unit.
func (d Dimension) DivInt(divisor int32) Dimension {
	if d.kind == DimensionPx {
		return PxDimension(d.px / Px(divisor))
	}
	return LpDimension(d.lp / Lp(divisor))
}

// MulFloat scales the measurement by a float, rounding to nearest.
func (d Dimension) MulFloat(factor float64) Dimension {
	if d.kind == DimensionPx {
		return PxDimension(Px(math.Round(float64(d.px) * factor)))
	}
	return LpDimension(Lp(math.Round(float64(d.lp) * factor)))
}

// DivFloat divides the measurement by a float, rounding to nearest.
func (d Dimension) DivFloat(divisor float64) Dimension {
	return d.MulFloat(1 / divisor)
}

func (d Dimension) String() string {
	if d.kind == DimensionPx {
		return fmt.Sprintf("%dpx", d.px)
	}
	return fmt.Sprintf("%dlp", d.lp)
}

// FlexibleDimension is either a fixed Dimension or Auto, which lets the
// widget choose its own measurement.
type FlexibleDimension struct {
	auto bool
	dim  Dimension
}

// AutoDimension lets the widget pick its measurement.
var AutoDimension = FlexibleDimension{auto: true}

// FixedDimension wraps a concrete measurement.
func FixedDimension(d Dimension) FlexibleDimension {
	return FlexibleDimension{dim: d}
}

// IsAuto reports whether the widget should pick its own measurement.
func (f FlexibleDimension) IsAuto() bool {
	return f.auto
}

// Dimension returns the fixed measurement. The second result is false
// for Auto.
func (f FlexibleDimension) Dimension() (Dimension, bool) {
	return f.dim, !f.auto
}

func (f FlexibleDimension) String() string {
	if f.auto {
		return "auto"
	}
	return f.dim.String()
}
