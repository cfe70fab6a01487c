package animation

import "math"

// ZeroToOne is a floating point value clamped to the range [0, 1].
//
// Construct values with [NewZeroToOne] to keep the invariant. Because
// ZeroToOne is a defined float type, ordinary arithmetic is available;
// re-clamp results that may leave the range.
type ZeroToOne float64

// NewZeroToOne returns value clamped to [0, 1].
// Panics if value is NaN, which always indicates a caller bug.
func NewZeroToOne(value float64) ZeroToOne {
	if math.IsNaN(value) {
		panic("animation: NaN is not a valid ZeroToOne")
	}
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return ZeroToOne(value)
}

// OneMinus returns 1 - z.
func (z ZeroToOne) OneMinus() ZeroToOne {
	return 1 - z
}

// DifferenceBetween returns the absolute difference between z and other.
// The result is symmetric and always within [0, 1].
func (z ZeroToOne) DifferenceBetween(other ZeroToOne) ZeroToOne {
	if z > other {
		return z - other
	}
	return other - z
}

// Float returns z as a plain float64.
func (z ZeroToOne) Float() float64 {
	return float64(z)
}
