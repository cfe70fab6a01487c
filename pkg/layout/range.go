package layout

// BoundKind identifies how a range endpoint treats its measurement.
type BoundKind uint8

const (
	// BoundUnbounded places no limit on the endpoint.
	BoundUnbounded BoundKind = iota
	// BoundIncluded allows the measurement itself.
	BoundIncluded
	// BoundExcluded stops one pixel short of the measurement.
	BoundExcluded
)

// Bound is one endpoint of a DimensionRange.
type Bound struct {
	kind BoundKind
	dim  Dimension
}

// Unbounded is an endpoint with no limit.
var Unbounded = Bound{}

// Included returns an endpoint that allows d itself.
func Included(d Dimension) Bound {
	return Bound{kind: BoundIncluded, dim: d}
}

// Excluded returns an endpoint that stops short of d.
func Excluded(d Dimension) Bound {
	return Bound{kind: BoundExcluded, dim: d}
}

// Kind reports how the endpoint treats its measurement.
func (b Bound) Kind() BoundKind {
	return b.kind
}

// Dimension returns the endpoint's measurement. The second result is
// false for an unbounded endpoint.
func (b Bound) Dimension() (Dimension, bool) {
	return b.dim, b.kind != BoundUnbounded
}

// DimensionRange is a range of measurements. Either endpoint may be
// unbounded. The zero value is the full, unbounded range.
type DimensionRange struct {
	Start Bound
	End   Bound
}

// FullRange has no limit in either direction.
var FullRange = DimensionRange{}

// RangeBetween returns the half-open range start..end, including start
// and excluding end.
func RangeBetween(start, end Dimension) DimensionRange {
	return DimensionRange{Start: Included(start), End: Excluded(end)}
}

// RangeInclusive returns the closed range start..end, including both
// endpoints.
func RangeInclusive(start, end Dimension) DimensionRange {
	return DimensionRange{Start: Included(start), End: Included(end)}
}

// RangeFrom returns the range of all measurements at or above start.
func RangeFrom(start Dimension) DimensionRange {
	return DimensionRange{Start: Included(start)}
}

// RangeTo returns the range of all measurements below end.
func RangeTo(end Dimension) DimensionRange {
	return DimensionRange{End: Excluded(end)}
}

// RangeToInclusive returns the range of all measurements at or below
// end.
func RangeToInclusive(end Dimension) DimensionRange {
	return DimensionRange{End: Included(end)}
}

// ExactRange returns a range containing only d. The encoding excludes d
// at the start and includes it at the end so that ExactDimension can
// recognize it without inspecting the units involved.
func ExactRange(d Dimension) DimensionRange {
	return DimensionRange{Start: Excluded(d), End: Included(d)}
}

// ExactDimension returns the single measurement the range represents,
// if it was built by ExactRange. The second result is false for every
// other shape of range.
func (r DimensionRange) ExactDimension() (Dimension, bool) {
	if r.Start.kind == BoundExcluded && r.End.kind == BoundIncluded && r.Start.dim == r.End.dim {
		return r.End.dim, true
	}
	return Dimension{}, false
}

// Minimum returns the smallest measurement the range allows. An
// excluded start is tightened by one pixel in its own unit. The second
// result is false when the start is unbounded.
func (r DimensionRange) Minimum() (Dimension, bool) {
	switch r.Start.kind {
	case BoundIncluded:
		return r.Start.dim, true
	case BoundExcluded:
		return offsetDimension(r.Start.dim, 1), true
	default:
		return Dimension{}, false
	}
}

// Maximum returns the largest measurement the range allows. An excluded
// end is tightened by one pixel in its own unit. The second result is
// false when the end is unbounded.
func (r DimensionRange) Maximum() (Dimension, bool) {
	switch r.End.kind {
	case BoundIncluded:
		return r.End.dim, true
	case BoundExcluded:
		return offsetDimension(r.End.dim, -1), true
	default:
		return Dimension{}, false
	}
}

// Clamp constrains size to the range, resolving the endpoints to
// unsigned pixels at the given scale. The minimum wins when the range
// is inverted.
func (r DimensionRange) Clamp(size UPx, scale Fraction) UPx {
	if max, ok := r.Maximum(); ok {
		if limit := max.IntoUPx(scale); size > limit {
			size = limit
		}
	}
	if min, ok := r.Minimum(); ok {
		if limit := min.IntoUPx(scale); size < limit {
			size = limit
		}
	}
	return size
}

func (r DimensionRange) String() string {
	divider := ".."
	if r.End.kind == BoundIncluded {
		divider = "..="
	}
	start := ""
	if d, ok := r.Start.Dimension(); ok {
		start = d.String()
	}
	end := ""
	if d, ok := r.End.Dimension(); ok {
		end = d.String()
	}
	return start + divider + end
}

// offsetDimension moves d by delta pixels in its own unit.
func offsetDimension(d Dimension, delta int32) Dimension {
	if d.kind == DimensionPx {
		return PxDimension(d.px + Px(delta))
	}
	return LpDimension(d.lp + Lp(delta))
}
