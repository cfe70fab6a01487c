package layout

// CornerRadii is a measurement for each corner of a rectangle.
type CornerRadii[T any] struct {
	TopLeft     T
	TopRight    T
	BottomRight T
	BottomLeft  T
}

// UniformCornerRadii returns radii with the same measurement at every
// corner.
func UniformCornerRadii[T any](value T) CornerRadii[T] {
	return CornerRadii[T]{TopLeft: value, TopRight: value, BottomRight: value, BottomLeft: value}
}

// WithTopLeft returns a copy with the top-left corner replaced.
func (r CornerRadii[T]) WithTopLeft(value T) CornerRadii[T] {
	r.TopLeft = value
	return r
}

// WithTopRight returns a copy with the top-right corner replaced.
func (r CornerRadii[T]) WithTopRight(value T) CornerRadii[T] {
	r.TopRight = value
	return r
}

// WithBottomRight returns a copy with the bottom-right corner replaced.
func (r CornerRadii[T]) WithBottomRight(value T) CornerRadii[T] {
	r.BottomRight = value
	return r
}

// WithBottomLeft returns a copy with the bottom-left corner replaced.
func (r CornerRadii[T]) WithBottomLeft(value T) CornerRadii[T] {
	r.BottomLeft = value
	return r
}

// RequiresInvalidation reports that a radius change requires relayout.
func (CornerRadii[T]) RequiresInvalidation() bool {
	return true
}

// MapCornerRadii applies f to each corner.
func MapCornerRadii[T, U any](r CornerRadii[T], f func(T) U) CornerRadii[U] {
	return CornerRadii[U]{
		TopLeft:     f(r.TopLeft),
		TopRight:    f(r.TopRight),
		BottomRight: f(r.BottomRight),
		BottomLeft:  f(r.BottomLeft),
	}
}
