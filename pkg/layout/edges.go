package layout

// Edges is a measurement for each of the four sides of a rectangle.
type Edges[T any] struct {
	Left   T
	Top    T
	Right  T
	Bottom T
}

// UniformEdges returns edges with the same measurement on every side.
func UniformEdges[T any](value T) Edges[T] {
	return Edges[T]{Left: value, Top: value, Right: value, Bottom: value}
}

// WithLeft returns a copy with the left edge replaced.
func (e Edges[T]) WithLeft(value T) Edges[T] {
	e.Left = value
	return e
}

// WithTop returns a copy with the top edge replaced.
func (e Edges[T]) WithTop(value T) Edges[T] {
	e.Top = value
	return e
}

// WithRight returns a copy with the right edge replaced.
func (e Edges[T]) WithRight(value T) Edges[T] {
	e.Right = value
	return e
}

// WithBottom returns a copy with the bottom edge replaced.
func (e Edges[T]) WithBottom(value T) Edges[T] {
	e.Bottom = value
	return e
}

// MapEdges applies f to each side.
func MapEdges[T, U any](e Edges[T], f func(T) U) Edges[U] {
	return Edges[U]{
		Left:   f(e.Left),
		Top:    f(e.Top),
		Right:  f(e.Right),
		Bottom: f(e.Bottom),
	}
}
