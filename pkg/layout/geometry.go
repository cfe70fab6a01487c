package layout

// Point is a location in physical pixels.
type Point struct {
	X Px
	Y Px
}

// Size is an extent in physical pixels.
type Size struct {
	Width  Px
	Height Px
}

// Rect is a rectangle positioned at Origin with the given Size.
type Rect struct {
	Origin Point
	Size   Size
}

// NewRect returns a rectangle from its origin and size components.
func NewRect(x, y, width, height Px) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: width, Height: height}}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() Px {
	return r.Origin.X + r.Size.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() Px {
	return r.Origin.Y + r.Size.Height
}

// Contains reports whether p falls within the rectangle, excluding the
// right and bottom edges.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Origin.X && p.X < r.Right() &&
		p.Y >= r.Origin.Y && p.Y < r.Bottom()
}
