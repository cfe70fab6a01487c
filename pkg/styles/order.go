package styles

import (
	"math"

	"github.com/ecton/cushy/pkg/layout"
)

// HorizontalOrder is a horizontal direction.
type HorizontalOrder uint8

const (
	// LeftToRight orders starting at the left and proceeding right.
	LeftToRight HorizontalOrder = iota
	// RightToLeft orders starting at the right and proceeding left.
	RightToLeft
)

// Rev returns the reverse order.
func (o HorizontalOrder) Rev() HorizontalOrder {
	if o == LeftToRight {
		return RightToLeft
	}
	return LeftToRight
}

// SortKey returns a key that orders rectangles along this direction.
func (o HorizontalOrder) SortKey(rect layout.Rect) layout.Px {
	if o == LeftToRight {
		return rect.Origin.X
	}
	return -rect.Right()
}

// VerticalOrder is a vertical direction.
type VerticalOrder uint8

const (
	// TopToBottom orders starting at the top and proceeding down.
	TopToBottom VerticalOrder = iota
	// BottomToTop orders starting at the bottom and proceeding up.
	BottomToTop
)

// Rev returns the reverse order.
func (o VerticalOrder) Rev() VerticalOrder {
	if o == TopToBottom {
		return BottomToTop
	}
	return TopToBottom
}

// MaxPx returns the extreme coordinate in this direction's travel.
func (o VerticalOrder) MaxPx() layout.Px {
	if o == TopToBottom {
		return math.MaxInt32
	}
	return math.MinInt32
}

// SmallestPx returns whichever coordinate comes first in this
// direction.
func (o VerticalOrder) SmallestPx(a, b layout.Px) layout.Px {
	if o == TopToBottom {
		return min(a, b)
	}
	return max(a, b)
}

// VisualOrder is a 2d ordering configuration.
type VisualOrder struct {
	// Horizontal is the ordering to apply horizontally.
	Horizontal HorizontalOrder
	// Vertical is the ordering to apply vertically.
	Vertical VerticalOrder
}

// VisualOrderLeftToRight returns a left-to-right, top-to-bottom
// ordering.
func VisualOrderLeftToRight() VisualOrder {
	return VisualOrder{Horizontal: LeftToRight, Vertical: TopToBottom}
}

// VisualOrderRightToLeft returns a right-to-left, top-to-bottom
// ordering.
func VisualOrderRightToLeft() VisualOrder {
	return VisualOrder{Horizontal: RightToLeft, Vertical: TopToBottom}
}

// Rev returns the reverse ordering on both axes.
func (o VisualOrder) Rev() VisualOrder {
	return VisualOrder{Horizontal: o.Horizontal.Rev(), Vertical: o.Vertical.Rev()}
}

// FocusableWidgets controls which widgets can receive focus through
// keyboard or initial focus handling.
type FocusableWidgets uint8

const (
	// FocusAll allows every widget that responds to keyboard input to
	// accept focus.
	FocusAll FocusableWidgets = iota
	// FocusOnlyTextual allows only widgets that expect textual input to
	// accept focus.
	FocusOnlyTextual
)

// IsAll reports whether all controls should be focusable.
func (f FocusableWidgets) IsAll() bool {
	return f == FocusAll
}

// IsOnlyTextual reports whether only textual controls should be
// focusable.
func (f FocusableWidgets) IsOnlyTextual() bool {
	return f == FocusOnlyTextual
}

// ContainerLevel describes how deeply a container is nested.
type ContainerLevel uint8

const (
	ContainerLowest ContainerLevel = iota
	ContainerLow
	ContainerMid
	ContainerHigh
	ContainerHighest
)

// Next returns the next deeper level. The second result is false at the
// highest level.
func (l ContainerLevel) Next() (ContainerLevel, bool) {
	if l >= ContainerHighest {
		return l, false
	}
	return l + 1, true
}
