package styles

import (
	"fmt"

	"github.com/ecton/cushy/pkg/animation"
	"github.com/ecton/cushy/pkg/graphics"
	"github.com/ecton/cushy/pkg/layout"
)

// ComponentKind identifies which variant a Component holds.
type ComponentKind uint8

const (
	// KindColor holds a graphics.Color.
	KindColor ComponentKind = iota
	// KindDimension holds a layout.Dimension.
	KindDimension
	// KindDimensionRange holds a layout.DimensionRange.
	KindDimensionRange
	// KindPercent holds an animation.ZeroToOne.
	KindPercent
	// KindEasing holds an animation.Curve.
	KindEasing
	// KindVisualOrder holds a VisualOrder.
	KindVisualOrder
	// KindFocusableWidgets holds a FocusableWidgets.
	KindFocusableWidgets
	// KindContainerLevel holds a ContainerLevel.
	KindContainerLevel
	// KindFontFamily holds a FontFamily.
	KindFontFamily
	// KindFontWeight holds a FontWeight.
	KindFontWeight
	// KindFontStyle holds a FontStyle.
	KindFontStyle
	// KindCustom holds a CustomComponent.
	KindCustom
)

func (k ComponentKind) String() string {
	switch k {
	case KindColor:
		return "Color"
	case KindDimension:
		return "Dimension"
	case KindDimensionRange:
		return "DimensionRange"
	case KindPercent:
		return "Percent"
	case KindEasing:
		return "Easing"
	case KindVisualOrder:
		return "VisualOrder"
	case KindFocusableWidgets:
		return "FocusableWidgets"
	case KindContainerLevel:
		return "ContainerLevel"
	case KindFontFamily:
		return "FontFamily"
	case KindFontWeight:
		return "FontWeight"
	case KindFontStyle:
		return "FontStyle"
	case KindCustom:
		return "Custom"
	default:
		return fmt.Sprintf("ComponentKind(%d)", uint8(k))
	}
}

// Component is one stylable property's erased value. Exactly one
// variant is active. The zero value is a fully transparent color.
type Component struct {
	kind  ComponentKind
	value any
}

// ColorComponent wraps a color.
func ColorComponent(c graphics.Color) Component {
	return Component{kind: KindColor, value: c}
}

// DimensionComponent wraps a measurement.
func DimensionComponent(d layout.Dimension) Component {
	return Component{kind: KindDimension, value: d}
}

// DimensionRangeComponent wraps a range of measurements.
func DimensionRangeComponent(r layout.DimensionRange) Component {
	return Component{kind: KindDimensionRange, value: r}
}

// PercentComponent wraps a percentage between 0 and 1.
func PercentComponent(p animation.ZeroToOne) Component {
	return Component{kind: KindPercent, value: p}
}

// EasingComponent wraps an easing curve.
func EasingComponent(curve animation.Curve) Component {
	return Component{kind: KindEasing, value: curve}
}

// VisualOrderComponent wraps a layout direction pair.
func VisualOrderComponent(order VisualOrder) Component {
	return Component{kind: KindVisualOrder, value: order}
}

// FocusableWidgetsComponent wraps a focus filter.
func FocusableWidgetsComponent(f FocusableWidgets) Component {
	return Component{kind: KindFocusableWidgets, value: f}
}

// ContainerLevelComponent wraps a container nesting level.
func ContainerLevelComponent(level ContainerLevel) Component {
	return Component{kind: KindContainerLevel, value: level}
}

// FontFamilyComponent wraps a font family.
func FontFamilyComponent(family FontFamily) Component {
	return Component{kind: KindFontFamily, value: family}
}

// FontWeightComponent wraps a font weight.
func FontWeightComponent(weight FontWeight) Component {
	return Component{kind: KindFontWeight, value: weight}
}

// FontStyleComponent wraps a font style.
func FontStyleComponent(style FontStyle) Component {
	return Component{kind: KindFontStyle, value: style}
}

// Custom wraps a caller-defined payload.
func Custom(payload CustomPayload) Component {
	return Component{kind: KindCustom, value: NewCustomComponent(payload)}
}

// CustomFrom wraps an already constructed CustomComponent, preserving
// sharing.
func CustomFrom(custom CustomComponent) Component {
	return Component{kind: KindCustom, value: custom}
}

// Kind reports which variant is active.
func (c Component) Kind() ComponentKind {
	return c.kind
}

// Color projects the color variant. The second result is false for any
// other variant, and the component is left untouched either way.
func (c Component) Color() (graphics.Color, bool) {
	if c.kind == KindColor {
		if c.value == nil {
			return graphics.Color(0), true
		}
		return c.value.(graphics.Color), true
	}
	return graphics.Color(0), false
}

// Dimension projects the measurement variant.
func (c Component) Dimension() (layout.Dimension, bool) {
	if c.kind == KindDimension {
		return c.value.(layout.Dimension), true
	}
	return layout.Dimension{}, false
}

// DimensionRange projects the range variant.
func (c Component) DimensionRange() (layout.DimensionRange, bool) {
	if c.kind == KindDimensionRange {
		return c.value.(layout.DimensionRange), true
	}
	return layout.DimensionRange{}, false
}

// Percent projects the percentage variant.
func (c Component) Percent() (animation.ZeroToOne, bool) {
	if c.kind == KindPercent {
		return c.value.(animation.ZeroToOne), true
	}
	return 0, false
}

// Easing projects the easing variant.
func (c Component) Easing() (animation.Curve, bool) {
	if c.kind == KindEasing {
		return c.value.(animation.Curve), true
	}
	return nil, false
}

// VisualOrder projects the layout direction variant.
func (c Component) VisualOrder() (VisualOrder, bool) {
	if c.kind == KindVisualOrder {
		return c.value.(VisualOrder), true
	}
	return VisualOrder{}, false
}

// FocusableWidgets projects the focus filter variant.
func (c Component) FocusableWidgets() (FocusableWidgets, bool) {
	if c.kind == KindFocusableWidgets {
		return c.value.(FocusableWidgets), true
	}
	return FocusAll, false
}

// ContainerLevel projects the container level variant.
func (c Component) ContainerLevel() (ContainerLevel, bool) {
	if c.kind == KindContainerLevel {
		return c.value.(ContainerLevel), true
	}
	return ContainerLowest, false
}

// FontFamily projects the font family variant.
func (c Component) FontFamily() (FontFamily, bool) {
	if c.kind == KindFontFamily {
		return c.value.(FontFamily), true
	}
	return "", false
}

// FontWeight projects the font weight variant.
func (c Component) FontWeight() (FontWeight, bool) {
	if c.kind == KindFontWeight {
		return c.value.(FontWeight), true
	}
	return 0, false
}

// FontStyle projects the font style variant.
func (c Component) FontStyle() (FontStyle, bool) {
	if c.kind == KindFontStyle {
		return c.value.(FontStyle), true
	}
	return FontStyleNormal, false
}

// CustomComponent projects the custom variant.
func (c Component) CustomComponent() (CustomComponent, bool) {
	if c.kind == KindCustom {
		return c.value.(CustomComponent), true
	}
	return CustomComponent{}, false
}

// RequiresInvalidation reports whether a change to this value needs a
// relayout rather than only a redraw. Measurements and anything that
// affects text shaping or ordering invalidate; colors, focus filters,
// percentages, and easings only repaint.
func (c Component) RequiresInvalidation() bool {
	switch c.kind {
	case KindColor, KindFocusableWidgets, KindPercent, KindEasing:
		return false
	case KindCustom:
		custom, _ := c.CustomComponent()
		return custom.RequiresInvalidation()
	default:
		return true
	}
}

func (c Component) String() string {
	return fmt.Sprintf("%s(%v)", c.kind, c.value)
}
