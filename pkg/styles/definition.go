package styles

import (
	"fmt"

	"github.com/ecton/cushy/pkg/animation"
	"github.com/ecton/cushy/pkg/errors"
	"github.com/ecton/cushy/pkg/graphics"
	"github.com/ecton/cushy/pkg/layout"
	"github.com/ecton/cushy/pkg/reactive"
)

// BuildContext is the collaborator a widget supplies when resolving
// styles. Lookups register change subscriptions against it.
type BuildContext interface {
	reactive.Observer
}

// ComponentType converts between a typed style value and its erased
// Component. Each built-in kind has one adapter; custom payloads get
// one from CustomType.
type ComponentType[T any] struct {
	// Inject wraps a typed value. Total.
	Inject func(T) Component
	// Project unwraps a typed value. Partial: the second result is
	// false when the component holds a different kind, and the
	// component is left intact.
	Project func(Component) (T, bool)
}

// Adapters for the built-in component kinds.
var (
	ColorType            = ComponentType[graphics.Color]{Inject: ColorComponent, Project: Component.Color}
	DimensionType        = ComponentType[layout.Dimension]{Inject: DimensionComponent, Project: Component.Dimension}
	DimensionRangeType   = ComponentType[layout.DimensionRange]{Inject: DimensionRangeComponent, Project: Component.DimensionRange}
	PercentType          = ComponentType[animation.ZeroToOne]{Inject: PercentComponent, Project: Component.Percent}
	EasingType           = ComponentType[animation.Curve]{Inject: EasingComponent, Project: Component.Easing}
	VisualOrderType      = ComponentType[VisualOrder]{Inject: VisualOrderComponent, Project: Component.VisualOrder}
	FocusableWidgetsType = ComponentType[FocusableWidgets]{Inject: FocusableWidgetsComponent, Project: Component.FocusableWidgets}
	ContainerLevelType   = ComponentType[ContainerLevel]{Inject: ContainerLevelComponent, Project: Component.ContainerLevel}
	FontFamilyType       = ComponentType[FontFamily]{Inject: FontFamilyComponent, Project: Component.FontFamily}
	FontWeightType       = ComponentType[FontWeight]{Inject: FontWeightComponent, Project: Component.FontWeight}
	FontStyleType        = ComponentType[FontStyle]{Inject: FontStyleComponent, Project: Component.FontStyle}
)

// CustomType returns the adapter for a custom payload type. Projection
// succeeds only when the stored payload is exactly T.
func CustomType[T CustomPayload]() ComponentType[T] {
	return ComponentType[T]{
		Inject: func(payload T) Component {
			return Custom(payload)
		},
		Project: func(c Component) (T, bool) {
			var zero T
			custom, ok := c.CustomComponent()
			if !ok {
				return zero, false
			}
			return Downcast[T](custom)
		},
	}
}

// FontFamilyListType adapts the shared family-list payload.
func FontFamilyListType() ComponentType[FontFamilyList] {
	return CustomType[FontFamilyList]()
}

// CornerRadiiType adapts per-corner radius dimensions, stored as a
// custom payload.
func CornerRadiiType() ComponentType[layout.CornerRadii[layout.Dimension]] {
	return CustomType[layout.CornerRadii[layout.Dimension]]()
}

// Definition describes one stylable property: its registry key, its
// value type, and the default used when the registry has no usable
// entry. Definitions are usually package-level vars.
type Definition[T any] struct {
	name         ComponentName
	ty           ComponentType[T]
	defaultValue func(BuildContext) T
}

// Define returns a definition whose default is computed from the
// context at lookup time.
func Define[T any](name ComponentName, ty ComponentType[T], defaultValue func(BuildContext) T) Definition[T] {
	return Definition[T]{name: name, ty: ty, defaultValue: defaultValue}
}

// DefineStatic returns a definition with a fixed default.
func DefineStatic[T any](name ComponentName, ty ComponentType[T], defaultValue T) Definition[T] {
	return Definition[T]{name: name, ty: ty, defaultValue: func(BuildContext) T { return defaultValue }}
}

// ComponentName implements NamedComponent.
func (d Definition[T]) ComponentName() ComponentName {
	return d.name
}

// Type returns the definition's conversion adapter.
func (d Definition[T]) Type() ComponentType[T] {
	return d.ty
}

// DefaultValue returns the fallback for this property.
func (d Definition[T]) DefaultValue(ctx BuildContext) T {
	return d.defaultValue(ctx)
}

// Get resolves def against styles.
//
// On a hit with the right kind, the value is returned and a change
// subscription is registered with ctx: relayout when the component
// kind requires invalidation, redraw otherwise. On a type mismatch the
// mismatch is reported and the default is returned. On a miss the
// default is returned.
//
// Neither fallback path registers a subscription, so inserting the
// property later will not re-resolve widgets that already fell back.
// Callers that need that must subscribe to the registry another way.
func Get[T any](styles Styles, def Definition[T], ctx BuildContext) T {
	value, ok := styles.GetNamed(def.name)
	if !ok {
		return def.DefaultValue(ctx)
	}

	component := value.Get()
	typed, ok := def.ty.Project(component)
	if !ok {
		errors.Report(&errors.StyleError{
			Op:        "styles.Get",
			Kind:      errors.KindConversion,
			Err:       fmt.Errorf("stored component is %s", component.Kind()),
			Component: def.name.String(),
		})
		return def.DefaultValue(ctx)
	}

	if component.RequiresInvalidation() {
		value.InvalidateWhenChanged(ctx)
	} else {
		value.RedrawWhenChanged(ctx)
	}
	return typed
}
