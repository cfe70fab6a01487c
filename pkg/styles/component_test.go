package styles

import (
	"testing"

	"github.com/ecton/cushy/pkg/animation"
	"github.com/ecton/cushy/pkg/graphics"
	"github.com/ecton/cushy/pkg/layout"
)

func TestComponentProjectionsAreVariantChecked(t *testing.T) {
	color := ColorComponent(graphics.RGB(1, 2, 3))

	if got, ok := color.Color(); !ok || got != graphics.RGB(1, 2, 3) {
		t.Fatalf("color round trip failed: %v (ok=%v)", got, ok)
	}
	if _, ok := color.Dimension(); ok {
		t.Error("color projected as a dimension")
	}
	if _, ok := color.FontWeight(); ok {
		t.Error("color projected as a font weight")
	}

	dim := DimensionComponent(layout.PxDimension(8))
	if got, ok := dim.Dimension(); !ok || got != layout.PxDimension(8) {
		t.Fatalf("dimension round trip failed: %v (ok=%v)", got, ok)
	}
	if _, ok := dim.Color(); ok {
		t.Error("dimension projected as a color")
	}

	r := DimensionRangeComponent(layout.RangeFrom(layout.LpDimension(4)))
	if got, ok := r.DimensionRange(); !ok || got != layout.RangeFrom(layout.LpDimension(4)) {
		t.Fatalf("range round trip failed: %v (ok=%v)", got, ok)
	}

	order := VisualOrderComponent(VisualOrderRightToLeft())
	if got, ok := order.VisualOrder(); !ok || got != VisualOrderRightToLeft() {
		t.Fatalf("order round trip failed: %v (ok=%v)", got, ok)
	}

	weight := FontWeightComponent(FontWeightSemiBold)
	if got, ok := weight.FontWeight(); !ok || got != FontWeightSemiBold {
		t.Fatalf("weight round trip failed: %v (ok=%v)", got, ok)
	}

	percent := PercentComponent(animation.NewZeroToOne(0.5))
	if got, ok := percent.Percent(); !ok || got.Float() != 0.5 {
		t.Fatalf("percent round trip failed: %v (ok=%v)", got, ok)
	}
}

func TestEasingComponent(t *testing.T) {
	easing := EasingComponent(animation.EaseInOut)
	curve, ok := easing.Easing()
	if !ok || curve == nil {
		t.Fatal("easing projection failed")
	}
	if got := curve(0); got != 0 {
		t.Errorf("curve(0) = %v", got)
	}
	if got := curve(1); got != 1 {
		t.Errorf("curve(1) = %v", got)
	}
}

func TestRequiresInvalidationPolicy(t *testing.T) {
	cases := []struct {
		component Component
		want      bool
	}{
		{ColorComponent(graphics.RGB(0, 0, 0)), false},
		{FocusableWidgetsComponent(FocusOnlyTextual), false},
		{PercentComponent(animation.NewZeroToOne(1)), false},
		{EasingComponent(animation.Linear), false},
		{DimensionComponent(layout.PxDimension(1)), true},
		{DimensionRangeComponent(layout.FullRange), true},
		{VisualOrderComponent(VisualOrderLeftToRight()), true},
		{ContainerLevelComponent(ContainerMid), true},
		{FontFamilyComponent(FamilyMonospace), true},
		{FontWeightComponent(FontWeightBold), true},
		{FontStyleComponent(FontStyleItalic), true},
	}
	for _, tc := range cases {
		if got := tc.component.RequiresInvalidation(); got != tc.want {
			t.Errorf("%s: RequiresInvalidation() = %v, want %v", tc.component.Kind(), got, tc.want)
		}
	}
}

type paintPayload struct {
	Passes int
}

func (paintPayload) RequiresInvalidation() bool { return false }

type measurePayload struct {
	Columns int
}

func (measurePayload) RequiresInvalidation() bool { return true }

func TestCustomComponentDelegatesInvalidation(t *testing.T) {
	if Custom(paintPayload{}).RequiresInvalidation() {
		t.Error("paint payload should not invalidate")
	}
	if !Custom(measurePayload{}).RequiresInvalidation() {
		t.Error("measure payload should invalidate")
	}
}

func TestDowncastIsExact(t *testing.T) {
	component := Custom(paintPayload{Passes: 2})
	custom, ok := component.CustomComponent()
	if !ok {
		t.Fatal("expected a custom component")
	}

	payload, ok := Downcast[paintPayload](custom)
	if !ok || payload.Passes != 2 {
		t.Fatalf("downcast failed: %+v (ok=%v)", payload, ok)
	}
	if _, ok := Downcast[measurePayload](custom); ok {
		t.Error("downcast to a different concrete type succeeded")
	}
}

func TestCustomTypeAdapter(t *testing.T) {
	ty := CustomType[measurePayload]()
	component := ty.Inject(measurePayload{Columns: 3})
	payload, ok := ty.Project(component)
	if !ok || payload.Columns != 3 {
		t.Fatalf("adapter round trip failed: %+v (ok=%v)", payload, ok)
	}
	if _, ok := ty.Project(ColorComponent(graphics.RGB(0, 0, 0))); ok {
		t.Error("adapter projected a color")
	}
}

func TestFontFamilyListStoredAsCustom(t *testing.T) {
	ty := FontFamilyListType()
	list := FontFamilyList{FamilySansSerif, "Inter"}
	component := ty.Inject(list)
	if component.Kind() != KindCustom {
		t.Fatalf("expected a custom component, got %s", component.Kind())
	}
	got, ok := ty.Project(component)
	if !ok || len(got) != 2 || got[1] != "Inter" {
		t.Fatalf("family list round trip failed: %v (ok=%v)", got, ok)
	}

	if shared := DefaultFontFamilyList(); len(shared) != 0 {
		t.Errorf("default family list should be empty, got %v", shared)
	}
}

func TestCornerRadiiStoredAsCustom(t *testing.T) {
	ty := CornerRadiiType()
	radii := layout.MapCornerRadii(
		layout.UniformCornerRadii(layout.Lp(4)).WithBottomLeft(0),
		layout.LpDimension,
	)
	component := ty.Inject(radii)
	if component.Kind() != KindCustom {
		t.Fatalf("expected a custom component, got %s", component.Kind())
	}
	if !component.RequiresInvalidation() {
		t.Error("corner radii should require relayout")
	}
	got, ok := ty.Project(component)
	if !ok || got != radii {
		t.Fatalf("corner radii round trip failed: %+v (ok=%v)", got, ok)
	}
	if _, ok := ty.Project(ColorComponent(graphics.RGB(0, 0, 0))); ok {
		t.Error("adapter projected a color")
	}
}

func TestContainerLevelNext(t *testing.T) {
	level := ContainerLowest
	steps := 0
	for {
		next, ok := level.Next()
		if !ok {
			break
		}
		level = next
		steps++
	}
	if steps != 4 || level != ContainerHighest {
		t.Fatalf("walked %d steps to %d", steps, level)
	}
}

func TestVisualOrderRev(t *testing.T) {
	order := VisualOrderLeftToRight()
	rev := order.Rev()
	if rev.Horizontal != RightToLeft || rev.Vertical != BottomToTop {
		t.Fatalf("unexpected reverse: %+v", rev)
	}
	if rev.Rev() != order {
		t.Error("double reverse should restore the order")
	}
}

func TestHorizontalSortKey(t *testing.T) {
	left := layout.NewRect(10, 0, 30, 10)
	right := layout.NewRect(50, 0, 30, 10)

	if LeftToRight.SortKey(left) >= LeftToRight.SortKey(right) {
		t.Error("left-to-right should order left first")
	}
	if RightToLeft.SortKey(right) >= RightToLeft.SortKey(left) {
		t.Error("right-to-left should order right first")
	}
}

func TestVerticalHelpers(t *testing.T) {
	if TopToBottom.SmallestPx(3, 8) != 3 {
		t.Error("top-to-bottom should pick the smaller coordinate")
	}
	if BottomToTop.SmallestPx(3, 8) != 8 {
		t.Error("bottom-to-top should pick the larger coordinate")
	}
	if TopToBottom.MaxPx() <= 0 || BottomToTop.MaxPx() >= 0 {
		t.Error("unexpected extreme coordinates")
	}
}
