package styles_test

import (
	"fmt"

	"github.com/ecton/cushy/pkg/graphics"
	"github.com/ecton/cushy/pkg/layout"
	"github.com/ecton/cushy/pkg/reactive"
	"github.com/ecton/cushy/pkg/styles"
)

// Widgets declare their stylable properties as package-level
// definitions, then resolve them against whatever registry the
// application provides.
var buttonBackground = styles.DefineStatic(
	styles.NewComponentName("button", "background_color"),
	styles.ColorType,
	graphics.RGB(230, 230, 230),
)

// nopContext stands in for the build context a widget would supply.
type nopContext struct{}

func (nopContext) RedrawWhenChanged(reactive.Subscribable)     {}
func (nopContext) InvalidateWhenChanged(reactive.Subscribable) {}

func ExampleGet() {
	// An empty registry falls back to the definition's default.
	empty := styles.NewStyles()
	fmt.Println(styles.Get(empty, buttonBackground, nopContext{}) == graphics.RGB(230, 230, 230))

	// A populated registry returns the stored value.
	themed := empty.With(buttonBackground, styles.ColorComponent(graphics.RGB(25, 118, 210)))
	fmt.Println(styles.Get(themed, buttonBackground, nopContext{}) == graphics.RGB(25, 118, 210))
	// Output:
	// true
	// true
}

// This example shows how clones share storage until written to.
func ExampleStyles_Clone() {
	base := styles.NewStyles()
	base.Insert(buttonBackground, styles.ColorComponent(graphics.RGB(255, 0, 0)))

	override := base.Clone()
	override.InsertNamed(styles.NewComponentName("button", "height"),
		styles.DimensionComponent(layout.LpDimension(44)))

	fmt.Println(base.Len(), override.Len())
	// Output: 1 2
}
