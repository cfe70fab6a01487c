// Package theme derives concrete color palettes from a small set of
// perceptual color sources. A ColorScheme holds six sources; ThemePair
// expands them into every color a light or dark interface needs.
//
// Derivation is table-driven: each palette samples its source at fixed
// lightness levels. Recomputing from equal sources yields bit-identical
// colors.
package theme

import (
	"github.com/ecton/cushy/pkg/graphics"
)

// ColorTheme is a palette derived from one color source, used for each
// of the scheme's accent roles.
type ColorTheme struct {
	// Color is the main color, used for high-emphasis content.
	Color graphics.Color
	// ColorDim is dimmed for de-emphasized or disabled content.
	ColorDim graphics.Color
	// ColorBright is brightened for highlighting content.
	ColorBright graphics.Color
	// OnColor is for content that sits atop Color.
	OnColor graphics.Color
	// Container is the background color for containers.
	Container graphics.Color
	// OnContainer is for content inside of a container.
	OnContainer graphics.Color
}

// LightColorTheme returns the light-mode palette for source.
func LightColorTheme(source graphics.ColorSource) ColorTheme {
	return ColorTheme{
		Color:       source.ColorAt(40),
		ColorDim:    source.ColorAt(20),
		ColorBright: source.ColorAt(45),
		OnColor:     source.ColorAt(100),
		Container:   source.ColorAt(90),
		OnContainer: source.ColorAt(10),
	}
}

// DarkColorTheme returns the dark-mode palette for source.
func DarkColorTheme(source graphics.ColorSource) ColorTheme {
	return ColorTheme{
		Color:       source.ColorAt(80),
		ColorDim:    source.ColorAt(60),
		ColorBright: source.ColorAt(85),
		OnColor:     source.ColorAt(10),
		Container:   source.ColorAt(30),
		OnContainer: source.ColorAt(90),
	}
}

// SurfaceTheme colors the backgrounds and outlines of an interface,
// derived from the scheme's two neutral sources.
type SurfaceTheme struct {
	// Color is the default background color.
	Color graphics.Color
	// DimColor is a dimmer variant of the background.
	DimColor graphics.Color
	// BrightColor is a brighter variant of the background.
	BrightColor graphics.Color

	// LowestContainer through HighestContainer are the backgrounds for
	// container widgets by nesting level.
	LowestContainer  graphics.Color
	LowContainer     graphics.Color
	Container        graphics.Color
	HighContainer    graphics.Color
	HighestContainer graphics.Color

	// OpaqueWidget is the default background for opaque widgets.
	OpaqueWidget graphics.Color

	// OnColor is the default text/content color.
	OnColor graphics.Color
	// OnColorVariant is a de-emphasized content color.
	OnColorVariant graphics.Color
	// Outline draws important outlines.
	Outline graphics.Color
	// OutlineVariant draws decorative outlines.
	OutlineVariant graphics.Color
}

// LightSurfaceTheme returns the light-mode surface palette.
func LightSurfaceTheme(neutral, neutralVariant graphics.ColorSource) SurfaceTheme {
	return SurfaceTheme{
		Color:            neutral.ColorAt(97),
		DimColor:         neutral.ColorAt(70),
		BrightColor:      neutral.ColorAt(99),
		OpaqueWidget:     neutralVariant.ColorAt(75),
		LowestContainer:  neutral.ColorAt(95),
		LowContainer:     neutral.ColorAt(92),
		Container:        neutral.ColorAt(90),
		HighContainer:    neutral.ColorAt(85),
		HighestContainer: neutral.ColorAt(80),
		OnColor:          neutral.ColorAt(10),
		OnColorVariant:   neutralVariant.ColorAt(30),
		Outline:          neutralVariant.ColorAt(50),
		OutlineVariant:   neutral.ColorAt(60),
	}
}

// DarkSurfaceTheme returns the dark-mode surface palette.
func DarkSurfaceTheme(neutral, neutralVariant graphics.ColorSource) SurfaceTheme {
	return SurfaceTheme{
		Color:            neutral.ColorAt(10),
		DimColor:         neutral.ColorAt(2),
		BrightColor:      neutral.ColorAt(11),
		OpaqueWidget:     neutralVariant.ColorAt(40),
		LowestContainer:  neutral.ColorAt(15),
		LowContainer:     neutral.ColorAt(20),
		Container:        neutral.ColorAt(25),
		HighContainer:    neutral.ColorAt(30),
		HighestContainer: neutral.ColorAt(35),
		OnColor:          neutral.ColorAt(90),
		OnColorVariant:   neutralVariant.ColorAt(70),
		Outline:          neutralVariant.ColorAt(60),
		OutlineVariant:   neutral.ColorAt(50),
	}
}

// FixedTheme is a palette whose colors are safe in both light and dark
// themes.
type FixedTheme struct {
	// Color is an accent background color.
	Color graphics.Color
	// DimColor is an alternate background for less emphasized content.
	DimColor graphics.Color
	// OnColor is the primary color for content on either background.
	OnColor graphics.Color
	// OnColorVariant is for de-emphasized content on either background.
	OnColorVariant graphics.Color
}

// FixedThemeFromSource returns the mode-independent palette for source.
func FixedThemeFromSource(source graphics.ColorSource) FixedTheme {
	return FixedTheme{
		Color:          source.ColorAt(90),
		DimColor:       source.ColorAt(80),
		OnColor:        source.ColorAt(10),
		OnColorVariant: source.ColorAt(40),
	}
}

// Theme is a complete palette for one brightness mode.
type Theme struct {
	// Primary is the primary color theme.
	Primary ColorTheme
	// Secondary is the secondary color theme.
	Secondary ColorTheme
	// Tertiary is the tertiary color theme.
	Tertiary ColorTheme
	// Error is the color theme for errors.
	Error ColorTheme
	// Surface colors backgrounds and outlines.
	Surface SurfaceTheme
}

// LightTheme returns a light theme generated from the provided sources.
func LightTheme(primary, secondary, tertiary, errorSource, neutral, neutralVariant graphics.ColorSource) Theme {
	return Theme{
		Primary:   LightColorTheme(primary),
		Secondary: LightColorTheme(secondary),
		Tertiary:  LightColorTheme(tertiary),
		Error:     LightColorTheme(errorSource),
		Surface:   LightSurfaceTheme(neutral, neutralVariant),
	}
}

// DarkTheme returns a dark theme generated from the provided sources.
func DarkTheme(primary, secondary, tertiary, errorSource, neutral, neutralVariant graphics.ColorSource) Theme {
	return Theme{
		Primary:   DarkColorTheme(primary),
		Secondary: DarkColorTheme(secondary),
		Tertiary:  DarkColorTheme(tertiary),
		Error:     DarkColorTheme(errorSource),
		Surface:   DarkSurfaceTheme(neutral, neutralVariant),
	}
}

// ThemePair is a matched set of light and dark themes derived from one
// scheme.
type ThemePair struct {
	// Light is the theme for light mode.
	Light Theme
	// Dark is the theme for dark mode.
	Dark Theme
	// PrimaryFixed, SecondaryFixed, and TertiaryFixed remain consistent
	// between modes.
	PrimaryFixed   FixedTheme
	SecondaryFixed FixedTheme
	TertiaryFixed  FixedTheme

	// Scrim is the translucent-backdrop color placed behind modals.
	Scrim graphics.Color
	// Shadow is the color for shadows.
	Shadow graphics.Color
}

// FromScheme expands a scheme into its light and dark palettes.
func FromScheme(scheme ColorScheme) ThemePair {
	return ThemePair{
		Light: LightTheme(scheme.Primary, scheme.Secondary, scheme.Tertiary,
			scheme.Error, scheme.Neutral, scheme.NeutralVariant),
		Dark: DarkTheme(scheme.Primary, scheme.Secondary, scheme.Tertiary,
			scheme.Error, scheme.Neutral, scheme.NeutralVariant),
		PrimaryFixed:   FixedThemeFromSource(scheme.Primary),
		SecondaryFixed: FixedThemeFromSource(scheme.Secondary),
		TertiaryFixed:  FixedThemeFromSource(scheme.Tertiary),
		Scrim:          scheme.Neutral.ColorAt(1),
		Shadow:         scheme.Neutral.ColorAt(1),
	}
}

// DefaultThemePair expands the default color scheme.
func DefaultThemePair() ThemePair {
	return FromScheme(DefaultColorScheme())
}
