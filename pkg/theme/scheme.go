package theme

import (
	"github.com/ecton/cushy/pkg/animation"
	"github.com/ecton/cushy/pkg/graphics"
)

// ColorScheme is the six color sources every palette derives from. A
// scheme is always fully populated: the builder generates any source
// the caller did not supply.
type ColorScheme struct {
	// Primary is the primary accent color.
	Primary graphics.ColorSource
	// Secondary is a secondary accent color.
	Secondary graphics.ColorSource
	// Tertiary is a tertiary accent color.
	Tertiary graphics.ColorSource
	// Error denotes errors.
	Error graphics.ColorSource
	// Neutral is a desaturated color for surfaces.
	Neutral graphics.ColorSource
	// NeutralVariant is a neutral color with a different tone.
	NeutralVariant graphics.ColorSource
}

// SchemeFromPrimary generates a full scheme from one primary color.
func SchemeFromPrimary(primary ProtoColor) ColorScheme {
	return NewColorSchemeBuilder(primary).Build()
}

// DefaultColorScheme is the scheme used when an application configures
// nothing: a green primary.
func DefaultColorScheme() ColorScheme {
	return SchemeFromPrimary(Hue(138.5))
}

// ProtoColor is a hue with an optional saturation. Builder setters fill
// in a role-appropriate saturation when one was not provided.
type ProtoColor struct {
	hue           graphics.Hue
	saturation    animation.ZeroToOne
	hasSaturation bool
}

// Hue returns a prototype with only a hue, in degrees.
func Hue(degrees float64) ProtoColor {
	return ProtoColor{hue: graphics.NewHue(degrees)}
}

// HueSaturation returns a prototype with both components specified.
func HueSaturation(degrees, saturation float64) ProtoColor {
	return ProtoColor{
		hue:           graphics.NewHue(degrees),
		saturation:    animation.NewZeroToOne(saturation),
		hasSaturation: true,
	}
}

// Proto wraps an existing source, keeping its saturation.
func Proto(source graphics.ColorSource) ProtoColor {
	return ProtoColor{hue: source.Hue, saturation: source.Saturation, hasSaturation: true}
}

// source resolves the prototype, falling back to the given saturation.
func (p ProtoColor) source(fallback animation.ZeroToOne) graphics.ColorSource {
	saturation := p.saturation
	if !p.hasSaturation {
		saturation = fallback
	}
	return graphics.ColorSource{Hue: p.hue, Saturation: saturation}
}

// ColorSchemeBuilder assembles a ColorScheme, generating any color the
// caller leaves unset.
type ColorSchemeBuilder struct {
	primary        graphics.ColorSource
	secondary      *graphics.ColorSource
	tertiary       *graphics.ColorSource
	errorSource    *graphics.ColorSource
	neutral        *graphics.ColorSource
	neutralVariant *graphics.ColorSource
	hueShift       float64
}

// NewColorSchemeBuilder returns a builder for the provided primary
// color. A primary without saturation defaults to 0.8.
func NewColorSchemeBuilder(primary ProtoColor) *ColorSchemeBuilder {
	return &ColorSchemeBuilder{
		primary:  primary.source(animation.NewZeroToOne(0.8)),
		hueShift: 30,
	}
}

// Secondary sets the secondary color. Without a saturation, half the
// primary saturation is used.
func (b *ColorSchemeBuilder) Secondary(secondary ProtoColor) *ColorSchemeBuilder {
	source := secondary.source(b.scaledPrimarySaturation(2))
	b.secondary = &source
	return b
}

// Tertiary sets the tertiary color. Without a saturation, a third of
// the primary saturation is used.
func (b *ColorSchemeBuilder) Tertiary(tertiary ProtoColor) *ColorSchemeBuilder {
	source := tertiary.source(b.scaledPrimarySaturation(3))
	b.tertiary = &source
	return b
}

// Error sets the error color. Without a saturation, the primary
// saturation is used.
func (b *ColorSchemeBuilder) Error(errorColor ProtoColor) *ColorSchemeBuilder {
	source := errorColor.source(b.primary.Saturation)
	b.errorSource = &source
	return b
}

// Neutral sets the neutral color. Without a saturation, 1% is used.
func (b *ColorSchemeBuilder) Neutral(neutral ProtoColor) *ColorSchemeBuilder {
	source := neutral.source(animation.NewZeroToOne(0.01))
	b.neutral = &source
	return b
}

// NeutralVariant sets the neutral variant color. Without a saturation,
// a tenth of the primary saturation is used.
func (b *ColorSchemeBuilder) NeutralVariant(neutralVariant ProtoColor) *ColorSchemeBuilder {
	source := neutralVariant.source(b.scaledPrimarySaturation(10))
	b.neutralVariant = &source
	return b
}

// HueShift sets the amount, in degrees, hues are shifted when
// generating colors to fill in the palette. The default is 30.
func (b *ColorSchemeBuilder) HueShift(degrees float64) *ColorSchemeBuilder {
	b.hueShift = degrees
	return b
}

// Build assembles the scheme, generating every unset color.
func (b *ColorSchemeBuilder) Build() ColorScheme {
	secondary := b.generateSecondary()
	if b.secondary != nil {
		secondary = *b.secondary
	}
	tertiary := b.generateTertiary(secondary)
	if b.tertiary != nil {
		tertiary = *b.tertiary
	}
	var errorSource graphics.ColorSource
	if b.errorSource != nil {
		errorSource = *b.errorSource
	} else {
		errorSource = b.generateError(secondary, tertiary)
	}
	neutral := graphics.ColorSource{Hue: b.primary.Hue, Saturation: animation.NewZeroToOne(0.01)}
	if b.neutral != nil {
		neutral = *b.neutral
	}
	neutralVariant := graphics.ColorSource{Hue: b.primary.Hue, Saturation: b.scaledPrimarySaturation(10)}
	if b.neutralVariant != nil {
		neutralVariant = *b.neutralVariant
	}
	return ColorScheme{
		Primary:        b.primary,
		Secondary:      secondary,
		Tertiary:       tertiary,
		Error:          errorSource,
		Neutral:        neutral,
		NeutralVariant: neutralVariant,
	}
}

func (b *ColorSchemeBuilder) scaledPrimarySaturation(divisor float64) animation.ZeroToOne {
	return animation.NewZeroToOne(b.primary.Saturation.Float() / divisor)
}

func (b *ColorSchemeBuilder) generateSecondary() graphics.ColorSource {
	return graphics.ColorSource{
		Hue:        b.primary.Hue.Add(b.hueShift),
		Saturation: b.scaledPrimarySaturation(2),
	}
}

// generateTertiary keeps the tertiary on the opposite side of the
// primary from the secondary.
func (b *ColorSchemeBuilder) generateTertiary(secondary graphics.ColorSource) graphics.ColorSource {
	shift := b.hueShift
	delta := graphics.NewHue(secondary.Hue.Degrees() - b.primary.Hue.Degrees()).Degrees()
	if delta < 0 {
		shift = -shift
	}
	return graphics.ColorSource{
		Hue:        b.primary.Hue.Add(-shift),
		Saturation: b.scaledPrimarySaturation(3),
	}
}

// generateError walks the hue circle from red-orange until the
// candidate contrasts acceptably against all three accent colors.
//
// The loop has no iteration bound. With a hue shift of 0 and a
// low-contrast palette it will never terminate; callers configuring a
// custom hue shift should supply an explicit error color in that case.
func (b *ColorSchemeBuilder) generateError(secondary, tertiary graphics.ColorSource) graphics.ColorSource {
	errorSource := graphics.ColorSource{
		Hue:        graphics.NewHue(30),
		Saturation: b.primary.Saturation,
	}
	for b.primary.ContrastBetween(errorSource).Float() < 0.10 ||
		secondary.ContrastBetween(errorSource).Float() < 0.10 ||
		tertiary.ContrastBetween(errorSource).Float() < 0.10 {
		errorSource.Hue = errorSource.Hue.Add(-b.hueShift)
	}
	return errorSource
}
