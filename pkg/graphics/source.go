package graphics

import (
	"fmt"
	"math"

	"github.com/ecton/cushy/pkg/animation"
)

// Hue is a measurement of hue in degrees, normalized to (-180, 180].
//
// For fully saturated bright colors, 0° corresponds to a magenta-pink,
// 90° to a yellow, 180° to a cyan and -120° to a blue.
type Hue float64

// NewHue returns degrees normalized to (-180, 180].
func NewHue(degrees float64) Hue {
	d := math.Mod(degrees, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return Hue(d)
}

// Add returns the hue shifted by degrees, wrapping around the circle.
func (h Hue) Add(degrees float64) Hue {
	return NewHue(float64(h) + degrees)
}

// Degrees returns the hue in (-180, 180].
func (h Hue) Degrees() float64 {
	return float64(h)
}

// PositiveDegrees returns the hue mapped to [0, 360).
func (h Hue) PositiveDegrees() float64 {
	d := math.Mod(float64(h), 360)
	if d < 0 {
		d += 360
	}
	return d
}

// ColorSource is a hue and saturation that can generate a [Color] at any
// lightness.
//
// The goal of this type is to allow various tones of a given
// hue/saturation to be generated easily: the theme engine samples one
// source at a handful of fixed lightness levels to build a palette.
type ColorSource struct {
	// Hue of the source, in degrees.
	Hue Hue
	// Saturation of the source. 0 produces shades of gray, 1 fully
	// saturated colors.
	Saturation animation.ZeroToOne
}

// NewColorSource returns a source with the given hue (degrees) and
// saturation (0-1).
func NewColorSource(hue float64, saturation float64) ColorSource {
	return ColorSource{
		Hue:        NewHue(hue),
		Saturation: animation.NewZeroToOne(saturation),
	}
}

// Color generates a fully opaque color by combining the source's hue and
// saturation with the provided lightness.
func (s ColorSource) Color(lightness animation.ZeroToOne) Color {
	h := s.Hue.PositiveDegrees() / 360
	r, g, b := okhslToSRGB(h, s.Saturation.Float(), lightness.Float())
	return RGBAFloats(r, g, b, 1)
}

// ColorAt is shorthand for sampling at an integer lightness on the 0-100
// scale used by the palette tables. Values above 100 are clamped.
func (s ColorSource) ColorAt(lightness uint8) Color {
	return s.Color(animation.NewZeroToOne(float64(lightness) / 100))
}

// ContrastBetween returns an approximate ratio between 0 and 1 of how
// contrasting two sources are: the shortest arc between the hues on the
// 360° circle, normalized by the 180° maximum, averaged with the
// saturation difference. The result is symmetric.
func (s ColorSource) ContrastBetween(other ColorSource) animation.ZeroToOne {
	saturationDelta := s.Saturation.DifferenceBetween(other.Saturation)

	a := s.Hue.PositiveDegrees()
	b := other.Hue.PositiveDegrees()
	// 0 and 359 are one degree apart, not 359.
	arc := math.Abs(a - b)
	if arc > 180 {
		arc = 360 - arc
	}
	hueDelta := animation.NewZeroToOne(arc / 180)

	return animation.NewZeroToOne((saturationDelta.Float() + hueDelta.Float()) / 2)
}

func (s ColorSource) String() string {
	return fmt.Sprintf("ColorSource(hue: %v°, saturation: %v)", float64(s.Hue), float64(s.Saturation))
}

// SourceAndLightness decomposes the color into its hue/saturation source
// and its perceived lightness. The lightness is scaled by the color's
// alpha so that translucent colors read as darker.
func (c Color) SourceAndLightness() (ColorSource, animation.ZeroToOne) {
	h, s, l := srgbToOkhsl(c.RedF(), c.GreenF(), c.BlueF())
	return ColorSource{
		Hue:        NewHue(h * 360),
		Saturation: animation.NewZeroToOne(s),
	}, animation.NewZeroToOne(l * c.Alpha())
}

// Source returns the hue and saturation of this color.
func (c Color) Source() ColorSource {
	source, _ := c.SourceAndLightness()
	return source
}

// Lightness returns the perceived lightness of this color.
func (c Color) Lightness() animation.ZeroToOne {
	_, lightness := c.SourceAndLightness()
	return lightness
}

// ContrastBetween returns the contrast between this color and the
// components provided.
//
// To achieve a contrast of 1.0, the hues must be 180 degrees apart and
// the saturations, lightnesses and alphas must each differ by 1.0.
//
// The hue/saturation and alpha terms are weighted by the average
// lightness of the pair, so those differences count for less near the
// dark end of the range. This is a heuristic, not an objective
// perceptual law, and may change.
func (c Color) ContrastBetween(
	checkSource ColorSource,
	checkLightness animation.ZeroToOne,
	checkAlpha animation.ZeroToOne,
) animation.ZeroToOne {
	otherSource, otherLightness := c.SourceAndLightness()
	lightnessDelta := otherLightness.DifferenceBetween(checkLightness)

	averageLightness := (checkLightness.Float() + otherLightness.Float()) / 2

	sourceChange := checkSource.ContrastBetween(otherSource)

	otherAlpha := animation.NewZeroToOne(c.Alpha())
	alphaDelta := checkAlpha.DifferenceBetween(otherAlpha)

	return animation.NewZeroToOne(
		(lightnessDelta.Float() +
			averageLightness*sourceChange.Float() +
			averageLightness*alphaDelta.Float()) / 3)
}

// MostContrasting returns the candidate that contrasts the most with c.
// Comparison is strict, so ties keep the earliest maximum.
//
// Calling this with no candidates is a caller bug and panics.
func (c Color) MostContrasting(candidates []Color) Color {
	if len(candidates) == 0 {
		panic("graphics: MostContrasting requires at least one candidate")
	}

	checkSource, checkLightness := c.SourceAndLightness()
	checkAlpha := animation.NewZeroToOne(c.Alpha())

	winner := candidates[0]
	winnerContrast := winner.ContrastBetween(checkSource, checkLightness, checkAlpha)
	for _, candidate := range candidates[1:] {
		contrast := candidate.ContrastBetween(checkSource, checkLightness, checkAlpha)
		if contrast > winnerContrast {
			winner = candidate
			winnerContrast = contrast
		}
	}
	return winner
}
