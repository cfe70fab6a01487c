package styles

import (
	"strings"
	"sync"
)

// FontFamily names a font family, either a concrete family name or one
// of the generic families.
type FontFamily string

// Generic font families resolved by the text system.
const (
	FamilySerif     FontFamily = "serif"
	FamilySansSerif FontFamily = "sans-serif"
	FamilyMonospace FontFamily = "monospace"
	FamilyCursive   FontFamily = "cursive"
	FamilyFantasy   FontFamily = "fantasy"
	FamilySystemUI  FontFamily = "system-ui"
)

// FontWeight is the thickness of glyph strokes, on the common 100-900
// scale.
type FontWeight int

const (
	FontWeightThin       FontWeight = 100
	FontWeightExtraLight FontWeight = 200
	FontWeightLight      FontWeight = 300
	FontWeightNormal     FontWeight = 400
	FontWeightMedium     FontWeight = 500
	FontWeightSemiBold   FontWeight = 600
	FontWeightBold       FontWeight = 700
	FontWeightExtraBold  FontWeight = 800
	FontWeightBlack      FontWeight = 900
)

// FontStyle selects the glyph slant.
type FontStyle int

const (
	// FontStyleNormal is upright text.
	FontStyleNormal FontStyle = iota
	// FontStyleItalic uses the family's italic faces.
	FontStyleItalic
	// FontStyleOblique slants the upright faces.
	FontStyleOblique
)

func (s FontStyle) String() string {
	switch s {
	case FontStyleItalic:
		return "italic"
	case FontStyleOblique:
		return "oblique"
	default:
		return "normal"
	}
}

// FontFamilyList is an ordered list of families to try when resolving
// text. It is stored in the registry as a custom component since the
// built-in FontFamily kind holds a single family.
type FontFamilyList []FontFamily

// RequiresInvalidation implements CustomPayload. Changing the family
// list reshapes text.
func (FontFamilyList) RequiresInvalidation() bool {
	return true
}

func (l FontFamilyList) String() string {
	names := make([]string, len(l))
	for i, family := range l {
		names[i] = string(family)
	}
	return strings.Join(names, ", ")
}

var defaultFamilyList = sync.OnceValue(func() FontFamilyList {
	return FontFamilyList{}
})

// DefaultFontFamilyList returns the shared empty family list used when
// no list has been configured.
func DefaultFontFamilyList() FontFamilyList {
	return defaultFamilyList()
}
