package graphics

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Okhsl is a hue/saturation/lightness cylinder built on top of the Oklab
// perceptual color space. Unlike HSL over sRGB, equal steps in Okhsl
// lightness and saturation correspond to roughly equal perceived steps,
// which is what makes table-driven palette derivation work: sampling one
// hue at lightness 40 and another at lightness 40 yields two colors of
// comparable weight.
//
// The conversion below follows Björn Ottosson's reference implementation.
// The sRGB transfer function (gamma) is delegated to go-colorful; the
// Oklab matrices, the lightness "toe", and the gamut approximation are
// local because no library in our dependency set models Okhsl.

// okhslToSRGB converts hue (turns, [0,1)), saturation and lightness
// ([0,1]) to non-linear sRGB components in [0,1].
func okhslToSRGB(h, s, l float64) (float64, float64, float64) {
	if l >= 1 {
		return 1, 1, 1
	}
	if l <= 0 {
		return 0, 0, 0
	}

	a := math.Cos(2 * math.Pi * h)
	b := math.Sin(2 * math.Pi * h)
	capL := toeInv(l)

	c0, cMid, cMax := chromaLimits(capL, a, b)

	// Interpolate chroma so saturation 0.8 lands on the mid gamut
	// approximation and 1.0 on the gamut edge.
	const mid = 0.8
	const midInv = 1.25

	var chroma float64
	if s < mid {
		t := midInv * s
		k1 := mid * c0
		k2 := 1 - k1/cMid
		chroma = t * k1 / (1 - k2*t)
	} else {
		t := (s - mid) / (1 - mid)
		k0 := cMid
		k1 := (1 - mid) * cMid * cMid * midInv * midInv / c0
		k2 := 1 - k1/(cMax-cMid)
		chroma = k0 + t*k1/(1-k2*t)
	}

	lr, lg, lb := oklabToLinearSRGB(capL, chroma*a, chroma*b)
	srgb := colorful.LinearRgb(lr, lg, lb).Clamped()
	return srgb.R, srgb.G, srgb.B
}

// srgbToOkhsl converts non-linear sRGB components in [0,1] to hue
// (turns, [0,1)), saturation and lightness ([0,1]).
func srgbToOkhsl(r, g, b float64) (float64, float64, float64) {
	lr, lg, lb := colorful.Color{R: r, G: g, B: b}.LinearRgb()
	capL, labA, labB := linearSRGBToOklab(lr, lg, lb)

	chroma := math.Sqrt(labA*labA + labB*labB)
	l := toe(capL)
	if chroma < 1e-7 {
		// Grays carry no hue information.
		return 0, 0, l
	}
	a := labA / chroma
	b2 := labB / chroma

	h := 0.5 + 0.5*math.Atan2(-labB, -labA)/math.Pi

	c0, cMid, cMax := chromaLimits(capL, a, b2)

	const mid = 0.8
	const midInv = 1.25

	var s float64
	if chroma < cMid {
		k1 := mid * c0
		k2 := 1 - k1/cMid
		t := chroma / (k1 + k2*chroma)
		s = t * mid
	} else {
		k0 := cMid
		k1 := (1 - mid) * cMid * cMid * midInv * midInv / c0
		k2 := 1 - k1/(cMax-cMid)
		t := (chroma - k0) / (k1 + k2*(chroma-k0))
		s = mid + (1-mid)*t
	}

	return h, clamp01(s), clamp01(l)
}

// linearSRGBToOklab converts linear sRGB to Oklab (L, a, b).
func linearSRGBToOklab(r, g, b float64) (float64, float64, float64) {
	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lc := math.Cbrt(l)
	mc := math.Cbrt(m)
	sc := math.Cbrt(s)

	return 0.2104542553*lc + 0.7936177850*mc - 0.0040720468*sc,
		1.9779984951*lc - 2.4285922050*mc + 0.4505937099*sc,
		0.0259040371*lc + 0.7827717662*mc - 0.8086757660*sc
}

// oklabToLinearSRGB converts Oklab (L, a, b) to linear sRGB.
func oklabToLinearSRGB(capL, a, b float64) (float64, float64, float64) {
	lc := capL + 0.3963377774*a + 0.2158037573*b
	mc := capL - 0.1055613458*a - 0.0638541728*b
	sc := capL - 0.0894841775*a - 1.2914855480*b

	l := lc * lc * lc
	m := mc * mc * mc
	s := sc * sc * sc

	return 4.0767416621*l - 3.3077115913*m + 0.2309699292*s,
		-1.2684380046*l + 2.6097574011*m - 0.3413193965*s,
		-0.0041960863*l - 0.7034186147*m + 1.7076147010*s
}

// toe maps Oklab lightness to the Okhsl lightness estimate (L_r).
func toe(x float64) float64 {
	const k1 = 0.206
	const k2 = 0.03
	const k3 = (1 + k1) / (1 + k2)
	y := k3*x - k1
	return 0.5 * (y + math.Sqrt(y*y+4*k2*k3*x))
}

// toeInv is the inverse of toe.
func toeInv(x float64) float64 {
	const k1 = 0.206
	const k2 = 0.03
	const k3 = (1 + k1) / (1 + k2)
	return (x*x + k1*x) / (k3 * (x + k2))
}

// computeMaxSaturation returns the maximum saturation S = C/L that stays
// inside the sRGB gamut for the normalized hue direction (a, b) where
// a^2 + b^2 == 1.
func computeMaxSaturation(a, b float64) float64 {
	// Saturation is limited by whichever channel leaves [0,1] first.
	var k0, k1, k2, k3, k4, wl, wm, ws float64
	switch {
	case -1.88170328*a-0.80936493*b > 1:
		// Red channel limited.
		k0, k1, k2, k3, k4 = 1.19086277, 1.76576728, 0.59662641, 0.75515197, 0.56771245
		wl, wm, ws = 4.0767416621, -3.3077115913, 0.2309699292
	case 1.81444104*a-1.19445276*b > 1:
		// Green channel limited.
		k0, k1, k2, k3, k4 = 0.73956515, -0.45954404, 0.08285427, 0.12541070, 0.14503204
		wl, wm, ws = -1.2684380046, 2.6097574011, -0.3413193965
	default:
		// Blue channel limited.
		k0, k1, k2, k3, k4 = 1.35733652, -0.00915799, -1.15130210, -0.50559606, 0.00692167
		wl, wm, ws = -0.0041960863, -0.7034186147, 1.7076147010
	}

	s := k0 + k1*a + k2*b + k3*a*a + k4*a*b

	// One Halley step refines the polynomial approximation.
	kl := 0.3963377774*a + 0.2158037573*b
	km := -0.1055613458*a - 0.0638541728*b
	ks := -0.0894841775*a - 1.2914855480*b

	lc := 1 + s*kl
	mc := 1 + s*km
	sc := 1 + s*ks

	l := lc * lc * lc
	m := mc * mc * mc
	s3 := sc * sc * sc

	lds := 3 * kl * lc * lc
	mds := 3 * km * mc * mc
	sds := 3 * ks * sc * sc

	lds2 := 6 * kl * kl * lc
	mds2 := 6 * km * km * mc
	sds2 := 6 * ks * ks * sc

	f := wl*l + wm*m + ws*s3
	f1 := wl*lds + wm*mds + ws*sds
	f2 := wl*lds2 + wm*mds2 + ws*sds2

	return s - f*f1/(f1*f1-0.5*f*f2)
}

// findCusp returns the (L, C) cusp of the sRGB gamut for the normalized
// hue direction (a, b).
func findCusp(a, b float64) (float64, float64) {
	sCusp := computeMaxSaturation(a, b)

	r, g, bl := oklabToLinearSRGB(1, sCusp*a, sCusp*b)
	lCusp := math.Cbrt(1 / math.Max(math.Max(r, g), bl))
	return lCusp, lCusp * sCusp
}

// findGamutIntersection intersects the segment from (l0, 0) to (l1, c1)
// with the sRGB gamut boundary, returning the parameter t in [0, 1].
func findGamutIntersection(a, b, l1, c1, l0, cuspL, cuspC float64) float64 {
	var t float64
	if (l1-l0)*cuspC-(cuspL-l0)*c1 <= 0 {
		// Intersection on the lower half of the gamut triangle.
		t = cuspC * l0 / (c1*cuspL + cuspC*(l0-l1))
	} else {
		// Upper half: start from the triangle estimate, then one Halley
		// step against the true boundary.
		t = cuspC * (l0 - 1) / (c1*(cuspL-1) + cuspC*(l0-l1))

		dl := l1 - l0
		dc := c1

		kl := 0.3963377774*a + 0.2158037573*b
		km := -0.1055613458*a - 0.0638541728*b
		ks := -0.0894841775*a - 1.2914855480*b

		ldt := dl + dc*kl
		mdt := dl + dc*km
		sdt := dl + dc*ks

		capL := l0*(1-t) + t*l1
		chroma := t * c1

		lc := capL + chroma*kl
		mc := capL + chroma*km
		sc := capL + chroma*ks

		l3 := lc * lc * lc
		m3 := mc * mc * mc
		s3 := sc * sc * sc

		ldt1 := 3 * ldt * lc * lc
		mdt1 := 3 * mdt * mc * mc
		sdt1 := 3 * sdt * sc * sc

		ldt2 := 6 * ldt * ldt * lc
		mdt2 := 6 * mdt * mdt * mc
		sdt2 := 6 * sdt * sdt * sc

		// Distance until a channel reaches 1, per channel weights.
		step := func(wl, wm, ws float64) float64 {
			f := wl*l3 + wm*m3 + ws*s3 - 1
			f1 := wl*ldt1 + wm*mdt1 + ws*sdt1
			f2 := wl*ldt2 + wm*mdt2 + ws*sdt2
			u := f1 / (f1*f1 - 0.5*f*f2)
			if u < 0 {
				return math.MaxFloat64
			}
			return -f * u
		}

		tr := step(4.0767416621, -3.3077115913, 0.2309699292)
		tg := step(-1.2684380046, 2.6097574011, -0.3413193965)
		tb := step(-0.0041960863, -0.7034186147, 1.7076147010)

		t += math.Min(tr, math.Min(tg, tb))
	}
	return t
}

// stMid approximates the "mid" saturation limits (S, T) for a hue
// direction, a smooth surface inside the gamut used for blending.
func stMid(a, b float64) (float64, float64) {
	s := 0.11516993 + 1/(7.44778970+4.15901240*b+
		a*(-2.19557347+1.75198401*b+
			a*(-2.13704948-10.02301043*b+
				a*(-4.24894561+5.38770819*b+4.69891013*a))))
	t := 0.11239642 + 1/(1.61320320-0.68124379*b+
		a*(0.40370612+0.90148123*b+
			a*(-0.27087943+0.61223990*b+
				a*(0.00299215-0.45399568*b-0.14661872*a))))
	return s, t
}

// chromaLimits returns the three chroma limits (C_0, C_mid, C_max) used
// to map Okhsl saturation onto the gamut at Oklab lightness capL.
func chromaLimits(capL, a, b float64) (float64, float64, float64) {
	cuspL, cuspC := findCusp(a, b)
	cMax := findGamutIntersection(a, b, capL, 1, capL, cuspL, cuspC)

	stMaxS := cuspC / cuspL
	stMaxT := cuspC / (1 - cuspL)
	k := cMax / math.Min(capL*stMaxS, (1-capL)*stMaxT)

	var cMid float64
	{
		sMid, tMid := stMid(a, b)
		ca := capL * sMid
		cb := (1 - capL) * tMid
		cMid = 0.9 * k * math.Sqrt(math.Sqrt(1/(1/(ca*ca*ca*ca)+1/(cb*cb*cb*cb))))
	}

	var c0 float64
	{
		ca := capL * 0.4
		cb := (1 - capL) * 0.8
		c0 = math.Sqrt(1 / (1/(ca*ca) + 1/(cb*cb)))
	}

	return c0, cMid, cMax
}
