package colour

import "math"

// D65 white point used as the reference for the XYZ and Lab conversions.
const (
	whiteReferenceX = 95.047
	whiteReferenceY = 100.0
	whiteReferenceZ = 108.883
)

const (
	labEpsilon = 0.008856 // (6/29)^3
	labKappa   = 903.3    // (29/3)^3
)

// RGBToHSL converts 8-bit RGB channels to HSL.
// Returns hue [0, 360), saturation [0, 1] and lightness [0, 1].
// Achromatic colours yield hue 0 and saturation 0.
func RGBToHSL(r, g, b uint8) (h, s, l float64) {
	rf := float64(r) / 255.0
	gf := float64(g) / 255.0
	bf := float64(b) / 255.0

	maxVal := math.Max(rf, math.Max(gf, bf))
	minVal := math.Min(rf, math.Min(gf, bf))
	delta := maxVal - minVal

	l = (maxVal + minVal) / 2.0

	if delta == 0 {
		return 0, 0, l
	}

	switch maxVal {
	case rf:
		h = math.Mod((gf-bf)/delta, 6)
	case gf:
		h = (bf-rf)/delta + 2
	default:
		h = (rf-gf)/delta + 4
	}
	s = delta / (1 - math.Abs(2*l-1))

	h = math.Mod(h*60, 360)
	if h < 0 {
		h += 360
	}
	return h, s, l
}

// ColorToHSL converts a packed colour to HSL, ignoring alpha.
func ColorToHSL(c ARGB) (h, s, l float64) {
	return RGBToHSL(c.Red(), c.Green(), c.Blue())
}

// HSLToColor converts HSL values to an opaque packed colour.
// h is hue [0, 360), s and l are in [0, 1].
func HSLToColor(h, s, l float64) ARGB {
	c := (1 - math.Abs(2*l-1)) * s
	m := l - 0.5*c
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))

	var rf, gf, bf float64
	switch int(h) / 60 {
	case 0, 6:
		rf, gf, bf = c, x, 0
	case 1:
		rf, gf, bf = x, c, 0
	case 2:
		rf, gf, bf = 0, c, x
	case 3:
		rf, gf, bf = 0, x, c
	case 4:
		rf, gf, bf = x, 0, c
	case 5:
		rf, gf, bf = c, 0, x
	}

	r := clampChannel(math.Round(255 * (rf + m)))
	g := clampChannel(math.Round(255 * (gf + m)))
	b := clampChannel(math.Round(255 * (bf + m)))
	return NewRGB(r, g, b)
}

// RGBToXYZ converts 8-bit sRGB channels to CIE XYZ under the D65
// illuminant. Channels are gamma-decoded with the standard piecewise
// curve. The result is scaled so that Y of white is 100.
func RGBToXYZ(r, g, b uint8) (x, y, z float64) {
	sr := gammaDecode(float64(r) / 255.0)
	sg := gammaDecode(float64(g) / 255.0)
	sb := gammaDecode(float64(b) / 255.0)

	x = 100 * (sr*0.4124 + sg*0.3576 + sb*0.1805)
	y = 100 * (sr*0.2126 + sg*0.7152 + sb*0.0722)
	z = 100 * (sr*0.0193 + sg*0.1192 + sb*0.9505)
	return x, y, z
}

// ColorToXYZ converts a packed colour to CIE XYZ, ignoring alpha.
func ColorToXYZ(c ARGB) (x, y, z float64) {
	return RGBToXYZ(c.Red(), c.Green(), c.Blue())
}

// XYZToColor converts CIE XYZ values back to an opaque packed sRGB
// colour, clamping each channel to [0, 255].
func XYZToColor(x, y, z float64) ARGB {
	rf := (x*3.2406 + y*-1.5372 + z*-0.4986) / 100
	gf := (x*-0.9689 + y*1.8758 + z*0.0415) / 100
	bf := (x*0.0557 + y*-0.204 + z*1.057) / 100

	r := clampChannel(math.Round(gammaEncode(rf) * 255))
	g := clampChannel(math.Round(gammaEncode(gf) * 255))
	b := clampChannel(math.Round(gammaEncode(bf) * 255))
	return NewRGB(r, g, b)
}

// XYZToLab converts CIE XYZ values to CIE 1976 Lab referenced to the
// D65 white point.
func XYZToLab(x, y, z float64) (l, a, b float64) {
	fx := pivotXYZ(x / whiteReferenceX)
	fy := pivotXYZ(y / whiteReferenceY)
	fz := pivotXYZ(z / whiteReferenceZ)

	l = math.Max(0, 116*fy-16)
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return l, a, b
}

// LabToXYZ converts CIE 1976 Lab values back to CIE XYZ.
func LabToXYZ(l, a, b float64) (x, y, z float64) {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200

	xr := fx * fx * fx
	if xr <= labEpsilon {
		xr = (116*fx - 16) / labKappa
	}
	yr := l / labKappa
	if l > labKappa*labEpsilon {
		yr = fy * fy * fy
	}
	zr := fz * fz * fz
	if zr <= labEpsilon {
		zr = (116*fz - 16) / labKappa
	}

	return xr * whiteReferenceX, yr * whiteReferenceY, zr * whiteReferenceZ
}

// ColorToLab converts a packed colour to CIE Lab, ignoring alpha.
func ColorToLab(c ARGB) (l, a, b float64) {
	return XYZToLab(ColorToXYZ(c))
}

// LabToColor converts CIE Lab values to an opaque packed sRGB colour.
func LabToColor(l, a, b float64) ARGB {
	return XYZToColor(LabToXYZ(l, a, b))
}

// CircularInterpolate interpolates between two hue angles in degrees,
// taking the shorter arc around the 0/360 wrap point. fraction is in
// [0, 1], where 0 yields from and 1 yields to.
func CircularInterpolate(from, to, fraction float64) float64 {
	if math.Abs(to-from) > 180 {
		if to > from {
			from += 360
		} else {
			to += 360
		}
	}
	return math.Mod(from+(to-from)*fraction, 360)
}

// Luminance returns the WCAG relative luminance of a colour in [0, 1],
// derived from the Y channel of the XYZ conversion. Alpha is ignored.
func Luminance(c ARGB) float64 {
	_, y, _ := ColorToXYZ(c)
	return y / 100
}

// ContrastRatio returns the WCAG contrast ratio between two colours,
// a value between 1 and 21. The background is treated as opaque; a
// translucent foreground is composited over the background first.
func ContrastRatio(foreground, background ARGB) float64 {
	background = background.Opaque()
	if foreground.Alpha() < 255 {
		foreground = CompositeColors(foreground, background)
	}

	l1 := Luminance(foreground) + 0.05
	l2 := Luminance(background) + 0.05

	return math.Max(l1, l2) / math.Min(l1, l2)
}

const (
	minAlphaSearchMaxIterations = 10
	minAlphaSearchPrecision     = 10
)

// MinimumAlpha binary-searches for the smallest alpha value of
// foreground so that, composited over the opaque background, the pair
// still meets minContrastRatio. Returns -1 when even a fully opaque
// foreground cannot reach the ratio.
func MinimumAlpha(foreground, background ARGB, minContrastRatio float64) int {
	background = background.Opaque()

	// Check a fully opaque foreground first.
	testForeground := foreground.WithAlpha(255)
	if ContrastRatio(testForeground, background) < minContrastRatio {
		return -1
	}

	numIterations := 0
	minAlpha, maxAlpha := 0, 255
	for numIterations <= minAlphaSearchMaxIterations &&
		maxAlpha-minAlpha > minAlphaSearchPrecision {
		testAlpha := (minAlpha + maxAlpha) / 2

		testForeground = foreground.WithAlpha(uint8(testAlpha))
		if ContrastRatio(testForeground, background) < minContrastRatio {
			minAlpha = testAlpha
		} else {
			maxAlpha = testAlpha
		}
		numIterations++
	}

	// Conservatively return the higher of the search bounds.
	return maxAlpha
}

// CompositeColors composites the translucent foreground over the
// background using source-over blending.
func CompositeColors(foreground, background ARGB) ARGB {
	bgAlpha := int(background.Alpha())
	fgAlpha := int(foreground.Alpha())
	a := compositeAlpha(fgAlpha, bgAlpha)

	r := compositeComponent(int(foreground.Red()), fgAlpha, int(background.Red()), bgAlpha, a)
	g := compositeComponent(int(foreground.Green()), fgAlpha, int(background.Green()), bgAlpha, a)
	b := compositeComponent(int(foreground.Blue()), fgAlpha, int(background.Blue()), bgAlpha, a)

	return NewRGBA(uint8(r), uint8(g), uint8(b), uint8(a))
}

func compositeAlpha(foregroundAlpha, backgroundAlpha int) int {
	return 0xff - ((0xff - backgroundAlpha) * (0xff - foregroundAlpha) / 0xff)
}

func compositeComponent(fgC, fgA, bgC, bgA, a int) int {
	if a == 0 {
		return 0
	}
	return (0xff*fgC*fgA + bgC*bgA*(0xff-fgA)) / (a * 0xff)
}

func gammaDecode(v float64) float64 {
	if v < 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func gammaEncode(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

func pivotXYZ(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
