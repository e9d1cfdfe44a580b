package colour

import (
	"math"
	"testing"
)

// Allowed offsets mirror the reference data's precision: roughly 0.5%
// of each channel's range.
const (
	allowedOffsetHue        = 360 * 0.005
	allowedOffsetSaturation = 0.005
	allowedOffsetLightness  = 0.005
	allowedOffsetMinAlpha   = 0.01
	allowedOffsetLab        = 0.01
	allowedOffsetXYZ        = 0.01
	allowedOffsetRGB        = 2
)

type conversionEntry struct {
	name string
	rgb  ARGB
	hsl  [3]float64
	lab  [3]float64
	xyz  [3]float64

	// Expected minimum alphas (as a fraction of 255) for black/white
	// foregrounds at the title (3.0) and body (4.5) contrast ratios.
	// -1 means no alpha can reach the ratio.
	blackMinAlpha45 float64
	blackMinAlpha30 float64
	whiteMinAlpha45 float64
	whiteMinAlpha30 float64
}

var conversionEntries = []conversionEntry{
	{
		name: "black", rgb: Black,
		hsl: [3]float64{0, 0, 0}, lab: [3]float64{0, 0, 0}, xyz: [3]float64{0, 0, 0},
		blackMinAlpha45: -1, blackMinAlpha30: -1, whiteMinAlpha45: 0.46, whiteMinAlpha30: 0.35,
	},
	{
		name: "white", rgb: White,
		hsl: [3]float64{0, 0, 1}, lab: [3]float64{100, 0.005, -0.01}, xyz: [3]float64{95.05, 100, 108.9},
		blackMinAlpha45: 0.54, blackMinAlpha30: 0.42, whiteMinAlpha45: -1, whiteMinAlpha30: -1,
	},
	{
		name: "blue", rgb: NewRGB(0, 0, 255),
		hsl: [3]float64{240, 1, 0.5}, lab: [3]float64{32.303, 79.197, -107.864}, xyz: [3]float64{18.05, 7.22, 95.05},
		blackMinAlpha45: -1, blackMinAlpha30: -1, whiteMinAlpha45: 0.71, whiteMinAlpha30: 0.55,
	},
	{
		name: "green", rgb: NewRGB(0, 255, 0),
		hsl: [3]float64{120, 1, 0.5}, lab: [3]float64{87.737, -86.185, 83.181}, xyz: [3]float64{35.76, 71.52, 11.92},
		blackMinAlpha45: 0.55, blackMinAlpha30: 0.43, whiteMinAlpha45: -1, whiteMinAlpha30: -1,
	},
	{
		name: "red", rgb: NewRGB(255, 0, 0),
		hsl: [3]float64{0, 1, 0.5}, lab: [3]float64{53.233, 80.109, 67.22}, xyz: [3]float64{41.24, 21.26, 1.93},
		blackMinAlpha45: 0.78, blackMinAlpha30: 0.55, whiteMinAlpha45: -1, whiteMinAlpha30: 0.84,
	},
	{
		name: "cyan", rgb: NewRGB(0, 255, 255),
		hsl: [3]float64{180, 1, 0.5}, lab: [3]float64{91.117, -48.08, -14.138}, xyz: [3]float64{53.81, 78.74, 106.97},
		blackMinAlpha45: 0.55, blackMinAlpha30: 0.43, whiteMinAlpha45: -1, whiteMinAlpha30: -1,
	},
	{
		name: "material blue", rgb: ARGB(0xFF2196F3),
		hsl: [3]float64{207, 0.9, 0.54}, lab: [3]float64{60.433, 2.091, -55.116}, xyz: [3]float64{27.711, 28.607, 88.855},
		blackMinAlpha45: 0.7, blackMinAlpha30: 0.52, whiteMinAlpha45: -1, whiteMinAlpha30: 0.97,
	},
	{
		name: "material deep purple 100", rgb: ARGB(0xFFD1C4E9),
		hsl: [3]float64{261, 0.46, 0.84}, lab: [3]float64{81.247, 11.513, -16.677}, xyz: [3]float64{60.742, 58.918, 85.262},
		blackMinAlpha45: 0.58, blackMinAlpha30: 0.45, whiteMinAlpha45: -1, whiteMinAlpha30: -1,
	},
	{
		name: "material deep purple 900", rgb: ARGB(0xFF311B92),
		hsl: [3]float64{251.09, 0.687, 0.339}, lab: [3]float64{21.988, 44.301, -60.942}, xyz: [3]float64{6.847, 3.512, 27.511},
		blackMinAlpha45: -1, blackMinAlpha30: -1, whiteMinAlpha45: 0.54, whiteMinAlpha30: 0.39,
	},
}

func TestColorToHSL(t *testing.T) {
	for _, entry := range conversionEntries {
		t.Run(entry.name, func(t *testing.T) {
			h, s, l := ColorToHSL(entry.rgb)
			assertWithin(t, "hue", entry.hsl[0], h, allowedOffsetHue)
			assertWithin(t, "saturation", entry.hsl[1], s, allowedOffsetSaturation)
			assertWithin(t, "lightness", entry.hsl[2], l, allowedOffsetLightness)
		})
	}
}

func TestColorToHSLLimits(t *testing.T) {
	for _, entry := range conversionEntries {
		h, s, l := ColorToHSL(entry.rgb)
		if h < 0 || h >= 360 {
			t.Errorf("%s: hue %v out of range [0, 360)", entry.name, h)
		}
		if s < 0 || s > 1 {
			t.Errorf("%s: saturation %v out of range [0, 1]", entry.name, s)
		}
		if l < 0 || l > 1 {
			t.Errorf("%s: lightness %v out of range [0, 1]", entry.name, l)
		}
	}
}

func TestHSLToColor(t *testing.T) {
	for _, entry := range conversionEntries {
		t.Run(entry.name, func(t *testing.T) {
			got := HSLToColor(entry.hsl[0], entry.hsl[1], entry.hsl[2])
			assertCloseColors(t, entry.rgb, got, allowedOffsetRGB)
		})
	}
}

func TestHSLRoundTrip(t *testing.T) {
	for _, entry := range conversionEntries {
		t.Run(entry.name, func(t *testing.T) {
			h, s, l := ColorToHSL(entry.rgb)
			got := HSLToColor(h, s, l)
			assertCloseColors(t, entry.rgb, got, allowedOffsetRGB)
		})
	}
}

func TestColorToXYZ(t *testing.T) {
	for _, entry := range conversionEntries {
		t.Run(entry.name, func(t *testing.T) {
			x, y, z := ColorToXYZ(entry.rgb)
			assertWithin(t, "X", entry.xyz[0], x, allowedOffsetXYZ)
			assertWithin(t, "Y", entry.xyz[1], y, allowedOffsetXYZ)
			assertWithin(t, "Z", entry.xyz[2], z, allowedOffsetXYZ)
		})
	}
}

func TestColorToLab(t *testing.T) {
	for _, entry := range conversionEntries {
		t.Run(entry.name, func(t *testing.T) {
			l, a, b := ColorToLab(entry.rgb)
			assertWithin(t, "L", entry.lab[0], l, allowedOffsetLab)
			assertWithin(t, "a", entry.lab[1], a, allowedOffsetLab)
			assertWithin(t, "b", entry.lab[2], b, allowedOffsetLab)
		})
	}
}

func TestLabToXYZ(t *testing.T) {
	for _, entry := range conversionEntries {
		t.Run(entry.name, func(t *testing.T) {
			x, y, z := LabToXYZ(entry.lab[0], entry.lab[1], entry.lab[2])
			assertWithin(t, "X", entry.xyz[0], x, allowedOffsetXYZ)
			assertWithin(t, "Y", entry.xyz[1], y, allowedOffsetXYZ)
			assertWithin(t, "Z", entry.xyz[2], z, allowedOffsetXYZ)
		})
	}
}

func TestXYZToColor(t *testing.T) {
	for _, entry := range conversionEntries {
		t.Run(entry.name, func(t *testing.T) {
			got := XYZToColor(entry.xyz[0], entry.xyz[1], entry.xyz[2])
			assertCloseColors(t, entry.rgb, got, 1)
		})
	}
}

func TestLabToColor(t *testing.T) {
	for _, entry := range conversionEntries {
		t.Run(entry.name, func(t *testing.T) {
			got := LabToColor(entry.lab[0], entry.lab[1], entry.lab[2])
			assertCloseColors(t, entry.rgb, got, 1)
		})
	}
}

func TestMinimumAlpha(t *testing.T) {
	for _, entry := range conversionEntries {
		t.Run(entry.name, func(t *testing.T) {
			verifyMinAlpha(t, "black title", entry.blackMinAlpha30, MinimumAlpha(Black, entry.rgb, 3.0))
			verifyMinAlpha(t, "black body", entry.blackMinAlpha45, MinimumAlpha(Black, entry.rgb, 4.5))
			verifyMinAlpha(t, "white title", entry.whiteMinAlpha30, MinimumAlpha(White, entry.rgb, 3.0))
			verifyMinAlpha(t, "white body", entry.whiteMinAlpha45, MinimumAlpha(White, entry.rgb, 4.5))
		})
	}
}

func verifyMinAlpha(t *testing.T, role string, expected float64, actual int) {
	t.Helper()
	if expected < 0 {
		if actual != -1 {
			t.Errorf("%s: expected no reachable alpha, got %d", role, actual)
		}
		return
	}
	assertWithin(t, role, expected, float64(actual)/255, allowedOffsetMinAlpha)
}

func TestCircularInterpolate(t *testing.T) {
	tests := []struct {
		name               string
		from, to, fraction float64
		want               float64
	}{
		{"forwards start", 0, 180, 0, 0},
		{"forwards mid", 0, 180, 0.5, 90},
		{"forwards end", 0, 180, 1, 180},
		{"backwards start", 180, 0, 0, 180},
		{"backwards mid", 180, 0, 0.5, 90},
		{"backwards end", 180, 0, 1, 0},
		{"cross zero start", 270, 90, 0, 270},
		{"cross zero mid", 270, 90, 0.5, 180},
		{"cross zero end", 270, 90, 1, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CircularInterpolate(tt.from, tt.to, tt.fraction)
			if got != tt.want {
				t.Errorf("CircularInterpolate(%v, %v, %v) = %v, want %v",
					tt.from, tt.to, tt.fraction, got, tt.want)
			}
		})
	}
}

func TestContrastRatioSymmetry(t *testing.T) {
	a, b := NewRGB(0x21, 0x96, 0xf3), NewRGB(0x31, 0x1b, 0x92)
	if got, want := ContrastRatio(a, b), ContrastRatio(b, a); got != want {
		t.Errorf("contrast ratio is order-dependent: %v vs %v", got, want)
	}
}

func TestContrastRatioBounds(t *testing.T) {
	if got := ContrastRatio(Black, White); math.Abs(got-21) > 0.1 {
		t.Errorf("black/white contrast = %v, want about 21", got)
	}
	if got := ContrastRatio(White, White); got != 1 {
		t.Errorf("white/white contrast = %v, want 1", got)
	}
}

func assertWithin(t *testing.T, what string, expected, actual, offset float64) {
	t.Helper()
	if math.Abs(expected-actual) > offset {
		t.Errorf("%s = %v, want %v (offset %v)", what, actual, expected, offset)
	}
}

func assertCloseColors(t *testing.T, expected, actual ARGB, offset int) {
	t.Helper()
	if absDiff(expected.Red(), actual.Red()) > offset ||
		absDiff(expected.Green(), actual.Green()) > offset ||
		absDiff(expected.Blue(), actual.Blue()) > offset {
		t.Errorf("colour %s not within %d of %s", actual.Hex(), offset, expected.Hex())
	}
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}
