package colour

import (
	"strings"
	"testing"
)

func TestSwatchEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Swatch
		want bool
	}{
		{"both nil", nil, nil, true},
		{"nil versus value", nil, NewSwatch(Black, 1), false},
		{"value versus nil", NewSwatch(Black, 1), nil, false},
		{"same colour and population", NewSwatch(NewRGB(10, 20, 30), 5), NewSwatch(NewRGB(10, 20, 30), 5), true},
		{"different colour", NewSwatch(NewRGB(10, 20, 30), 5), NewSwatch(NewRGB(10, 20, 31), 5), false},
		{"different population", NewSwatch(NewRGB(10, 20, 30), 5), NewSwatch(NewRGB(10, 20, 30), 6), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSwatchColorIsOpaque(t *testing.T) {
	sw := NewSwatch(NewRGBA(10, 20, 30, 128), 1)
	if got := sw.Color().Alpha(); got != 255 {
		t.Errorf("swatch colour alpha = %d, want 255", got)
	}
}

func TestSwatchTextColorsMeetContrast(t *testing.T) {
	// Swatches spread across the gamut, including mid tones where the
	// legible colours need a translucent overlay rather than pure
	// black or white.
	colors := []ARGB{
		NewRGB(255, 0, 0),
		NewRGB(0, 255, 0),
		NewRGB(0, 0, 255),
		NewRGB(128, 128, 128),
		NewRGB(33, 150, 243),
		NewRGB(209, 196, 233),
		NewRGB(49, 27, 146),
		Black,
		White,
	}

	for _, c := range colors {
		t.Run(c.Hex(), func(t *testing.T) {
			sw := NewSwatch(c, 1)

			title := sw.TitleTextColor()
			if got := ContrastRatio(title, sw.Color()); got < MinContrastTitleText {
				t.Errorf("title text contrast = %.3f, want >= %v", got, MinContrastTitleText)
			}

			body := sw.BodyTextColor()
			if got := ContrastRatio(body, sw.Color()); got < MinContrastBodyText {
				t.Errorf("body text contrast = %.3f, want >= %v", got, MinContrastBodyText)
			}
		})
	}
}

func TestSwatchHSL(t *testing.T) {
	sw := NewSwatch(NewRGB(0, 0, 255), 1)
	h, s, l := sw.HSL()
	assertWithin(t, "hue", 240, h, allowedOffsetHue)
	assertWithin(t, "saturation", 1, s, allowedOffsetSaturation)
	assertWithin(t, "lightness", 0.5, l, allowedOffsetLightness)
}

func TestSwatchString(t *testing.T) {
	sw := NewSwatch(NewRGB(255, 0, 0), 42)
	got := sw.String()
	if !strings.Contains(got, "#ff0000") || !strings.Contains(got, "42") {
		t.Errorf("String() = %q, want hex colour and population", got)
	}
}
