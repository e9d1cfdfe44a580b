package colour

import (
	"fmt"
	"sync"
)

// Minimum WCAG contrast ratios for text rendered over a swatch.
const (
	MinContrastTitleText = 3.0
	MinContrastBodyText  = 4.5
)

// Swatch is a representative colour generated from an image's palette
// together with the number of pixels it summarises. Swatches are
// immutable; the derived text colours are computed once on first use.
type Swatch struct {
	color      ARGB
	population int

	hue        float64
	saturation float64
	lightness  float64

	textOnce  sync.Once
	titleText ARGB
	bodyText  ARGB
}

// NewSwatch creates a swatch for an opaque colour and the pixel
// population it represents.
func NewSwatch(c ARGB, population int) *Swatch {
	s := &Swatch{color: c.Opaque(), population: population}
	s.hue, s.saturation, s.lightness = ColorToHSL(s.color)
	return s
}

// Color returns the swatch's opaque colour value.
func (s *Swatch) Color() ARGB { return s.color }

// Population returns the number of pixels represented by this swatch.
func (s *Swatch) Population() int { return s.population }

// HSL returns the swatch colour's hue [0, 360), saturation [0, 1] and
// lightness [0, 1].
func (s *Swatch) HSL() (h, sat, l float64) {
	return s.hue, s.saturation, s.lightness
}

// TitleTextColor returns a colour suitable for 'title' text displayed
// over this swatch, with a contrast ratio of at least
// MinContrastTitleText whenever a black or white foreground can
// achieve it.
func (s *Swatch) TitleTextColor() ARGB {
	s.ensureTextColors()
	return s.titleText
}

// BodyTextColor returns a colour suitable for 'body' text displayed
// over this swatch, with a contrast ratio of at least
// MinContrastBodyText whenever a black or white foreground can
// achieve it.
func (s *Swatch) BodyTextColor() ARGB {
	s.ensureTextColors()
	return s.bodyText
}

func (s *Swatch) ensureTextColors() {
	s.textOnce.Do(func() {
		// Check white first, as most swatch colours tend to be dark.
		lightBodyAlpha := MinimumAlpha(White, s.color, MinContrastBodyText)
		lightTitleAlpha := MinimumAlpha(White, s.color, MinContrastTitleText)

		if lightBodyAlpha != -1 && lightTitleAlpha != -1 {
			s.bodyText = White.WithAlpha(uint8(lightBodyAlpha))
			s.titleText = White.WithAlpha(uint8(lightTitleAlpha))
			return
		}

		darkBodyAlpha := MinimumAlpha(Black, s.color, MinContrastBodyText)
		darkTitleAlpha := MinimumAlpha(Black, s.color, MinContrastTitleText)

		if darkBodyAlpha != -1 && darkTitleAlpha != -1 {
			s.bodyText = Black.WithAlpha(uint8(darkBodyAlpha))
			s.titleText = Black.WithAlpha(uint8(darkTitleAlpha))
			return
		}

		// No single foreground works for both roles; mix whichever
		// succeeded for each role independently.
		if lightBodyAlpha != -1 {
			s.bodyText = White.WithAlpha(uint8(lightBodyAlpha))
		} else {
			s.bodyText = Black.WithAlpha(uint8(darkBodyAlpha))
		}
		if lightTitleAlpha != -1 {
			s.titleText = White.WithAlpha(uint8(lightTitleAlpha))
		} else {
			s.titleText = Black.WithAlpha(uint8(darkTitleAlpha))
		}
	})
}

// Equal reports whether two swatches describe the same colour and
// population. Derived fields do not participate in equality.
func (s *Swatch) Equal(o *Swatch) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.color == o.color && s.population == o.population
}

// String returns a human-readable description of the swatch.
func (s *Swatch) String() string {
	return fmt.Sprintf("Swatch [%s] [HSL: %.3f %.3f %.3f] [Population: %d]",
		s.color.Hex(), s.hue, s.saturation, s.lightness, s.population)
}
