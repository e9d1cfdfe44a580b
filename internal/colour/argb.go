// Package colour implements prominent-colour extraction: colour-space
// conversions, median-cut quantization and target-profile scoring.
package colour

import (
	"fmt"
	"image/color"
)

// ARGB is a packed 32-bit colour with the alpha channel in the top byte.
// Pixel sources without an alpha channel should pack fully opaque values.
type ARGB uint32

// Common colours used by the text-colour search.
const (
	Black ARGB = 0xff000000
	White ARGB = 0xffffffff
)

// NewRGB packs an opaque colour from 8-bit channels.
func NewRGB(r, g, b uint8) ARGB {
	return NewRGBA(r, g, b, 0xff)
}

// NewRGBA packs a colour from 8-bit channels including alpha.
func NewRGBA(r, g, b, a uint8) ARGB {
	return ARGB(a)<<24 | ARGB(r)<<16 | ARGB(g)<<8 | ARGB(b)
}

// FromColor converts any image/color value to a packed ARGB,
// scaling 16-bit channels down to 8 bits.
func FromColor(c color.Color) ARGB {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NewRGBA(nrgba.R, nrgba.G, nrgba.B, nrgba.A)
}

// Alpha returns the alpha channel.
func (c ARGB) Alpha() uint8 { return uint8(c >> 24) }

// Red returns the red channel.
func (c ARGB) Red() uint8 { return uint8(c >> 16) }

// Green returns the green channel.
func (c ARGB) Green() uint8 { return uint8(c >> 8) }

// Blue returns the blue channel.
func (c ARGB) Blue() uint8 { return uint8(c) }

// Opaque returns the colour with the alpha channel forced to 255.
func (c ARGB) Opaque() ARGB {
	return c | 0xff000000
}

// WithAlpha returns the colour with the alpha channel replaced.
func (c ARGB) WithAlpha(a uint8) ARGB {
	return c&0x00ffffff | ARGB(a)<<24
}

// NRGBA converts the packed colour to a non-premultiplied image/color value.
func (c ARGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}
}

// Hex returns the colour as a hex string (e.g. "#1a2b3c"), ignoring alpha.
func (c ARGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.Red(), c.Green(), c.Blue())
}

// HexAlpha returns the colour as a CSS-style #rrggbbaa hex string.
func (c ARGB) HexAlpha() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.Red(), c.Green(), c.Blue(), c.Alpha())
}

// String returns the colour in the format "argb(a, r, g, b)".
func (c ARGB) String() string {
	return fmt.Sprintf("argb(%d, %d, %d, %d)", c.Alpha(), c.Red(), c.Green(), c.Blue())
}
