package colour

import (
	"fmt"
	"image"
	"math"
	"slices"

	"github.com/disintegration/imaging"
)

// Defaults applied by DefaultConfig.
const (
	// DefaultMaxColors suits landscape-style images; images dominated
	// by faces benefit from a higher value (around 24).
	DefaultMaxColors = 16

	// DefaultResizeArea is the pixel area images are scaled down to
	// before quantization. Larger areas cost more time, smaller ones
	// lose colour detail.
	DefaultResizeArea = 112 * 112
)

// Config describes one palette generation run. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	// MaxColors is the maximum number of swatches the quantizer may
	// produce. Must be at least 1.
	MaxColors int

	// ResizeArea scales the source image down so its area does not
	// exceed this many pixels before quantization. Values <= 0
	// disable area-based resizing.
	ResizeArea int

	// ResizeMaxDimension scales the source image down so its largest
	// dimension does not exceed this value. Only consulted when
	// ResizeArea is disabled. Values <= 0 disable it.
	ResizeMaxDimension int

	// Region restricts generation to a rectangle of the source image.
	// The zero rectangle means the whole image. The region must
	// intersect the image bounds.
	Region image.Rectangle

	// Filters are additional colour filters applied after the default
	// filter. Set NoDefaultFilter to run only these.
	Filters         []Filter
	NoDefaultFilter bool

	// Targets are additional target profiles scored after the six
	// built-ins. Set NoDefaultTargets to score only these.
	Targets          []*Target
	NoDefaultTargets bool
}

// DefaultConfig returns the configuration used by plain generation:
// 16 colours, 112x112 resize area, the default filter and the six
// built-in targets.
func DefaultConfig() Config {
	return Config{
		MaxColors:  DefaultMaxColors,
		ResizeArea: DefaultResizeArea,
	}
}

// Validate checks the configuration for caller errors.
func (c Config) Validate() error {
	if c.MaxColors < 1 {
		return fmt.Errorf("max colors must be at least 1, got %d", c.MaxColors)
	}
	return nil
}

// filters returns the effective filter chain in registration order.
func (c Config) filters() []Filter {
	if c.NoDefaultFilter {
		return c.Filters
	}
	return append([]Filter{DefaultFilter}, c.Filters...)
}

// targets returns the effective target list in scoring order.
func (c Config) targets() []*Target {
	if c.NoDefaultTargets {
		return c.Targets
	}
	return append(DefaultTargets(), c.Targets...)
}

// Palette holds the swatches extracted from an image and the swatch
// selected for each target profile. Instances are immutable once
// generated and safe for concurrent reads.
type Palette struct {
	swatches []*Swatch
	targets  []*Target
	selected map[*Target]*Swatch
	dominant *Swatch
}

// FromImage generates a palette from an image: the image is scaled
// down per the config, cropped to the region if one is set, quantized
// and scored against the configured targets.
func FromImage(img image.Image, cfg Config) (*Palette, error) {
	if img == nil {
		return nil, fmt.Errorf("image must not be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	region := cfg.Region
	if region != (image.Rectangle{}) {
		region = region.Intersect(bounds)
		if region.Empty() {
			return nil, fmt.Errorf("region %v must intersect the image bounds %v", cfg.Region, bounds)
		}
	}

	scaled := scaleDown(img, cfg)
	if !region.Empty() && scaled.Bounds() != bounds {
		// The image was scaled, so the region has to follow suit.
		scale := float64(scaled.Bounds().Dx()) / float64(bounds.Dx())
		region = scaleRegion(region, scale, scaled.Bounds())
	}

	pixels := regionPixels(scaled, region)
	return fromPixels(pixels, cfg)
}

// FromPixels generates a palette directly from a flat buffer of packed
// ARGB pixels, skipping the resize and region steps.
func FromPixels(pixels []ARGB, cfg Config) (*Palette, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return fromPixels(pixels, cfg)
}

func fromPixels(pixels []ARGB, cfg Config) (*Palette, error) {
	if len(pixels) == 0 {
		return nil, fmt.Errorf("pixel buffer must not be empty")
	}
	swatches := quantizePixels(pixels, cfg.MaxColors, cfg.filters())
	return newPalette(swatches, cfg.targets()), nil
}

// FromSwatches reconstructs a palette from pre-generated swatches,
// bypassing quantization entirely. With no targets given, the six
// built-in targets are scored. Useful for testing and for reviving a
// palette from persisted swatches.
func FromSwatches(swatches []*Swatch, targets ...*Target) (*Palette, error) {
	if len(swatches) == 0 {
		return nil, fmt.Errorf("swatch list must not be empty")
	}
	if len(targets) == 0 {
		targets = DefaultTargets()
	}
	return newPalette(slices.Clone(swatches), targets), nil
}

func newPalette(swatches []*Swatch, targets []*Target) *Palette {
	p := &Palette{
		swatches: swatches,
		targets:  targets,
		selected: make(map[*Target]*Swatch, len(targets)),
		dominant: findDominant(swatches),
	}
	p.generate()
	return p
}

// generate scores every target against the swatches in registration
// order. Exclusive targets claim their selected colour, hiding it from
// the targets that follow.
func (p *Palette) generate() {
	used := make(map[ARGB]bool)
	for _, t := range p.targets {
		if sw := p.maxScoredSwatchFor(t, used); sw != nil {
			p.selected[t] = sw
			if t.Exclusive {
				used[sw.color] = true
			}
		}
	}
}

func (p *Palette) maxScoredSwatchFor(t *Target, used map[ARGB]bool) *Swatch {
	satWeight, lightWeight, popWeight := t.normalizedWeights()

	maxPopulation := 1
	if p.dominant != nil {
		maxPopulation = p.dominant.population
	}

	var best *Swatch
	var bestScore float64
	for _, sw := range p.swatches {
		if !shouldScore(sw, t, used) {
			continue
		}

		var score float64
		if satWeight > 0 {
			score += satWeight * (1 - math.Abs(sw.saturation-t.TargetSaturation))
		}
		if lightWeight > 0 {
			score += lightWeight * (1 - math.Abs(sw.lightness-t.TargetLightness))
		}
		if popWeight > 0 {
			score += popWeight * (float64(sw.population) / float64(maxPopulation))
		}

		if best == nil || score > bestScore {
			best, bestScore = sw, score
		}
	}
	return best
}

// shouldScore reports whether the swatch's HSL lies inside the
// target's acceptance window and its colour has not been claimed by an
// earlier exclusive target.
func shouldScore(sw *Swatch, t *Target, used map[ARGB]bool) bool {
	return sw.saturation >= t.MinSaturation && sw.saturation <= t.MaxSaturation &&
		sw.lightness >= t.MinLightness && sw.lightness <= t.MaxLightness &&
		!used[sw.color]
}

func findDominant(swatches []*Swatch) *Swatch {
	var dominant *Swatch
	for _, sw := range swatches {
		if dominant == nil || sw.population > dominant.population {
			dominant = sw
		}
	}
	return dominant
}

// Swatches returns all swatches which make up the palette. The
// returned slice is the caller's to keep; mutating it does not affect
// the palette.
func (p *Palette) Swatches() []*Swatch {
	return slices.Clone(p.swatches)
}

// Targets returns the targets used to generate this palette.
func (p *Palette) Targets() []*Target {
	return slices.Clone(p.targets)
}

// SwatchForTarget returns the swatch selected for the given target, or
// nil if no eligible swatch was found.
func (p *Palette) SwatchForTarget(t *Target) *Swatch {
	return p.selected[t]
}

// ColorForTarget returns the colour selected for the given target, or
// fallback when the target has no swatch.
func (p *Palette) ColorForTarget(t *Target, fallback ARGB) ARGB {
	if sw := p.selected[t]; sw != nil {
		return sw.color
	}
	return fallback
}

// DominantSwatch returns the swatch with the greatest population, or
// nil for an empty palette. Dominance is independent of any target.
func (p *Palette) DominantSwatch() *Swatch {
	return p.dominant
}

// DominantColor returns the dominant swatch's colour, or fallback for
// an empty palette.
func (p *Palette) DominantColor(fallback ARGB) ARGB {
	if p.dominant != nil {
		return p.dominant.color
	}
	return fallback
}

// VibrantSwatch returns the swatch selected for the Vibrant target.
// Might be nil.
func (p *Palette) VibrantSwatch() *Swatch { return p.SwatchForTarget(Vibrant) }

// LightVibrantSwatch returns the swatch selected for the Light Vibrant
// target. Might be nil.
func (p *Palette) LightVibrantSwatch() *Swatch { return p.SwatchForTarget(LightVibrant) }

// DarkVibrantSwatch returns the swatch selected for the Dark Vibrant
// target. Might be nil.
func (p *Palette) DarkVibrantSwatch() *Swatch { return p.SwatchForTarget(DarkVibrant) }

// MutedSwatch returns the swatch selected for the Muted target. Might
// be nil.
func (p *Palette) MutedSwatch() *Swatch { return p.SwatchForTarget(Muted) }

// LightMutedSwatch returns the swatch selected for the Light Muted
// target. Might be nil.
func (p *Palette) LightMutedSwatch() *Swatch { return p.SwatchForTarget(LightMuted) }

// DarkMutedSwatch returns the swatch selected for the Dark Muted
// target. Might be nil.
func (p *Palette) DarkMutedSwatch() *Swatch { return p.SwatchForTarget(DarkMuted) }

// VibrantColor returns the Vibrant target's colour or fallback.
func (p *Palette) VibrantColor(fallback ARGB) ARGB { return p.ColorForTarget(Vibrant, fallback) }

// LightVibrantColor returns the Light Vibrant target's colour or fallback.
func (p *Palette) LightVibrantColor(fallback ARGB) ARGB {
	return p.ColorForTarget(LightVibrant, fallback)
}

// DarkVibrantColor returns the Dark Vibrant target's colour or fallback.
func (p *Palette) DarkVibrantColor(fallback ARGB) ARGB {
	return p.ColorForTarget(DarkVibrant, fallback)
}

// MutedColor returns the Muted target's colour or fallback.
func (p *Palette) MutedColor(fallback ARGB) ARGB { return p.ColorForTarget(Muted, fallback) }

// LightMutedColor returns the Light Muted target's colour or fallback.
func (p *Palette) LightMutedColor(fallback ARGB) ARGB {
	return p.ColorForTarget(LightMuted, fallback)
}

// DarkMutedColor returns the Dark Muted target's colour or fallback.
func (p *Palette) DarkMutedColor(fallback ARGB) ARGB {
	return p.ColorForTarget(DarkMuted, fallback)
}

// scaleDown resizes the image according to the config's resize policy,
// preserving the aspect ratio. Images already small enough pass
// through untouched.
func scaleDown(img image.Image, cfg Config) image.Image {
	bounds := img.Bounds()
	scaleRatio := -1.0

	if cfg.ResizeArea > 0 {
		area := bounds.Dx() * bounds.Dy()
		if area > cfg.ResizeArea {
			scaleRatio = math.Sqrt(float64(cfg.ResizeArea) / float64(area))
		}
	} else if cfg.ResizeMaxDimension > 0 {
		maxDimension := max(bounds.Dx(), bounds.Dy())
		if maxDimension > cfg.ResizeMaxDimension {
			scaleRatio = float64(cfg.ResizeMaxDimension) / float64(maxDimension)
		}
	}

	if scaleRatio <= 0 {
		return img
	}

	width := int(math.Ceil(float64(bounds.Dx()) * scaleRatio))
	height := int(math.Ceil(float64(bounds.Dy()) * scaleRatio))
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

// scaleRegion maps a region on the original image onto the scaled
// image, clamped to its bounds.
func scaleRegion(region image.Rectangle, scale float64, bounds image.Rectangle) image.Rectangle {
	scaled := image.Rect(
		int(math.Floor(float64(region.Min.X)*scale)),
		int(math.Floor(float64(region.Min.Y)*scale)),
		int(math.Ceil(float64(region.Max.X)*scale)),
		int(math.Ceil(float64(region.Max.Y)*scale)),
	)
	return scaled.Intersect(bounds)
}

// regionPixels flattens the image (or the given region of it) into a
// packed ARGB buffer. Sources without an alpha channel come out fully
// opaque.
func regionPixels(img image.Image, region image.Rectangle) []ARGB {
	if region.Empty() {
		region = img.Bounds()
	}

	pixels := make([]ARGB, 0, region.Dx()*region.Dy())
	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			pixels = append(pixels, FromColor(img.At(x, y)))
		}
	}
	return pixels
}
