package colour

// Filter provides fine-grained control over which colours are allowed
// into a resulting palette. Filters registered on a Config are
// evaluated in order; a colour is kept only if every filter allows it.
type Filter interface {
	// IsAllowed reports whether the colour may appear in the palette.
	// The colour is supplied both packed and pre-converted to HSL.
	IsAllowed(c ARGB, h, s, l float64) bool
}

// FilterFunc adapts a plain function to the Filter interface.
type FilterFunc func(c ARGB, h, s, l float64) bool

// IsAllowed calls f.
func (f FilterFunc) IsAllowed(c ARGB, h, s, l float64) bool {
	return f(c, h, s, l)
}

const (
	blackMaxLightness = 0.05
	whiteMinLightness = 0.95
)

// DefaultFilter rejects colours that rarely work for theming:
// near-black, near-white, and the low-saturation red band around the
// I-line.
var DefaultFilter Filter = FilterFunc(func(c ARGB, h, s, l float64) bool {
	return !isNearWhite(l) && !isNearBlack(l) && !isNearRedILine(h, s)
})

func isNearBlack(l float64) bool {
	return l <= blackMaxLightness
}

func isNearWhite(l float64) bool {
	return l >= whiteMinLightness
}

func isNearRedILine(h, s float64) bool {
	return h >= 10 && h <= 37 && s <= 0.82
}

// allowed reports whether every filter in the chain accepts the colour.
func allowed(filters []Filter, c ARGB, h, s, l float64) bool {
	for _, f := range filters {
		if !f.IsAllowed(c, h, s, l) {
			return false
		}
	}
	return true
}
