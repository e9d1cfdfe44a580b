package colour

import "sort"

// colorChannel identifies one axis of the RGB cube. The ordering is
// significant: when channel ranges tie, the earlier channel wins, which
// keeps box splitting reproducible.
type colorChannel int

const (
	channelRed colorChannel = iota
	channelGreen
	channelBlue
)

// quantizer reduces a filtered colour histogram to at most maxColors
// swatches using median-cut box splitting. Boxes are index ranges into
// the single shared histogram slice; splitting re-sorts sub-slices in
// place instead of copying them.
type quantizer struct {
	hist []colorCount
}

// quantizePixels filters and deduplicates the pixel buffer, then
// median-cuts the colour space down to at most maxColors swatches.
// An empty filtered histogram yields no swatches.
func quantizePixels(pixels []ARGB, maxColors int, filters []Filter) []*Swatch {
	hist := buildHistogram(pixels, filters)
	if len(hist) == 0 {
		return nil
	}

	if len(hist) <= maxColors {
		// The image has fewer distinct colours than the requested
		// maximum; just return one swatch per colour.
		swatches := make([]*Swatch, 0, len(hist))
		for _, cc := range hist {
			swatches = append(swatches, NewSwatch(cc.color, cc.population))
		}
		return swatches
	}

	q := &quantizer{hist: hist}
	return q.quantize(maxColors, filters)
}

func (q *quantizer) quantize(maxColors int, filters []Filter) []*Swatch {
	boxes := make([]*vbox, 0, maxColors)
	boxes = append(boxes, q.newBox(0, len(q.hist)-1))

	for len(boxes) < maxColors {
		// Split the most populous splittable box next. This favours
		// perceptually significant regions over geometrically large
		// ones, so dense clusters are represented early.
		best := -1
		for i, b := range boxes {
			if !b.canSplit() {
				continue
			}
			if best == -1 || b.population > boxes[best].population {
				best = i
			}
		}
		if best == -1 {
			break
		}

		lower, upper := q.splitBox(boxes[best])
		boxes[best] = lower
		boxes = append(boxes, upper)
	}

	swatches := make([]*Swatch, 0, len(boxes))
	for _, b := range boxes {
		sw := NewSwatch(q.averageColor(b), b.population)
		// The averaged colour may itself land in a filtered region.
		h, s, l := sw.HSL()
		if !allowed(filters, sw.Color(), h, s, l) {
			continue
		}
		swatches = append(swatches, sw)
	}
	return swatches
}

// vbox is an axis-aligned region of the RGB cube owning the histogram
// entries in [lower, upper] (inclusive).
type vbox struct {
	lower, upper int
	population   int

	minR, maxR uint8
	minG, maxG uint8
	minB, maxB uint8
}

// newBox creates a box over the given index range and computes its
// channel bounds and total population.
func (q *quantizer) newBox(lower, upper int) *vbox {
	b := &vbox{lower: lower, upper: upper}
	b.minR, b.minG, b.minB = 0xff, 0xff, 0xff
	for i := lower; i <= upper; i++ {
		cc := q.hist[i]
		b.population += cc.population

		r, g, bl := cc.color.Red(), cc.color.Green(), cc.color.Blue()
		b.minR, b.maxR = minMax(b.minR, b.maxR, r)
		b.minG, b.maxG = minMax(b.minG, b.maxG, g)
		b.minB, b.maxB = minMax(b.minB, b.maxB, bl)
	}
	return b
}

// canSplit reports whether the box holds more than one distinct colour.
func (b *vbox) canSplit() bool {
	return b.upper > b.lower
}

// longestChannel returns the channel with the greatest min-max range.
// Ties resolve red before green before blue.
func (b *vbox) longestChannel() colorChannel {
	rRange := b.maxR - b.minR
	gRange := b.maxG - b.minG
	bRange := b.maxB - b.minB

	switch {
	case rRange >= gRange && rRange >= bRange:
		return channelRed
	case gRange >= bRange:
		return channelGreen
	default:
		return channelBlue
	}
}

// splitBox splits the box at its population midpoint along its longest
// channel and returns the two halves. The box's histogram slice is
// re-sorted by the split channel first; the secondary sort on the
// packed value keeps the order fully deterministic.
func (q *quantizer) splitBox(b *vbox) (*vbox, *vbox) {
	channel := b.longestChannel()

	slice := q.hist[b.lower : b.upper+1]
	sort.Slice(slice, func(i, j int) bool {
		ci, cj := channelValue(slice[i].color, channel), channelValue(slice[j].color, channel)
		if ci != cj {
			return ci < cj
		}
		return slice[i].color < slice[j].color
	})

	splitPoint := q.findSplitPoint(b)
	return q.newBox(b.lower, splitPoint), q.newBox(splitPoint+1, b.upper)
}

// findSplitPoint returns the last index of the lower half: the first
// position where the cumulative population reaches half the box total,
// clamped below the upper bound so both halves stay non-empty.
func (q *quantizer) findSplitPoint(b *vbox) int {
	midPoint := b.population / 2
	count := 0
	for i := b.lower; i <= b.upper; i++ {
		count += q.hist[i].population
		if count >= midPoint {
			return min(b.upper-1, i)
		}
	}
	return b.lower
}

// averageColor returns the population-weighted mean colour of the box.
func (q *quantizer) averageColor(b *vbox) ARGB {
	var redSum, greenSum, blueSum, total int
	for i := b.lower; i <= b.upper; i++ {
		cc := q.hist[i]
		total += cc.population
		redSum += cc.population * int(cc.color.Red())
		greenSum += cc.population * int(cc.color.Green())
		blueSum += cc.population * int(cc.color.Blue())
	}

	return NewRGB(
		uint8((redSum+total/2)/total),
		uint8((greenSum+total/2)/total),
		uint8((blueSum+total/2)/total),
	)
}

func channelValue(c ARGB, channel colorChannel) uint8 {
	switch channel {
	case channelRed:
		return c.Red()
	case channelGreen:
		return c.Green()
	default:
		return c.Blue()
	}
}

func minMax(lo, hi, v uint8) (uint8, uint8) {
	if v < lo {
		lo = v
	}
	if v > hi {
		hi = v
	}
	return lo, hi
}
