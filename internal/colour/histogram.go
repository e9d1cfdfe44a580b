package colour

import "sort"

// colorCount pairs a distinct colour with the number of pixels that
// carry it.
type colorCount struct {
	color      ARGB
	population int
}

// buildHistogram deduplicates the pixel buffer into (colour,
// population) pairs, drops colours rejected by the filter chain and
// returns the result sorted ascending by packed colour value. Alpha is
// discarded; every histogram entry is opaque. Sorting keeps the
// quantizer independent of map iteration order.
func buildHistogram(pixels []ARGB, filters []Filter) []colorCount {
	counts := make(map[ARGB]int)
	for _, p := range pixels {
		counts[p.Opaque()]++
	}

	hist := make([]colorCount, 0, len(counts))
	for c, n := range counts {
		h, s, l := ColorToHSL(c)
		if !allowed(filters, c, h, s, l) {
			continue
		}
		hist = append(hist, colorCount{color: c, population: n})
	}

	sort.Slice(hist, func(i, j int) bool {
		return hist[i].color < hist[j].color
	})
	return hist
}
