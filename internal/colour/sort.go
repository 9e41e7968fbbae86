// Package colour provides colour extraction and palette formatting functionality.
package colour

import (
	"image/color"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
)

// SortColorsByLuminance orders colours from darkest to brightest using
// linear-light luminance. The sort is stable, so equally bright colours keep
// their frequency rank order.
func SortColorsByLuminance(colors []color.Color) {
	slices.SortStableFunc(colors, func(a, b color.Color) int {
		la := linearLuminance(a)
		lb := linearLuminance(b)
		if la < lb {
			return -1
		}
		if la > lb {
			return 1
		}
		return 0
	})
}

// SortByLuminance reorders the palette in place from darkest to brightest.
// The default palette order is descending frequency rank; this is opt-in for
// callers that want a brightness ramp instead.
func (p *Palette) SortByLuminance() {
	SortColorsByLuminance(p.Colors)
}

// linearLuminance combines the linearized sRGB channels with the standard
// luminance weights.
func linearLuminance(c color.Color) float64 {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		// Fully transparent colours carry no colour information; sort first.
		return 0
	}
	r, g, b := cf.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
