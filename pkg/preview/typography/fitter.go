// Package typography scales display text so it degrades predictably as
// content grows, without breaking format-specific visual constraints.
//
// The fitter is a three-band step function of text length alone: short
// text keeps its base size, medium text is scaled by a medium factor,
// long text by a large factor. The result is always capped at the base
// size, never enlarged, which makes the function idempotent and
// non-increasing in text length.
//
// Line clamping is deliberately out of scope here: slots that limit
// visible lines rely on the host surface's text-overflow behavior
// rather than shrinking text further.
package typography

import "math"

// Band holds the length thresholds and scale factors for one call site.
// The zero value is invalid; use DefaultBand when a slot carries no
// band of its own.
type Band struct {
	MediumThreshold int     // lengths above this use MediumFactor
	LargeThreshold  int     // lengths above this use LargeFactor
	MediumFactor    float64 // scale for medium-length text
	LargeFactor     float64 // scale for long text
}

// DefaultBand is applied when a slot does not specify its own band.
var DefaultBand = Band{
	MediumThreshold: 40,
	LargeThreshold:  80,
	MediumFactor:    0.85,
	LargeFactor:     0.70,
}

// IsZero reports whether b carries no configuration at all.
func (b Band) IsZero() bool {
	return b == Band{}
}

// Fit returns the display size in pixels for text rendered at basePx.
// Length is measured in runes so multi-byte scripts scale the same way
// as ASCII. The returned size never exceeds basePx.
func Fit(basePx int, text string, band Band) int {
	if band.IsZero() {
		band = DefaultBand
	}

	n := len([]rune(text))
	size := basePx
	switch {
	case n > band.LargeThreshold:
		size = int(math.Round(float64(basePx) * band.LargeFactor))
	case n > band.MediumThreshold:
		size = int(math.Round(float64(basePx) * band.MediumFactor))
	}

	if size > basePx {
		size = basePx
	}
	return size
}
