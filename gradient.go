package mlut

import (
	"math"
)

// Gradient is a lookup table of colours over the domain [0, 1).
// Sample i sits at position i/Len().
type Gradient []Color

// Len returns the number of samples.
func (g Gradient) Len() int { return len(g) }

// At returns sample i, or UnsetColor if i is out of range.
func (g Gradient) At(i int) Color {
	if i < 0 || i >= len(g) {
		return UnsetColor
	}
	return g[i]
}

// Sample returns the sample at or just below domain position pos.
// Positions outside [0, 1) are clamped to the first or last sample.
// No interpolation between samples is done.
func (g Gradient) Sample(pos float64) Color {
	if len(g) == 0 || math.IsNaN(pos) {
		return UnsetColor
	}
	i := math.Floor(pos * float64(len(g)))
	if i < 0 {
		return g[0]
	}
	if i >= float64(len(g)) {
		return g[len(g)-1]
	}
	return g[int(i)]
}

// Coverage returns the fraction of samples that are not UnsetColor.
func (g Gradient) Coverage() float64 {
	if len(g) == 0 {
		return 0
	}
	set := 0
	for _, c := range g {
		if !c.IsUnset() {
			set++
		}
	}
	return float64(set) / float64(len(g))
}
