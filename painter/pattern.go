package painter

import (
	"image/color"

	"github.com/fogleman/gg"

	"github.com/voidshard/mlut"
)

// lutPattern is a gg.Pattern that lays a gradient lookup table out
// horizontally between device x positions x0 and x1. Unset samples paint
// nothing.
type lutPattern struct {
	lut    mlut.Gradient
	x0, x1 float64
}

var _ gg.Pattern = (*lutPattern)(nil)

func newLUTPattern(lut mlut.Gradient, x0, x1 float64) *lutPattern {
	return &lutPattern{lut: lut, x0: x0, x1: x1}
}

// ColorAt implements gg.Pattern, sampling at the pixel centre.
func (p *lutPattern) ColorAt(x, y int) color.Color {
	if p.x1 == p.x0 {
		return p.lut.At(0)
	}
	return p.lut.Sample((float64(x) + 0.5 - p.x0) / (p.x1 - p.x0))
}
