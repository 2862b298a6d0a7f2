package painter

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/voidshard/mlut"
)

// Surface encodes everything a generative art script can do with a Painter.
type Surface interface {
	InsertBorders(x, y float64)

	DrawLine(pts []gg.Point, c color.Color, width float64, lineCap gg.LineCap)
	DrawGradientLine(pts []gg.Point, lut mlut.Gradient, width float64)
	DrawCircle(pt gg.Point, c color.Color, r float64)
	DrawText(text string, x, y float64, c color.Color, size float64) (gg.Point, gg.Point)
	FillGradient(lut mlut.Gradient, x, y, w, h float64)

	Pixel(x, y int) color.RGBA
	PixelFilled(x, y int) bool

	// OutputFrame writes the next numbered animation frame.
	//
	// Frames are numbered from zero in the order OutputFrame is
	// called; snapshots do not advance the count.
	OutputFrame() error
	OutputSnapshot(path string) error

	Image() image.Image
}

var _ Surface = (*Painter)(nil)
