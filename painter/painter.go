package painter

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/golang/glog"

	"github.com/voidshard/mlut"
)

const (
	defaultWidth     = 1920 // pixels
	defaultHeight    = 1080
	defaultFramePath = "frames/out%d.png"
)

// Painter wraps a fogleman/gg context with the handful of drawing calls
// generative art scripts keep reaching for: polylines, filled circles,
// centred text, pixel sampling and numbered frame output.
//
// A Painter is not safe for concurrent use.
type Painter struct {
	width, height int
	framePath     string
	frame         int

	background color.Color
	source     string // png the canvas starts from, if any
	ttf        []byte

	dc    *gg.Context
	faces *faceCache
}

// New creates a new Painter.
func New(opts ...Option) (*Painter, error) {
	p := &Painter{width: defaultWidth, height: defaultHeight, framePath: defaultFramePath}
	for _, opt := range opts {
		err := opt(p)
		if err != nil {
			return nil, err
		}
	}

	faces, err := newFaceCache(p.ttf)
	if err != nil {
		return nil, err
	}
	p.faces = faces

	loaded, err := p.loadImage()
	if err != nil {
		return nil, err
	}
	if !loaded && p.background != nil {
		p.dc.DrawRectangle(0, 0, float64(p.width), float64(p.height))
		p.dc.SetColor(p.background)
		p.dc.Fill()
	}
	return p, nil
}

// loadImage prepares the canvas, from the source png if one was given.
// It reports whether an existing image was loaded.
func (p *Painter) loadImage() (bool, error) {
	if p.source == "" {
		p.dc = gg.NewContext(p.width, p.height)
		return false, nil
	}

	img, err := gg.LoadPNG(p.source)
	if os.IsNotExist(err) {
		p.dc = gg.NewContext(p.width, p.height)
		return false, nil
	} else if err != nil {
		return false, err
	}

	p.dc = gg.NewContextForImage(img)
	p.width, p.height = p.dc.Width(), p.dc.Height()
	return true, nil
}

// InsertBorders shrinks the coordinate frame so that everything drawn
// afterwards lands at least (x, y) pixels inside the image edges.
func (p *Painter) InsertBorders(x, y float64) {
	w, h := float64(p.width), float64(p.height)
	p.dc.Translate(x, y)
	p.dc.Scale((w-2*x)/w, (h-2*y)/h)
}

// DrawLine strokes a polyline through pts.
func (p *Painter) DrawLine(pts []gg.Point, c color.Color, width float64, lineCap gg.LineCap) {
	if len(pts) == 0 {
		return
	}
	p.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.dc.LineTo(pt.X, pt.Y)
	}
	p.dc.SetLineWidth(width)
	p.dc.SetLineCap(lineCap)
	p.dc.SetColor(c)
	p.dc.Stroke()
}

// DrawGradientLine strokes a polyline through pts, colouring each piece
// with the gradient sample at its midpoint's fraction of the total length.
// Pieces landing on unset samples are not drawn.
func (p *Painter) DrawGradientLine(pts []gg.Point, lut mlut.Gradient, width float64) {
	if len(pts) < 2 || lut.Len() == 0 {
		return
	}

	lengths := make([]float64, len(pts)-1)
	total := 0.0
	for i := range lengths {
		lengths[i] = math.Hypot(pts[i+1].X-pts[i].X, pts[i+1].Y-pts[i].Y)
		total += lengths[i]
	}
	if total == 0 {
		return
	}

	p.dc.SetLineWidth(width)
	p.dc.SetLineCap(gg.LineCapRound)

	walked := 0.0
	for i, l := range lengths {
		c := lut.Sample((walked + l/2) / total)
		walked += l
		if c.IsUnset() {
			continue
		}
		p.dc.DrawLine(pts[i].X, pts[i].Y, pts[i+1].X, pts[i+1].Y)
		p.dc.SetColor(c)
		p.dc.Stroke()
	}
}

// DrawCircle fills a circle of radius r centred on pt.
func (p *Painter) DrawCircle(pt gg.Point, c color.Color, r float64) {
	p.dc.DrawCircle(pt.X, pt.Y, r)
	p.dc.SetColor(c)
	p.dc.Fill()
}

// DrawText draws text centred on (x, y) at the given point size and
// returns the top left and bottom right corners of its box.
func (p *Painter) DrawText(text string, x, y float64, c color.Color, size float64) (gg.Point, gg.Point) {
	p.dc.SetFontFace(p.faces.Load(size))
	w, h := p.dc.MeasureString(text)
	p.dc.SetColor(c)
	p.dc.DrawStringAnchored(text, x, y, 0.5, 0.5)
	return gg.Point{X: x - w/2, Y: y - h/2}, gg.Point{X: x + w/2, Y: y + h/2}
}

// FillGradient fills the rectangle (x, y, w, h) with lut laid out left to
// right across it.
func (p *Painter) FillGradient(lut mlut.Gradient, x, y, w, h float64) {
	x0, _ := p.dc.TransformPoint(x, y)
	x1, _ := p.dc.TransformPoint(x+w, y)
	p.dc.SetFillStyle(newLUTPattern(lut, x0, x1))
	p.dc.DrawRectangle(x, y, w, h)
	p.dc.Fill()
}

// Pixel returns the colour at device pixel (x, y), ignoring any borders.
// Positions off the canvas are transparent black.
func (p *Painter) Pixel(x, y int) color.RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(p.dc.Image().At(x, y)).(color.RGBA)
}

// PixelFilled reports whether anything with alpha has been drawn at (x, y).
func (p *Painter) PixelFilled(x, y int) bool {
	return p.Pixel(x, y).A != 0
}

// OutputFrame writes the canvas to the frame path for the current frame
// number and moves on to the next frame.
func (p *Painter) OutputFrame() error {
	err := p.savePNG(fmt.Sprintf(p.framePath, p.frame))
	if err != nil {
		return err
	}
	p.frame++
	return nil
}

// OutputSnapshot writes the canvas to path without advancing the frame
// number. An empty path means the current frame's path.
func (p *Painter) OutputSnapshot(path string) error {
	if path == "" {
		path = fmt.Sprintf(p.framePath, p.frame)
	}
	return p.savePNG(path)
}

// savePNG writes the canvas, creating parent directories as needed.
func (p *Painter) savePNG(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}
	if glog.V(2) {
		glog.Infof("writing %dx%d canvas to %s", p.width, p.height, path)
	}
	return p.dc.SavePNG(path)
}

// Frame returns the number the next OutputFrame call will write.
func (p *Painter) Frame() int { return p.frame }

// Image returns the canvas.
func (p *Painter) Image() image.Image { return p.dc.Image() }

// Width returns the canvas width in pixels.
func (p *Painter) Width() int { return p.width }

// Height returns the canvas height in pixels.
func (p *Painter) Height() int { return p.height }
