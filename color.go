package mlut

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA quadruple with each channel normalised to [0, 1].
//
// Color implements color.Color so it can be handed straight to a drawing
// backend. Channels are straight (not premultiplied).
type Color struct {
	R, G, B, A float64
}

// UnsetColor is the value of any gradient sample that no segment covers.
// It is fully transparent black and should be read as "unset", not as a colour.
var UnsetColor = Color{}

// RGB returns an opaque colour.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// IsUnset reports whether c is UnsetColor.
func (c Color) IsUnset() bool { return c == UnsetColor }

// Lerp blends linearly from c to o, channel-wise, including alpha.
func (c Color) Lerp(o Color, t float64) Color {
	return Color{
		R: c.R*(1-t) + o.R*t,
		G: c.G*(1-t) + o.G*t,
		B: c.B*(1-t) + o.B*t,
		A: c.A*(1-t) + o.A*t,
	}
}

// RGBA implements color.Color. Channels are clamped to [0, 1] and
// premultiplied by alpha.
func (c Color) RGBA() (r, g, b, a uint32) {
	alpha := clamp01(c.A)
	r = uint32(math.Round(clamp01(c.R) * alpha * 0xffff))
	g = uint32(math.Round(clamp01(c.G) * alpha * 0xffff))
	b = uint32(math.Round(clamp01(c.B) * alpha * 0xffff))
	a = uint32(math.Round(alpha * 0xffff))
	return
}

// NRGBA returns the 8-bit straight alpha equivalent of c.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(math.Round(clamp01(c.R) * 255)),
		G: uint8(math.Round(clamp01(c.G) * 255)),
		B: uint8(math.Round(clamp01(c.B) * 255)),
		A: uint8(math.Round(clamp01(c.A) * 255)),
	}
}

// Colorful drops alpha and returns c as a go-colorful colour.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// Hex formats c as "#rrggbb", or "#rrggbbaa" when c is not fully opaque.
func (c Color) Hex() string {
	s := c.Colorful().Clamped().Hex()
	if c.A >= 1 {
		return s
	}
	return fmt.Sprintf("%s%02x", s, c.NRGBA().A)
}

// String implements fmt.Stringer.
func (c Color) String() string { return c.Hex() }

// ParseHex parses "#RRGGBB", "RRGGBB", "#RRGGBBAA" or "RRGGBBAA".
// Each pair of digits becomes one channel divided by 255; alpha defaults to 1.
func ParseHex(s string) (Color, error) {
	h := s
	if len(h) > 0 && h[0] == '#' {
		h = h[1:]
	}
	if len(h) == 0 || len(h)%2 != 0 {
		return Color{}, fmt.Errorf("%w: %q has %d digits", ErrMalformedColor, s, len(h))
	}

	channels := make([]float64, 0, 4)
	for i := 0; i < len(h); i += 2 {
		v, err := strconv.ParseUint(h[i:i+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q has non-hex digits %q", ErrMalformedColor, s, h[i:i+2])
		}
		channels = append(channels, float64(v)/255)
	}

	switch len(channels) {
	case 3:
		return Color{R: channels[0], G: channels[1], B: channels[2], A: 1}, nil
	case 4:
		return Color{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}, nil
	}
	return Color{}, fmt.Errorf("%w: %q has %d channels, want 3 or 4", ErrMalformedColor, s, len(channels))
}

// MustParseHex is ParseHex for known-good literals; it panics on error.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic("MustParseHex: " + err.Error())
	}
	return c
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
