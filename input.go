package mlut

import "math"

// ColorInput is either a Hex string or a Color. Each gradient endpoint
// carries its own representation, so pairs may freely mix the two.
type ColorInput interface {
	resolve() (Color, error)
}

// Hex is a textual colour, see ParseHex.
type Hex string

func (h Hex) resolve() (Color, error) { return ParseHex(string(h)) }

func (c Color) resolve() (Color, error) { return c, nil }

// ColorPair holds the colours at the start and end of one Segment.
type ColorPair struct {
	Start, End ColorInput
}

// Pair returns a ColorPair of two numeric colours.
func Pair(start, end Color) ColorPair {
	return ColorPair{Start: start, End: end}
}

// HexPair returns a ColorPair of two hex strings.
func HexPair(start, end string) ColorPair {
	return ColorPair{Start: Hex(start), End: Hex(end)}
}

// resolve turns both endpoints into colours.
func (p ColorPair) resolve() (Color, Color, error) {
	if p.Start == nil || p.End == nil {
		return Color{}, Color{}, ErrMalformedColor
	}
	start, err := p.Start.resolve()
	if err != nil {
		return Color{}, Color{}, err
	}
	end, err := p.End.resolve()
	if err != nil {
		return Color{}, Color{}, err
	}
	return start, end, nil
}

// Segment is the half-open domain range [Start, End) over which one
// ColorPair is interpolated. Positions outside [0, 1) are allowed; they
// simply cover no sample.
type Segment struct {
	Start, End float64
}

// Seg is shorthand for Segment{start, end}.
func Seg(start, end float64) Segment {
	return Segment{Start: start, End: end}
}

// valid reports whether s has finite bounds with s.Start < s.End.
func (s Segment) valid() bool {
	if math.IsInf(s.Start, 0) || math.IsInf(s.End, 0) {
		return false
	}
	return s.Start < s.End
}
