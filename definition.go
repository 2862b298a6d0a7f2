package mlut

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Definition describes a Build call so gradients can be kept in files:
//
//	{
//	  "resolution": 1024,
//	  "pairs": [["#84a98c", "#52796f"], [[1, 0, 0], [0, 0, 1, 0.5]]],
//	  "segments": [[0, 0.5], [0.5, 1]]
//	}
//
// Colours are either hex strings or arrays of 3 or 4 channels in [0, 1].
type Definition struct {
	Resolution int         `json:"resolution,omitempty"`
	Pairs      []ColorPair `json:"pairs"`
	Segments   []Segment   `json:"segments"`
}

// Build builds the gradient described by d. The definition's resolution is
// applied first, so a Resolution option given here wins.
func (d *Definition) Build(opts ...Option) (Gradient, error) {
	if d.Resolution != 0 {
		opts = append([]Option{Resolution(d.Resolution)}, opts...)
	}
	return Build(d.Pairs, d.Segments, opts...)
}

// Encode returns the JSON representation of d.
func (d *Definition) Encode() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// DecodeDefinition turns JSON into a Definition.
func DecodeDefinition(data []byte) (*Definition, error) {
	d := &Definition{}
	return d, json.Unmarshal(data, d)
}

// LoadDefinition reads a Definition from a file.
func LoadDefinition(path string) (*Definition, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("expected gradient definition file got directory %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d, err := DecodeDefinition(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// MarshalJSON encodes c as [r, g, b, a].
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]float64{c.R, c.G, c.B, c.A})
}

// UnmarshalJSON accepts a hex string or an array of 3 or 4 channels.
func (c *Color) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := ParseHex(s)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	var ch []float64
	if err := json.Unmarshal(data, &ch); err != nil {
		return fmt.Errorf("%w: %s", ErrMalformedColor, data)
	}
	switch len(ch) {
	case 3:
		*c = Color{R: ch[0], G: ch[1], B: ch[2], A: 1}
	case 4:
		*c = Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}
	default:
		return fmt.Errorf("%w: %s has %d channels, want 3 or 4", ErrMalformedColor, data, len(ch))
	}
	return nil
}

// MarshalJSON encodes p as a two element array, keeping hex strings as strings.
func (p ColorPair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]ColorInput{p.Start, p.End})
}

// UnmarshalJSON decodes a two element array of colours.
func (p *ColorPair) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: color pair %s", ErrMalformedColor, data)
	}
	if len(raw) != 2 {
		return fmt.Errorf("%w: color pair has %d entries, want 2", ErrMalformedColor, len(raw))
	}
	start, err := decodeColorInput(raw[0])
	if err != nil {
		return err
	}
	end, err := decodeColorInput(raw[1])
	if err != nil {
		return err
	}
	p.Start, p.End = start, end
	return nil
}

// decodeColorInput keeps strings as Hex, so they encode back unchanged,
// but still rejects malformed ones up front.
func decodeColorInput(data json.RawMessage) (ColorInput, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, err
		}
		if _, err := ParseHex(s); err != nil {
			return nil, err
		}
		return Hex(s), nil
	}
	var c Color
	if err := c.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return c, nil
}

// MarshalJSON encodes s as [start, end].
func (s Segment) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{s.Start, s.End})
}

// UnmarshalJSON decodes [start, end].
func (s *Segment) UnmarshalJSON(data []byte) error {
	var v []float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("segment %s: %w", data, err)
	}
	if len(v) != 2 {
		return fmt.Errorf("segment has %d bounds, want 2", len(v))
	}
	s.Start, s.End = v[0], v[1]
	return nil
}
