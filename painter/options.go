package painter

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"
)

var (
	// ErrInvalidSize is returned for a canvas without positive width and height.
	ErrInvalidSize = errors.New("invalid canvas size")

	// ErrFramePath is returned for a frame path that doesn't take one integer.
	ErrFramePath = errors.New("invalid frame path")
)

// Option is something that can be configured on a Painter object
type Option func(*Painter) error

// Size sets a non-default canvas size in pixels.
func Size(w, h int) Option {
	return func(p *Painter) error {
		if w <= 0 || h <= 0 {
			return fmt.Errorf("%w: size must be greater than zero, given %dx%d", ErrInvalidSize, w, h)
		}
		p.width, p.height = w, h
		return nil
	}
}

// Background fills a new canvas with the given colour.
// It is ignored when the canvas is loaded with FromPNG.
func Background(c color.Color) Option {
	return func(p *Painter) error {
		p.background = c
		return nil
	}
}

// FramePath sets the path pattern OutputFrame writes to. It must take a
// single integer, the frame number, eg. "frames/out%04d.png".
func FramePath(pattern string) Option {
	return func(p *Painter) error {
		if strings.Count(pattern, "%") != 1 || strings.Contains(fmt.Sprintf(pattern, 0), "%!") {
			return fmt.Errorf("%w: %q must contain one integer verb", ErrFramePath, pattern)
		}
		p.framePath = pattern
		return nil
	}
}

// FromPNG starts the canvas from an existing PNG. If the file doesn't
// exist a blank canvas is used instead, sized per Size.
func FromPNG(path string) Option {
	return func(p *Painter) error {
		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			return nil
		} else if err != nil {
			return err
		}
		if info.IsDir() {
			return fmt.Errorf("given path %s is a directory", path)
		}
		p.source = path
		return nil
	}
}

// Font sets the TrueType font used by DrawText (default Go Regular).
func Font(ttf []byte) Option {
	return func(p *Painter) error {
		if len(ttf) == 0 {
			return errors.New("empty font data")
		}
		p.ttf = ttf
		return nil
	}
}
