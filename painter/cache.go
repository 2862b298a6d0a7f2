package painter

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// faceCache keeps one font.Face per point size so repeated text draws
// don't rebuild glyph caches.
type faceCache struct {
	font     *truetype.Font
	faceLock *sync.Mutex
	faces    map[float64]font.Face
}

// newFaceCache parses the given TrueType data, or Go Regular if it is nil.
func newFaceCache(ttf []byte) (*faceCache, error) {
	if ttf == nil {
		ttf = goregular.TTF
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return &faceCache{
		font:     f,
		faceLock: &sync.Mutex{},
		faces:    map[float64]font.Face{},
	}, nil
}

// Load a face by its point size, creating it on first use.
func (c *faceCache) Load(size float64) font.Face {
	c.faceLock.Lock()
	defer c.faceLock.Unlock()

	face, ok := c.faces[size]
	if ok {
		return face
	}

	face = truetype.NewFace(c.font, &truetype.Options{Size: size})
	c.faces[size] = face
	return face
}
