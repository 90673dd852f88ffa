package raster

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

var errFontClosed = errors.New("raster: surface closed")

// fontCache lazily parses the embedded Go Regular font and keeps one face
// per requested size.
type fontCache struct {
	once   sync.Once
	source *text.FontSource
	err    error
	faces  map[float64]text.Face
}

func newFontCache() *fontCache {
	return &fontCache{faces: make(map[float64]text.Face)}
}

func (c *fontCache) face(size float64) (text.Face, error) {
	c.once.Do(func() {
		c.source, c.err = text.NewFontSource(goregular.TTF)
		if c.err != nil {
			c.err = fmt.Errorf("raster: load go regular: %w", c.err)
		}
	})
	if c.err != nil {
		return nil, c.err
	}

	if f, ok := c.faces[size]; ok {
		return f, nil
	}
	f := c.source.Face(size)
	c.faces[size] = f
	return f, nil
}

func (c *fontCache) close() {
	if c.source != nil {
		_ = c.source.Close()
		c.source = nil
		c.faces = make(map[float64]text.Face)
		c.err = errFontClosed
	}
}
