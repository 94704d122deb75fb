package render

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// faceCache builds and memoizes font faces. Theme font family strings are
// descriptive; everything renders with the Go fonts, bold for titles and
// regular for content, at the theme's size.
type faceCache struct {
	mu    sync.Mutex
	bold  *sfnt.Font
	reg   *sfnt.Font
	faces map[faceKey]font.Face
}

type faceKey struct {
	bold bool
	size float64
}

func newFaceCache() (*faceCache, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing bold font: %w", err)
	}
	return &faceCache{
		bold:  bold,
		reg:   regular,
		faces: make(map[faceKey]font.Face),
	}, nil
}

func (c *faceCache) face(bold bool, size float64) (font.Face, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := faceKey{bold: bold, size: size}
	if f, ok := c.faces[key]; ok {
		return f, nil
	}

	src := c.reg
	if bold {
		src = c.bold
	}
	f, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("building %gpt face: %w", size, err)
	}
	c.faces[key] = f
	return f, nil
}
