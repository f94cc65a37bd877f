package renderer

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/ankek/sentinel-diagram/internal/scene"
)

// svgFontFamily names the Go fonts first so browsers that have them match
// the measured widths.
const svgFontFamily = "Go, Helvetica, Arial, sans-serif"

type fontStyle struct {
	bold, italic bool
}

// Parsed Go fonts, shared by every surface. Faces are not shared because
// font.Face implementations are not safe for concurrent use.
var (
	goFontsOnce sync.Once
	goFonts     map[fontStyle]*truetype.Font
	goFontsErr  error
)

func loadGoFonts() (map[fontStyle]*truetype.Font, error) {
	goFontsOnce.Do(func() {
		sources := map[fontStyle][]byte{
			{}:                         goregular.TTF,
			{bold: true}:               gobold.TTF,
			{italic: true}:             goitalic.TTF,
			{bold: true, italic: true}: gobolditalic.TTF,
		}
		fonts := make(map[fontStyle]*truetype.Font, len(sources))
		for style, ttf := range sources {
			f, err := truetype.Parse(ttf)
			if err != nil {
				goFontsErr = fmt.Errorf("failed to parse Go font: %w", err)
				return
			}
			fonts[style] = f
		}
		goFonts = fonts
	})
	return goFonts, goFontsErr
}

type faceKey struct {
	style fontStyle
	size  float64
}

// faceCache hands out Go font faces at one resolution.
type faceCache struct {
	dpi   float64
	fonts map[fontStyle]*truetype.Font
	faces map[faceKey]font.Face
}

func newFaceCache(dpi float64) (*faceCache, error) {
	fonts, err := loadGoFonts()
	if err != nil {
		return nil, err
	}
	return &faceCache{dpi: dpi, fonts: fonts, faces: make(map[faceKey]font.Face)}, nil
}

func (c *faceCache) face(f scene.Font) font.Face {
	key := faceKey{style: fontStyle{bold: f.Bold, italic: f.Italic}, size: f.Size}
	if face, ok := c.faces[key]; ok {
		return face
	}
	face := truetype.NewFace(c.fonts[key.style], &truetype.Options{
		Size:    f.Size,
		DPI:     c.dpi,
		Hinting: font.HintingNone,
	})
	c.faces[key] = face
	return face
}

// advance returns the width of s in device pixels.
func (c *faceCache) advance(s string, f scene.Font) float64 {
	return fixedToFloat(font.MeasureString(c.face(f), s))
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
