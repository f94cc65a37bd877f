package renderer

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"image/png"
	"math"

	"github.com/fogleman/gg"

	"github.com/ankek/sentinel-diagram/internal/scene"
)

// pngSurface rasterizes onto a gg context at a fixed DPI.
type pngSurface struct {
	dc     *gg.Context
	dpi    float64
	height float64 // canvas height in units
	faces  *faceCache
}

func newPNGSurface(c *scene.Canvas, dpi float64) (*pngSurface, error) {
	faces, err := newFaceCache(dpi)
	if err != nil {
		return nil, err
	}
	w := int(math.Round(c.Width * dpi))
	h := int(math.Round(c.Height * dpi))
	return &pngSurface{
		dc:     gg.NewContext(w, h),
		dpi:    dpi,
		height: c.Height,
		faces:  faces,
	}, nil
}

// renderPNG rasterizes the canvas and encodes it with DPI metadata.
func renderPNG(ctx context.Context, c *scene.Canvas, dpi float64) ([]byte, error) {
	s, err := newPNGSurface(c, dpi)
	if err != nil {
		return nil, err
	}
	if err := paint(ctx, c, s); err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	if err := png.Encode(buf, s.dc.Image()); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return withResolution(buf.Bytes(), dpi)
}

// xy maps a canvas point to pixel coordinates.
func (s *pngSurface) xy(p scene.Point) (float64, float64) {
	return p.X * s.dpi, (s.height - p.Y) * s.dpi
}

// px converts points to pixels.
func (s *pngSurface) px(points float64) float64 {
	return points * s.dpi / scene.PointsPerUnit
}

func (s *pngSurface) TextWidth(text string, f scene.Font) float64 {
	return s.faces.advance(text, f) / s.dpi
}

func (s *pngSurface) rect(r scene.Rect, radius float64, p pen) {
	x, y := s.xy(scene.Point{X: r.X, Y: r.Top()})
	w, h := r.W*s.dpi, r.H*s.dpi
	if radius > 0 {
		s.dc.DrawRoundedRectangle(x, y, w, h, radius*s.dpi)
	} else {
		s.dc.DrawRectangle(x, y, w, h)
	}

	if p.fills() {
		s.dc.SetColor(p.Fill)
		if p.strokes() {
			s.dc.FillPreserve()
		} else {
			s.dc.Fill()
		}
	}
	if p.strokes() {
		s.setStroke(p)
		s.dc.Stroke()
	}
	s.dc.ClearPath()
}

func (s *pngSurface) polyline(pts []scene.Point, p pen) {
	if len(pts) < 2 || !p.strokes() {
		return
	}
	for i, pt := range pts {
		x, y := s.xy(pt)
		if i == 0 {
			s.dc.MoveTo(x, y)
		} else {
			s.dc.LineTo(x, y)
		}
	}
	s.setStroke(p)
	s.dc.Stroke()
}

func (s *pngSurface) setStroke(p pen) {
	s.dc.SetColor(p.Stroke)
	s.dc.SetLineWidth(s.px(p.Width))
	if p.Dashed {
		on, off := dashPattern(p.Width)
		s.dc.SetDash(s.px(on), s.px(off))
		s.dc.SetLineCap(gg.LineCapButt)
	} else {
		s.dc.SetDash()
		s.dc.SetLineCap(gg.LineCapRound)
	}
}

func (s *pngSurface) text(text string, origin scene.Point, f scene.Font, col color.NRGBA) {
	s.dc.SetFontFace(s.faces.face(f))
	s.dc.SetColor(col)
	x, y := s.xy(origin)
	s.dc.DrawString(text, x, y)
}
