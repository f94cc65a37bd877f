package renderer

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"image/color"
	"strings"

	"github.com/ankek/sentinel-diagram/internal/scene"
)

// svgSurface writes SVG markup in point units.
type svgSurface struct {
	buf    *bytes.Buffer
	height float64 // canvas height in units
	faces  *faceCache
}

// renderSVG writes the canvas as a standalone SVG document.
func renderSVG(ctx context.Context, c *scene.Canvas, opts RenderOptions) ([]byte, error) {
	faces, err := newFaceCache(scene.PointsPerUnit)
	if err != nil {
		return nil, err
	}
	s := &svgSurface{buf: &bytes.Buffer{}, height: c.Height, faces: faces}

	s.writeHeader(c.Width*scene.PointsPerUnit, c.Height*scene.PointsPerUnit, opts.Title)
	if err := paint(ctx, c, s); err != nil {
		return nil, err
	}
	s.buf.WriteString("</svg>\n")

	return s.buf.Bytes(), nil
}

// writeHeader writes the SVG header
func (s *svgSurface) writeHeader(width, height float64, title string) {
	fmt.Fprintf(s.buf, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0fpt" height="%.0fpt" viewBox="0 0 %.0f %.0f">
`, width, height, width, height)
	if title != "" {
		fmt.Fprintf(s.buf, "<title>%s</title>\n", html.EscapeString(title))
	}
}

func (s *svgSurface) xy(p scene.Point) (float64, float64) {
	return p.X * scene.PointsPerUnit, (s.height - p.Y) * scene.PointsPerUnit
}

func (s *svgSurface) TextWidth(text string, f scene.Font) float64 {
	return s.faces.advance(text, f) / scene.PointsPerUnit
}

func (s *svgSurface) rect(r scene.Rect, radius float64, p pen) {
	if !p.fills() && !p.strokes() {
		return
	}
	x, y := s.xy(scene.Point{X: r.X, Y: r.Top()})
	fmt.Fprintf(s.buf, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f"`,
		x, y, r.W*scene.PointsPerUnit, r.H*scene.PointsPerUnit)
	if radius > 0 {
		fmt.Fprintf(s.buf, ` rx="%.2f"`, radius*scene.PointsPerUnit)
	}
	s.writePaint(p)
	s.buf.WriteString("/>\n")
}

func (s *svgSurface) polyline(pts []scene.Point, p pen) {
	if len(pts) < 2 || !p.strokes() {
		return
	}
	coords := make([]string, 0, len(pts))
	for _, pt := range pts {
		x, y := s.xy(pt)
		coords = append(coords, fmt.Sprintf("%.2f,%.2f", x, y))
	}
	fmt.Fprintf(s.buf, `<polyline points="%s"`, strings.Join(coords, " "))
	p.Fill = color.NRGBA{}
	s.writePaint(p)
	s.buf.WriteString("/>\n")
}

// writePaint writes fill and stroke attributes for p.
func (s *svgSurface) writePaint(p pen) {
	if p.fills() {
		fmt.Fprintf(s.buf, ` fill="%s"`, hexColor(p.Fill))
		if p.Fill.A < 255 {
			fmt.Fprintf(s.buf, ` fill-opacity="%.2f"`, opacity(p.Fill))
		}
	} else {
		s.buf.WriteString(` fill="none"`)
	}
	if !p.strokes() {
		return
	}
	fmt.Fprintf(s.buf, ` stroke="%s" stroke-width="%.2f"`, hexColor(p.Stroke), p.Width)
	if p.Dashed {
		on, off := dashPattern(p.Width)
		fmt.Fprintf(s.buf, ` stroke-dasharray="%.2f %.2f"`, on, off)
	} else {
		s.buf.WriteString(` stroke-linecap="round" stroke-linejoin="round"`)
	}
}

func (s *svgSurface) text(text string, origin scene.Point, f scene.Font, col color.NRGBA) {
	x, y := s.xy(origin)
	fmt.Fprintf(s.buf, `<text x="%.2f" y="%.2f" font-family="%s" font-size="%.1f"`,
		x, y, svgFontFamily, f.Size)
	if f.Bold {
		s.buf.WriteString(` font-weight="bold"`)
	}
	if f.Italic {
		s.buf.WriteString(` font-style="italic"`)
	}
	fmt.Fprintf(s.buf, ` fill="%s" xml:space="preserve">%s</text>
`, hexColor(col), html.EscapeString(text))
}
