package renderer

import (
	"context"
	"fmt"
	"image/color"

	"github.com/ankek/sentinel-diagram/internal/scene"
)

// pen describes how a primitive is filled and stroked. A color with zero
// alpha is not painted.
type pen struct {
	Fill   color.NRGBA
	Stroke color.NRGBA
	Width  float64 // points
	Dashed bool
}

func (p pen) fills() bool   { return p.Fill.A > 0 }
func (p pen) strokes() bool { return p.Stroke.A > 0 && p.Width > 0 }

// surface is the drawing target of one backend. Coordinates are canvas
// units; each surface maps them to its device space.
type surface interface {
	scene.Measurer
	rect(r scene.Rect, radius float64, p pen)
	polyline(pts []scene.Point, p pen)
	text(s string, origin scene.Point, f scene.Font, col color.NRGBA)
}

// dashPattern returns on/off lengths in points for a dashed line of the
// given width.
func dashPattern(width float64) (on, off float64) {
	return 3.7 * width, 1.6 * width
}

// paint draws every canvas element onto s in paint order.
func paint(ctx context.Context, c *scene.Canvas, s surface) error {
	elements, err := c.Elements()
	if err != nil {
		return err
	}

	s.rect(c.Bounds(), 0, pen{Fill: c.Background})

	for _, el := range elements {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch e := el.(type) {
		case *scene.Shape:
			paintShape(s, e)
		case *scene.Label:
			paintLabel(s, e)
		case *scene.Connector:
			paintConnector(s, e)
		case *scene.Legend:
			paintLegend(s, e)
		default:
			return fmt.Errorf("cannot paint %s (%T)", el.ElementName(), el)
		}
	}
	return nil
}

func paintShape(s surface, sh *scene.Shape) {
	s.rect(sh.Outline(), sh.Radius(), pen{Fill: sh.Fill, Stroke: sh.Stroke, Width: sh.StrokeWidth})
	if title := sh.TitleLabel(); title != nil {
		paintLabel(s, title)
	}
}

func paintLabel(s surface, l *scene.Label) {
	layout := l.Layout(s)
	if l.Box != nil {
		s.rect(layout.Bounds.Inset(l.Box.Pad), l.Box.Pad, pen{Fill: l.Box.Fill, Stroke: l.Box.Stroke, Width: 1})
	}
	for _, line := range layout.Lines {
		if line.Text == "" {
			continue
		}
		s.text(line.Text, line.Origin, l.Font, l.Color)
	}
}

func paintConnector(s surface, c *scene.Connector) {
	g := c.Geometry()
	s.polyline([]scene.Point{g.Start, g.End}, pen{Stroke: c.Color, Width: c.Width, Dashed: c.Dashed})

	// heads are always solid
	for _, head := range g.Heads {
		s.polyline(head[:], pen{Stroke: c.Color, Width: c.Width})
	}

	if c.Caption != nil {
		paintLabel(s, c.Caption)
	}
}

func paintLegend(s surface, l *scene.Legend) {
	layout := l.Layout(s)
	s.rect(layout.Frame, l.Frame.Pad, pen{Fill: l.Frame.Fill, Stroke: l.Frame.Stroke, Width: 1})
	for _, row := range layout.Rows {
		s.rect(row.Swatch, 0, pen{Fill: row.Fill, Stroke: darkenColor(row.Fill, 25), Width: 0.5})
		paintLabel(s, &row.Label)
	}
}
