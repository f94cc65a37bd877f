// Package scene holds the drawing primitives of an architecture diagram:
// a bounded canvas that owns shapes, connectors, labels and a legend in
// paint order. Coordinates are logical units (one unit is one inch) with
// the origin at the bottom-left corner and the y axis pointing up.
//
// Geometry that every backend needs (text placement, arrowheads, legend
// rows) is computed here so PNG, PDF and SVG output agree.
package scene

import (
	"fmt"
	"image/color"
	"strings"
)

// PointsPerUnit converts typographic points to canvas units.
const PointsPerUnit = 72.0

// Point is a position on the canvas.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle; X and Y name its bottom-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Top returns the y coordinate of the upper edge.
func (r Rect) Top() float64 { return r.Y + r.H }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Center returns the middle of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Inset grows the rectangle by d on every side (shrinks it when d < 0).
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// Union returns the smallest rectangle covering r and o.
func (r Rect) Union(o Rect) Rect {
	x0, y0 := min(r.X, o.X), min(r.Y, o.Y)
	x1, y1 := max(r.Right(), o.Right()), max(r.Top(), o.Top())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Font describes a text face. Size is in points.
type Font struct {
	Size   float64
	Bold   bool
	Italic bool
}

// Units returns the font size in canvas units.
func (f Font) Units() float64 { return f.Size / PointsPerUnit }

// Align is the horizontal alignment of text relative to its anchor.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// ParseAlign accepts "left", "center" or "right".
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(s) {
	case "", "left":
		return AlignLeft, nil
	case "center", "centre":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return AlignLeft, fmt.Errorf("unknown horizontal alignment %q", s)
}

// VAlign is the vertical alignment of a text block relative to its anchor.
type VAlign int

const (
	VAlignBaseline VAlign = iota // anchor is the first line's baseline
	VAlignCenter
	VAlignTop
	VAlignBottom
)

// ParseVAlign accepts "baseline", "center", "top" or "bottom".
func ParseVAlign(s string) (VAlign, error) {
	switch strings.ToLower(s) {
	case "", "baseline":
		return VAlignBaseline, nil
	case "center", "centre":
		return VAlignCenter, nil
	case "top":
		return VAlignTop, nil
	case "bottom":
		return VAlignBottom, nil
	}
	return VAlignBaseline, fmt.Errorf("unknown vertical alignment %q", s)
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA".
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")

	var r, g, b uint8
	a := uint8(255)
	switch len(hex) {
	case 6:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
	case 8:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
	default:
		return color.NRGBA{}, fmt.Errorf("invalid color %q: want #RRGGBB or #RRGGBBAA", s)
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}

// WithAlpha returns c with its alpha replaced by a in [0, 1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(clamp(a, 0, 1)*255 + 0.5)
	return c
}

// Measurer reports the advance width of a single line of text in canvas
// units. Each backend measures with its own fonts.
type Measurer interface {
	TextWidth(text string, f Font) float64
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
