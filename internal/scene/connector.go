package scene

import (
	"fmt"
	"image/color"
	"math"
)

// ArrowStyle selects which ends of a connector carry an arrowhead.
type ArrowStyle int

const (
	ArrowNone ArrowStyle = iota
	ArrowForward
	ArrowBackward
	ArrowBoth
)

// ParseArrowStyle accepts "-", "->", "<-" and "<->".
func ParseArrowStyle(s string) (ArrowStyle, error) {
	switch s {
	case "", "-":
		return ArrowNone, nil
	case "->":
		return ArrowForward, nil
	case "<-":
		return ArrowBackward, nil
	case "<->":
		return ArrowBoth, nil
	}
	return ArrowNone, fmt.Errorf("unknown arrow style %q", s)
}

func (a ArrowStyle) String() string {
	switch a {
	case ArrowForward:
		return "->"
	case ArrowBackward:
		return "<-"
	case ArrowBoth:
		return "<->"
	}
	return "-"
}

const (
	headLengthRatio = 0.4
	headWidthRatio  = 0.2
)

// Connector is a line between two canvas points.
type Connector struct {
	Name     string
	From, To Point
	Arrow    ArrowStyle
	Color    color.NRGBA
	Width    float64 // points
	Dashed   bool
	HeadSize float64 // points; scales the arrowheads
	Shrink   float64 // points trimmed from both ends
	Caption  *Label
}

// ElementName implements Element.
func (c *Connector) ElementName() string { return "connector " + c.Name }

func (c *Connector) bounds() Rect {
	x0, y0 := min(c.From.X, c.To.X), min(c.From.Y, c.To.Y)
	return Rect{X: x0, Y: y0, W: math.Abs(c.To.X - c.From.X), H: math.Abs(c.To.Y - c.From.Y)}
}

// ConnectorGeometry is the resolved path of a connector. Each head is an
// open chevron: wing, tip, wing.
type ConnectorGeometry struct {
	Start, End Point
	Heads      [][3]Point
}

// Geometry trims the ends and builds the arrowheads.
func (c *Connector) Geometry() ConnectorGeometry {
	dx, dy := c.To.X-c.From.X, c.To.Y-c.From.Y
	length := math.Hypot(dx, dy)
	ux, uy := dx/length, dy/length

	shrink := c.Shrink / PointsPerUnit
	if 2*shrink >= length {
		shrink = 0
	}
	g := ConnectorGeometry{
		Start: Point{X: c.From.X + ux*shrink, Y: c.From.Y + uy*shrink},
		End:   Point{X: c.To.X - ux*shrink, Y: c.To.Y - uy*shrink},
	}

	headLen := headLengthRatio * c.HeadSize / PointsPerUnit
	headHalf := headWidthRatio * c.HeadSize / PointsPerUnit
	if c.Arrow == ArrowForward || c.Arrow == ArrowBoth {
		g.Heads = append(g.Heads, chevron(g.End, ux, uy, headLen, headHalf))
	}
	if c.Arrow == ArrowBackward || c.Arrow == ArrowBoth {
		g.Heads = append(g.Heads, chevron(g.Start, -ux, -uy, headLen, headHalf))
	}
	return g
}

// chevron builds an arrowhead whose tip is at tip, pointing along (ux, uy).
func chevron(tip Point, ux, uy, length, half float64) [3]Point {
	bx, by := tip.X-ux*length, tip.Y-uy*length
	// perpendicular to the direction
	px, py := -uy*half, ux*half
	return [3]Point{
		{X: bx + px, Y: by + py},
		tip,
		{X: bx - px, Y: by - py},
	}
}
