package scene

import (
	"image/color"
	"strings"
)

const (
	// DefaultLineSpacing is the line height as a multiple of the font size.
	DefaultLineSpacing = 1.2
	ascentRatio        = 0.8
	descentRatio       = 0.2
)

// TextBox is a rounded background drawn behind a label.
type TextBox struct {
	Fill   color.NRGBA
	Stroke color.NRGBA
	Pad    float64
}

// Label is free text anchored at a point.
type Label struct {
	Name        string
	At          Point
	Text        string
	Font        Font
	Align       Align
	VAlign      VAlign
	LineSpacing float64
	Color       color.NRGBA
	Box         *TextBox
}

// ElementName implements Element.
func (l *Label) ElementName() string { return "label " + l.Name }

func (l *Label) bounds() Rect { return Rect{X: l.At.X, Y: l.At.Y} }

// TextLine is one laid out line: Origin is the left end of its baseline.
type TextLine struct {
	Text   string
	Origin Point
	Width  float64
}

// TextLayout is the placement of every line of a label.
type TextLayout struct {
	Lines  []TextLine
	Bounds Rect
}

// Lines splits the label text on newlines.
func (l *Label) Lines() []string {
	return strings.Split(l.Text, "\n")
}

// Layout places every line of the label using m for widths.
func (l *Label) Layout(m Measurer) TextLayout {
	lines := l.Lines()
	size := l.Font.Units()
	spacing := l.LineSpacing
	if spacing <= 0 {
		spacing = DefaultLineSpacing
	}
	lineHeight := spacing * size
	ascent := ascentRatio * size
	height := float64(len(lines)-1)*lineHeight + (ascentRatio+descentRatio)*size

	var top float64
	switch l.VAlign {
	case VAlignTop:
		top = l.At.Y
	case VAlignCenter:
		top = l.At.Y + height/2
	case VAlignBottom:
		top = l.At.Y + height
	default:
		top = l.At.Y + ascent
	}

	out := TextLayout{Lines: make([]TextLine, 0, len(lines))}
	left, right := l.At.X, l.At.X
	for i, text := range lines {
		w := m.TextWidth(text, l.Font)
		x := l.At.X
		switch l.Align {
		case AlignCenter:
			x -= w / 2
		case AlignRight:
			x -= w
		}
		left, right = min(left, x), max(right, x+w)
		out.Lines = append(out.Lines, TextLine{
			Text:   text,
			Origin: Point{X: x, Y: top - ascent - float64(i)*lineHeight},
			Width:  w,
		})
	}
	out.Bounds = Rect{X: left, Y: top - height, W: right - left, H: height}
	return out
}
