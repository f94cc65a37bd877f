package scene

import "image/color"

// TitlePlacement selects where a shape's title is drawn.
type TitlePlacement int

const (
	TitleCenter TitlePlacement = iota
	TitleTop
)

// titleInset is the distance from a shape's top edge to the centre of a
// TitleTop title.
const titleInset = 0.22

// Shape is a rectangle standing for one architecture element.
type Shape struct {
	Name        string
	Rect        Rect
	Pad         float64 // outline grows by Pad; corner radius is Pad
	Fill        color.NRGBA
	Stroke      color.NRGBA
	StrokeWidth float64 // points

	Title          string
	TitleFont      Font
	TitlePlacement TitlePlacement
	TitleColor     color.NRGBA
}

// ElementName implements Element.
func (s *Shape) ElementName() string { return "shape " + s.Name }

func (s *Shape) bounds() Rect { return s.Outline() }

// Outline is the painted rectangle, including padding.
func (s *Shape) Outline() Rect { return s.Rect.Inset(s.Pad) }

// Radius is the corner radius of the outline.
func (s *Shape) Radius() float64 { return s.Pad }

// TitleLabel returns the shape's title as a label, or nil when the shape
// has no title.
func (s *Shape) TitleLabel() *Label {
	if s.Title == "" {
		return nil
	}
	at := s.Rect.Center()
	if s.TitlePlacement == TitleTop {
		at.Y = s.Rect.Top() - titleInset
	}
	return &Label{
		Name:   s.Name + ".title",
		At:     at,
		Text:   s.Title,
		Font:   s.TitleFont,
		Align:  AlignCenter,
		VAlign: VAlignCenter,
		Color:  s.TitleColor,
	}
}
