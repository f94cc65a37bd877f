package scene

import "image/color"

// Legend layout constants in canvas units.
const (
	legendPad      = 0.12
	swatchWidth    = 0.3
	swatchHeight   = 0.15
	swatchGap      = 0.1
	legendRowRatio = 1.6 // row height as a multiple of the font size
)

// LegendEntry maps a color to a category name.
type LegendEntry struct {
	Color color.NRGBA
	Label string
}

// Legend is a framed color key anchored at its top-left corner.
type Legend struct {
	At      Point
	Font    Font
	Entries []LegendEntry
	Frame   TextBox
	Color   color.NRGBA
}

// ElementName implements Element.
func (l *Legend) ElementName() string { return "legend" }

func (l *Legend) bounds() Rect { return Rect{X: l.At.X, Y: l.At.Y} }

// LegendRow is one laid out legend entry.
type LegendRow struct {
	Swatch Rect
	Fill   color.NRGBA
	Label  Label
}

// LegendLayout is the frame and rows of a legend.
type LegendLayout struct {
	Frame Rect
	Rows  []LegendRow
}

// Layout places the frame and rows using m for label widths.
func (l *Legend) Layout(m Measurer) LegendLayout {
	rowHeight := legendRowRatio * l.Font.Units()
	labelX := l.At.X + legendPad + swatchWidth + swatchGap

	var widest float64
	rows := make([]LegendRow, 0, len(l.Entries))
	for i, e := range l.Entries {
		mid := l.At.Y - legendPad - (float64(i)+0.5)*rowHeight
		widest = max(widest, m.TextWidth(e.Label, l.Font))
		rows = append(rows, LegendRow{
			Swatch: Rect{X: l.At.X + legendPad, Y: mid - swatchHeight/2, W: swatchWidth, H: swatchHeight},
			Fill:   e.Color,
			Label: Label{
				Name:   "legend." + e.Label,
				At:     Point{X: labelX, Y: mid},
				Text:   e.Label,
				Font:   l.Font,
				Align:  AlignLeft,
				VAlign: VAlignCenter,
				Color:  l.Color,
			},
		})
	}

	height := 2*legendPad + float64(len(l.Entries))*rowHeight
	width := 2*legendPad + swatchWidth + swatchGap + widest
	return LegendLayout{
		Frame: Rect{X: l.At.X, Y: l.At.Y - height, W: width, H: height},
		Rows:  rows,
	}
}
