package scene

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// monoMeasurer gives every rune half an em.
type monoMeasurer struct{}

func (monoMeasurer) TextWidth(text string, f Font) float64 {
	return float64(len([]rune(text))) * 0.5 * f.Units()
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: "#FF6B6B", want: color.NRGBA{R: 0xFF, G: 0x6B, B: 0x6B, A: 0xFF}},
		{in: "4ECDC4", want: color.NRGBA{R: 0x4E, G: 0xCD, B: 0xC4, A: 0xFF}},
		{in: "#FFFFFFCC", want: color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xCC}},
		{in: "#FFF", wantErr: true},
		{in: "#GGGGGG", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithAlpha(t *testing.T) {
	c := WithAlpha(color.NRGBA{R: 1, G: 2, B: 3, A: 255}, 0.8)
	assert.Equal(t, uint8(204), c.A)
	assert.Equal(t, uint8(255), WithAlpha(c, 7).A)
}

func TestParseArrowStyle(t *testing.T) {
	for _, s := range []string{"-", "->", "<-", "<->"} {
		style, err := ParseArrowStyle(s)
		require.NoError(t, err)
		assert.Equal(t, s, style.String())
	}
	_, err := ParseArrowStyle("=>")
	assert.Error(t, err)
}

func TestParseAlignments(t *testing.T) {
	a, err := ParseAlign("center")
	require.NoError(t, err)
	assert.Equal(t, AlignCenter, a)
	_, err = ParseAlign("middle")
	assert.Error(t, err)

	v, err := ParseVAlign("top")
	require.NoError(t, err)
	assert.Equal(t, VAlignTop, v)
	_, err = ParseVAlign("middle")
	assert.Error(t, err)
}

func TestLabelLayout(t *testing.T) {
	font := Font{Size: 72} // one unit
	tests := []struct {
		name       string
		label      Label
		wantFirstX []float64
		wantFirstY float64
	}{
		{
			name:       "left baseline",
			label:      Label{At: Point{X: 1, Y: 5}, Text: "ab\nabcd", Font: font},
			wantFirstX: []float64{1, 1},
			wantFirstY: 5,
		},
		{
			name:       "centered top",
			label:      Label{At: Point{X: 4, Y: 5}, Text: "ab\nabcd", Font: font, Align: AlignCenter, VAlign: VAlignTop},
			wantFirstX: []float64{3.5, 3},
			wantFirstY: 4.2,
		},
		{
			name:       "right center single line",
			label:      Label{At: Point{X: 4, Y: 5}, Text: "abcd", Font: font, Align: AlignRight, VAlign: VAlignCenter},
			wantFirstX: []float64{2},
			wantFirstY: 4.7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := tt.label.Layout(monoMeasurer{})
			require.Len(t, layout.Lines, len(tt.wantFirstX))
			for i, x := range tt.wantFirstX {
				assert.InDelta(t, x, layout.Lines[i].Origin.X, 1e-9)
			}
			assert.InDelta(t, tt.wantFirstY, layout.Lines[0].Origin.Y, 1e-9)
		})
	}
}

func TestLabelLayoutLineSpacingAndBounds(t *testing.T) {
	l := Label{At: Point{X: 0, Y: 10}, Text: "a\nb\nc", Font: Font{Size: 72}, LineSpacing: 2, VAlign: VAlignTop}
	layout := l.Layout(monoMeasurer{})

	require.Len(t, layout.Lines, 3)
	assert.InDelta(t, 2, layout.Lines[0].Origin.Y-layout.Lines[1].Origin.Y, 1e-9)
	assert.InDelta(t, 10, layout.Bounds.Top(), 1e-9)
	assert.InDelta(t, 5, layout.Bounds.H, 1e-9) // two gaps of 2 plus one em
	assert.InDelta(t, 0.5, layout.Bounds.W, 1e-9)
}

func TestConnectorGeometry(t *testing.T) {
	c := Connector{
		From:     Point{X: 0, Y: 0},
		To:       Point{X: 2, Y: 0},
		Arrow:    ArrowBoth,
		HeadSize: 72,
		Shrink:   36,
	}
	g := c.Geometry()

	assert.InDelta(t, 0.5, g.Start.X, 1e-9)
	assert.InDelta(t, 1.5, g.End.X, 1e-9)
	require.Len(t, g.Heads, 2)

	fwd := g.Heads[0]
	assert.Equal(t, g.End, fwd[1])
	assert.InDelta(t, 1.1, fwd[0].X, 1e-9)
	assert.InDelta(t, 0.2, math.Abs(fwd[0].Y), 1e-9)
	assert.InDelta(t, -fwd[0].Y, fwd[2].Y, 1e-9)

	back := g.Heads[1]
	assert.Equal(t, g.Start, back[1])
	assert.InDelta(t, 0.9, back[0].X, 1e-9)
}

func TestConnectorGeometryShrinkLongerThanLine(t *testing.T) {
	c := Connector{From: Point{X: 0, Y: 0}, To: Point{X: 0, Y: 0.1}, Arrow: ArrowForward, Shrink: 36, HeadSize: 10}
	g := c.Geometry()
	assert.Equal(t, c.From, g.Start)
	assert.Equal(t, c.To, g.End)
	assert.Len(t, g.Heads, 1)
}

func TestConnectorGeometryPlainLine(t *testing.T) {
	c := Connector{From: Point{X: 1, Y: 1}, To: Point{X: 1, Y: 3}, Arrow: ArrowNone}
	assert.Empty(t, c.Geometry().Heads)
}

func TestLegendLayout(t *testing.T) {
	l := Legend{
		At:   Point{X: 1, Y: 4},
		Font: Font{Size: 10},
		Entries: []LegendEntry{
			{Label: "Internet"},
			{Label: "Gateway VPC"},
		},
	}
	layout := l.Layout(monoMeasurer{})

	require.Len(t, layout.Rows, 2)
	assert.InDelta(t, 4, layout.Frame.Top(), 1e-9)
	assert.Equal(t, 1.0, layout.Frame.X)
	assert.Greater(t, layout.Rows[0].Swatch.Y, layout.Rows[1].Swatch.Y)
	assert.Equal(t, "Gateway VPC", layout.Rows[1].Label.Text)
	assert.InDelta(t, layout.Frame.Right(), layout.Rows[1].Label.At.X+monoMeasurer{}.TextWidth("Gateway VPC", l.Font)+legendPad, 1e-9)
}

func TestShapeTitleLabel(t *testing.T) {
	s := Shape{Name: "vpc", Rect: Rect{X: 0, Y: 0, W: 4, H: 2}, Title: "VPC", TitleFont: Font{Size: 12}}
	center := s.TitleLabel()
	require.NotNil(t, center)
	assert.Equal(t, Point{X: 2, Y: 1}, center.At)

	s.TitlePlacement = TitleTop
	assert.InDelta(t, 1.78, s.TitleLabel().At.Y, 1e-9)

	s.Title = ""
	assert.Nil(t, s.TitleLabel())
}

func TestCanvasLifecycle(t *testing.T) {
	c, err := New(16, 12)
	require.NoError(t, err)

	require.NoError(t, c.AddShape(Shape{Name: "box", Rect: Rect{X: 1, Y: 1, W: 2, H: 1}}))
	require.NoError(t, c.AddLabel(Label{Name: "text", At: Point{X: 8, Y: 6}, Text: "hi", Font: Font{Size: 10}}))
	require.NoError(t, c.AddConnector(Connector{Name: "line", From: Point{X: 1, Y: 1}, To: Point{X: 2, Y: 2}}))
	require.NoError(t, c.AddLegend(Legend{At: Point{X: 1, Y: 3}, Font: Font{Size: 10}, Entries: []LegendEntry{{Label: "x"}}}))

	elems, err := c.Elements()
	require.NoError(t, err)
	require.Len(t, elems, 4)
	assert.Equal(t, "shape box", elems[0].ElementName())
	assert.Equal(t, "legend", elems[3].ElementName())

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	assert.True(t, c.Closed())
	assert.Zero(t, c.Len())

	_, err = c.Elements()
	assert.ErrorIs(t, err, ErrCanvasClosed)
	assert.ErrorIs(t, c.AddShape(Shape{Name: "late", Rect: Rect{W: 1, H: 1}}), ErrCanvasClosed)
}

func TestCanvasRejectsInvalidElements(t *testing.T) {
	_, err := New(0, 12)
	assert.Error(t, err)

	c, err := New(16, 12)
	require.NoError(t, err)

	tests := []struct {
		name string
		add  func() error
	}{
		{"empty shape", func() error { return c.AddShape(Shape{Name: "a"}) }},
		{"shape off canvas", func() error { return c.AddShape(Shape{Name: "b", Rect: Rect{X: 20, Y: 1, W: 1, H: 1}}) }},
		{"untitled font", func() error {
			return c.AddShape(Shape{Name: "c", Rect: Rect{W: 1, H: 1}, Title: "t"})
		}},
		{"label without size", func() error { return c.AddLabel(Label{Name: "d", Text: "x"}) }},
		{"zero length connector", func() error { return c.AddConnector(Connector{Name: "e"}) }},
		{"empty legend", func() error { return c.AddLegend(Legend{}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.add())
		})
	}
	assert.Zero(t, c.Len())
}

func TestCanvasCopiesCaption(t *testing.T) {
	c, err := New(16, 12)
	require.NoError(t, err)

	caption := &Label{Name: "cap", Text: "before", Font: Font{Size: 10}}
	require.NoError(t, c.AddConnector(Connector{Name: "x", From: Point{X: 1, Y: 1}, To: Point{X: 2, Y: 1}, Caption: caption}))
	caption.Text = "after"

	elems, err := c.Elements()
	require.NoError(t, err)
	assert.Equal(t, "before", elems[0].(*Connector).Caption.Text)
}
