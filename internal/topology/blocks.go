package topology

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/ankek/sentinel-diagram/internal/scene"
)

// Ink is the default stroke and text color.
const Ink = "#000000"

type canvasBlock struct {
	Width  float64 `hcl:"width"`
	Height float64 `hcl:"height"`
}

type boxBlock struct {
	Fill   string   `hcl:"fill"`
	Alpha  *float64 `hcl:"alpha,optional"`
	Stroke string   `hcl:"stroke,optional"`
	Pad    float64  `hcl:"pad,optional"`
}

type shapeBlock struct {
	X              float64  `hcl:"x"`
	Y              float64  `hcl:"y"`
	Width          float64  `hcl:"width"`
	Height         float64  `hcl:"height"`
	Pad            float64  `hcl:"pad,optional"`
	Fill           string   `hcl:"fill"`
	Stroke         string   `hcl:"stroke,optional"`
	StrokeWidth    *float64 `hcl:"stroke_width,optional"`
	Title          string   `hcl:"title,optional"`
	TitleSize      float64  `hcl:"title_size,optional"`
	TitleBold      bool     `hcl:"title_bold,optional"`
	TitleItalic    bool     `hcl:"title_italic,optional"`
	TitlePlacement string   `hcl:"title_placement,optional"`
	TitleColor     string   `hcl:"title_color,optional"`
}

type labelBlock struct {
	X           float64   `hcl:"x"`
	Y           float64   `hcl:"y"`
	Text        string    `hcl:"text"`
	Size        float64   `hcl:"size"`
	Bold        bool      `hcl:"bold,optional"`
	Italic      bool      `hcl:"italic,optional"`
	Align       string    `hcl:"align,optional"`
	VAlign      string    `hcl:"valign,optional"`
	LineSpacing float64   `hcl:"line_spacing,optional"`
	Color       string    `hcl:"color,optional"`
	Box         *boxBlock `hcl:"box,block"`
}

type connectorBlock struct {
	From     []float64   `hcl:"from"`
	To       []float64   `hcl:"to"`
	Arrow    string      `hcl:"arrow,optional"`
	Color    string      `hcl:"color,optional"`
	Width    *float64    `hcl:"width,optional"`
	Dashed   bool        `hcl:"dashed,optional"`
	HeadSize float64     `hcl:"head_size,optional"`
	Shrink   float64     `hcl:"shrink,optional"`
	Caption  *labelBlock `hcl:"caption,block"`
}

type legendEntryBlock struct {
	Color string `hcl:"color"`
	Label string `hcl:"label"`
}

type legendBlock struct {
	X       float64            `hcl:"x"`
	Y       float64            `hcl:"y"`
	Size    float64            `hcl:"size"`
	Color   string             `hcl:"color,optional"`
	Frame   *boxBlock          `hcl:"frame,block"`
	Entries []legendEntryBlock `hcl:"entry,block"`
}

func (b shapeBlock) shape(name string) (scene.Shape, error) {
	fill, err := scene.ParseHexColor(b.Fill)
	if err != nil {
		return scene.Shape{}, fmt.Errorf("fill: %w", err)
	}
	stroke, err := parseColor(b.Stroke, Ink)
	if err != nil {
		return scene.Shape{}, fmt.Errorf("stroke: %w", err)
	}
	titleColor, err := parseColor(b.TitleColor, Ink)
	if err != nil {
		return scene.Shape{}, fmt.Errorf("title_color: %w", err)
	}

	placement := scene.TitleCenter
	switch b.TitlePlacement {
	case "", "center":
	case "top":
		placement = scene.TitleTop
	default:
		return scene.Shape{}, fmt.Errorf("unknown title placement %q", b.TitlePlacement)
	}

	width := 1.0
	if b.StrokeWidth != nil {
		width = *b.StrokeWidth
	}

	return scene.Shape{
		Name:           name,
		Rect:           scene.Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height},
		Pad:            b.Pad,
		Fill:           fill,
		Stroke:         stroke,
		StrokeWidth:    width,
		Title:          b.Title,
		TitleFont:      scene.Font{Size: b.TitleSize, Bold: b.TitleBold, Italic: b.TitleItalic},
		TitlePlacement: placement,
		TitleColor:     titleColor,
	}, nil
}

func (b labelBlock) label(name string) (scene.Label, error) {
	align, err := scene.ParseAlign(b.Align)
	if err != nil {
		return scene.Label{}, err
	}
	valign, err := scene.ParseVAlign(b.VAlign)
	if err != nil {
		return scene.Label{}, err
	}
	textColor, err := parseColor(b.Color, Ink)
	if err != nil {
		return scene.Label{}, fmt.Errorf("color: %w", err)
	}

	l := scene.Label{
		Name: name,
		At:   scene.Point{X: b.X, Y: b.Y},
		// heredocs end with a newline that would add an empty line
		Text:        strings.TrimRight(b.Text, "\n"),
		Font:        scene.Font{Size: b.Size, Bold: b.Bold, Italic: b.Italic},
		Align:       align,
		VAlign:      valign,
		LineSpacing: b.LineSpacing,
		Color:       textColor,
	}
	if b.Box != nil {
		box, err := b.Box.textBox()
		if err != nil {
			return scene.Label{}, fmt.Errorf("box: %w", err)
		}
		l.Box = &box
	}
	return l, nil
}

// textBox converts the block. An empty stroke draws no border.
func (b boxBlock) textBox() (scene.TextBox, error) {
	fill, err := scene.ParseHexColor(b.Fill)
	if err != nil {
		return scene.TextBox{}, fmt.Errorf("fill: %w", err)
	}
	if b.Alpha != nil {
		fill = scene.WithAlpha(fill, *b.Alpha)
	}
	box := scene.TextBox{Fill: fill, Pad: b.Pad}
	if b.Stroke != "" {
		if box.Stroke, err = scene.ParseHexColor(b.Stroke); err != nil {
			return scene.TextBox{}, fmt.Errorf("stroke: %w", err)
		}
	}
	return box, nil
}

func (b connectorBlock) connector(name string) (scene.Connector, error) {
	from, err := point(b.From)
	if err != nil {
		return scene.Connector{}, fmt.Errorf("from: %w", err)
	}
	to, err := point(b.To)
	if err != nil {
		return scene.Connector{}, fmt.Errorf("to: %w", err)
	}
	arrow, err := scene.ParseArrowStyle(b.Arrow)
	if err != nil {
		return scene.Connector{}, err
	}
	lineColor, err := parseColor(b.Color, Ink)
	if err != nil {
		return scene.Connector{}, fmt.Errorf("color: %w", err)
	}

	width := 1.0
	if b.Width != nil {
		width = *b.Width
	}

	c := scene.Connector{
		Name:     name,
		From:     from,
		To:       to,
		Arrow:    arrow,
		Color:    lineColor,
		Width:    width,
		Dashed:   b.Dashed,
		HeadSize: b.HeadSize,
		Shrink:   b.Shrink,
	}
	if b.Caption != nil {
		caption, err := b.Caption.label(name + ".caption")
		if err != nil {
			return scene.Connector{}, fmt.Errorf("caption: %w", err)
		}
		c.Caption = &caption
	}
	return c, nil
}

func (b legendBlock) legend() (scene.Legend, error) {
	textColor, err := parseColor(b.Color, Ink)
	if err != nil {
		return scene.Legend{}, fmt.Errorf("color: %w", err)
	}

	l := scene.Legend{
		At:    scene.Point{X: b.X, Y: b.Y},
		Font:  scene.Font{Size: b.Size},
		Color: textColor,
	}
	if b.Frame != nil {
		if l.Frame, err = b.Frame.textBox(); err != nil {
			return scene.Legend{}, fmt.Errorf("frame: %w", err)
		}
	}
	for i, e := range b.Entries {
		c, err := scene.ParseHexColor(e.Color)
		if err != nil {
			return scene.Legend{}, fmt.Errorf("entry %d: %w", i, err)
		}
		l.Entries = append(l.Entries, scene.LegendEntry{Color: c, Label: e.Label})
	}
	return l, nil
}

func parseColor(s, fallback string) (color.NRGBA, error) {
	if s == "" {
		s = fallback
	}
	return scene.ParseHexColor(s)
}

func point(xy []float64) (scene.Point, error) {
	if len(xy) != 2 {
		return scene.Point{}, fmt.Errorf("want [x, y], got %d values", len(xy))
	}
	return scene.Point{X: xy[0], Y: xy[1]}, nil
}
