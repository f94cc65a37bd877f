package scene

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrCanvasClosed is returned when a released canvas is used.
var ErrCanvasClosed = errors.New("canvas is closed")

// Element is anything a canvas can paint.
type Element interface {
	// ElementName identifies the element in logs and errors.
	ElementName() string
	bounds() Rect
}

// Canvas is the drawing surface of one diagram generation run. Elements
// are painted in the order they were added.
type Canvas struct {
	Width      float64
	Height     float64
	Background color.NRGBA

	elements []Element
	closed   bool
}

// New allocates an empty canvas with a white background.
func New(width, height float64) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas extents must be positive, got %gx%g", width, height)
	}
	return &Canvas{
		Width:      width,
		Height:     height,
		Background: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}, nil
}

// Bounds returns the full extent of the canvas.
func (c *Canvas) Bounds() Rect {
	return Rect{W: c.Width, H: c.Height}
}

// AddShape adds a copy of s.
func (c *Canvas) AddShape(s Shape) error {
	if s.Rect.W <= 0 || s.Rect.H <= 0 {
		return fmt.Errorf("shape %q: size must be positive", s.Name)
	}
	if s.Title != "" && s.TitleFont.Size <= 0 {
		return fmt.Errorf("shape %q: title font size must be positive", s.Name)
	}
	return c.add(&s)
}

// AddLabel adds a copy of l.
func (c *Canvas) AddLabel(l Label) error {
	if l.Font.Size <= 0 {
		return fmt.Errorf("label %q: font size must be positive", l.Name)
	}
	return c.add(&l)
}

// AddConnector adds a copy of cn.
func (c *Canvas) AddConnector(cn Connector) error {
	if cn.From == cn.To {
		return fmt.Errorf("connector %q: endpoints coincide", cn.Name)
	}
	if cn.Caption != nil {
		caption := *cn.Caption
		cn.Caption = &caption
	}
	return c.add(&cn)
}

// AddLegend adds a copy of l.
func (c *Canvas) AddLegend(l Legend) error {
	if len(l.Entries) == 0 {
		return errors.New("legend has no entries")
	}
	l.Entries = append([]LegendEntry(nil), l.Entries...)
	return c.add(&l)
}

func (c *Canvas) add(e Element) error {
	if c.closed {
		return ErrCanvasClosed
	}
	b := e.bounds()
	if b.Right() < 0 || b.X > c.Width || b.Top() < 0 || b.Y > c.Height {
		return fmt.Errorf("%s lies outside the %gx%g canvas", e.ElementName(), c.Width, c.Height)
	}
	c.elements = append(c.elements, e)
	return nil
}

// Elements returns the elements in paint order. The slice must not be
// modified.
func (c *Canvas) Elements() ([]Element, error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}
	return c.elements, nil
}

// Len returns the number of elements.
func (c *Canvas) Len() int { return len(c.elements) }

// Close releases the elements. Calling Close more than once is a no-op.
func (c *Canvas) Close() error {
	c.elements = nil
	c.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (c *Canvas) Closed() bool { return c.closed }
