package renderer

import (
	"context"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankek/sentinel-diagram/internal/scene"
)

// recordingSurface logs the primitive calls made by paint.
type recordingSurface struct {
	calls []string
	texts []string
	pens  []pen
}

func (r *recordingSurface) TextWidth(text string, f scene.Font) float64 {
	return float64(len(text)) * f.Units() / 2
}

func (r *recordingSurface) rect(_ scene.Rect, _ float64, p pen) {
	r.calls = append(r.calls, "rect")
	r.pens = append(r.pens, p)
}

func (r *recordingSurface) polyline(_ []scene.Point, p pen) {
	r.calls = append(r.calls, "polyline")
	r.pens = append(r.pens, p)
}

func (r *recordingSurface) text(s string, _ scene.Point, _ scene.Font, _ color.NRGBA) {
	r.calls = append(r.calls, "text")
	r.texts = append(r.texts, s)
}

func TestPaintOrder(t *testing.T) {
	rec := &recordingSurface{}
	require.NoError(t, paint(context.Background(), testCanvas(t), rec))

	want := []string{
		"rect",         // background
		"rect", "text", // shape and title
		"polyline",     // connector line
		"polyline",     // forward head
		"polyline",     // backward head
		"rect", "text", // caption box and text
		"text", "text", // two line label
		"rect",         // legend frame
		"rect", "text", // legend row
	}
	assert.Equal(t, want, rec.calls)
	assert.Equal(t, []string{"VPC <main>", "Peering", "Features:", "• Private Subnets Only", "Gateway VPC"}, rec.texts)

	// the connector line is dashed, its heads are not
	assert.True(t, rec.pens[2].Dashed)
	assert.False(t, rec.pens[3].Dashed)
	assert.False(t, rec.pens[4].Dashed)
}

func TestPaintSkipsEmptyLines(t *testing.T) {
	c, err := scene.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, c.AddLabel(scene.Label{Name: "gap", At: scene.Point{X: 1, Y: 1}, Text: "a\n\nb", Font: scene.Font{Size: 10}}))

	rec := &recordingSurface{}
	require.NoError(t, paint(context.Background(), c, rec))
	assert.Equal(t, []string{"a", "b"}, rec.texts)
}

func TestDarkenColor(t *testing.T) {
	got := darkenColor(color.NRGBA{R: 200, G: 100, B: 40, A: 128}, 50)
	assert.Equal(t, color.NRGBA{R: 100, G: 50, B: 20, A: 128}, got)
	assert.Equal(t, color.NRGBA{A: 255}, darkenColor(color.NRGBA{R: 1, G: 1, B: 1, A: 255}, 150))
	assert.Equal(t, "#0A0B0C", hexColor(color.NRGBA{R: 10, G: 11, B: 12}))
}
