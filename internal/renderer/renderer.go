// Package renderer turns a scene canvas into image files. It supports PNG
// (raster, with DPI metadata), PDF and SVG output. All formats share one
// paint walk over the canvas so they draw the same elements in the same
// order.
package renderer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ankek/sentinel-diagram/internal/scene"
)

// Supported output formats.
const (
	FormatPNG = "png"
	FormatPDF = "pdf"
	FormatSVG = "svg"
)

// DefaultDPI is the raster resolution used when RenderOptions.DPI is unset.
const DefaultDPI = 300.0

// RenderOptions contains configuration for rendering
type RenderOptions struct {
	Format    string    // "png", "pdf" or "svg"
	DPI       float64   // raster resolution, PNG only
	Title     string    // document title metadata
	CreatedAt time.Time // PDF creation and modification date
}

// ParseFormat normalizes a format name and reports whether it is supported.
func ParseFormat(s string) (string, error) {
	format := strings.ToLower(strings.TrimPrefix(s, "."))
	switch format {
	case FormatPNG, FormatPDF, FormatSVG:
		return format, nil
	}
	return "", fmt.Errorf("unsupported format: %s (want png, pdf or svg)", s)
}

// RenderDiagram renders the canvas and saves it to outputPath.
// It respects the provided context for cancellation.
func RenderDiagram(ctx context.Context, c *scene.Canvas, outputPath string, opts RenderOptions) error {
	return ExportDiagram(ctx, c, outputPath, opts)
}

// FileRenderer writes diagrams to disk. The zero value is ready to use.
type FileRenderer struct{}

// RenderDiagram implements interfaces.DiagramRenderer.
func (FileRenderer) RenderDiagram(ctx context.Context, c *scene.Canvas, outputPath string, opts RenderOptions) error {
	return RenderDiagram(ctx, c, outputPath, opts)
}
