package renderer

import (
	"context"
	"fmt"

	"github.com/ankek/sentinel-diagram/internal/scene"
)

// ExportDiagram renders the canvas in opts.Format and writes it to outputPath.
func ExportDiagram(ctx context.Context, c *scene.Canvas, outputPath string, opts RenderOptions) error {
	// Check context before starting
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	data, err := Render(ctx, c, opts)
	if err != nil {
		return err
	}

	if err := writeFile(outputPath, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	return nil
}

// Render encodes the canvas in opts.Format and returns the file contents.
func Render(ctx context.Context, c *scene.Canvas, opts RenderOptions) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("nil canvas")
	}
	format, err := ParseFormat(opts.Format)
	if err != nil {
		return nil, err
	}

	var data []byte
	switch format {
	case FormatPNG:
		dpi := opts.DPI
		if dpi <= 0 {
			dpi = DefaultDPI
		}
		data, err = renderPNG(ctx, c, dpi)
	case FormatPDF:
		data, err = renderPDF(ctx, c, opts)
	case FormatSVG:
		data, err = renderSVG(ctx, c, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s: %w", format, err)
	}
	return data, nil
}
