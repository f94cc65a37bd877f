// Package generator produces the Sentinel architecture diagram files. It
// loads the diagram, makes sure the output directory exists and exports
// the canvas once per requested format.
package generator

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ankek/sentinel-diagram/internal/interfaces"
	"github.com/ankek/sentinel-diagram/internal/renderer"
	"github.com/ankek/sentinel-diagram/internal/scene"
	"github.com/ankek/sentinel-diagram/internal/topology"
	"github.com/ankek/sentinel-diagram/internal/validation"
)

// Defaults applied to zero DiagramConfig fields.
const (
	DefaultOutputDir = "docs"
	DefaultBaseName  = "sentinel_architecture"
	DefaultTitle     = "Sentinel - Secure Multi-VPC Architecture"
)

// Console messages.
const (
	MsgStart    = "Generating Sentinel architecture diagram..."
	MsgSavedPDF = "Architecture diagram saved"
	MsgSavedPNG = "Architecture diagram also saved as PNG"
	MsgSavedSVG = "Architecture diagram also saved as SVG"
	MsgDone     = "Architecture diagram generation completed"
)

// DefaultFormats returns the formats written when none are configured.
func DefaultFormats() []string {
	return []string{renderer.FormatPDF, renderer.FormatPNG}
}

// DiagramGenerator handles the core logic of generating diagrams.
type DiagramGenerator struct {
	Loader    interfaces.SceneLoader
	Renderer  interfaces.DiagramRenderer
	Validator interfaces.PathValidator
}

// New returns a generator for the embedded Sentinel layout that writes
// files to disk.
func New() *DiagramGenerator {
	return &DiagramGenerator{
		Loader:    topology.NewLoader(),
		Renderer:  renderer.FileRenderer{},
		Validator: validation.Validator{},
	}
}

// Generate writes docs/sentinel_architecture.pdf and
// docs/sentinel_architecture.png relative to the working directory.
func Generate(ctx context.Context) (pdfPath, pngPath string, err error) {
	res, err := New().Generate(ctx, interfaces.DiagramConfig{})
	if err != nil {
		return "", "", err
	}
	return res.Path(renderer.FormatPDF), res.Path(renderer.FormatPNG), nil
}

// Generate creates the diagram once per configured format.
//
// It performs the following steps:
//  1. Loads the diagram canvas, stamped with the generation time
//  2. Ensures the output directory exists
//  3. Validates each output path and exports the canvas to it
//
// The canvas is released before Generate returns, on success and on error.
func (g *DiagramGenerator) Generate(ctx context.Context, cfg interfaces.DiagramConfig) (*interfaces.GenerateResult, error) {
	cfg, err := withDefaults(cfg)
	if err != nil {
		return nil, err
	}
	logger := cfg.Logger

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	logger.Info(MsgStart)

	generatedAt := cfg.Now()
	canvas, err := g.Loader.Load(generatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to build diagram: %w", err)
	}
	defer canvas.Close()
	logger.Debug("Diagram built", "elements", canvas.Len(), "width", canvas.Width, "height", canvas.Height)

	if err := g.Validator.EnsureOutputDir(cfg.OutputDir); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOutputDir, err)
	}

	result := &interfaces.GenerateResult{
		ElementCount: canvas.Len(),
		GeneratedAt:  generatedAt,
	}
	for _, format := range cfg.Formats {
		path := filepath.Join(cfg.OutputDir, cfg.BaseName+"."+format)
		if err := g.export(ctx, canvas, path, format, cfg, generatedAt); err != nil {
			return nil, err
		}
		logger.Info(savedMessage(format), "path", path)
		result.OutputPaths = append(result.OutputPaths, path)
	}

	logger.Info(MsgDone)
	return result, nil
}

func (g *DiagramGenerator) export(ctx context.Context, c *scene.Canvas, path, format string, cfg interfaces.DiagramConfig, generatedAt time.Time) error {
	if err := g.Validator.ValidateOutputPath(path); err != nil {
		return fmt.Errorf("%w: invalid output path: %w", ErrExport, err)
	}

	start := time.Now()
	opts := renderer.RenderOptions{
		Format:    format,
		DPI:       cfg.DPI,
		Title:     cfg.Title,
		CreatedAt: generatedAt,
	}
	if err := g.Renderer.RenderDiagram(ctx, c, path, opts); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrExport, path, err)
	}
	cfg.Logger.Debug("Rendered", "format", format, "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

func savedMessage(format string) string {
	switch format {
	case renderer.FormatPDF:
		return MsgSavedPDF
	case renderer.FormatPNG:
		return MsgSavedPNG
	}
	return MsgSavedSVG
}

// withDefaults fills zero fields and normalizes the format list.
func withDefaults(cfg interfaces.DiagramConfig) (interfaces.DiagramConfig, error) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	if cfg.BaseName == "" {
		cfg.BaseName = DefaultBaseName
	}
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	if cfg.DPI <= 0 {
		cfg.DPI = renderer.DefaultDPI
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	formats := cfg.Formats
	if len(formats) == 0 {
		formats = DefaultFormats()
	}
	cfg.Formats = make([]string, 0, len(formats))
	for _, f := range formats {
		format, err := renderer.ParseFormat(f)
		if err != nil {
			return cfg, err
		}
		cfg.Formats = append(cfg.Formats, format)
	}
	return cfg, nil
}
