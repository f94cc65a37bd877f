// Package interfaces defines interfaces for dependency injection and testing
package interfaces

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ankek/sentinel-diagram/internal/renderer"
	"github.com/ankek/sentinel-diagram/internal/scene"
)

// SceneLoader defines the interface for building the diagram canvas
type SceneLoader interface {
	// Load builds a new canvas. generatedAt is shown in the diagram footer.
	Load(generatedAt time.Time) (*scene.Canvas, error)
}

// DiagramRenderer defines the interface for rendering diagrams
type DiagramRenderer interface {
	// RenderDiagram renders the canvas and saves it to the output path
	RenderDiagram(ctx context.Context, c *scene.Canvas, outputPath string, opts renderer.RenderOptions) error
}

// PathValidator defines the interface for validating file paths
type PathValidator interface {
	// EnsureOutputDir creates the output directory if needed
	EnsureOutputDir(dir string) error

	// ValidateOutputPath validates an output path for security and accessibility
	ValidateOutputPath(path string) error
}

// DiagramGenerator defines the interface for generating diagrams
type DiagramGenerator interface {
	// Generate renders the diagram once per configured format
	Generate(ctx context.Context, cfg DiagramConfig) (*GenerateResult, error)
}

// DiagramConfig contains all configuration needed to generate a diagram.
// Zero fields fall back to the generator defaults.
type DiagramConfig struct {
	OutputDir string
	BaseName  string
	Formats   []string
	DPI       float64
	Title     string
	Now       func() time.Time
	Logger    *log.Logger
}

// GenerateResult contains the results of diagram generation
type GenerateResult struct {
	ElementCount int
	OutputPaths  []string // in the order of DiagramConfig.Formats
	GeneratedAt  time.Time
}

// Path returns the output path written for format, or "" if none was.
func (r *GenerateResult) Path(format string) string {
	for _, p := range r.OutputPaths {
		if strings.EqualFold(strings.TrimPrefix(filepath.Ext(p), "."), format) {
			return p
		}
	}
	return ""
}
