// Package topology describes the Sentinel architecture diagram. The layout
// lives in an embedded HCL document and is decoded into a scene.Canvas.
package topology

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/ankek/sentinel-diagram/internal/scene"
)

//go:embed sentinel.hcl
var sentinelHCL []byte

const (
	// Filename names the embedded document in diagnostics.
	Filename = "sentinel.hcl"

	// TimestampFormat is the layout of the generated_at variable.
	TimestampFormat = "2006-01-02 15:04:05"
)

var rootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "canvas"},
		{Type: "palette"},
		{Type: "shape", LabelNames: []string{"name"}},
		{Type: "label", LabelNames: []string{"name"}},
		{Type: "connector", LabelNames: []string{"name"}},
		{Type: "legend"},
	},
}

// Loader decodes a layout document into a canvas.
type Loader struct {
	Source   []byte
	Filename string
}

// NewLoader returns a loader for the embedded Sentinel layout.
func NewLoader() *Loader {
	return &Loader{Source: sentinelHCL, Filename: Filename}
}

// Load decodes the embedded Sentinel layout.
func Load(generatedAt time.Time) (*scene.Canvas, error) {
	return NewLoader().Load(generatedAt)
}

// Load parses the document and adds its elements to a new canvas in
// source order. generatedAt is exposed to the document as generated_at.
func (l *Loader) Load(generatedAt time.Time) (*scene.Canvas, error) {
	file, diags := hclparse.NewParser().ParseHCL(l.Source, l.Filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("HCL parse errors: %s", diags.Error())
	}

	content, diags := file.Body.Content(rootSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse body: %s", diags.Error())
	}

	blocks := content.Blocks.ByType()
	if n := len(blocks["canvas"]); n != 1 {
		return nil, fmt.Errorf("%s: want exactly one canvas block, got %d", l.Filename, n)
	}
	if n := len(blocks["palette"]); n > 1 {
		return nil, fmt.Errorf("%s: want at most one palette block, got %d", l.Filename, n)
	}

	palette := cty.EmptyObjectVal
	if len(blocks["palette"]) == 1 {
		var err error
		if palette, err = decodePalette(blocks["palette"][0].Body); err != nil {
			return nil, err
		}
	}
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"palette":      palette,
			"generated_at": cty.StringVal(generatedAt.Format(TimestampFormat)),
		},
	}

	var cb canvasBlock
	if diags := gohcl.DecodeBody(blocks["canvas"][0].Body, evalCtx, &cb); diags.HasErrors() {
		return nil, fmt.Errorf("canvas: %s", diags.Error())
	}
	canvas, err := scene.New(cb.Width, cb.Height)
	if err != nil {
		return nil, err
	}

	for _, block := range content.Blocks {
		if err := addBlock(canvas, block, evalCtx); err != nil {
			canvas.Close()
			return nil, err
		}
	}
	return canvas, nil
}

func addBlock(canvas *scene.Canvas, block *hcl.Block, evalCtx *hcl.EvalContext) error {
	switch block.Type {
	case "shape":
		name := block.Labels[0]
		var b shapeBlock
		if err := decode(block, evalCtx, &b); err != nil {
			return err
		}
		s, err := b.shape(name)
		if err != nil {
			return fmt.Errorf("shape %q: %w", name, err)
		}
		return canvas.AddShape(s)

	case "label":
		name := block.Labels[0]
		var b labelBlock
		if err := decode(block, evalCtx, &b); err != nil {
			return err
		}
		lbl, err := b.label(name)
		if err != nil {
			return fmt.Errorf("label %q: %w", name, err)
		}
		return canvas.AddLabel(lbl)

	case "connector":
		name := block.Labels[0]
		var b connectorBlock
		if err := decode(block, evalCtx, &b); err != nil {
			return err
		}
		c, err := b.connector(name)
		if err != nil {
			return fmt.Errorf("connector %q: %w", name, err)
		}
		return canvas.AddConnector(c)

	case "legend":
		var b legendBlock
		if err := decode(block, evalCtx, &b); err != nil {
			return err
		}
		lg, err := b.legend()
		if err != nil {
			return fmt.Errorf("legend: %w", err)
		}
		return canvas.AddLegend(lg)
	}
	return nil
}

func decode(block *hcl.Block, evalCtx *hcl.EvalContext, target any) error {
	if diags := gohcl.DecodeBody(block.Body, evalCtx, target); diags.HasErrors() {
		return fmt.Errorf("failed to decode %s: %s", block.Type, diags.Error())
	}
	return nil
}

// decodePalette evaluates the palette attributes into an object of color
// strings. Every value must be a valid hex color.
func decodePalette(body hcl.Body) (cty.Value, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("failed to parse palette: %s", diags.Error())
	}

	colors := make(map[string]cty.Value, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return cty.NilVal, fmt.Errorf("palette.%s: %s", name, diags.Error())
		}
		if val.IsNull() || !val.Type().Equals(cty.String) {
			return cty.NilVal, fmt.Errorf("palette.%s: must be a color string", name)
		}
		if _, err := scene.ParseHexColor(val.AsString()); err != nil {
			return cty.NilVal, fmt.Errorf("palette.%s: %w", name, err)
		}
		colors[name] = val
	}
	if len(colors) == 0 {
		return cty.EmptyObjectVal, nil
	}
	return cty.ObjectVal(colors), nil
}
