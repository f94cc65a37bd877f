package renderer

import (
	"bytes"
	"context"
	"fmt"
	"image/color"

	"github.com/go-pdf/fpdf"

	"github.com/ankek/sentinel-diagram/internal/scene"
)

const (
	pdfFontFamily = "Helvetica"
	pdfCreator    = "sentinel-diagram"
)

// pdfSurface draws vector output on a single fpdf page measured in points.
type pdfSurface struct {
	pdf    *fpdf.Fpdf
	height float64 // canvas height in units
	tr     func(string) string
}

func newPDFSurface(c *scene.Canvas, opts RenderOptions) *pdfSurface {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size: fpdf.SizeType{
			Wd: c.Width * scene.PointsPerUnit,
			Ht: c.Height * scene.PointsPerUnit,
		},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCatalogSort(true)
	if !opts.CreatedAt.IsZero() {
		pdf.SetCreationDate(opts.CreatedAt)
		pdf.SetModificationDate(opts.CreatedAt)
	}
	if opts.Title != "" {
		pdf.SetTitle(opts.Title, true)
	}
	pdf.SetCreator(pdfCreator, true)
	pdf.AddPage()

	return &pdfSurface{
		pdf:    pdf,
		height: c.Height,
		// core fonts are cp1252; this maps bullets and dashes
		tr: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

// renderPDF draws the canvas as a one page PDF document.
func renderPDF(ctx context.Context, c *scene.Canvas, opts RenderOptions) ([]byte, error) {
	s := newPDFSurface(c, opts)
	if err := paint(ctx, c, s); err != nil {
		s.pdf.Close()
		return nil, err
	}

	buf := &bytes.Buffer{}
	if err := s.pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("failed to encode PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// xy maps a canvas point to page coordinates (points, y down).
func (s *pdfSurface) xy(p scene.Point) (float64, float64) {
	return p.X * scene.PointsPerUnit, (s.height - p.Y) * scene.PointsPerUnit
}

func (s *pdfSurface) setFont(f scene.Font) {
	style := ""
	if f.Bold {
		style += "B"
	}
	if f.Italic {
		style += "I"
	}
	s.pdf.SetFont(pdfFontFamily, style, f.Size)
}

func (s *pdfSurface) TextWidth(text string, f scene.Font) float64 {
	s.setFont(f)
	return s.pdf.GetStringWidth(s.tr(text)) / scene.PointsPerUnit
}

func (s *pdfSurface) rect(r scene.Rect, radius float64, p pen) {
	style := ""
	if p.fills() {
		style += "F"
		s.pdf.SetFillColor(int(p.Fill.R), int(p.Fill.G), int(p.Fill.B))
	}
	if p.strokes() {
		style += "D"
		s.setStroke(p)
	}
	if style == "" {
		return
	}
	if style == "FD" {
		style = "DF"
	}

	translucent := p.fills() && p.Fill.A < 255
	if translucent {
		s.pdf.SetAlpha(opacity(p.Fill), "Normal")
	}

	x, y := s.xy(scene.Point{X: r.X, Y: r.Top()})
	w, h := r.W*scene.PointsPerUnit, r.H*scene.PointsPerUnit
	if radius > 0 {
		s.pdf.RoundedRect(x, y, w, h, radius*scene.PointsPerUnit, "1234", style)
	} else {
		s.pdf.Rect(x, y, w, h, style)
	}

	if translucent {
		s.pdf.SetAlpha(1, "Normal")
	}
}

func (s *pdfSurface) polyline(pts []scene.Point, p pen) {
	if len(pts) < 2 || !p.strokes() {
		return
	}
	s.setStroke(p)
	for i, pt := range pts {
		x, y := s.xy(pt)
		if i == 0 {
			s.pdf.MoveTo(x, y)
		} else {
			s.pdf.LineTo(x, y)
		}
	}
	s.pdf.DrawPath("D")
}

func (s *pdfSurface) setStroke(p pen) {
	s.pdf.SetDrawColor(int(p.Stroke.R), int(p.Stroke.G), int(p.Stroke.B))
	s.pdf.SetLineWidth(p.Width)
	if p.Dashed {
		on, off := dashPattern(p.Width)
		s.pdf.SetDashPattern([]float64{on, off}, 0)
		s.pdf.SetLineCapStyle("butt")
	} else {
		s.pdf.SetDashPattern([]float64{}, 0)
		s.pdf.SetLineCapStyle("round")
	}
}

func (s *pdfSurface) text(text string, origin scene.Point, f scene.Font, col color.NRGBA) {
	s.setFont(f)
	s.pdf.SetTextColor(int(col.R), int(col.G), int(col.B))
	x, y := s.xy(origin)
	s.pdf.Text(x, y, s.tr(text))
}
