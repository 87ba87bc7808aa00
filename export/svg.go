package export

import (
	"fmt"
	"strings"

	"layed/core"
	"layed/render"
)

// SVGExporter renders draw commands as an SVG document.
type SVGExporter struct{}

// NewSVGExporter creates a new SVG exporter.
func NewSVGExporter() *SVGExporter {
	return &SVGExporter{}
}

// Export converts the command sequence to SVG markup.
func (e *SVGExporter) Export(commands []render.Command, width, height float64) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n",
		width, height, width, height)
	for _, c := range commands {
		switch c.Op {
		case render.OpRect:
			fmt.Fprintf(&b, `  <rect x="%g" y="%g" width="%g" height="%g" fill="%s" stroke="%s" stroke-width="%g"/>`+"\n",
				c.Rect.X, c.Rect.Y, c.Rect.W, c.Rect.H, svgColor(c.Fill), svgColor(c.Stroke), strokeWidth(c))
		case render.OpLine:
			fmt.Fprintf(&b, `  <line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="%g"/>`+"\n",
				c.From.X, c.From.Y, c.To.X, c.To.Y, svgColor(c.Stroke), strokeWidth(c))
		case render.OpEllipse:
			fmt.Fprintf(&b, `  <ellipse cx="%g" cy="%g" rx="%g" ry="%g" fill="%s" stroke="%s"/>`+"\n",
				c.Rect.X+c.Rect.W/2, c.Rect.Y+c.Rect.H/2, c.Rect.W/2, c.Rect.H/2, svgColor(c.Fill), svgColor(c.Stroke))
		case render.OpText:
			fmt.Fprintf(&b, `  <text x="%g" y="%g" font-size="12" fill="%s">%s</text>`+"\n",
				c.At.X, c.At.Y+12, svgColor(c.Fill), escapeText(c.Text))
		case render.OpImage:
			// Icons are references into the frontend's icon set; SVG output
			// keeps them as titles on a placeholder so the file stays
			// self-contained.
			fmt.Fprintf(&b, `  <rect x="%g" y="%g" width="%g" height="%g" fill="none"><title>%s</title></rect>`+"\n",
				c.Rect.X, c.Rect.Y, c.Rect.W, c.Rect.H, escapeText(c.Image))
		}
	}
	b.WriteString("</svg>\n")
	return b.String(), nil
}

// FileExtension returns the file extension for SVG.
func (e *SVGExporter) FileExtension() string {
	return ".svg"
}

func svgColor(c core.Color) string {
	if c.A == 0 {
		return "none"
	}
	if c.A == 255 {
		return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", c.R, c.G, c.B, float64(c.A)/255)
}

func strokeWidth(c render.Command) float64 {
	if c.StrokeWidth <= 0 {
		return 1
	}
	return c.StrokeWidth
}

func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
