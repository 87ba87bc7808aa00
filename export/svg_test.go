package export

import (
	"strings"
	"testing"

	"layed/core"
	"layed/render"
)

func TestSVGExport(t *testing.T) {
	commands := []render.Command{
		{Op: render.OpRect, Rect: core.Rect{X: 10, Y: 20, W: 30, H: 40},
			Fill: core.Color{R: 200, G: 90, B: 90, A: 255}, Stroke: core.Color{R: 0, G: 0, B: 0, A: 255}},
		{Op: render.OpLine, From: core.Point{X: 0, Y: 0}, To: core.Point{X: 100, Y: 0},
			Stroke: core.Color{R: 220, G: 220, B: 220, A: 255}},
		{Op: render.OpEllipse, Rect: core.Rect{X: 0, Y: 0, W: 60, H: 60},
			Fill: core.Color{R: 80, G: 200, B: 120, A: 50}},
		{Op: render.OpText, At: core.Point{X: 5, Y: 5}, Text: "a<b", Fill: core.Color{A: 255}},
	}

	out, err := NewSVGExporter().Export(commands, 200, 100)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg" width="200" height="100"`,
		`<rect x="10" y="20" width="30" height="40" fill="rgb(200,90,90)"`,
		`<line x1="0" y1="0" x2="100" y2="0"`,
		`<ellipse cx="30" cy="30" rx="30" ry="30"`,
		`a&lt;b`,
		`</svg>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\ngot:\n%s", want, out)
		}
	}
}

func TestSVGTranslucentFill(t *testing.T) {
	commands := []render.Command{
		{Op: render.OpRect, Rect: core.Rect{W: 10, H: 10}, Fill: core.Color{R: 20, G: 120, B: 255, A: 40}},
	}
	out, err := NewSVGExporter().Export(commands, 10, 10)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(out, "rgba(20,120,255,0.157)") {
		t.Errorf("expected rgba fill for translucent color, got:\n%s", out)
	}
	if !strings.Contains(out, `stroke="none"`) {
		t.Errorf("expected no stroke for zero-alpha stroke, got:\n%s", out)
	}
}

func TestExporterRegistry(t *testing.T) {
	if _, err := NewExporter(FormatSVG); err != nil {
		t.Errorf("svg exporter should exist: %v", err)
	}
	if _, err := NewExporter(FormatJSON); err != nil {
		t.Errorf("json exporter should exist: %v", err)
	}
	if _, err := NewExporter("png"); err == nil {
		t.Error("unknown format must error")
	}

	format, err := ParseFormat("svg")
	if err != nil || format != FormatSVG {
		t.Errorf("expected svg format, got %v, %v", format, err)
	}
	if _, err := ParseFormat("bmp"); err == nil {
		t.Error("unknown format string must error")
	}
}
