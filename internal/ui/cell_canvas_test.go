package ui

import (
	"strings"
	"testing"
)

func TestCanvasNormalizesNewlines(t *testing.T) {
	canvas := NewCanvas(8, 4)
	canvas.DrawStringAt(0, 0, "A\r\nB")

	lines := strings.Split(canvas.Render(), "\n")
	if len(lines) < 2 {
		t.Fatalf("expected at least 2 lines, got %d", len(lines))
	}
	if got := strings.TrimSpace(stripANSI(lines[0])); got != "A" {
		t.Fatalf("line 0 mismatch, expected A got %q", got)
	}
	if got := strings.TrimSpace(stripANSI(lines[1])); got != "B" {
		t.Fatalf("line 1 mismatch, expected B got %q", got)
	}
}

func TestCanvasDrawStringAtKeepsColumn(t *testing.T) {
	canvas := NewCanvas(12, 3)
	canvas.DrawStringAt(4, 1, "AB\nCD")

	lines := strings.Split(stripANSI(canvas.Render()), "\n")
	if idx := strings.Index(lines[1], "AB"); idx != 4 {
		t.Fatalf("expected AB at column 4, got %d", idx)
	}
	if idx := strings.Index(lines[2], "CD"); idx != 4 {
		t.Fatalf("expected CD at column 4, got %d", idx)
	}
}

func TestCanvasComposeDrawsLayersAtOffset(t *testing.T) {
	base := NewCanvas(20, 6)
	base.DrawStringAt(0, 0, strings.Repeat("-", 20))

	top := LayerFunc(func() *Canvas {
		c := NewCanvas(2, 1)
		c.DrawStringAt(0, 0, "XY")
		c.SetOffset(5, 2)
		return c
	})
	empty := LayerFunc(func() *Canvas { return nil })
	base.Compose(nil, empty, top)

	lines := strings.Split(stripANSI(base.Render()), "\n")
	if !strings.HasPrefix(lines[0], "-----") {
		t.Fatalf("expected base row to survive, got %q", lines[0])
	}
	if idx := strings.Index(lines[2], "XY"); idx != 5 {
		t.Fatalf("expected layer at column 5, got %d in %q", idx, lines[2])
	}
}

func TestCanvasClampsDimensions(t *testing.T) {
	c := NewCanvas(0, -3)
	w, h := c.Size()
	if w != 1 || h != 1 {
		t.Fatalf("expected 1x1 canvas, got %dx%d", w, h)
	}
	var nilCanvas *Canvas
	nilCanvas.DrawStringAt(0, 0, "x")
	if nilCanvas.Render() != "" {
		t.Fatal("nil canvas should render empty")
	}
}
