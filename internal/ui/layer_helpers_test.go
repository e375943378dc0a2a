package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNewCenteredLayer(t *testing.T) {
	content := "OVER\nOK"
	canvas := newCenteredLayer(content, 20, 10, 1, 1).Render()
	if canvas == nil {
		t.Fatal("expected canvas from layer")
	}
	if !strings.Contains(stripANSI(canvas.Render()), "OVER") {
		t.Fatal("expected overlay content in canvas")
	}
	w, h := canvas.Size()
	if w != lipgloss.Width("OVER") || h != 2 {
		t.Fatalf("expected 4x2 canvas, got %dx%d", w, h)
	}
	x, y := canvas.Offset()
	if x != 8 || y != 4 {
		t.Fatalf("expected offset (8,4), got (%d,%d)", x, y)
	}
}

func TestNewCenteredLayerSkipsBlankContent(t *testing.T) {
	if canvas := newCenteredLayer("  \n ", 20, 10, 0, 0).Render(); canvas != nil {
		t.Fatal("expected nil canvas for blank content")
	}
}

func TestCenteredOffsets(t *testing.T) {
	tests := []struct {
		name                   string
		cw, ch, w, h, top, bot int
		wantX, wantY           int
	}{
		{"Centered", 20, 10, 4, 2, 0, 0, 8, 4},
		{"Margins", 20, 10, 4, 2, 1, 1, 8, 4},
		{"TopHeavyMargin", 20, 10, 4, 2, 6, 0, 8, 7},
		{"TooWide", 10, 10, 30, 2, 0, 0, 0, 4},
		{"TooTall", 10, 5, 4, 9, 0, 0, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := centeredOffsets(tt.cw, tt.ch, tt.w, tt.h, tt.top, tt.bot)
			if x != tt.wantX || y != tt.wantY {
				t.Fatalf("centeredOffsets() = (%d,%d), want (%d,%d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestComposeOverKeepsBaseWithoutLayers(t *testing.T) {
	frame := stripANSI(ComposeOver("host", 10, 2))
	if !strings.HasPrefix(frame, "host") {
		t.Fatalf("expected base frame, got %q", frame)
	}
	if got := ComposeOver("raw", 0, 0); got != "raw" {
		t.Fatalf("expected passthrough for unknown size, got %q", got)
	}
}

func TestBlockDimensions(t *testing.T) {
	w, h := blockDimensions("abc\r\nde\nfghij")
	if w != 5 || h != 3 {
		t.Fatalf("blockDimensions() = %dx%d, want 5x3", w, h)
	}
}
