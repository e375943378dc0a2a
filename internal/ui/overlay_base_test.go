package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestOverlayContentWidth(t *testing.T) {
	if got := OverlayContentWidth(64); got != 60 {
		t.Fatalf("OverlayContentWidth(64) = %d, want 60", got)
	}
	if got := OverlayContentWidth(2); got != 1 {
		t.Fatalf("OverlayContentWidth(2) = %d, want 1", got)
	}
}

func TestFitOverlayWidth(t *testing.T) {
	tests := []struct {
		configured, term, want int
	}{
		{64, 0, 64},
		{64, 200, 64},
		{64, 50, 48},
		{64, 20, OverlayWidthMin},
		{300, 0, OverlayWidthMax},
	}
	for _, tt := range tests {
		if got := FitOverlayWidth(tt.configured, tt.term); got != tt.want {
			t.Errorf("FitOverlayWidth(%d, %d) = %d, want %d", tt.configured, tt.term, got, tt.want)
		}
	}
}

func TestOverlayBuilderBuild(t *testing.T) {
	out := NewOverlayBuilder(48).
		Header("Title").
		Paragraph(styleBody(), "body text").
		Footer([]footerHint{{"⏎", "Select"}}).
		FooterText("status").
		Build()

	if got := lipgloss.Width(out); got != 48+overlayBorder {
		t.Fatalf("expected visual width %d, got %d", 48+overlayBorder, got)
	}
	plain := stripANSI(out)
	for _, want := range []string{"Title", "body text", "Select", "status"} {
		if !strings.Contains(plain, want) {
			t.Errorf("expected %q in overlay:\n%s", want, plain)
		}
	}
}

func TestOverlayBuilderDividerSpansContent(t *testing.T) {
	b := NewOverlayBuilder(30)
	if got := lipgloss.Width(b.Divider()); got != b.ContentWidth() {
		t.Fatalf("divider width %d, want %d", got, b.ContentWidth())
	}
	if lipgloss.Width(NewOverlayBuilder(30).BuildDanger()) != lipgloss.Width(NewOverlayBuilder(30).Build()) {
		t.Fatal("danger variant should keep the same width")
	}
}
