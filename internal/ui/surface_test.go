package ui

import (
	"strings"
	"testing"

	"ideupdater/internal/ui/theme"
)

func TestNewDialogSurfaceInitializesStyles(t *testing.T) {
	surface := NewDialogSurface(10, 3)
	if surface.Canvas == nil {
		t.Fatal("expected canvas to be initialized")
	}
	if surface.Styles.Text.GetBackground() != theme.Current().BackgroundSecondary() {
		t.Fatal("expected dialog text style to carry the dialog background")
	}
	if surface.Styles.Accent.GetForeground() != theme.Current().Accent() {
		t.Fatal("expected accent foreground from the theme")
	}
}

func TestSurfaceDrawWritesContent(t *testing.T) {
	surface := NewHostSurface(8, 4)
	surface.Draw(0, 1, surface.Styles.Accent.Render("HI"))

	lines := strings.Split(stripANSI(surface.Render()), "\n")
	if len(lines) < 2 || !strings.Contains(lines[1], "HI") {
		t.Fatalf("expected drawn content on second line, got %q", lines)
	}
}
