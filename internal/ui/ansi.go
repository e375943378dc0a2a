package ui

import (
	"fmt"
	"strings"

	"ideupdater/internal/ui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func stripANSI(s string) string {
	return ansi.Strip(s)
}

// truncateLabel shortens a possibly styled label to width cells.
func truncateLabel(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

// fillBackground rewrites ANSI resets inside rendered markdown so the dialog
// background survives between styled segments.
func fillBackground(s string) string {
	bgSeq := backgroundSequence(theme.Current().BackgroundSecondary())
	s = strings.ReplaceAll(s, "\x1b[0m", "\x1b[0m"+bgSeq)
	s = strings.ReplaceAll(s, "\x1b[49m", bgSeq)
	return s
}

func backgroundSequence(c lipgloss.AdaptiveColor) string {
	r, g, b, _ := lipgloss.Color(theme.Hex(c)).RGBA()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r>>8, g>>8, b>>8)
}
