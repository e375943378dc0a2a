package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// footerHint is a short key hint shown under the dialog buttons.
type footerHint struct {
	key  string // Short symbol: "⇥", "⏎", "↑↓"
	desc string // Short description: "Focus", "Select"
}

// keyPill renders a key hint as a pill followed by its description.
func keyPill(key, desc string) string {
	return styleKeyPill().Render(" "+key+" ") + styleKeyDesc().Render(" "+desc)
}

// overlayFooterLine renders hints centered in width, dropping hints from the
// end until the line fits.
func overlayFooterLine(hints []footerHint, width int) string {
	hints = trimHintsToFit(hints, width)
	if len(hints) == 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Background(styleKeyDesc().GetBackground()).
		Render(joinHints(hints))
}

func trimHintsToFit(hints []footerHint, availableWidth int) []footerHint {
	for len(hints) > 0 && renderHintsWidth(hints) > availableWidth {
		hints = hints[:len(hints)-1]
	}
	return hints
}

func renderHintsWidth(hints []footerHint) int {
	return lipgloss.Width(joinHints(hints))
}

func joinHints(hints []footerHint) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, keyPill(h.key, h.desc))
	}
	return strings.Join(parts, styleKeyDesc().Render("  "))
}
