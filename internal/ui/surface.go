package ui

import (
	"github.com/charmbracelet/lipgloss"

	"ideupdater/internal/ui/theme"
)

// Surface pairs a Canvas with styles whose background matches the canvas
// fill, so text drawn on it never punches holes in the background.
type Surface struct {
	Canvas *Canvas
	Styles SurfaceStyles
}

// SurfaceStyles are the handful of styles drawn directly onto a surface.
type SurfaceStyles struct {
	Text      lipgloss.Style
	TextMuted lipgloss.Style
	Accent    lipgloss.Style
}

// NewHostSurface returns a Surface using the host screen background.
func NewHostSurface(width, height int) Surface {
	return newSurface(width, height, theme.Current().Background())
}

// NewDialogSurface returns a Surface using the dialog background.
func NewDialogSurface(width, height int) Surface {
	return newSurface(width, height, theme.Current().BackgroundSecondary())
}

func newSurface(width, height int, bg lipgloss.TerminalColor) Surface {
	canvas := NewCanvas(width, height)
	canvas.Fill(bg)
	return Surface{
		Canvas: canvas,
		Styles: SurfaceStyles{
			Text:      lipgloss.NewStyle().Background(bg).Foreground(theme.Current().Text()),
			TextMuted: lipgloss.NewStyle().Background(bg).Foreground(theme.Current().TextMuted()),
			Accent:    lipgloss.NewStyle().Background(bg).Foreground(theme.Current().Accent()).Bold(true),
		},
	}
}

// Draw writes the provided block starting at x,y.
func (s Surface) Draw(x, y int, block string) {
	if s.Canvas == nil {
		return
	}
	s.Canvas.DrawStringAt(x, y, block)
}

// Render flushes the surface to a string (ANSI frame).
func (s Surface) Render() string {
	if s.Canvas == nil {
		return ""
	}
	return s.Canvas.Render()
}
