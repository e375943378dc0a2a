package ui

import (
	"ideupdater/internal/ui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Dialog styles are functions so a theme switch takes effect on the next
// render without rebuilding the dialog.

func styleBody() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Text()).
		Background(theme.Current().BackgroundSecondary())
}

func styleMuted() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().TextMuted()).
		Background(theme.Current().BackgroundSecondary())
}

func styleVersion() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Accent()).
		Background(theme.Current().BackgroundSecondary()).
		Bold(true)
}

func styleTitle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Accent()).
		Background(theme.Current().BackgroundSecondary()).
		Bold(true)
}

// styleButton renders a button label. Primary buttons take the primary
// color and the focused button is inverted.
func styleButton(primary, focused bool) lipgloss.Style {
	fg := theme.Current().Text()
	border := theme.Current().BorderNormal()
	if primary {
		fg = theme.Current().Primary()
		border = theme.Current().Primary()
	}
	s := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(fg).
		Background(theme.Current().BackgroundDarker()).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		BorderBackground(theme.Current().BackgroundSecondary())
	if focused {
		s = s.
			Foreground(theme.Current().BackgroundSecondary()).
			Background(theme.Current().BorderFocused()).
			BorderForeground(theme.Current().BorderFocused()).
			Bold(true)
	}
	return s
}

func styleLink(focused bool) lipgloss.Style {
	s := lipgloss.NewStyle().
		Foreground(theme.Current().Secondary()).
		Background(theme.Current().BackgroundSecondary()).
		Underline(true)
	if focused {
		s = s.
			Foreground(theme.Current().BackgroundSecondary()).
			Background(theme.Current().Secondary()).
			Underline(false).
			Bold(true)
	}
	return s
}

func styleErrorBanner(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Foreground(theme.Current().Error()).
		Background(theme.Current().BackgroundSecondary()).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(theme.Current().Error()).
		BorderBackground(theme.Current().BackgroundSecondary())
}

func styleNotesFrame(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.NormalBorder(), true, false).
		BorderForeground(theme.Current().BorderDim()).
		BorderBackground(theme.Current().BackgroundSecondary())
}

func styleStatus() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Warning()).
		Background(theme.Current().BackgroundSecondary()).
		Italic(true)
}

func styleKeyPill() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(theme.Current().Primary()).
		Foreground(theme.Current().BackgroundSecondary()).
		Bold(true)
}

func styleKeyDesc() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().TextMuted()).
		Background(theme.Current().BackgroundSecondary())
}
