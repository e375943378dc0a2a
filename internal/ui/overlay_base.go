package ui

import (
	"strings"

	"ideupdater/internal/ui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Overlay width semantics:
//
//	Style.Width(n)  sets the block width including padding
//	Padding(v, h)   sits inside that width
//	Border          adds 2 columns outside of it
//
// A box built with Width(64), Padding(1, 2) and a rounded border occupies
// 66 columns on screen and leaves 60 columns for content.
const (
	// OverlayWidthMin keeps buttons on one row.
	OverlayWidthMin = 44
	// OverlayWidthMax caps the dialog on very wide terminals.
	OverlayWidthMax = 100

	overlayHPadding = 2
	overlayBorder   = 2
)

// OverlayContentWidth returns the usable width inside an overlay's padding.
func OverlayContentWidth(boxWidth int) int {
	inner := boxWidth - (overlayHPadding * 2)
	if inner < 1 {
		return 1
	}
	return inner
}

// FitOverlayWidth clamps a configured box width to the terminal. A zero
// terminal width means the size is not known yet.
func FitOverlayWidth(configured, termWidth int) int {
	width := configured
	if termWidth > 0 && width > termWidth-overlayBorder {
		width = termWidth - overlayBorder
	}
	if width < OverlayWidthMin {
		width = OverlayWidthMin
	}
	if width > OverlayWidthMax {
		width = OverlayWidthMax
	}
	return width
}

// OverlayBuilder accumulates the header, body and footer lines of an overlay
// and wraps them in the shared overlay style.
type OverlayBuilder struct {
	boxWidth     int
	contentWidth int
	lines        []string
}

// NewOverlayBuilder creates a builder for a box of the given lipgloss width.
func NewOverlayBuilder(boxWidth int) *OverlayBuilder {
	return &OverlayBuilder{
		boxWidth:     boxWidth,
		contentWidth: OverlayContentWidth(boxWidth),
		lines:        make([]string, 0, 16),
	}
}

// BoxWidth returns the lipgloss Width value for styling containers.
func (b *OverlayBuilder) BoxWidth() int {
	return b.boxWidth
}

// ContentWidth returns the usable width for text content.
func (b *OverlayBuilder) ContentWidth() int {
	return b.contentWidth
}

// Header adds a styled title and divider.
func (b *OverlayBuilder) Header(title string) *OverlayBuilder {
	b.lines = append(b.lines, styleOverlayTitle().Render(title))
	b.lines = append(b.lines, b.Divider())
	return b
}

// Divider returns a styled horizontal divider line.
func (b *OverlayBuilder) Divider() string {
	return styleOverlayDivider().Render(strings.Repeat("─", b.contentWidth))
}

// Line adds a content line.
func (b *OverlayBuilder) Line(content string) *OverlayBuilder {
	b.lines = append(b.lines, content)
	return b
}

// Lines adds multiple content lines.
func (b *OverlayBuilder) Lines(content ...string) *OverlayBuilder {
	b.lines = append(b.lines, content...)
	return b
}

// Paragraph wraps text to the content width.
func (b *OverlayBuilder) Paragraph(style lipgloss.Style, text string) *OverlayBuilder {
	b.lines = append(b.lines, style.Width(b.contentWidth).Render(text))
	return b
}

// BlankLine adds an empty line for spacing.
func (b *OverlayBuilder) BlankLine() *OverlayBuilder {
	return b.Line("")
}

// Footer adds a divider and the key hints.
func (b *OverlayBuilder) Footer(hints []footerHint) *OverlayBuilder {
	b.lines = append(b.lines, b.Divider())
	b.lines = append(b.lines, overlayFooterLine(hints, b.contentWidth))
	return b
}

// FooterText adds a centered line under the footer, used for transient
// status messages.
func (b *OverlayBuilder) FooterText(text string) *OverlayBuilder {
	centered := styleStatus().
		Width(b.contentWidth).
		Align(lipgloss.Center).
		Render(truncateLabel(text, b.contentWidth))
	b.lines = append(b.lines, centered)
	return b
}

// Build returns the final styled overlay content.
func (b *OverlayBuilder) Build() string {
	content := strings.Join(b.lines, "\n")
	return styleOverlay().Width(b.boxWidth).Render(content)
}

// BuildDanger wraps the content with an error-colored border.
func (b *OverlayBuilder) BuildDanger() string {
	content := strings.Join(b.lines, "\n")
	return styleOverlayDanger().Width(b.boxWidth).Render(content)
}

func styleOverlay() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(theme.Current().BackgroundSecondary()).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().BorderFocused()).
		BorderBackground(theme.Current().Background()).
		Padding(1, overlayHPadding)
}

func styleOverlayDanger() lipgloss.Style {
	return styleOverlay().
		BorderForeground(theme.Current().Error())
}

func styleOverlayTitle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Accent()).
		Background(theme.Current().BackgroundSecondary()).
		Bold(true)
}

func styleOverlayDivider() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().BorderDim()).
		Background(theme.Current().BackgroundSecondary())
}
