// Package theme provides the semantic color system for the update dialog.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the semantic colors the dialog draws with.
// All methods return AdaptiveColor for automatic light/dark terminal support.
type Theme interface {
	// Base colors
	Primary() lipgloss.AdaptiveColor   // Focused borders, primary button
	Secondary() lipgloss.AdaptiveColor // Links, section labels
	Accent() lipgloss.AdaptiveColor    // Titles, version strings

	// Status colors
	Error() lipgloss.AdaptiveColor   // Error banner
	Warning() lipgloss.AdaptiveColor // Transient notices
	Success() lipgloss.AdaptiveColor // Close and Install, completed progress
	Info() lipgloss.AdaptiveColor    // Progress gradient end

	// Text colors
	Text() lipgloss.AdaptiveColor
	TextMuted() lipgloss.AdaptiveColor
	TextEmphasized() lipgloss.AdaptiveColor

	// Background colors
	Background() lipgloss.AdaptiveColor          // Host screen
	BackgroundSecondary() lipgloss.AdaptiveColor // Dialog surface
	BackgroundDarker() lipgloss.AdaptiveColor    // Unfocused buttons

	// Border colors
	BorderNormal() lipgloss.AdaptiveColor
	BorderFocused() lipgloss.AdaptiveColor
	BorderDim() lipgloss.AdaptiveColor
}

// Hex resolves an adaptive color to the hex string for the detected
// terminal background. Used where a library wants plain color strings.
func Hex(c lipgloss.AdaptiveColor) string {
	if lipgloss.HasDarkBackground() {
		return c.Dark
	}
	return c.Light
}
