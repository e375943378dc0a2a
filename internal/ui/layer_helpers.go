package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Layer is a block that renders itself into an offset canvas for composition
// over a host frame.
type Layer interface {
	Render() *Canvas
}

// LayerFunc is an adapter to allow ordinary functions to act as layers.
type LayerFunc func() *Canvas

// Render implements Layer for LayerFunc.
func (f LayerFunc) Render() *Canvas {
	return f()
}

// newCenteredLayer returns a layer that draws content on the dialog surface,
// centered in a width x height container with the given vertical margins.
func newCenteredLayer(content string, width, height, topMargin, bottomMargin int) Layer {
	return LayerFunc(func() *Canvas {
		if strings.TrimSpace(content) == "" {
			return nil
		}
		blockWidth, blockHeight := blockDimensions(content)
		surface := NewDialogSurface(blockWidth, blockHeight)
		surface.Draw(0, 0, content)

		x, y := centeredOffsets(width, height, blockWidth, blockHeight, topMargin, bottomMargin)
		surface.Canvas.SetOffset(x, y)
		return surface.Canvas
	})
}

// ComposeOver draws layers on top of a host frame sized width x height and
// returns the resulting frame.
func ComposeOver(base string, width, height int, layers ...Layer) string {
	if width <= 0 || height <= 0 {
		return base
	}
	surface := NewHostSurface(width, height)
	surface.Draw(0, 0, base)
	surface.Canvas.Compose(layers...)
	return surface.Render()
}

func blockDimensions(content string) (int, int) {
	lines := splitBlockLines(content)
	width := maxLineWidth(lines)
	if width <= 0 {
		width = 1
	}
	height := lipgloss.Height(strings.ReplaceAll(content, "\r\n", "\n"))
	if height <= 0 {
		height = len(lines)
	}
	if height <= 0 {
		height = 1
	}
	return width, height
}

func maxLineWidth(lines []string) int {
	widest := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > widest {
			widest = w
		}
	}
	return widest
}

func centeredOffsets(containerWidth, containerHeight, contentWidth, contentHeight, topMargin, bottomMargin int) (int, int) {
	if topMargin < 0 {
		topMargin = 0
	}
	if bottomMargin < 0 {
		bottomMargin = 0
	}

	usableHeight := containerHeight - topMargin - bottomMargin
	if usableHeight < contentHeight {
		usableHeight = contentHeight
	}

	y := topMargin
	if usableHeight > contentHeight {
		y = topMargin + (usableHeight-contentHeight)/2
	}
	maxY := containerHeight - bottomMargin - contentHeight
	if y > maxY {
		y = maxY
	}
	if y < topMargin {
		y = topMargin
	}
	if y < 0 {
		y = 0
	}

	x := (containerWidth - contentWidth) / 2
	if x < 0 {
		x = 0
	}

	return x, y
}
