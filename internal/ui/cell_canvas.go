package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
)

// Canvas wraps a cellbuf.Screen so lipgloss-rendered blocks can be composed
// cell by cell before the frame is handed back to Bubble Tea as a string.
type Canvas struct {
	screen *cellbuf.Screen
	writer *cellbuf.ScreenWriter
	width  int
	height int

	// offset of this canvas when it is composed onto a larger one
	x, y int
}

// NewCanvas allocates a canvas of at least 1x1 cells.
func NewCanvas(width, height int) *Canvas {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	screen := cellbuf.NewScreen(io.Discard, width, height, &cellbuf.ScreenOptions{
		ShowCursor: false,
		AltScreen:  false,
	})
	return &Canvas{
		screen: screen,
		writer: cellbuf.NewScreenWriter(screen),
		width:  width,
		height: height,
	}
}

// Size returns the canvas dimensions in cells.
func (c *Canvas) Size() (int, int) {
	if c == nil {
		return 0, 0
	}
	return c.width, c.height
}

// SetOffset records where the canvas lands when composed onto a base frame.
func (c *Canvas) SetOffset(x, y int) {
	if c == nil {
		return
	}
	c.x, c.y = x, y
}

// Offset returns the composition offset.
func (c *Canvas) Offset() (int, int) {
	if c == nil {
		return 0, 0
	}
	return c.x, c.y
}

// Fill paints the entire canvas with the provided background color.
func (c *Canvas) Fill(bg lipgloss.TerminalColor) {
	if c == nil {
		return
	}
	fill := lipgloss.NewStyle().
		Background(bg).
		Width(c.width).
		Height(c.height).
		Render("")
	c.DrawStringAt(0, 0, fill)
}

// DrawStringAt writes the provided block starting at x,y. Newlines are
// normalized so each line begins at column x.
func (c *Canvas) DrawStringAt(x, y int, content string) {
	if content == "" || c == nil || c.writer == nil {
		return
	}
	c.drawBlockAt(x, y, splitBlockLines(content))
}

// Compose draws each layer's canvas at its offset. Nil layers and layers
// that render nothing are skipped.
func (c *Canvas) Compose(layers ...Layer) {
	if c == nil {
		return
	}
	for _, layer := range layers {
		if layer == nil {
			continue
		}
		top := layer.Render()
		if top == nil {
			continue
		}
		x, y := top.Offset()
		c.DrawStringAt(x, y, top.Render())
	}
}

func (c *Canvas) drawBlockAt(x, y int, lines []string) {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	for i, line := range lines {
		row := y + i
		if row >= c.height {
			break
		}
		if line == "" {
			continue
		}
		c.writer.PrintCropAt(x, row, line, "")
	}
}

// Render returns the composed frame as a newline-delimited string suitable for
// Bubble Tea consumption. The canvas must not be drawn on afterwards.
func (c *Canvas) Render() string {
	if c == nil || c.screen == nil {
		return ""
	}
	raw := cellbuf.Render(c.screen)
	_ = c.screen.Close()
	return strings.ReplaceAll(raw, "\r\n", "\n")
}

func splitBlockLines(content string) []string {
	if content == "" {
		return nil
	}
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	return strings.Split(normalized, "\n")
}
