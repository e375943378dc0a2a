// Package markdown turns release-note markdown into terminal output and
// reports the hyperlinks it contains so the caller can route activation to
// the host instead of navigating in place.
package markdown

import (
	"strings"
	"sync"

	"ideupdater/internal/debug"
	appErrors "ideupdater/internal/errors"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"
)

// Link is a hyperlink discovered in the source, in document order.
type Link struct {
	Text string
	URL  string
}

// Document is the rendered form of one markdown source.
type Document struct {
	Source string
	Body   string
	Links  []Link
}

// Renderer converts markdown into a Document sized for width columns.
type Renderer interface {
	Render(source string, width int) (Document, error)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(source string, width int) (Document, error)

// Render implements Renderer.
func (f RendererFunc) Render(source string, width int) (Document, error) {
	return f(source, width)
}

// Format names accepted by New.
const (
	FormatRich  = "rich"
	FormatDark  = "dark"
	FormatLight = "light"
	FormatAuto  = "auto"
	FormatNoTTY = "notty"
	FormatPlain = "plain"
)

// New returns a renderer for the configured output format. Unknown formats
// are handed to glamour as standard style names.
func New(format string) Renderer {
	style := resolveStyle(format)
	if style == FormatPlain {
		return PlainRenderer{}
	}
	return &GlamourRenderer{style: style}
}

func resolveStyle(format string) string {
	style := strings.ToLower(strings.TrimSpace(format))
	switch style {
	case "", FormatRich:
		return FormatDark
	case FormatAuto:
		if termenv.HasDarkBackground() {
			return FormatDark
		}
		return FormatLight
	default:
		return style
	}
}

// PlainRenderer word-wraps the source without interpreting markup.
type PlainRenderer struct{}

// Render implements Renderer.
func (PlainRenderer) Render(source string, width int) (Document, error) {
	return Document{
		Source: source,
		Body:   wrapPlain(source, width),
		Links:  ExtractLinks(source),
	}, nil
}

func wrapPlain(source string, width int) string {
	if width <= 0 {
		return strings.TrimSpace(source)
	}
	return strings.TrimSpace(wordwrap.String(source, width))
}

// GlamourRenderer renders with a glamour standard style. The term renderer
// is rebuilt only when the width changes.
type GlamourRenderer struct {
	style string

	mu       sync.Mutex
	width    int
	renderer *glamour.TermRenderer
}

// Style returns the glamour style in use.
func (g *GlamourRenderer) Style() string {
	return g.style
}

// Render implements Renderer. Glamour failures degrade to plain text.
func (g *GlamourRenderer) Render(source string, width int) (Document, error) {
	doc := Document{Source: source, Links: ExtractLinks(source)}

	renderer, err := g.termRenderer(width)
	if err != nil {
		debug.Logf("markdown: falling back to plain text: %v", err)
		doc.Body = wrapPlain(source, width)
		return doc, nil
	}
	out, err := renderer.Render(source)
	if err != nil {
		debug.Logf("markdown: render failed, using plain text: %v", err)
		doc.Body = wrapPlain(source, width)
		return doc, nil
	}
	doc.Body = strings.Trim(out, "\n")
	return doc, nil
}

func (g *GlamourRenderer) termRenderer(width int) (*glamour.TermRenderer, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.renderer != nil && g.width == width {
		return g.renderer, nil
	}
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(g.style)}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, appErrors.New(appErrors.CodeRenderFailed, "create markdown renderer", err)
	}
	g.renderer = r
	g.width = width
	return r, nil
}
