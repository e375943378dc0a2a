package ui

import (
	"strings"

	"ideupdater/internal/debug"
	"ideupdater/internal/domain"
	"ideupdater/internal/markdown"
	"ideupdater/internal/ui/theme"
)

const (
	notesMaxHeight = 10
	notesMinHeight = 3
	// rows taken by everything in the pre-download layout except the notes
	notesChrome = 19
)

// notesMount is the rendered release notes, keyed by the notes value and the
// width they were rendered for.
type notesMount struct {
	notes   domain.ReleaseNotes
	width   int
	ready   bool
	doc     markdown.Document
	renders int
	// theme the viewport content was background-filled for
	theme string
}

// mount renders notes unless the same notes were already rendered at the
// same width. It reports whether the document was replaced.
func (m *notesMount) mount(r markdown.Renderer, notes domain.ReleaseNotes, width int) bool {
	if m.ready && m.width == width && m.notes.Equal(notes) {
		return false
	}
	m.notes = notes
	m.width = width
	m.ready = true
	m.doc = markdown.Document{}
	if notes.IsEmpty() {
		return true
	}

	m.renders++
	source := notes.Markdown()
	doc, err := r.Render(source, width)
	if err != nil {
		debug.Logf("release notes render failed, falling back to plain text: %v", err)
		doc, _ = markdown.PlainRenderer{}.Render(source, width)
	}
	m.doc = doc
	return true
}

func (d *UpdateDialog) notesWidth() int {
	return OverlayContentWidth(d.boxWidth())
}

// refreshNotes remounts the notes for the current props and width and resets
// the viewport when the document changed.
func (d *UpdateDialog) refreshNotes() bool {
	width := d.notesWidth()
	changed := d.notes.mount(d.renderer, d.props.Info.ReleaseNotes, width)
	d.viewport.Height = d.notesHeight()
	if !changed {
		d.restyleNotes()
		return false
	}
	d.viewport.Width = width
	d.fillNotes()
	d.viewport.GotoTop()
	return true
}

// restyleNotes refills the viewport when the theme changed after the notes
// were filled. The scroll position is kept.
func (d *UpdateDialog) restyleNotes() {
	if d.notes.ready && d.notes.theme != theme.CurrentName() {
		d.fillNotes()
	}
}

func (d *UpdateDialog) fillNotes() {
	d.notes.theme = theme.CurrentName()
	d.viewport.SetContent(fillBackground(strings.TrimRight(d.notes.doc.Body, "\n")))
}

func (d *UpdateDialog) notesHeight() int {
	lines := strings.Count(strings.TrimRight(d.notes.doc.Body, "\n"), "\n") + 1
	limit := notesMaxHeight
	if d.termHeight > 0 {
		limit = d.termHeight - notesChrome
	}
	if limit > notesMaxHeight {
		limit = notesMaxHeight
	}
	if limit < notesMinHeight {
		limit = notesMinHeight
	}
	if lines < limit {
		return lines
	}
	return limit
}

// notesVisible reports whether the notes section is part of the layout.
func (d *UpdateDialog) notesVisible() bool {
	return d.props.Phase == domain.PhasePreDownload && !d.props.Info.ReleaseNotes.IsEmpty()
}

func (d *UpdateDialog) notesScrollable() bool {
	return d.notesVisible() && d.viewport.TotalLineCount() > d.viewport.Height
}

func (d *UpdateDialog) scrollNotes(delta int) {
	if !d.notesVisible() || delta == 0 {
		return
	}
	if delta > 0 {
		d.viewport.LineDown(delta)
		return
	}
	d.viewport.LineUp(-delta)
}
