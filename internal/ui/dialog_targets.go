package ui

import (
	"ideupdater/internal/debug"
	"ideupdater/internal/domain"
	"ideupdater/internal/markdown"

	tea "github.com/charmbracelet/bubbletea"
)

type targetKind int

const (
	targetButton targetKind = iota
	targetLink
)

// target is one focusable element: a button or a link from the notes.
type target struct {
	kind   targetKind
	action Action
	link   markdown.Link
}

type button struct {
	action  Action
	primary bool
}

// phaseButtons lists the buttons of each phase in display order.
var phaseButtons = map[domain.Phase][]button{
	domain.PhasePreDownload: {
		{action: ActionSkipVersion},
		{action: ActionClose},
		{action: ActionDownload, primary: true},
	},
	domain.PhaseDownloading: nil,
	domain.PhaseDownloaded: {
		{action: ActionClose},
		{action: ActionCloseAndInstall, primary: true},
	},
}

func (d *UpdateDialog) buttons() []button {
	return phaseButtons[d.props.Phase]
}

func (d *UpdateDialog) hasButton(a Action) bool {
	for _, b := range d.buttons() {
		if b.action == a {
			return true
		}
	}
	return false
}

// visibleLinks returns the links of the mounted notes while the notes are on
// screen.
func (d *UpdateDialog) visibleLinks() []markdown.Link {
	if !d.notesVisible() {
		return nil
	}
	return d.notes.doc.Links
}

// targets lists focusable elements in tab order: links first, then buttons.
func (d *UpdateDialog) targets() []target {
	links := d.visibleLinks()
	buttons := d.buttons()
	out := make([]target, 0, len(links)+len(buttons))
	for _, l := range links {
		out = append(out, target{kind: targetLink, link: l})
	}
	for _, b := range buttons {
		out = append(out, target{kind: targetButton, action: b.action})
	}
	return out
}

// defaultFocus points at the primary button, or the first target when the
// phase has none.
func (d *UpdateDialog) defaultFocus() int {
	offset := len(d.visibleLinks())
	for i, b := range d.buttons() {
		if b.primary {
			return offset + i
		}
	}
	return 0
}

func (d *UpdateDialog) clampFocus() {
	n := len(d.targets())
	if n == 0 {
		d.focus = 0
		return
	}
	if d.focus >= n {
		d.focus = n - 1
	}
	if d.focus < 0 {
		d.focus = 0
	}
}

func (d *UpdateDialog) moveFocus(delta int) {
	n := len(d.targets())
	if n == 0 {
		return
	}
	d.focus = ((d.focus+delta)%n + n) % n
}

func (d *UpdateDialog) focused() (target, bool) {
	targets := d.targets()
	if d.focus < 0 || d.focus >= len(targets) {
		return target{}, false
	}
	return targets[d.focus], true
}

// FocusedLabel returns the visible label of the focused target.
func (d *UpdateDialog) FocusedLabel() string {
	t, ok := d.focused()
	if !ok {
		return ""
	}
	if t.kind == targetLink {
		return t.link.Text
	}
	return d.buttonLabel(t.action)
}

func (d *UpdateDialog) activateFocused() tea.Cmd {
	t, ok := d.focused()
	if !ok {
		return nil
	}
	if t.kind == targetLink {
		return d.openLink(t.link)
	}
	d.trigger(t.action)
	return nil
}

// openLink hands the destination to the external opener. The dialog itself
// never navigates.
func (d *UpdateDialog) openLink(link markdown.Link) tea.Cmd {
	debug.Event("update dialog open link", debug.Fields{"url": link.URL})
	if err := d.opener.Open(link.URL); err != nil {
		debug.Event("update dialog open link failed", debug.Fields{"url": link.URL, "error": err.Error()})
		return d.setStatus(d.text("linkOpenFailed", "Could not open {0}", link.URL))
	}
	return nil
}

func (d *UpdateDialog) copyFocusedLink() tea.Cmd {
	t, ok := d.focused()
	if !ok || t.kind != targetLink {
		return nil
	}
	if err := d.clipboard.WriteAll(t.link.URL); err != nil {
		debug.Event("update dialog copy link failed", debug.Fields{"url": t.link.URL, "error": err.Error()})
		return d.setStatus(d.text("copyFailed", "Could not copy link"))
	}
	return d.setStatus(d.text("linkCopied", "Copied {0}", t.link.URL))
}

func (d *UpdateDialog) buttonLabel(a Action) string {
	switch a {
	case ActionDownload:
		return d.text("downloadButton", "Download")
	case ActionSkipVersion:
		return d.text("skipVersionButton", "Skip Version")
	case ActionClose:
		return d.text("notNowButton", "Not now")
	case ActionCloseAndInstall:
		return d.text("closeAndInstallButton", "Close and Install")
	default:
		return ""
	}
}
