package ui

import (
	"time"

	"ideupdater/internal/debug"
	"ideupdater/internal/domain"
	"ideupdater/internal/i18n"
	"ideupdater/internal/markdown"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// DefaultDialogWidth is the lipgloss box width used when none is set.
	DefaultDialogWidth = 64
	// DefaultAppName is substituted into the dialog copy.
	DefaultAppName = "Arduino IDE"

	statusTTL = 4 * time.Second
)

// Props is the input the orchestrating collaborator supplies on every render.
type Props struct {
	Info     domain.UpdateInfo
	Phase    domain.Phase
	Progress *domain.ProgressInfo
	// Err is shown in a banner in every phase while non-nil.
	Err error
}

// Callbacks are invoked synchronously, once per activation, with no
// arguments. Nil callbacks are ignored.
type Callbacks struct {
	OnDownload        func()
	OnClose           func()
	OnSkipVersion     func()
	OnCloseAndInstall func()
}

// Action identifies a dialog button.
type Action int

const (
	ActionDownload Action = iota
	ActionSkipVersion
	ActionClose
	ActionCloseAndInstall
)

var actionNames = map[Action]string{
	ActionDownload:        "download",
	ActionSkipVersion:     "skip-version",
	ActionClose:           "close",
	ActionCloseAndInstall: "close-and-install",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

func (c Callbacks) fire(a Action) bool {
	var fn func()
	switch a {
	case ActionDownload:
		fn = c.OnDownload
	case ActionSkipVersion:
		fn = c.OnSkipVersion
	case ActionClose:
		fn = c.OnClose
	case ActionCloseAndInstall:
		fn = c.OnCloseAndInstall
	}
	if fn == nil {
		return false
	}
	fn()
	return true
}

// DialogOption customizes an UpdateDialog.
type DialogOption func(*UpdateDialog)

// WithLocalizer sets the source of user-visible strings.
func WithLocalizer(l i18n.Localizer) DialogOption {
	return func(d *UpdateDialog) {
		if l != nil {
			d.localizer = l
		}
	}
}

// WithRenderer sets the release notes renderer.
func WithRenderer(r markdown.Renderer) DialogOption {
	return func(d *UpdateDialog) {
		if r != nil {
			d.renderer = r
		}
	}
}

// WithLinkOpener sets where activated links are sent.
func WithLinkOpener(o LinkOpener) DialogOption {
	return func(d *UpdateDialog) {
		if o != nil {
			d.opener = o
		}
	}
}

// WithClipboard sets the clipboard used to copy link targets.
func WithClipboard(c Clipboard) DialogOption {
	return func(d *UpdateDialog) {
		if c != nil {
			d.clipboard = c
		}
	}
}

// WithWidth sets the preferred box width. It is clamped to the terminal.
func WithWidth(width int) DialogOption {
	return func(d *UpdateDialog) {
		if width > 0 {
			d.width = width
		}
	}
}

// WithAppName sets the product name used in the dialog copy.
func WithAppName(name string) DialogOption {
	return func(d *UpdateDialog) {
		if name != "" {
			d.appName = name
		}
	}
}

// WithKeyMap replaces the default keybindings.
func WithKeyMap(km KeyMap) DialogOption {
	return func(d *UpdateDialog) {
		d.keys = km
	}
}

// UpdateDialog presents an available update in one of three phases and
// reports the user's choice through Callbacks. It owns no update state of its
// own beyond focus, scroll position and the rendered notes.
type UpdateDialog struct {
	props     Props
	callbacks Callbacks

	localizer i18n.Localizer
	renderer  markdown.Renderer
	opener    LinkOpener
	clipboard Clipboard
	keys      KeyMap
	appName   string

	width      int
	termWidth  int
	termHeight int

	notes    notesMount
	viewport viewport.Model
	focus    int

	status    string
	statusSeq int
}

// statusExpiredMsg clears a transient status line.
type statusExpiredMsg struct {
	seq int
}

// NewUpdateDialog creates a dialog for the given props.
func NewUpdateDialog(props Props, callbacks Callbacks, opts ...DialogOption) *UpdateDialog {
	d := &UpdateDialog{
		callbacks: callbacks,
		localizer: i18n.Default,
		renderer:  markdown.New(markdown.FormatRich),
		opener:    BrowserOpener{},
		clipboard: SystemClipboard{},
		keys:      DefaultKeyMap(),
		appName:   DefaultAppName,
		width:     DefaultDialogWidth,
		viewport:  viewport.New(OverlayContentWidth(DefaultDialogWidth), notesMaxHeight),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.props = props
	d.refreshNotes()
	d.focus = d.defaultFocus()
	return d
}

// SetProps replaces the dialog input. Focus returns to the primary button
// when the phase or the set of links changes.
func (d *UpdateDialog) SetProps(props Props) {
	prevPhase := d.props.Phase
	prevLinks := len(d.visibleLinks())
	d.props = props
	changed := d.refreshNotes()
	if prevPhase != props.Phase || changed || prevLinks != len(d.visibleLinks()) {
		if prevPhase != props.Phase {
			debug.Event("update dialog phase changed", debug.Fields{"from": prevPhase.String(), "to": props.Phase.String()})
		}
		d.focus = d.defaultFocus()
	}
	d.clampFocus()
}

// SetCallbacks replaces the callbacks.
func (d *UpdateDialog) SetCallbacks(callbacks Callbacks) {
	d.callbacks = callbacks
}

// Props returns the current input.
func (d *UpdateDialog) Props() Props {
	return d.props
}

// Status returns the transient status line, if any.
func (d *UpdateDialog) Status() string {
	return d.status
}

// Init implements tea.Model.
func (d *UpdateDialog) Init() tea.Cmd {
	return nil
}

// Update handles key input and resize messages.
func (d *UpdateDialog) Update(msg tea.Msg) (*UpdateDialog, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.termWidth, d.termHeight = msg.Width, msg.Height
		d.refreshNotes()
	case statusExpiredMsg:
		if msg.seq == d.statusSeq {
			d.status = ""
		}
	case tea.KeyMsg:
		return d, d.handleKey(msg)
	}
	return d, nil
}

func (d *UpdateDialog) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, d.keys.Next):
		d.moveFocus(1)
	case key.Matches(msg, d.keys.Prev):
		d.moveFocus(-1)
	case key.Matches(msg, d.keys.Activate):
		return d.activateFocused()
	case key.Matches(msg, d.keys.Up):
		d.scrollNotes(-1)
	case key.Matches(msg, d.keys.Down):
		d.scrollNotes(1)
	case key.Matches(msg, d.keys.PageUp):
		d.scrollNotes(-d.viewport.Height)
	case key.Matches(msg, d.keys.PageDown):
		d.scrollNotes(d.viewport.Height)
	case key.Matches(msg, d.keys.Download):
		d.trigger(ActionDownload)
	case key.Matches(msg, d.keys.SkipVersion):
		d.trigger(ActionSkipVersion)
	case key.Matches(msg, d.keys.NotNow):
		d.trigger(ActionClose)
	case key.Matches(msg, d.keys.CloseAndInstall):
		d.trigger(ActionCloseAndInstall)
	case key.Matches(msg, d.keys.CopyLink):
		return d.copyFocusedLink()
	}
	return nil
}

// trigger invokes the callback for a button, but only when that button is
// part of the current phase.
func (d *UpdateDialog) trigger(a Action) {
	if !d.hasButton(a) {
		return
	}
	debug.Event("update dialog action", debug.Fields{
		"action":  a.String(),
		"phase":   d.props.Phase.String(),
		"version": d.props.Info.Version,
	})
	d.callbacks.fire(a)
}

func (d *UpdateDialog) setStatus(text string) tea.Cmd {
	d.statusSeq++
	d.status = text
	seq := d.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}

// messageNamespace prefixes every catalog key the dialog looks up.
const messageNamespace = "arduino/ide-updater/"

func (d *UpdateDialog) text(id, fallback string, args ...any) string {
	return d.localizer.Localize(messageNamespace+id, fallback, args...)
}

func (d *UpdateDialog) boxWidth() int {
	return FitOverlayWidth(d.width, d.termWidth)
}
