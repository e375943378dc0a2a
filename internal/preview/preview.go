// Package preview hosts the update dialog outside of an IDE. It plays the
// orchestrating collaborator: it owns the dialog props, reacts to the
// callbacks and fakes download progress with tea.Tick.
package preview

import (
	"fmt"
	"time"

	"ideupdater/internal/debug"
	"ideupdater/internal/domain"
	"ideupdater/internal/ui"
	"ideupdater/internal/ui/theme"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultTick       = 150 * time.Millisecond
	defaultStep       = 4.0
	defaultTotalBytes = 180 * 1000 * 1000
)

// Outcome records how the preview ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeNotNow
	OutcomeSkipped
	OutcomeInstall
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNotNow:
		return "not-now"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeInstall:
		return "close-and-install"
	case OutcomeQuit:
		return "quit"
	default:
		return "none"
	}
}

// Options configures the preview host.
type Options struct {
	Info     domain.UpdateInfo
	Phase    domain.Phase
	Progress *domain.ProgressInfo
	Err      error

	// Simulate starts the fake download as soon as the program starts.
	Simulate bool
	// Tick is the interval between progress updates.
	Tick time.Duration
	// Step is the percentage added per tick.
	Step float64
	// FailAt injects a download error once progress reaches this percentage.
	// Zero disables the failure.
	FailAt float64
	// TotalBytes is the simulated download size.
	TotalBytes int64

	DialogOptions []ui.DialogOption
	// SaveTheme persists the theme picked with the theme key. Optional.
	SaveTheme func(name string) error
	// SaveSkipped records the version dismissed with Skip Version. Optional.
	SaveSkipped func(version string) error
}

type hostKeys struct {
	Quit  key.Binding
	Theme key.Binding
}

func defaultHostKeys() hostKeys {
	return hostKeys{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Theme"),
		),
	}
}

// progressTickMsg advances the simulated download.
type progressTickMsg struct {
	seq int
}

// Model is the Bubble Tea program model of the preview host.
type Model struct {
	opts   Options
	props  ui.Props
	dialog *ui.UpdateDialog
	keys   hostKeys

	width, height int

	outcome Outcome
	pending []tea.Cmd

	tickSeq     int
	downloading bool
	failed      bool
}

// New builds a preview host. Zero tick, step and size fall back to defaults.
func New(opts Options) *Model {
	if opts.Tick <= 0 {
		opts.Tick = defaultTick
	}
	if opts.Step <= 0 {
		opts.Step = defaultStep
	}
	if opts.TotalBytes <= 0 {
		opts.TotalBytes = defaultTotalBytes
	}
	m := &Model{
		opts: opts,
		keys: defaultHostKeys(),
		props: ui.Props{
			Info:     opts.Info,
			Phase:    opts.Phase,
			Progress: opts.Progress,
			Err:      opts.Err,
		},
	}
	m.dialog = ui.NewUpdateDialog(m.props, m.callbacks(), opts.DialogOptions...)
	return m
}

func (m *Model) callbacks() ui.Callbacks {
	return ui.Callbacks{
		OnDownload:        m.startDownload,
		OnClose:           func() { m.finish(OutcomeNotNow) },
		OnSkipVersion:     m.skipVersion,
		OnCloseAndInstall: func() { m.finish(OutcomeInstall) },
	}
}

// Outcome returns how the preview ended.
func (m *Model) Outcome() Outcome {
	return m.outcome
}

// Props returns the props most recently handed to the dialog.
func (m *Model) Props() ui.Props {
	return m.props
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.opts.Simulate && m.props.Phase == domain.PhasePreDownload {
		m.startDownload()
	}
	return m.flush()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		_, cmd := m.dialog.Update(msg)
		return m, cmd
	case progressTickMsg:
		if msg.seq != m.tickSeq || !m.downloading {
			return m, nil
		}
		m.advance()
		return m, m.flush()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.finish(OutcomeQuit)
			return m, m.flush()
		case key.Matches(msg, m.keys.Theme):
			m.cycleTheme()
			return m, nil
		}
	}

	_, cmd := m.dialog.Update(msg)
	return m, tea.Batch(cmd, m.flush())
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return m.dialog.View()
	}
	return ui.ComposeOver(m.background(), m.width, m.height, m.dialog.Layer(m.width, m.height))
}

// background draws the host status line onto a host surface one row high.
func (m *Model) background() string {
	surface := ui.NewHostSurface(m.width, 1)
	st := surface.Styles
	status := st.Text.Render(" ideupdater preview · ") +
		st.Accent.Render(theme.CurrentName()) +
		st.TextMuted.Render(fmt.Sprintf(" · %s %s · %s %s",
			m.keys.Theme.Help().Key, m.keys.Theme.Help().Desc,
			m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc,
		))
	surface.Draw(0, 0, status)
	return surface.Render()
}

func (m *Model) startDownload() {
	if !m.transition(domain.PhaseDownloading) {
		return
	}
	m.props.Err = nil
	m.props.Progress = &domain.ProgressInfo{Total: m.opts.TotalBytes}
	m.downloading = true
	m.dialog.SetProps(m.props)
	m.schedule()
}

func (m *Model) advance() {
	p := *m.props.Progress
	p.Percent += m.opts.Step
	if p.Percent > 100 {
		p.Percent = 100
	}
	p.Transferred = int64(float64(p.Total) * p.Percent / 100)
	p.BytesPerSecond = float64(p.Total) * m.opts.Step / 100 / m.opts.Tick.Seconds()
	m.props.Progress = &p

	switch {
	case m.opts.FailAt > 0 && !m.failed && p.Percent >= m.opts.FailAt:
		m.failed = true
		m.downloading = false
		m.props.Err = fmt.Errorf("download interrupted at %.0f%%: connection reset by peer", p.Percent)
		debug.Event("preview injected download failure", debug.Fields{"percent": p.Percent})
		m.transition(domain.PhasePreDownload)
	case p.Percent >= 100:
		m.downloading = false
		m.transition(domain.PhaseDownloaded)
	default:
		m.schedule()
	}
	m.dialog.SetProps(m.props)
}

func (m *Model) schedule() {
	m.tickSeq++
	seq := m.tickSeq
	m.pending = append(m.pending, tea.Tick(m.opts.Tick, func(time.Time) tea.Msg {
		return progressTickMsg{seq: seq}
	}))
}

// transition moves to target when the phase rules allow it.
func (m *Model) transition(target domain.Phase) bool {
	if err := m.props.Phase.CanTransitionTo(target); err != nil {
		debug.Logf("preview: %v", err)
		return false
	}
	m.props.Phase = target
	return true
}

func (m *Model) finish(outcome Outcome) {
	m.outcome = outcome
	m.downloading = false
	debug.Event("preview finished", debug.Fields{"outcome": outcome.String()})
	m.pending = append(m.pending, tea.Quit)
}

func (m *Model) skipVersion() {
	if m.opts.SaveSkipped != nil {
		if err := m.opts.SaveSkipped(m.props.Info.Version); err != nil {
			debug.Logf("preview: save skipped version %s: %v", m.props.Info.Version, err)
		}
	}
	m.finish(OutcomeSkipped)
}

func (m *Model) cycleTheme() {
	name := theme.CycleTheme()
	if m.opts.SaveTheme == nil {
		return
	}
	if err := m.opts.SaveTheme(name); err != nil {
		debug.Logf("preview: save theme %s: %v", name, err)
	}
}

func (m *Model) flush() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}
