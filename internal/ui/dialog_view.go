package ui

import (
	"fmt"
	"math"

	"ideupdater/internal/domain"
	"ideupdater/internal/ui/theme"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const linkListMax = 4

// View renders the dialog box. Exactly one phase section is drawn, followed
// by the error banner when an error is set.
func (d *UpdateDialog) View() string {
	d.restyleNotes()
	b := NewOverlayBuilder(d.boxWidth())
	b.Header(d.text("dialogTitle", "Software Update"))
	b.BlankLine()

	switch d.props.Phase {
	case domain.PhaseDownloaded:
		d.renderDownloaded(b)
	case domain.PhaseDownloading:
		d.renderDownloading(b)
	default:
		d.renderPreDownload(b)
	}

	if d.props.Err != nil {
		b.BlankLine()
		b.Line(d.renderErrorBanner(b.ContentWidth()))
	}

	if hints := d.footerHints(); len(hints) > 0 {
		b.BlankLine()
		b.Footer(hints)
	}
	if d.status != "" {
		b.FooterText(d.status)
	}

	if d.props.Err != nil {
		return b.BuildDanger()
	}
	return b.Build()
}

// Layer returns the dialog as a centered layer for a width x height host.
func (d *UpdateDialog) Layer(width, height int) Layer {
	return newCenteredLayer(d.View(), width, height, 1, 1)
}

func (d *UpdateDialog) renderDownloaded(b *OverlayBuilder) {
	b.Paragraph(styleBody(), d.text("versionDownloaded", "{1} {0} has been downloaded.",
		styleVersion().Render(d.props.Info.Version), d.appName))
	b.Paragraph(styleMuted(), d.text("closeToInstallNotice",
		"Close the software and install the update on your machine."))
	b.BlankLine()
	b.Line(d.renderButtons(b.ContentWidth()))
}

func (d *UpdateDialog) renderDownloading(b *OverlayBuilder) {
	b.Paragraph(styleBody(), d.text("downloadingNotice", "Downloading the latest version of {0}.", d.appName))
	b.BlankLine()
	b.Line(d.renderProgress(b.ContentWidth()))
	if stats := d.transferStats(); stats != "" {
		b.Line(styleMuted().Render(stats))
	}
}

func (d *UpdateDialog) renderPreDownload(b *OverlayBuilder) {
	b.Line(styleTitle().Render(d.text("updateAvailable", "Update Available")))
	b.Paragraph(styleBody(), d.text("newVersionAvailable",
		"A new version of {1} ({0}) is available for download.",
		styleVersion().Render(d.props.Info.Version), d.appName))
	if released := FormatReleaseDate(d.props.Info.ReleaseDate); released != "" {
		b.Line(styleMuted().Render(d.text("releasedOn", "Released {0}", released)))
	}

	if d.notesVisible() {
		b.BlankLine()
		b.Line(styleNotesFrame(b.ContentWidth()).Render(d.viewport.View()))
		if links := d.renderLinks(b.ContentWidth()); len(links) > 0 {
			b.Lines(links...)
		}
	}

	b.BlankLine()
	b.Line(d.renderButtons(b.ContentWidth()))
}

// renderProgress draws the bar bound to Progress.Percent with the percentage
// to its right.
func (d *UpdateDialog) renderProgress(width int) string {
	ratio := d.props.Progress.Ratio()
	label := fmt.Sprintf(" %3d%%", int(math.Round(ratio*100)))

	bar := progress.New(
		progress.WithGradient(theme.Hex(theme.Current().Primary()), theme.Hex(theme.Current().Success())),
		progress.WithoutPercentage(),
		progress.WithWidth(width-lipgloss.Width(label)),
	)
	return bar.ViewAs(ratio) + styleBody().Render(label)
}

func (d *UpdateDialog) transferStats() string {
	p := d.props.Progress
	if !p.HasTransferStats() {
		return ""
	}
	stats := fmt.Sprintf("%s / %s", humanize.Bytes(uint64(max(p.Transferred, 0))), humanize.Bytes(uint64(p.Total)))
	if p.BytesPerSecond > 0 {
		stats += fmt.Sprintf(" · %s/s", humanize.Bytes(uint64(p.BytesPerSecond)))
	}
	return stats
}

func (d *UpdateDialog) renderErrorBanner(width int) string {
	// the left border takes one column outside the style width
	return styleErrorBanner(width - 1).Render(d.props.Err.Error())
}

// renderButtons lays out the phase buttons. In the pre-download phase Skip
// Version sits on the left and the others on the right.
func (d *UpdateDialog) renderButtons(width int) string {
	buttons := d.buttons()
	if len(buttons) == 0 {
		return ""
	}
	focused, _ := d.focused()

	render := func(btn button) string {
		isFocused := focused.kind == targetButton && focused.action == btn.action
		return styleButton(btn.primary, isFocused).Render(d.buttonLabel(btn.action))
	}

	var left []string
	var right []string
	for _, btn := range buttons {
		if btn.action == ActionSkipVersion {
			left = append(left, render(btn))
			continue
		}
		if len(right) > 0 {
			right = append(right, " ")
		}
		right = append(right, render(btn))
	}

	leftBlock := lipgloss.JoinHorizontal(lipgloss.Top, left...)
	rightBlock := lipgloss.JoinHorizontal(lipgloss.Top, right...)
	gap := width - lipgloss.Width(leftBlock) - lipgloss.Width(rightBlock)
	if gap < 1 {
		gap = 1
	}
	height := max(lipgloss.Height(leftBlock), lipgloss.Height(rightBlock))
	spacer := styleBody().Width(gap).Height(height).Render("")
	return lipgloss.JoinHorizontal(lipgloss.Top, leftBlock, spacer, rightBlock)
}

// renderLinks lists the links found in the notes, windowed around the focused
// link.
func (d *UpdateDialog) renderLinks(width int) []string {
	links := d.visibleLinks()
	if len(links) == 0 {
		return nil
	}
	start := 0
	if d.focus < len(links) && d.focus >= linkListMax {
		start = d.focus - linkListMax + 1
	}
	end := min(start+linkListMax, len(links))

	lines := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		label := links[i].Text
		if label == "" || label == links[i].URL {
			label = links[i].URL
		} else {
			label = label + " (" + links[i].URL + ")"
		}
		label = truncateLabel(label, width-2)
		lines = append(lines, styleMuted().Render("↗ ")+styleLink(i == d.focus).Render(label))
	}
	if hidden := len(links) - (end - start); hidden > 0 {
		lines = append(lines, styleMuted().Render(d.text("moreLinks", "{0} more links", hidden)))
	}
	return lines
}

func (d *UpdateDialog) footerHints() []footerHint {
	var hints []footerHint
	if len(d.targets()) > 1 {
		hints = append(hints, hint(d.keys.Next))
	}
	if len(d.targets()) > 0 {
		hints = append(hints, hint(d.keys.Activate))
	}
	if d.notesScrollable() {
		hints = append(hints, hint(d.keys.Down))
	}
	if t, ok := d.focused(); ok && t.kind == targetLink {
		hints = append(hints, hint(d.keys.CopyLink))
	}
	return hints
}

func hint(b key.Binding) footerHint {
	h := b.Help()
	return footerHint{key: h.Key, desc: h.Desc}
}
