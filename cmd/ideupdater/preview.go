package main

import (
	"errors"
	"fmt"
	"strings"

	"ideupdater/internal/config"
	"ideupdater/internal/domain"
	"ideupdater/internal/preview"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

type previewFlags struct {
	manifest string
	feed     string
	phase    string
	percent  float64
	errMsg   string
	simulate bool
	failAt   float64
}

func newPreviewCmd() *cobra.Command {
	flags := &previewFlags{}
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the update dialog in the terminal",
		Long: `Show the update dialog with a simulated collaborator.

Download starts a fake download, Not now, Skip Version and Close and Install
end the preview and print the outcome.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := buildPreview(cmd, flags)
			if err != nil {
				return err
			}
			if err := runProgram(model, func(m tea.Model) programRunner {
				return tea.NewProgram(m, tea.WithAltScreen())
			}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "outcome: %s\n", model.Outcome())
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.manifest, "manifest", "", "Update manifest (latest.yml or JSON); a built-in sample is used when empty")
	f.StringVar(&flags.feed, "feed", "", "Update feed URL to fetch the manifest from (overrides update.feed)")
	f.StringVar(&flags.phase, "phase", domain.PhasePreDownload.String(), "Initial phase (pre-download, downloading, downloaded)")
	f.Float64Var(&flags.percent, "percent", 0, "Initial download percentage")
	f.StringVar(&flags.errMsg, "error", "", "Error message to show in the banner")
	f.BoolVar(&flags.simulate, "simulate", false, "Start the simulated download immediately")
	f.Float64Var(&flags.failAt, "fail-at", 0, "Fail the simulated download at this percentage (0 disables)")
	return cmd
}

func buildPreview(cmd *cobra.Command, flags *previewFlags) (*preview.Model, error) {
	overrides := map[string]any{}
	if cmd.Flags().Changed("fail-at") {
		overrides[config.KeyPreviewFailAt] = flags.failAt
	}
	if cmd.Flags().Changed("feed") {
		overrides[config.KeyFeedURL] = strings.TrimSpace(flags.feed)
	}
	if err := config.ApplyOverrides(overrides); err != nil {
		return nil, fmt.Errorf("apply flags: %w", err)
	}
	runtime := loadRuntimeOptions()

	info, err := loadUpdateInfo(cmd.Context(), flags.manifest, runtime)
	if err != nil {
		return nil, err
	}
	phase, err := domain.ParsePhase(flags.phase)
	if err != nil {
		return nil, err
	}
	dialogOpts, err := runtime.dialogOptions()
	if err != nil {
		return nil, err
	}

	opts := preview.Options{
		Info:          info,
		Phase:         phase,
		Simulate:      flags.simulate,
		Tick:          runtime.tick,
		Step:          runtime.step,
		FailAt:        runtime.failAt,
		DialogOptions: dialogOpts,
		SaveTheme:     config.SaveTheme,
		SaveSkipped:   config.SaveSkippedVersion,
	}
	if cmd.Flags().Changed("percent") || phase == domain.PhaseDownloading {
		opts.Progress = &domain.ProgressInfo{Percent: flags.percent}
	}
	if msg := strings.TrimSpace(flags.errMsg); msg != "" {
		opts.Err = errors.New(msg)
	}
	return preview.New(opts), nil
}

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(tea.Model) programRunner

func runProgram(model tea.Model, factory programFactory) error {
	if model == nil {
		return fmt.Errorf("model is nil")
	}
	if factory == nil {
		return fmt.Errorf("program factory is nil")
	}
	prog := factory(model)
	if prog == nil {
		return fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run UI: %w", err)
	}
	return nil
}
