package main

import (
	"fmt"
	"strings"

	"ideupdater/internal/ui"

	"github.com/spf13/cobra"
)

type notesFlags struct {
	manifest string
	render   bool
	width    int
}

func newNotesCmd() *cobra.Command {
	flags := &notesFlags{}
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Print the release notes of an update manifest",
		Long: `Print the release notes exactly as the dialog receives them: a single
block is printed as is, per-version entries are joined with blank lines.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNotes(cmd, flags)
		},
	}
	f := cmd.Flags()
	f.StringVar(&flags.manifest, "manifest", "", "Update manifest (latest.yml or JSON); a built-in sample is used when empty")
	f.BoolVar(&flags.render, "render", false, "Render the notes with the configured output format and list their links")
	f.IntVar(&flags.width, "width", 0, "Wrap width when rendering (defaults to the dialog content width)")
	return cmd
}

func runNotes(cmd *cobra.Command, flags *notesFlags) error {
	runtime := loadRuntimeOptions()
	info, err := loadUpdateInfo(cmd.Context(), flags.manifest, runtime)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	source := info.ReleaseNotes.Markdown()
	if !flags.render {
		_, err := fmt.Fprint(out, source)
		return err
	}

	width := flags.width
	if width <= 0 {
		width = ui.OverlayContentWidth(runtime.dialogWidth)
	}
	doc, err := runtime.renderer().Render(source, width)
	if err != nil {
		return fmt.Errorf("render notes: %w", err)
	}
	fmt.Fprintln(out, strings.TrimRight(doc.Body, "\n"))
	if len(doc.Links) > 0 {
		fmt.Fprintln(out)
		for _, link := range doc.Links {
			fmt.Fprintf(out, "- %s <%s>\n", link.Text, link.URL)
		}
	}
	return nil
}
