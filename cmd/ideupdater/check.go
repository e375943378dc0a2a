package main

import (
	"fmt"
	"io"
	"strings"

	"ideupdater/internal/config"
	"ideupdater/internal/update"

	"github.com/spf13/cobra"
)

type checkFlags struct {
	feed    string
	current string
	skipped string
}

func newCheckCmd() *cobra.Command {
	flags := &checkFlags{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Fetch the update feed once and report whether the dialog would be shown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]any{}
			if cmd.Flags().Changed("feed") {
				overrides[config.KeyFeedURL] = strings.TrimSpace(flags.feed)
			}
			if cmd.Flags().Changed("skipped") {
				overrides[config.KeySkipped] = strings.TrimSpace(flags.skipped)
			}
			if err := config.ApplyOverrides(overrides); err != nil {
				return fmt.Errorf("apply flags: %w", err)
			}
			runtime := loadRuntimeOptions()
			if runtime.feedURL == "" {
				return fmt.Errorf("no update feed configured: pass --feed or set %s", config.KeyFeedURL)
			}

			res, err := runtime.checker().Check(cmd.Context(), flags.current, runtime.skipped)
			if err != nil {
				return err
			}
			printCheckResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&flags.feed, "feed", "", "Update feed URL (overrides update.feed)")
	f.StringVar(&flags.current, "current", "", "Version currently installed")
	f.StringVar(&flags.skipped, "skipped", "", "Version the user skipped (overrides update.skipped)")
	return cmd
}

func printCheckResult(w io.Writer, res update.Result) {
	current := res.Current
	if current == "" {
		current = "unknown"
	}
	switch {
	case res.Offer:
		fmt.Fprintf(w, "Update available: %s (running %s)\n", res.Info.Version, current)
	case res.Skipped:
		fmt.Fprintf(w, "Version %s was skipped (running %s)\n", res.Info.Version, current)
	default:
		fmt.Fprintf(w, "Up to date (running %s, feed offers %s)\n", current, res.Info.Version)
	}
	if res.Offer && !res.Info.ReleaseNotes.IsEmpty() {
		fmt.Fprintln(w)
		fmt.Fprint(w, strings.TrimRight(res.Info.ReleaseNotes.Markdown(), "\n"))
		fmt.Fprintln(w)
	}
}
