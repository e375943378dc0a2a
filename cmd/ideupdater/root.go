package main

import (
	"fmt"
	"strings"

	"ideupdater/internal/config"
	"ideupdater/internal/debug"
	"ideupdater/internal/ui/theme"

	"github.com/spf13/cobra"
)

type globalFlags struct {
	theme        string
	locale       string
	outputFormat string
	debug        bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	cmd := &cobra.Command{
		Use:   "ideupdater",
		Short: "Preview and inspect the IDE update dialog",
		Long: `ideupdater renders the IDE software update dialog in the terminal.

It can preview every phase of the dialog, simulate a download, print the
release notes of an update manifest and check an update feed once.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd, flags)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.theme, "theme", "", "Color theme ("+strings.Join(theme.Available(), ", ")+")")
	pf.StringVar(&flags.locale, "locale", "", "Locale for dialog strings, e.g. de or pt-BR")
	pf.StringVar(&flags.outputFormat, "output-format", "", "Release notes style (rich, dark, light, auto, notty, plain)")
	pf.BoolVar(&flags.debug, "debug", false, "Write a debug log to ~/.ideupdater/debug.log")

	cmd.AddCommand(newPreviewCmd())
	cmd.AddCommand(newNotesCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// setup initializes logging and configuration, then layers explicitly set
// flags over the loaded config.
func setup(cmd *cobra.Command, flags *globalFlags) error {
	if err := debug.Init(flags.debug); err != nil {
		return fmt.Errorf("initialize debug log: %w", err)
	}
	if err := config.Initialize(); err != nil {
		return fmt.Errorf("initialize config: %w", err)
	}

	overrides := map[string]any{}
	pf := cmd.Flags()
	if pf.Changed("theme") {
		overrides[config.KeyTheme] = strings.TrimSpace(flags.theme)
	}
	if pf.Changed("locale") {
		overrides[config.KeyLocale] = strings.TrimSpace(flags.locale)
	}
	if pf.Changed("output-format") {
		overrides[config.KeyOutputFormat] = strings.TrimSpace(flags.outputFormat)
	}
	if err := config.ApplyOverrides(overrides); err != nil {
		return fmt.Errorf("apply flags: %w", err)
	}

	name := config.GetString(config.KeyTheme)
	if name != "" && !theme.SetTheme(name) {
		debug.Logf("unknown theme %q, keeping %s", name, theme.CurrentName())
	}
	debug.Event("startup", debug.Fields{
		"command": cmd.Name(),
		"theme":   theme.CurrentName(),
		"locale":  config.GetString(config.KeyLocale),
		"format":  config.GetString(config.KeyOutputFormat),
	})
	return nil
}
