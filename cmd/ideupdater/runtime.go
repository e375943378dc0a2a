package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ideupdater/internal/config"
	"ideupdater/internal/domain"
	"ideupdater/internal/i18n"
	"ideupdater/internal/manifest"
	"ideupdater/internal/markdown"
	"ideupdater/internal/ui"
	"ideupdater/internal/update"
)

type runtimeOptions struct {
	appName      string
	dialogWidth  int
	outputFormat string
	locale       string
	localeDir    string
	tick         time.Duration
	step         float64
	failAt       float64
	feedURL      string
	feedTimeout  time.Duration
	skipped      string
}

func loadRuntimeOptions() runtimeOptions {
	opts := runtimeOptions{
		appName:      strings.TrimSpace(config.GetString(config.KeyAppName)),
		dialogWidth:  config.GetInt(config.KeyDialogWidth),
		outputFormat: strings.TrimSpace(config.GetString(config.KeyOutputFormat)),
		locale:       strings.TrimSpace(config.GetString(config.KeyLocale)),
		localeDir:    strings.TrimSpace(config.GetString(config.KeyLocaleDir)),
		tick:         config.GetDuration(config.KeyPreviewTick),
		step:         config.GetFloat(config.KeyPreviewStep),
		failAt:       config.GetFloat(config.KeyPreviewFailAt),
		feedURL:      strings.TrimSpace(config.GetString(config.KeyFeedURL)),
		feedTimeout:  config.GetDuration(config.KeyFeedTimeout),
		skipped:      strings.TrimSpace(config.GetString(config.KeySkipped)),
	}
	if opts.appName == "" {
		opts.appName = ui.DefaultAppName
	}
	if opts.dialogWidth <= 0 {
		opts.dialogWidth = ui.DefaultDialogWidth
	}
	if opts.feedTimeout <= 0 {
		opts.feedTimeout = update.DefaultTimeout
	}
	if opts.failAt < 0 {
		opts.failAt = 0
	}
	return opts
}

// localizer loads the catalogs from the configured locale directory. Without
// one the built-in English strings are used.
func (o runtimeOptions) localizer() (i18n.Localizer, error) {
	if o.localeDir == "" {
		return i18n.Default, nil
	}
	bundle, err := i18n.LoadDir(o.localeDir)
	if err != nil {
		return nil, fmt.Errorf("load locales: %w", err)
	}
	return bundle.Localizer(o.locale), nil
}

func (o runtimeOptions) renderer() markdown.Renderer {
	return markdown.New(o.outputFormat)
}

func (o runtimeOptions) dialogOptions() ([]ui.DialogOption, error) {
	loc, err := o.localizer()
	if err != nil {
		return nil, err
	}
	return []ui.DialogOption{
		ui.WithLocalizer(loc),
		ui.WithRenderer(o.renderer()),
		ui.WithAppName(o.appName),
		ui.WithWidth(o.dialogWidth),
	}, nil
}

func (o runtimeOptions) checker() *update.Checker {
	return update.NewChecker(o.feedURL, update.WithTimeout(o.feedTimeout))
}

// loadUpdateInfo reads the manifest at path. Without a path the configured
// feed is fetched, and without a feed the built-in sample is returned.
func loadUpdateInfo(ctx context.Context, path string, o runtimeOptions) (domain.UpdateInfo, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	path = strings.TrimSpace(path)
	switch {
	case path != "":
		info, err := manifest.Load(path)
		if err != nil {
			return domain.UpdateInfo{}, fmt.Errorf("load manifest: %w", err)
		}
		return info, nil
	case o.feedURL != "":
		return o.checker().Fetch(ctx)
	default:
		return manifest.Sample(), nil
	}
}
