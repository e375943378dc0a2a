package i18n

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	appErrors "ideupdater/internal/errors"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []any
		want     string
	}{
		{"NoArgs", "Download", nil, "Download"},
		{"Single", "Version {0} has been downloaded.", []any{"2.1.0"}, "Version 2.1.0 has been downloaded."},
		{"Reordered", "{1} before {0}", []any{"a", "b"}, "b before a"},
		{"Repeated", "{0}{0}", []any{"x"}, "xx"},
		{"MissingArg", "{0} and {3}", []any{"a"}, "a and {3}"},
		{"NotANumber", "{name} {0}", []any{"a"}, "{name} a"},
		{"Unclosed", "value {0", []any{"a"}, "value {0"},
		{"NonString", "{0}%", []any{42}, "42%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.template, tt.args...); got != tt.want {
				t.Fatalf("Format(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestDefaultUsesFallback(t *testing.T) {
	got := Default.Localize("updater/newVersionAvailable", "A new version ({0}) is available.", "2.0.0")
	if got != "A new version (2.0.0) is available." {
		t.Fatalf("unexpected default localization %q", got)
	}
}

func TestCatalogLocalize(t *testing.T) {
	catalog, err := DecodeCatalog(strings.NewReader(`
updater:
  notNowButton: Nicht jetzt
  versionDownloaded: "{0} {1} wurde heruntergeladen."
  empty: ""
`))
	if err != nil {
		t.Fatalf("DecodeCatalog: %v", err)
	}
	if got := catalog.Localize("updater/notNowButton", "Not now"); got != "Nicht jetzt" {
		t.Fatalf("expected translated string, got %q", got)
	}
	if got := catalog.Localize("updater/versionDownloaded", "{0} {1} has been downloaded.", "IDE", "2.0"); got != "IDE 2.0 wurde heruntergeladen." {
		t.Fatalf("expected substituted translation, got %q", got)
	}
	if got := catalog.Localize("updater/downloadButton", "Download"); got != "Download" {
		t.Fatalf("expected fallback for missing key, got %q", got)
	}
	if got := catalog.Localize("updater/empty", "Fallback"); got != "Fallback" {
		t.Fatalf("expected fallback for empty translation, got %q", got)
	}
}

func TestDecodeCatalogRejectsLists(t *testing.T) {
	_, err := DecodeCatalog(strings.NewReader("updater:\n  - one\n"))
	if !appErrors.IsCode(err, appErrors.CodeCatalogFailed) {
		t.Fatalf("expected catalog_failed, got %v", err)
	}
}

func TestDecodeCatalogEmpty(t *testing.T) {
	catalog, err := DecodeCatalog(strings.NewReader(""))
	if err != nil {
		t.Fatalf("empty catalog should decode: %v", err)
	}
	if len(catalog) != 0 {
		t.Fatalf("expected empty catalog, got %v", catalog)
	}
}

func TestBundleLocalizerMatching(t *testing.T) {
	bundle := NewBundle()
	if err := bundle.Add("en", Catalog{"k": "english"}); err != nil {
		t.Fatal(err)
	}
	if err := bundle.Add("de", Catalog{"k": "deutsch"}); err != nil {
		t.Fatal(err)
	}

	if got := bundle.Localizer("de-AT").Localize("k", "fallback"); got != "deutsch" {
		t.Fatalf("expected regional match to pick de, got %q", got)
	}
	if got := bundle.Localizer("en").Localize("k", "fallback"); got != "english" {
		t.Fatalf("expected en, got %q", got)
	}
	if got := bundle.Localizer("ja").Localize("k", "fallback"); got != "fallback" {
		t.Fatalf("expected unmatched locale to use fallback, got %q", got)
	}
	if got := bundle.Localizer("!!").Localize("k", "fallback"); got != "fallback" {
		t.Fatalf("expected invalid locale to use fallback, got %q", got)
	}
	if got := bundle.Locales(); strings.Join(got, ",") != "de,en" {
		t.Fatalf("unexpected locales %v", got)
	}
}

func TestBundleAddRejectsInvalidLocale(t *testing.T) {
	if err := NewBundle().Add("not a locale", Catalog{}); !appErrors.IsCode(err, appErrors.CodeCatalogFailed) {
		t.Fatalf("expected catalog_failed, got %v", err)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, filepath.Join(dir, "de.yaml"), "updater:\n  downloadButton: Herunterladen\n")
	writeCatalog(t, filepath.Join(dir, "it.yml"), "updater/downloadButton: Scarica\n")
	writeCatalog(t, filepath.Join(dir, "README.md"), "ignored")

	bundle, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if got := bundle.Localizer("it").Localize("updater/downloadButton", "Download"); got != "Scarica" {
		t.Fatalf("expected it catalog, got %q", got)
	}
	if got := bundle.Localizer("de").Localize("updater/downloadButton", "Download"); got != "Herunterladen" {
		t.Fatalf("expected de catalog, got %q", got)
	}
}

func TestLoadDirMissingIsEmpty(t *testing.T) {
	bundle, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("missing dir should not fail: %v", err)
	}
	if got := bundle.Localizer("de").Localize("k", "fallback {0}", 1); got != "fallback 1" {
		t.Fatalf("expected fallback from empty bundle, got %q", got)
	}
}

func writeCatalog(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
