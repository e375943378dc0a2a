package i18n

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	appErrors "ideupdater/internal/errors"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Catalog is a flat key to template map for one locale.
type Catalog map[string]string

// Localize implements Localizer.
func (c Catalog) Localize(key, fallback string, args ...any) string {
	if tmpl, ok := c[key]; ok && tmpl != "" {
		return Format(tmpl, args...)
	}
	return Format(fallback, args...)
}

// DecodeCatalog reads a YAML catalog. Nested maps are flattened with "/"
// so `updater: {downloadButton: ...}` resolves as "updater/downloadButton".
func DecodeCatalog(r io.Reader) (Catalog, error) {
	var raw map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Catalog{}, nil
		}
		return nil, appErrors.New(appErrors.CodeCatalogFailed, "decode catalog", err)
	}
	out := Catalog{}
	if err := flatten("", raw, out); err != nil {
		return nil, err
	}
	return out, nil
}

func flatten(prefix string, in map[string]any, out Catalog) error {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "/" + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]any:
			if err := flatten(key, val, out); err != nil {
				return err
			}
		default:
			return appErrors.New(appErrors.CodeCatalogFailed, fmt.Sprintf("catalog key %q must be a string or map", key), nil)
		}
	}
	return nil
}

// Bundle holds catalogs for several locales.
type Bundle struct {
	tags     []language.Tag
	catalogs map[language.Tag]Catalog
}

// NewBundle returns an empty bundle.
func NewBundle() *Bundle {
	return &Bundle{catalogs: make(map[language.Tag]Catalog)}
}

// Add registers a catalog for a BCP 47 locale name.
func (b *Bundle) Add(locale string, catalog Catalog) error {
	tag, err := language.Parse(locale)
	if err != nil {
		return appErrors.New(appErrors.CodeCatalogFailed, fmt.Sprintf("invalid locale %q", locale), err)
	}
	if _, exists := b.catalogs[tag]; !exists {
		b.tags = append(b.tags, tag)
	}
	b.catalogs[tag] = catalog
	return nil
}

// Locales lists registered locales in sorted order.
func (b *Bundle) Locales() []string {
	names := make([]string, 0, len(b.tags))
	for _, tag := range b.tags {
		names = append(names, tag.String())
	}
	sort.Strings(names)
	return names
}

// Localizer picks the best catalog for the requested locale. An unknown or
// unmatched locale yields Default so fallbacks are used.
func (b *Bundle) Localizer(locale string) Localizer {
	if b == nil || len(b.tags) == 0 {
		return Default
	}
	desired, _, err := language.ParseAcceptLanguage(locale)
	if err != nil || len(desired) == 0 {
		return Default
	}
	matcher := language.NewMatcher(b.tags)
	_, idx, confidence := matcher.Match(desired...)
	if confidence == language.No {
		return Default
	}
	return b.catalogs[b.tags[idx]]
}

// LoadDir reads every *.yaml / *.yml file in dir, using the file name
// (without extension) as the locale. A missing directory yields an empty
// bundle.
func LoadDir(dir string) (*Bundle, error) {
	bundle := NewBundle()
	if strings.TrimSpace(dir) == "" {
		return bundle, nil
	}
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return bundle, nil
	}
	if err != nil {
		return nil, appErrors.New(appErrors.CodeCatalogFailed, fmt.Sprintf("read catalog dir %s", dir), err)
	}
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		//nolint:gosec // G304: catalog directory comes from configuration
		f, err := os.Open(path)
		if err != nil {
			return nil, appErrors.New(appErrors.CodeCatalogFailed, fmt.Sprintf("open %s", path), err)
		}
		catalog, err := DecodeCatalog(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if err := bundle.Add(strings.TrimSuffix(entry.Name(), ext), catalog); err != nil {
			return nil, err
		}
	}
	return bundle, nil
}
