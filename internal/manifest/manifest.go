// Package manifest reads electron-updater style update manifests
// (latest.yml / latest.json) into the dialog's UpdateInfo.
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"ideupdater/internal/debug"
	"ideupdater/internal/domain"
	appErrors "ideupdater/internal/errors"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// Format selects the manifest encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// String returns the format name.
func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "yaml"
}

// FormatForPath picks a format from a file extension. Anything that is not
// .json is treated as YAML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// document mirrors the subset of the manifest the dialog needs. File lists
// and checksums are deliberately not read.
type document struct {
	Version      string              `json:"version" yaml:"version"`
	ReleaseName  string              `json:"releaseName" yaml:"releaseName"`
	ReleaseDate  string              `json:"releaseDate" yaml:"releaseDate"`
	ReleaseNotes domain.ReleaseNotes `json:"releaseNotes" yaml:"releaseNotes"`
}

// Decode reads a manifest in the given format.
func Decode(r io.Reader, format Format) (domain.UpdateInfo, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return domain.UpdateInfo{}, appErrors.New(appErrors.CodeParseFailed, "read manifest", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return domain.UpdateInfo{}, appErrors.New(appErrors.CodeParseFailed, "manifest is empty", nil)
	}

	var doc document
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	default:
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return domain.UpdateInfo{}, appErrors.New(appErrors.CodeParseFailed, fmt.Sprintf("decode %s manifest", format), err)
	}

	info := domain.UpdateInfo{
		Version:      strings.TrimSpace(doc.Version),
		ReleaseDate:  strings.TrimSpace(doc.ReleaseDate),
		ReleaseNotes: doc.ReleaseNotes,
	}
	if !info.HasVersion() {
		return domain.UpdateInfo{}, appErrors.New(appErrors.CodeParseFailed, "manifest has no version", nil)
	}
	if _, err := semver.NewVersion(info.Version); err != nil {
		debug.Logf("manifest: version %q is not semver, displaying as-is: %v", info.Version, err)
	}
	return info, nil
}

// Load reads the manifest at path, choosing the format by extension.
func Load(path string) (domain.UpdateInfo, error) {
	//nolint:gosec // G304: manifest path is supplied by the user on purpose
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.UpdateInfo{}, appErrors.New(appErrors.CodeNotFound, fmt.Sprintf("manifest %s not found", path), err)
		}
		return domain.UpdateInfo{}, fmt.Errorf("open manifest: %w", err)
	}
	defer func() { _ = f.Close() }()

	info, err := Decode(f, FormatForPath(path))
	if err != nil {
		return domain.UpdateInfo{}, fmt.Errorf("%s: %w", path, err)
	}
	return info, nil
}

// Sample returns the built-in manifest used when no file is given.
func Sample() domain.UpdateInfo {
	return domain.UpdateInfo{
		Version:     "2.3.4",
		ReleaseDate: "2024-11-28T10:00:00.000Z",
		ReleaseNotes: domain.EntryNotes(
			domain.ReleaseNoteEntry{
				Version: "2.3.4",
				Note:    "## 2.3.4\n\n### Fixed\n- Serial Monitor no longer drops the first line after reset.\n- Board selection survives a restart.\n\nFull changelog: [GitHub](https://github.com/arduino/arduino-ide/releases/tag/2.3.4)",
			},
			domain.ReleaseNoteEntry{Version: "2.3.3"},
			domain.ReleaseNoteEntry{
				Version: "2.3.3",
				Note:    "## 2.3.3\n\n- *Faster* library index updates.\n- See the [documentation](https://docs.arduino.cc/software/ide-v2) for details.",
			},
		),
	}
}
