package domain

import "strings"

// UpdateInfo describes the release offered to the user.
type UpdateInfo struct {
	Version      string       `json:"version" yaml:"version"`
	ReleaseDate  string       `json:"releaseDate,omitempty" yaml:"releaseDate,omitempty"`
	ReleaseNotes ReleaseNotes `json:"releaseNotes,omitzero" yaml:"releaseNotes,omitempty"`
}

// HasVersion reports whether the version is a usable display string.
func (u UpdateInfo) HasVersion() bool {
	return strings.TrimSpace(u.Version) != ""
}
