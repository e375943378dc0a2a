package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type notesKind int

const (
	notesAbsent notesKind = iota
	notesBlock
	notesEntries
)

// ReleaseNoteEntry is one item of a per-version changelog.
// Entries without a note are skipped when the notes are normalized.
type ReleaseNoteEntry struct {
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	Note    string `json:"note,omitempty" yaml:"note,omitempty"`
}

// ReleaseNotes holds changelog content as either one formatted-text block or
// an ordered list of entries. The zero value means no notes.
type ReleaseNotes struct {
	kind    notesKind
	block   string
	entries []ReleaseNoteEntry
}

// BlockNotes wraps a single markdown blob.
func BlockNotes(markdown string) ReleaseNotes {
	return ReleaseNotes{kind: notesBlock, block: markdown}
}

// EntryNotes wraps an ordered list of entries. The slice is copied.
func EntryNotes(entries ...ReleaseNoteEntry) ReleaseNotes {
	copied := make([]ReleaseNoteEntry, len(entries))
	copy(copied, entries)
	return ReleaseNotes{kind: notesEntries, entries: copied}
}

// IsBlock reports whether the notes were supplied as one blob.
func (n ReleaseNotes) IsBlock() bool { return n.kind == notesBlock }

// IsList reports whether the notes were supplied as entries.
func (n ReleaseNotes) IsList() bool { return n.kind == notesEntries }

// Entries returns a copy of the entries for list-shaped notes.
func (n ReleaseNotes) Entries() []ReleaseNoteEntry {
	if n.kind != notesEntries {
		return nil
	}
	out := make([]ReleaseNoteEntry, len(n.entries))
	copy(out, n.entries)
	return out
}

// Markdown reduces either shape to one formatted-text source. A block is
// returned verbatim; entries contribute their note followed by a paragraph
// break, in order.
func (n ReleaseNotes) Markdown() string {
	switch n.kind {
	case notesBlock:
		return n.block
	case notesEntries:
		var b strings.Builder
		for _, entry := range n.entries {
			if entry.Note == "" {
				continue
			}
			b.WriteString(entry.Note)
			b.WriteString("\n\n")
		}
		return b.String()
	default:
		return ""
	}
}

// IsEmpty reports whether there is nothing to render.
func (n ReleaseNotes) IsEmpty() bool {
	return n.Markdown() == ""
}

// Equal compares two notes by value.
func (n ReleaseNotes) Equal(other ReleaseNotes) bool {
	if n.kind != other.kind || n.block != other.block || len(n.entries) != len(other.entries) {
		return false
	}
	for i := range n.entries {
		if n.entries[i] != other.entries[i] {
			return false
		}
	}
	return true
}

// MarshalJSON writes the notes back in the shape they were supplied in.
func (n ReleaseNotes) MarshalJSON() ([]byte, error) {
	switch n.kind {
	case notesBlock:
		return json.Marshal(n.block)
	case notesEntries:
		return json.Marshal(n.entries)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a string, a list of entries, or null.
func (n *ReleaseNotes) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*n = ReleaseNotes{}
		return nil
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return invalidNotesError("decode release notes string", err)
		}
		*n = BlockNotes(s)
	case '[':
		var entries []ReleaseNoteEntry
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return invalidNotesError("decode release notes list", err)
		}
		*n = EntryNotes(entries...)
	default:
		return invalidNotesError(fmt.Sprintf("release notes must be a string or a list, got %s", string(trimmed[:1])), nil)
	}
	return nil
}

// UnmarshalYAML accepts a scalar, a sequence of entries, or null.
func (n *ReleaseNotes) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		switch value.ShortTag() {
		case "!!null":
			*n = ReleaseNotes{}
			return nil
		case "!!str":
			*n = BlockNotes(value.Value)
		default:
			return invalidNotesError(fmt.Sprintf("release notes must be a string or a list (line %d)", value.Line), nil)
		}
	case yaml.SequenceNode:
		var entries []ReleaseNoteEntry
		if err := value.Decode(&entries); err != nil {
			return invalidNotesError("decode release notes list", err)
		}
		*n = EntryNotes(entries...)
	default:
		return invalidNotesError(fmt.Sprintf("release notes must be a string or a list (line %d)", value.Line), nil)
	}
	return nil
}

// IsZero reports whether the notes are absent, so omitzero and omitempty skip them.
func (n ReleaseNotes) IsZero() bool { return n.kind == notesAbsent }

// MarshalYAML mirrors MarshalJSON.
func (n ReleaseNotes) MarshalYAML() (any, error) {
	switch n.kind {
	case notesBlock:
		return n.block, nil
	case notesEntries:
		return n.entries, nil
	default:
		return nil, nil
	}
}
