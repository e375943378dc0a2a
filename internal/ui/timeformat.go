package ui

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

var timeNow = time.Now

// recentRelease is how long a release date is shown relative to now.
const recentRelease = 30 * 24 * time.Hour

var releaseDateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseReleaseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range releaseDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatReleaseDate describes a manifest release timestamp: "3 days ago"
// for recent releases, an absolute date otherwise. Unparseable input yields
// the empty string.
func FormatReleaseDate(raw string) string {
	t, ok := parseReleaseDate(raw)
	if !ok {
		return ""
	}
	now := timeNow()

	// future timestamps come from clock skew on the publishing side
	if t.After(now) || now.Sub(t) >= recentRelease {
		return formatAbsoluteDate(t, now)
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

func formatAbsoluteDate(t, now time.Time) string {
	local := t.In(now.Location())
	if local.Year() == now.Year() {
		return local.Format("Jan 2")
	}
	return local.Format("Jan 2, 2006")
}
