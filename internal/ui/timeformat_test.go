package ui

import (
	"strings"
	"testing"
	"time"

	"ideupdater/internal/domain"
)

func withFixedNow(t *testing.T, now time.Time) {
	t.Helper()
	orig := timeNow
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = orig })
}

func TestFormatReleaseDate(t *testing.T) {
	withFixedNow(t, time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC))

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty", raw: "", want: ""},
		{name: "garbage", raw: "last tuesday", want: ""},
		{name: "hours", raw: "2026-10-16T13:00:00.000Z", want: "23 hours ago"},
		{name: "days", raw: "2026-10-15T12:00:00Z", want: "2 days ago"},
		{name: "date only", raw: "2026-10-10", want: "1 week ago"},
		{name: "future", raw: "2026-10-18T08:00:00Z", want: "Oct 18"},
		{name: "same year absolute", raw: "2026-06-01T09:00:00Z", want: "Jun 1"},
		{name: "previous year absolute", raw: "2024-11-28T10:00:00.000Z", want: "Nov 28, 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatReleaseDate(tt.raw); got != tt.want {
				t.Fatalf("FormatReleaseDate(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDialogShowsReleaseDateBeforeDownload(t *testing.T) {
	withFixedNow(t, time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC))

	info := sampleInfo()
	info.ReleaseDate = "2026-10-15T12:00:00Z"
	d := newDialogFixture(t, Props{Info: info, Phase: domain.PhasePreDownload}).dialog
	if view := plainView(d); !strings.Contains(view, "Released 2 days ago") {
		t.Fatalf("expected release date line, got %q", view)
	}

	d.SetProps(Props{Info: info, Phase: domain.PhaseDownloaded})
	if view := plainView(d); strings.Contains(view, "Released") {
		t.Fatalf("release date belongs to the pre-download phase only, got %q", view)
	}
}
