package update

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	appErrors "ideupdater/internal/errors"
)

const feedYAML = `version: 2.1.0
releaseDate: '2026-09-30T08:00:00.000Z'
releaseNotes:
  - version: 2.1.0
    note: "Faster builds. See [notes](https://example.com/2.1.0)"
`

func feedServer(t *testing.T, status int, contentType, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != userAgent {
			t.Errorf("unexpected user agent %q", got)
		}
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestNewChecker(t *testing.T) {
	c := NewChecker("  https://downloads.example.com/latest.yml ")
	if c.FeedURL() != "https://downloads.example.com/latest.yml" {
		t.Errorf("FeedURL() = %q", c.FeedURL())
	}
	if c.httpClient == nil || c.httpClient.Timeout != DefaultTimeout {
		t.Error("expected default http client with timeout")
	}
}

func TestNewCheckerWithOptions(t *testing.T) {
	customClient := &http.Client{}
	c := NewChecker("https://x", WithHTTPClient(customClient), WithTimeout(time.Second))
	if c.httpClient != customClient {
		t.Fatal("custom HTTP client not applied")
	}
	if customClient.Timeout != time.Second {
		t.Errorf("timeout = %v, want 1s", customClient.Timeout)
	}
}

func TestCheckerCheck(t *testing.T) {
	server := feedServer(t, http.StatusOK, "", feedYAML)
	checkedAt := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		current     string
		skipped     string
		wantOffer   bool
		wantSkipped bool
	}{
		{"olderRunning", "2.0.4", "", true, false},
		{"sameRunning", "v2.1.0", "", false, false},
		{"newerRunning", "2.2.0-rc.1", "", false, false},
		{"devBuild", "dev", "", true, false},
		{"skippedVersion", "2.0.4", "2.1.0", false, true},
		{"otherSkipped", "2.0.4", "2.0.9", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChecker(server.URL + "/latest.yml")
			c.now = func() time.Time { return checkedAt }

			res, err := c.Check(context.Background(), tt.current, tt.skipped)
			if err != nil {
				t.Fatalf("Check() error: %v", err)
			}
			if res.Offer != tt.wantOffer {
				t.Errorf("Offer = %v, want %v", res.Offer, tt.wantOffer)
			}
			if res.Skipped != tt.wantSkipped {
				t.Errorf("Skipped = %v, want %v", res.Skipped, tt.wantSkipped)
			}
			if res.Info.Version != "2.1.0" {
				t.Errorf("Info.Version = %q", res.Info.Version)
			}
			if !res.CheckedAt.Equal(checkedAt) {
				t.Errorf("CheckedAt = %v", res.CheckedAt)
			}
		})
	}
}

func TestFetchDecodesJSONByContentType(t *testing.T) {
	server := feedServer(t, http.StatusOK, "application/json", `{"version":"3.0.0","releaseNotes":"Big release"}`)
	info, err := NewChecker(server.URL + "/feed").Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if info.Version != "3.0.0" || info.ReleaseNotes.Markdown() != "Big release" {
		t.Fatalf("unexpected info %+v", info)
	}
}

func TestFetchErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   appErrors.Code
	}{
		{"rateLimited", http.StatusTooManyRequests, "", appErrors.CodeRateLimited},
		{"notFound", http.StatusNotFound, "", appErrors.CodeNotFound},
		{"serverError", http.StatusBadGateway, "", appErrors.CodeFeedFailed},
		{"badManifest", http.StatusOK, "releaseNotes: only\n", appErrors.CodeParseFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := feedServer(t, tt.status, "", tt.body)
			_, err := NewChecker(server.URL + "/latest.yml").Fetch(context.Background())
			if err == nil {
				t.Fatal("expected error")
			}
			if !appErrors.IsCode(err, tt.want) {
				t.Fatalf("expected code %s, got %v", tt.want, err)
			}
		})
	}
}

func TestFetchRejectsOversizedFeed(t *testing.T) {
	notes := strings.Repeat("line of release notes\n", maxFeedBytes/20) + "END\n"
	body := "version: 2.0.0\nreleaseNotes: |\n" + indentBlock(notes, "  ")
	server := feedServer(t, http.StatusOK, "", body)

	info, err := NewChecker(server.URL + "/latest.yml").Fetch(context.Background())
	if !appErrors.IsCode(err, appErrors.CodeFeedFailed) {
		t.Fatalf("expected feed failure for oversized feed, got info=%q err=%v", info.Version, err)
	}
	if !strings.Contains(err.Error(), "exceeds") {
		t.Fatalf("expected size error message, got %v", err)
	}
}

func TestFetchAcceptsFeedAtLimit(t *testing.T) {
	head := "version: 2.0.0\nreleaseNotes: |\n  "
	body := head + strings.Repeat("x", maxFeedBytes-len(head)-4) + "END\n"
	if len(body) != maxFeedBytes {
		t.Fatalf("test body is %d bytes, want %d", len(body), maxFeedBytes)
	}
	server := feedServer(t, http.StatusOK, "", body)

	info, err := NewChecker(server.URL + "/latest.yml").Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if !strings.HasSuffix(info.ReleaseNotes.Markdown(), "END\n") {
		t.Fatal("expected the complete notes")
	}
}

func indentBlock(text, prefix string) string {
	lines := strings.SplitAfter(text, "\n")
	var b strings.Builder
	for _, line := range lines {
		if line == "" {
			continue
		}
		b.WriteString(prefix + line)
	}
	return b.String()
}

func TestFetchRejectsNonHTTPFeeds(t *testing.T) {
	_, err := NewChecker("file:///etc/passwd").Fetch(context.Background())
	if !appErrors.IsCode(err, appErrors.CodeConfigurationError) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestFetchHonorsContext(t *testing.T) {
	server := feedServer(t, http.StatusOK, "", feedYAML)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewChecker(server.URL + "/latest.yml").Fetch(ctx)
	if !appErrors.IsCode(err, appErrors.CodeFeedFailed) {
		t.Fatalf("expected feed failure for cancelled context, got %v", err)
	}
}

func TestIsNewer(t *testing.T) {
	tests := []struct {
		current, offered string
		want             bool
	}{
		{"1.0.0", "1.0.1", true},
		{"1.0.1", "1.0.1", false},
		{"v1.0.1", "1.0.1", false},
		{"1.1.0", "1.0.9", false},
		{"1.0.0-beta.2", "1.0.0", true},
		{"", "1.0.0", true},
		{"nightly", "1.0.0", true},
		{"1.0.0", "", false},
		{"1.0.0", "2024-nightly", true},
	}
	for _, tt := range tests {
		if got := IsNewer(tt.current, tt.offered); got != tt.want {
			t.Errorf("IsNewer(%q, %q) = %v, want %v", tt.current, tt.offered, got, tt.want)
		}
	}
}
