package update

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ideupdater/internal/debug"
	"ideupdater/internal/domain"
	appErrors "ideupdater/internal/errors"
	"ideupdater/internal/manifest"

	"github.com/Masterminds/semver/v3"
)

// Default configuration values.
const (
	DefaultTimeout = 5 * time.Second
	// maxFeedBytes bounds the manifest read; real feeds are a few KB.
	maxFeedBytes = 1 << 20
	userAgent    = "ideupdater-feed-checker"
)

// Result is the outcome of one feed check.
type Result struct {
	Info    domain.UpdateInfo
	Current string
	// Offer reports whether the dialog should be shown for Info.
	Offer bool
	// Skipped is set when Info is newer but the user skipped that version.
	Skipped   bool
	CheckedAt time.Time
}

// Checker fetches update feeds over HTTP.
type Checker struct {
	feedURL    string
	httpClient *http.Client
	now        func() time.Time
}

// CheckerOption configures a Checker.
type CheckerOption func(*Checker)

// WithHTTPClient sets a custom HTTP client for the checker.
func WithHTTPClient(client *http.Client) CheckerOption {
	return func(c *Checker) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) CheckerOption {
	return func(c *Checker) {
		c.httpClient.Timeout = timeout
	}
}

// NewChecker creates a checker for the manifest at feedURL.
func NewChecker(feedURL string, opts ...CheckerOption) *Checker {
	c := &Checker{
		feedURL: strings.TrimSpace(feedURL),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FeedURL returns the manifest location.
func (c *Checker) FeedURL() string {
	return c.feedURL
}

// Check fetches the feed and compares its version with currentVersion.
// Development builds and unparseable versions get the offer whenever the
// feed carries a version, so the dialog can still be previewed locally.
func (c *Checker) Check(ctx context.Context, currentVersion, skippedVersion string) (Result, error) {
	info, err := c.Fetch(ctx)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Info:      info,
		Current:   strings.TrimSpace(currentVersion),
		CheckedAt: c.now(),
	}
	res.Offer = IsNewer(res.Current, info.Version)
	if res.Offer && sameVersion(skippedVersion, info.Version) {
		res.Offer = false
		res.Skipped = true
	}
	debug.Event("feed checked", debug.Fields{
		"feed":    c.feedURL,
		"current": res.Current,
		"offered": info.Version,
		"offer":   res.Offer,
		"skipped": res.Skipped,
	})
	return res, nil
}

// Fetch downloads and decodes the feed manifest.
func (c *Checker) Fetch(ctx context.Context) (domain.UpdateInfo, error) {
	u, err := url.Parse(c.feedURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return domain.UpdateInfo{}, appErrors.New(appErrors.CodeConfigurationError, fmt.Sprintf("feed URL %q must be http or https", c.feedURL), err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.UpdateInfo{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/x-yaml, application/json;q=0.9, */*;q=0.5")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.UpdateInfo{}, appErrors.New(appErrors.CodeFeedFailed, fmt.Sprintf("fetch update feed: %v", err), err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusForbidden:
		return domain.UpdateInfo{}, appErrors.New(appErrors.CodeRateLimited, fmt.Sprintf("update feed refused the request: status %d", resp.StatusCode), nil)
	case resp.StatusCode == http.StatusNotFound:
		return domain.UpdateInfo{}, appErrors.New(appErrors.CodeNotFound, fmt.Sprintf("update feed %s not found", c.feedURL), nil)
	case resp.StatusCode != http.StatusOK:
		return domain.UpdateInfo{}, appErrors.New(appErrors.CodeFeedFailed, fmt.Sprintf("update feed returned status %d", resp.StatusCode), nil)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes+1))
	if err != nil {
		return domain.UpdateInfo{}, appErrors.New(appErrors.CodeFeedFailed, fmt.Sprintf("read update feed: %v", err), err)
	}
	if len(data) > maxFeedBytes {
		return domain.UpdateInfo{}, appErrors.New(appErrors.CodeFeedFailed, fmt.Sprintf("update feed exceeds %d bytes", maxFeedBytes), nil)
	}

	info, err := manifest.Decode(bytes.NewReader(data), feedFormat(u, resp.Header.Get("Content-Type")))
	if err != nil {
		return domain.UpdateInfo{}, fmt.Errorf("decode update feed: %w", err)
	}
	return info, nil
}

// feedFormat trusts a JSON content type, then the path extension.
func feedFormat(u *url.URL, contentType string) manifest.Format {
	if strings.Contains(strings.ToLower(contentType), "json") {
		return manifest.FormatJSON
	}
	return manifest.FormatForPath(u.Path)
}

// IsNewer reports whether offered should be presented to a user running
// current. An empty or non-semver current version always gets the offer;
// a non-semver offered version is only offered when it differs textually.
func IsNewer(current, offered string) bool {
	offered = strings.TrimSpace(offered)
	if offered == "" {
		return false
	}
	cur, err := semver.NewVersion(strings.TrimSpace(current))
	if err != nil {
		return true
	}
	off, err := semver.NewVersion(offered)
	if err != nil {
		return strings.TrimPrefix(offered, "v") != strings.TrimPrefix(cur.Original(), "v")
	}
	return off.GreaterThan(cur)
}

func sameVersion(a, b string) bool {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if a == "" || b == "" {
		return false
	}
	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)
	if errA != nil || errB != nil {
		return strings.TrimPrefix(a, "v") == strings.TrimPrefix(b, "v")
	}
	return va.Equal(vb)
}
