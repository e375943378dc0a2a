package ui

import (
	"fmt"
	"net/url"
	"strings"

	appErrors "ideupdater/internal/errors"

	"github.com/atotto/clipboard"
	"github.com/skratchdot/open-golang/open"
)

// LinkOpener sends a link destination to the host's external handler.
type LinkOpener interface {
	Open(url string) error
}

// LinkOpenerFunc adapts a function to LinkOpener.
type LinkOpenerFunc func(url string) error

// Open implements LinkOpener.
func (f LinkOpenerFunc) Open(url string) error {
	return f(url)
}

// Clipboard receives copied link targets.
type Clipboard interface {
	WriteAll(text string) error
}

// ClipboardFunc adapts a function to Clipboard.
type ClipboardFunc func(text string) error

// WriteAll implements Clipboard.
func (f ClipboardFunc) WriteAll(text string) error {
	return f(text)
}

var openableSchemes = map[string]struct{}{
	"http":   {},
	"https":  {},
	"mailto": {},
}

// BrowserOpener opens links with the desktop's default handler without
// waiting for it to exit.
type BrowserOpener struct{}

// Open implements LinkOpener.
func (BrowserOpener) Open(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return appErrors.New(appErrors.CodeOpenLinkFailed, fmt.Sprintf("parse link %q", raw), err)
	}
	if _, ok := openableSchemes[strings.ToLower(u.Scheme)]; !ok {
		return appErrors.New(appErrors.CodeOpenLinkFailed, fmt.Sprintf("refusing to open %q", raw), nil)
	}
	if err := open.Start(u.String()); err != nil {
		return appErrors.New(appErrors.CodeOpenLinkFailed, fmt.Sprintf("open %s", u), err)
	}
	return nil
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

// WriteAll implements Clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return appErrors.New(appErrors.CodeClipboardFailed, "clipboard is not available on this system", nil)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return appErrors.New(appErrors.CodeClipboardFailed, "copy to clipboard", err)
	}
	return nil
}
