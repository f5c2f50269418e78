// Package horosafe validates the untrusted strings the inspector receives
// from its command line, config file, HTTP and MCP surfaces before they
// reach the browser.
package horosafe

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrUnsafeScheme is returned when a page URL uses a scheme the browser
// should not be pointed at (javascript:, data:, chrome:, ...).
var ErrUnsafeScheme = errors.New("horosafe: only http, https and file pages can be inspected")

// ErrNoHost is returned when an http(s) URL has no hostname.
var ErrNoHost = errors.New("horosafe: URL has no host")

// MaxIdentifierLen bounds tab and page identifiers.
const MaxIdentifierLen = 128

var pageSchemes = map[string]bool{"http": true, "https": true, "file": true}

// ValidatePageURL checks that rawURL is something a tab may navigate to.
// Loopback and private hosts are allowed: local dev servers are the usual
// target.
func ValidatePageURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return fmt.Errorf("horosafe: empty URL")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("horosafe: invalid URL: %w", err)
	}
	scheme := strings.ToLower(u.Scheme)
	if !pageSchemes[scheme] {
		return ErrUnsafeScheme
	}
	if scheme != "file" && u.Hostname() == "" {
		return ErrNoHost
	}
	if scheme == "file" && u.Path == "" {
		return fmt.Errorf("horosafe: file URL has no path")
	}
	return nil
}

// ValidateIdentifier rejects identifiers unsuitable for URL path segments
// and log fields. Allows alphanumeric, underscore, hyphen, and dot.
func ValidateIdentifier(s string) error {
	if s == "" {
		return fmt.Errorf("horosafe: identifier must not be empty")
	}
	if len(s) > MaxIdentifierLen {
		return fmt.Errorf("horosafe: identifier too long (max %d)", MaxIdentifierLen)
	}
	for _, r := range s {
		if !isIdentChar(r) {
			return fmt.Errorf("horosafe: invalid character %q in identifier", r)
		}
	}
	return nil
}

func isIdentChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') || r == '_' || r == '-' || r == '.'
}
