// Package url provides URL manipulation utilities for the palette.
package url

import (
	"net/url"
	"strings"
)

// navigableSchemes are treated as complete URLs and never rewritten.
var navigableSchemes = []string{
	"http://",
	"https://",
	"file://",
	"about:",
	"chrome://",
	"edge://",
	"brave://",
	"moz-extension://",
	"chrome-extension://",
}

// HasScheme reports whether input starts with a scheme the palette can open as-is.
func HasScheme(input string) bool {
	for _, s := range navigableSchemes {
		if strings.HasPrefix(input, s) {
			return true
		}
	}
	return false
}

// Normalize adds a scheme prefix if missing for URL-like inputs.
// Returns the input unchanged if it already has a scheme or doesn't look like a URL.
func Normalize(input string) string {
	if input == "" {
		return ""
	}
	if HasScheme(input) {
		return input
	}
	if isLocalhost(input) {
		return "http://" + input
	}

	// Looks like a URL (contains . and no spaces)
	if strings.Contains(input, ".") && !strings.Contains(input, " ") {
		return "https://" + input
	}

	return input
}

// LooksLikeURL checks if the input appears to be a URL (not a search query).
// Returns true for strings like "github.com", "google.com/search", etc.
func LooksLikeURL(input string) bool {
	if input == "" {
		return false
	}
	if HasScheme(input) || isLocalhost(input) {
		return true
	}

	// Contains a dot and no spaces = likely a URL
	return strings.Contains(input, ".") && !strings.Contains(input, " ")
}

func isLocalhost(input string) bool {
	if input == "localhost" {
		return true
	}
	rest, ok := strings.CutPrefix(input, "localhost")
	if !ok {
		return false
	}
	return strings.HasPrefix(rest, ":") || strings.HasPrefix(rest, "/")
}

// ExtractDomain extracts the normalized domain (host) from a URL string.
// Normalizes by stripping "www." prefix so youtube.com and www.youtube.com
// resolve to the same value.
func ExtractDomain(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Hostname() == "" {
		return ""
	}
	return strings.TrimPrefix(parsed.Hostname(), "www.")
}
