package url

import (
	"net/url"
	"strings"
)

// ParseBangShortcut extracts a bang shortcut from input.
// Input must start with "!" followed by shortcut key and a space.
// Returns (shortcutKey, query, found).
//
// Examples:
//
//	"!g golang"      → ("g", "golang", true)
//	"!gh repo name"  → ("gh", "repo name", true)
//	"!g"             → ("", "", false) - no query
//	"test !g"        → ("", "", false) - bang not at start
func ParseBangShortcut(input string) (shortcut, query string, found bool) {
	if !strings.HasPrefix(input, "!") {
		return "", "", false
	}

	spaceIdx := strings.Index(input, " ")
	if spaceIdx == -1 || spaceIdx == 1 {
		return "", "", false
	}

	shortcut = input[1:spaceIdx]
	query = strings.TrimSpace(input[spaceIdx+1:])

	if query == "" {
		return "", "", false
	}

	return shortcut, query, true
}

// componentUnescapes undoes QueryEscape for the marks encodeURIComponent keeps literal.
var componentUnescapes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EscapeComponent encodes s the way browsers encode a URI component:
// spaces become %20 and the unreserved marks !'()* stay literal.
func EscapeComponent(s string) string {
	return componentUnescapes.Replace(url.QueryEscape(s))
}

// SearchURL builds a web search URL for the literal query text.
// A known bang shortcut selects its template, anything else uses engine.
// The query is always encoded with EscapeComponent.
func SearchURL(input string, shortcuts map[string]string, engine string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	template := engine
	query := input
	if key, q, found := ParseBangShortcut(input); found {
		if t, ok := shortcuts[key]; ok {
			template, query = t, q
		}
		// Unknown bang falls through to the engine with the original input
	}

	if template == "" {
		return ""
	}
	return strings.Replace(template, "%s", EscapeComponent(query), 1)
}
