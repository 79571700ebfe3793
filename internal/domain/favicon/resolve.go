// Package favicon maps page URLs to displayable icon URLs.
package favicon

import (
	"strings"

	urlutil "github.com/bnema/palette/internal/domain/url"
)

const (
	// DefaultServiceTemplate is the external favicon service, with %s replaced by the host.
	DefaultServiceTemplate = "https://icons.duckduckgo.com/ip3/%s.ico"

	// DefaultFallback is returned when no host can be derived.
	DefaultFallback = "globe"
)

// Resolver builds icon URLs from a page host. It is safe for concurrent use.
type Resolver struct {
	template string
	fallback string
}

// NewResolver creates a resolver. Empty arguments select the defaults.
func NewResolver(template, fallback string) *Resolver {
	if template == "" || !strings.Contains(template, "%s") {
		template = DefaultServiceTemplate
	}
	if fallback == "" {
		fallback = DefaultFallback
	}
	return &Resolver{template: template, fallback: fallback}
}

// Resolve returns the icon URL for rawURL, or the fallback sentinel when
// rawURL cannot be parsed or carries no host.
func (r *Resolver) Resolve(rawURL string) string {
	domain := urlutil.ExtractDomain(rawURL)
	if domain == "" {
		return r.fallback
	}
	return strings.Replace(r.template, "%s", domain, 1)
}

// Fallback returns the sentinel used for unresolvable URLs.
func (r *Resolver) Fallback() string {
	return r.fallback
}

var defaultResolver = NewResolver("", "")

// Resolve maps rawURL to an icon URL using the default service and fallback.
func Resolve(rawURL string) string {
	return defaultResolver.Resolve(rawURL)
}
