package auth

import (
	"net/url"
	"strings"
)

// DefaultLanding is where authenticated users go when no usable
// destination was requested.
const DefaultLanding = "/dashboard"

// ResolveRedirect decides where to send a user after successful
// authentication. Relative paths are resolved against baseOrigin, absolute
// URLs are honored only on the same origin, and everything else (including
// unparseable input) falls back to the dashboard. It never errors.
func ResolveRedirect(requested, baseOrigin string) string {
	base := strings.TrimRight(baseOrigin, "/")

	if strings.HasPrefix(requested, "/") {
		return base + requested
	}

	if u, err := url.Parse(requested); err == nil && u.Scheme != "" && u.Host != "" {
		if u.Scheme+"://"+u.Host == base {
			return requested
		}
	}

	return base + DefaultLanding
}
