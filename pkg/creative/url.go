package creative

import (
	"net/url"
	"strings"
)

// acceptedSchemes are the URL schemes the preview surface can display
// directly. Anything else is treated as absent rather than guessed at.
var acceptedSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"blob":  true,
	"data":  true,
}

// NormalizeURL resolves raw against the render-time origin. A value
// that already carries an accepted scheme is returned unchanged; a
// root-relative path is resolved against origin; everything else is
// treated as absent and returns "".
func NormalizeURL(raw, origin string) string {
	if raw == "" {
		return ""
	}
	if hasAcceptedScheme(raw) {
		return raw
	}
	if strings.HasPrefix(raw, "/") && origin != "" {
		return strings.TrimSuffix(origin, "/") + raw
	}
	return ""
}

func hasAcceptedScheme(raw string) bool {
	i := strings.Index(raw, ":")
	if i <= 0 {
		return false
	}
	return acceptedSchemes[strings.ToLower(raw[:i])]
}

// HostnameFromURL extracts the hostname of the first well-formed
// absolute URL among candidates, stripping a leading "www.".
// Malformed candidates fall back to a string heuristic: strip any
// scheme prefix and cut at the first slash.
func HostnameFromURL(candidates ...string) string {
	for _, raw := range candidates {
		if raw == "" {
			continue
		}
		if host := parseHost(raw); host != "" {
			return host
		}
	}
	return ""
}

func parseHost(raw string) string {
	if u, err := url.Parse(raw); err == nil && u.Host != "" {
		return stripWWW(u.Hostname())
	}
	// No scheme or unparseable: take everything before the first slash,
	// provided it looks like a hostname.
	s := raw
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+3:]
	}
	if i := strings.IndexAny(s, "/?#"); i >= 0 {
		s = s[:i]
	}
	s = stripWWW(strings.TrimSpace(s))
	if s == "" || !strings.Contains(s, ".") || strings.ContainsAny(s, " \t") {
		return ""
	}
	return s
}

func stripWWW(host string) string {
	return strings.TrimPrefix(host, "www.")
}
