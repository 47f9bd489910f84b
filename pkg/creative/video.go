package creative

import (
	"regexp"
	"strings"
)

// YouTube URL shapes recognized for ID extraction, tried in order:
// embed path, canonical watch parameter, short host path.
var (
	reEmbed = regexp.MustCompile(`youtube\.com/embed/([A-Za-z0-9_-]{6,})`)
	reWatch = regexp.MustCompile(`youtube\.com/watch\?(?:[^#]*&)?v=([A-Za-z0-9_-]{6,})`)
	reShort = regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{6,})`)

	reVideoID = regexp.MustCompile(`^[A-Za-z0-9_-]{6,16}$`)
)

// YouTubeVideoID extracts a video identifier from any recognized
// YouTube URL shape. Returns "" for unrelated URLs.
func YouTubeVideoID(raw string) string {
	if raw == "" {
		return ""
	}
	for _, re := range []*regexp.Regexp{reEmbed, reWatch, reShort} {
		if m := re.FindStringSubmatch(raw); m != nil {
			return m[1]
		}
	}
	return ""
}

// YouTubeEmbedURL rewrites a video identifier to the embeddable player
// form.
func YouTubeEmbedURL(id string) string {
	return "https://www.youtube.com/embed/" + id
}

// YouTubeThumbnailURL rewrites a video identifier to the provider
// thumbnail convention.
func YouTubeThumbnailURL(id string) string {
	return "https://img.youtube.com/vi/" + id + "/hqdefault.jpg"
}

// IsVideoID reports whether s looks like a bare provider video
// identifier rather than a URL.
func IsVideoID(s string) bool {
	return s != "" && !strings.ContainsAny(s, "/:?&.") && reVideoID.MatchString(s)
}

// PlaybackURL resolves a raw video reference into a playable URL.
// Three shapes are recognized: a bare provider identifier (rewritten to
// the embeddable player URL), a direct absolute URL, and an opaque
// string that itself encodes a recognizable video URL (rewritten the
// same way). Anything else resolves to "".
func PlaybackURL(raw, origin string) string {
	if raw == "" {
		return ""
	}
	if IsVideoID(raw) {
		return YouTubeEmbedURL(raw)
	}
	if id := YouTubeVideoID(raw); id != "" {
		return YouTubeEmbedURL(id)
	}
	return NormalizeURL(raw, origin)
}
