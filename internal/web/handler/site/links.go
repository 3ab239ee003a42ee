package site

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	// youtubeIDPattern matches a bare YouTube video id.
	youtubeIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

	// youtubeURLPatterns match the id inside the supported URL shapes.
	youtubeURLPatterns = []*regexp.Regexp{
		regexp.MustCompile(`youtube\.com/watch\?.*?v=([A-Za-z0-9_-]{11})`),
		regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})`),
		regexp.MustCompile(`youtube\.com/embed/([A-Za-z0-9_-]{11})`),
		regexp.MustCompile(`youtube\.com/shorts/([A-Za-z0-9_-]{11})`),
	}

	// mapCoordinatesPattern matches the @lat,lng part of a maps URL.
	mapCoordinatesPattern = regexp.MustCompile(`@(-?\d+(?:\.\d+)?),(-?\d+(?:\.\d+)?)`)

	// mapPlacePattern matches the place name part of a maps URL.
	mapPlacePattern = regexp.MustCompile(`/place/([^/@?]+)`)
)

// shortLinkHosts are maps short-link domains whose target cannot be derived
// from the URL itself.
var shortLinkHosts = []string{"goo.gl", "maps.app.goo.gl", "g.co"}

// YouTubeID extracts the 11-character video id from a YouTube URL. A bare id
// is returned unchanged; unrecognized input yields the empty string.
func YouTubeID(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if youtubeIDPattern.MatchString(raw) {
		return raw
	}

	for _, p := range youtubeURLPatterns {
		if m := p.FindStringSubmatch(raw); m != nil {
			return m[1]
		}
	}

	return ""
}

// GoogleMapEmbedURL turns a shared Google Maps link into an embeddable map
// URL. Three strategies apply in order: exact coordinates from an @lat,lng
// segment (zoom 17), the decoded place name from a /place/ segment, and a
// shop-name plus address text query for short links and anything else.
// Empty input yields the empty string.
func GoogleMapEmbedURL(raw, shopName, address string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if m := mapCoordinatesPattern.FindStringSubmatch(raw); m != nil {
		return fmt.Sprintf("https://maps.google.com/maps?q=%s,%s&z=17&output=embed", m[1], m[2])
	}

	if m := mapPlacePattern.FindStringSubmatch(raw); m != nil {
		name := m[1]
		if decoded, err := url.PathUnescape(name); err == nil {
			name = decoded
		}
		// maps URLs use + for spaces inside the place segment
		name = strings.ReplaceAll(name, "+", " ")

		return "https://maps.google.com/maps?q=" + url.QueryEscape(name) + "&output=embed"
	}

	query := strings.TrimSpace(shopName + " " + address)
	if query == "" && !isShortLink(raw) {
		query = raw
	}
	if query == "" {
		return ""
	}

	return "https://maps.google.com/maps?q=" + url.QueryEscape(query) + "&output=embed"
}

func isShortLink(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	host := strings.TrimPrefix(u.Hostname(), "www.")
	for _, h := range shortLinkHosts {
		if host == h {
			return true
		}
	}

	return false
}
