package segment

import (
	"net/url"
	"strings"
)

// DefaultTruncateLength is the display width TruncateURL callers use
// when they have no preference of their own.
const DefaultTruncateLength = 40

// TruncateURL shortens a URL for display while keeping the host
// visible. A URL within maxLen is returned unchanged. Otherwise the
// URL is parsed, a leading www. is dropped from the host, and the
// result is host plus as much of the path, query, and fragment as fits
// within maxLen, ending in "...". When the host alone does not fit, or
// the URL does not parse, the result is a flat prefix ending in "...".
//
// The result is cosmetic only; navigation must always use the full URL.
func TruncateURL(raw string, maxLen int) string {
	if len(raw) <= maxLen {
		return raw
	}
	if maxLen <= 3 {
		if maxLen <= 0 {
			return ""
		}
		return raw[:maxLen]
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw[:maxLen-3] + "..."
	}

	host := strings.TrimPrefix(u.Host, "www.")
	if len(host) > maxLen-3 {
		return raw[:maxLen-3] + "..."
	}

	tail := u.Path
	if u.RawQuery != "" {
		tail += "?" + u.RawQuery
	}
	if u.Fragment != "" {
		tail += "#" + u.Fragment
	}
	if avail := maxLen - 3 - len(host); len(tail) > avail {
		tail = tail[:avail]
	}
	return host + tail + "..."
}
