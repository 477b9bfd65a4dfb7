package segment

import "net/url"

// ExtractURLs returns the cleaned address of every URL in text, in
// order of appearance. Repeated addresses appear once per occurrence.
func ExtractURLs(text string) []string {
	var urls []string
	for _, seg := range Parse(text) {
		if seg.Kind == KindURL {
			urls = append(urls, seg.URL)
		}
	}
	return urls
}

// ExtractMentions returns every mentioned username in text, without the
// leading @, in order of appearance.
func ExtractMentions(text string) []string {
	var names []string
	for _, seg := range Parse(text) {
		if seg.Kind == KindMention {
			names = append(names, seg.Username)
		}
	}
	return names
}

// ExtractHashtags returns every hashtag in text, without the leading #,
// in order of appearance.
func ExtractHashtags(text string) []string {
	var tags []string
	for _, seg := range Parse(text) {
		if seg.Kind == KindHashtag {
			tags = append(tags, seg.Tag)
		}
	}
	return tags
}

// UniqueURLs is ExtractURLs with duplicates removed, first occurrence wins.
func UniqueURLs(text string) []string {
	return unique(ExtractURLs(text))
}

// UniqueMentions is ExtractMentions with duplicates removed, first
// occurrence wins.
func UniqueMentions(text string) []string {
	return unique(ExtractMentions(text))
}

// UniqueHashtags is ExtractHashtags with duplicates removed, first
// occurrence wins.
func UniqueHashtags(text string) []string {
	return unique(ExtractHashtags(text))
}

// unique removes duplicates while preserving first-occurrence order.
func unique(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// IsValidURL reports whether candidate parses as a structurally valid
// absolute URL with a scheme and host. Callers use it defensively
// before navigation.
func IsValidURL(candidate string) bool {
	u, err := url.Parse(candidate)
	return err == nil && u.Scheme != "" && u.Host != ""
}
