// Package segment splits free-form social text into typed segments:
// plain text, URLs, @mentions, and #hashtags.
//
// The segments returned by Parse partition the input: every byte of the
// source string lands in exactly one segment, in source order, so
// concatenating the Content of all segments reconstructs the input.
// All functions are pure and safe for concurrent use.
package segment

import (
	"fmt"
	"regexp"
)

// Kind classifies a segment.
type Kind int

const (
	KindText    Kind = iota // plain text with no special meaning
	KindURL                 // http:// or https:// link
	KindMention             // @username reference
	KindHashtag             // #tag reference
)

// String returns the name of the segment kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindURL:
		return "url"
	case KindMention:
		return "mention"
	case KindHashtag:
		return "hashtag"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalJSON encodes the kind as its name rather than its numeric value.
func (k Kind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// Segment is one classified unit of parsed text.
//
// Content always holds the exact text to display. For URL segments the
// navigable address lives in URL; it equals Content today but callers
// must navigate with URL, never Content, since Content may be shortened
// for display downstream.
type Segment struct {
	Kind     Kind   `json:"kind"`
	Content  string `json:"content"`
	URL      string `json:"url,omitempty"`      // set when Kind == KindURL; cleaned, directly navigable
	Username string `json:"username,omitempty"` // set when Kind == KindMention; handle without the @
	Tag      string `json:"tag,omitempty"`      // set when Kind == KindHashtag; tag without the #
}

// pattern recognizes the three token classes in a single left-to-right
// alternation so matches surface in document order without a merge
// step. The scheme is case-insensitive; a URL body runs until
// whitespace, <, >, or ". Handles are 1-30 word characters, tags 1-50.
var pattern = regexp.MustCompile(`(?i:https?)://[^\s<>"]+|@[A-Za-z0-9_]{1,30}|#[A-Za-z0-9_]{1,50}`)

// Parse splits text into an ordered sequence of segments.
//
// Plain runs between matches become KindText segments. A raw URL match
// is cleaned first (see cleanURL); any trailing punctuation it swallowed
// is re-emitted as a KindText segment immediately after the URL so the
// partition stays lossless. Empty input yields an empty sequence, and a
// lone @ or # with no word characters after it is ordinary text.
func Parse(text string) []Segment {
	if text == "" {
		return nil
	}

	matches := pattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return []Segment{{Kind: KindText, Content: text}}
	}

	segs := make([]Segment, 0, 2*len(matches)+1)
	cursor := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if start > cursor {
			segs = append(segs, Segment{Kind: KindText, Content: text[cursor:start]})
		}

		raw := text[start:end]
		switch raw[0] {
		case '@':
			segs = append(segs, Segment{Kind: KindMention, Content: raw, Username: raw[1:]})
		case '#':
			segs = append(segs, Segment{Kind: KindHashtag, Content: raw, Tag: raw[1:]})
		default:
			cleaned, stripped := cleanURL(raw)
			segs = append(segs, Segment{Kind: KindURL, Content: cleaned, URL: cleaned})
			if stripped != "" {
				segs = append(segs, Segment{Kind: KindText, Content: stripped})
			}
		}
		cursor = end
	}

	if cursor < len(text) {
		segs = append(segs, Segment{Kind: KindText, Content: text[cursor:]})
	}
	return segs
}
