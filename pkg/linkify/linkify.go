// Package linkify turns parsed segments into linkified output:
// markdown, HTML, or colored terminal text.
package linkify

import (
	"bytes"
	"strings"

	"github.com/fatih/color"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/open-cli-collective/linkify-cli/pkg/segment"
)

// Options control how typed segments become links.
type Options struct {
	// MentionURL is a destination template for mentions; {username} is
	// replaced with the bare handle. When empty, mentions render as
	// plain text.
	MentionURL string

	// HashtagURL is a destination template for hashtags; {tag} is
	// replaced with the bare tag. When empty, hashtags render as
	// plain text.
	HashtagURL string

	// Width shortens displayed URL text to this many characters.
	// Zero disables shortening. The link destination is never shortened.
	Width int
}

func (o Options) mentionHref(username string) string {
	return strings.ReplaceAll(o.MentionURL, "{username}", username)
}

func (o Options) hashtagHref(tag string) string {
	return strings.ReplaceAll(o.HashtagURL, "{tag}", tag)
}

func (o Options) urlText(seg segment.Segment) string {
	if o.Width > 0 {
		return segment.TruncateURL(seg.Content, o.Width)
	}
	return seg.Content
}

// Markdown renders segments as a markdown fragment with inline links.
// Text segments pass through verbatim.
func Markdown(segs []segment.Segment, opts Options) string {
	var b strings.Builder
	for _, seg := range segs {
		switch seg.Kind {
		case segment.KindURL:
			b.WriteString("[" + opts.urlText(seg) + "](" + seg.URL + ")")
		case segment.KindMention:
			if opts.MentionURL == "" {
				b.WriteString(seg.Content)
				break
			}
			b.WriteString("[" + seg.Content + "](" + opts.mentionHref(seg.Username) + ")")
		case segment.KindHashtag:
			if opts.HashtagURL == "" {
				b.WriteString(seg.Content)
				break
			}
			b.WriteString("[" + seg.Content + "](" + opts.hashtagHref(seg.Tag) + ")")
		default:
			b.WriteString(seg.Content)
		}
	}
	return b.String()
}

// htmlConverter is a pre-configured goldmark instance shared by HTML.
// The markdown form already carries explicit links, so no autolink
// extension is needed; Strikethrough keeps ~~struck~~ post text intact.
var htmlConverter = goldmark.New(
	goldmark.WithExtensions(extension.Strikethrough),
)

// HTML renders segments as an HTML fragment by converting their
// markdown form with goldmark.
func HTML(segs []segment.Segment, opts Options) (string, error) {
	var buf bytes.Buffer
	if err := htmlConverter.Convert([]byte(Markdown(segs, opts)), &buf); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

var (
	urlColor     = color.New(color.FgBlue, color.Underline)
	mentionColor = color.New(color.FgCyan)
	hashtagColor = color.New(color.FgMagenta)
)

// Term renders segments as ANSI-colored terminal text. Coloring honors
// the global color.NoColor switch.
func Term(segs []segment.Segment, opts Options) string {
	var b strings.Builder
	for _, seg := range segs {
		switch seg.Kind {
		case segment.KindURL:
			b.WriteString(urlColor.Sprint(opts.urlText(seg)))
		case segment.KindMention:
			b.WriteString(mentionColor.Sprint(seg.Content))
		case segment.KindHashtag:
			b.WriteString(hashtagColor.Sprint(seg.Content))
		default:
			b.WriteString(seg.Content)
		}
	}
	return b.String()
}
