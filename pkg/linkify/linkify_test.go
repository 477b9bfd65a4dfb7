package linkify

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/linkify-cli/pkg/segment"
)

func TestMarkdown_PlainTextPassthrough(t *testing.T) {
	segs := segment.Parse("no links here")
	assert.Equal(t, "no links here", Markdown(segs, Options{}))
}

func TestMarkdown_URL(t *testing.T) {
	segs := segment.Parse("see https://ragestate.com now")
	got := Markdown(segs, Options{})
	assert.Equal(t, "see [https://ragestate.com](https://ragestate.com) now", got)
}

func TestMarkdown_URLWidth(t *testing.T) {
	segs := segment.Parse("https://ragestate.com/shop/products/very-long-product-handle-name")
	got := Markdown(segs, Options{Width: 30})

	// Display text is shortened, destination is not.
	assert.Equal(t, "[ragestate.com/shop/products...](https://ragestate.com/shop/products/very-long-product-handle-name)", got)
}

func TestMarkdown_MentionTemplate(t *testing.T) {
	segs := segment.Parse("props to @djshadow")

	withTemplate := Markdown(segs, Options{MentionURL: "https://ragestate.com/u/{username}"})
	assert.Equal(t, "props to [@djshadow](https://ragestate.com/u/djshadow)", withTemplate)

	// Without a template the mention stays inert text.
	assert.Equal(t, "props to @djshadow", Markdown(segs, Options{}))
}

func TestMarkdown_HashtagTemplate(t *testing.T) {
	segs := segment.Parse("#RAGE2025 is here")

	got := Markdown(segs, Options{HashtagURL: "https://ragestate.com/tags/{tag}"})
	assert.Equal(t, "[#RAGE2025](https://ragestate.com/tags/RAGE2025) is here", got)

	assert.Equal(t, "#RAGE2025 is here", Markdown(segs, Options{}))
}

func TestHTML(t *testing.T) {
	segs := segment.Parse("see https://ragestate.com and @dj")

	got, err := HTML(segs, Options{MentionURL: "https://ragestate.com/u/{username}"})
	require.NoError(t, err)

	assert.Contains(t, got, `<a href="https://ragestate.com">https://ragestate.com</a>`)
	assert.Contains(t, got, `<a href="https://ragestate.com/u/dj">@dj</a>`)
}

func TestTerm_NoColor(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	input := "see https://ragestate.com with @dj at #rage"
	segs := segment.Parse(input)

	// With colors off the terminal form is just the original text.
	assert.Equal(t, input, Term(segs, Options{}))
}

func TestTerm_WidthShortensDisplay(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	segs := segment.Parse("https://ragestate.com/shop/products/very-long-product-handle-name")
	got := Term(segs, Options{Width: 30})
	assert.Equal(t, "ragestate.com/shop/products...", got)
}
