// Package render provides the render command for linkified output.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/linkify-cli/internal/config"
	"github.com/open-cli-collective/linkify-cli/internal/textin"
	"github.com/open-cli-collective/linkify-cli/pkg/linkify"
	"github.com/open-cli-collective/linkify-cli/pkg/segment"

	"github.com/fatih/color"
)

type renderOptions struct {
	text string
	file string
	html bool

	format     string
	width      int
	widthSet   bool
	mentionURL string
	hashtagURL string

	noColor bool
}

// validRenderFormats are the output forms render understands.
var validRenderFormats = map[string]bool{
	"markdown": true,
	"html":     true,
	"term":     true,
}

// NewCmdRender creates the render command.
func NewCmdRender() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [text]",
		Short: "Render text with tappable links, mentions, and hashtags",
		Long: `Render free-form text with its URLs, @mentions, and #hashtags turned
into links.

Mention and hashtag destinations come from the configured templates
(run 'lnk init' to set them, or pass --mention-url / --hashtag-url).
Without a template, mentions and hashtags stay plain text. Long URLs
can be shortened for display with --width; the link destination is
never shortened.`,
		Example: `  # Colored terminal output
  lnk render "big night at https://ragestate.com with @djshadow #RAGE2025"

  # Markdown for embedding in a post
  lnk render --format markdown --file post.txt

  # HTML fragment with profile links
  lnk render --format html --mention-url "https://ragestate.com/u/{username}" "props @djshadow"

  # Shorten long URLs to 30 characters of display text
  lnk render --width 30 "https://ragestate.com/shop/products/very-long-product-handle-name"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.text = args[0]
			}
			opts.widthSet = cmd.Flags().Changed("width")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runRender(opts, nil, nil)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read input text from a file")
	cmd.Flags().BoolVar(&opts.html, "html", false, "Treat input as HTML and convert it before parsing")
	cmd.Flags().StringVar(&opts.format, "format", "term", "Output form: markdown, html, term")
	cmd.Flags().IntVarP(&opts.width, "width", "w", segment.DefaultTruncateLength, "URL display width, 0 to disable")
	cmd.Flags().StringVar(&opts.mentionURL, "mention-url", "", "Mention destination template with {username}")
	cmd.Flags().StringVar(&opts.hashtagURL, "hashtag-url", "", "Hashtag destination template with {tag}")

	return cmd
}

func runRender(opts *renderOptions, cfg *config.Config, w io.Writer) error {
	if !validRenderFormats[opts.format] {
		return fmt.Errorf("invalid format %q: must be one of markdown, html, term", opts.format)
	}

	if cfg == nil {
		cfg = config.LoadWithEnv(config.DefaultConfigPath())
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w (run 'lnk init' to reconfigure)", err)
	}

	text, err := textin.Source{Arg: opts.text, File: opts.file, HTML: opts.html}.Read()
	if err != nil {
		return err
	}

	// Flags win over config; an unset --width falls back to the
	// configured default.
	linkOpts := linkify.Options{
		MentionURL: opts.mentionURL,
		HashtagURL: opts.hashtagURL,
		Width:      opts.width,
	}
	if linkOpts.MentionURL == "" {
		linkOpts.MentionURL = cfg.MentionURL
	}
	if linkOpts.HashtagURL == "" {
		linkOpts.HashtagURL = cfg.HashtagURL
	}
	if !opts.widthSet && cfg.URLWidth > 0 {
		linkOpts.Width = cfg.URLWidth
	}

	if opts.noColor {
		color.NoColor = true
	}

	segs := segment.Parse(text)

	var out string
	switch opts.format {
	case "markdown":
		out = linkify.Markdown(segs, linkOpts)
	case "html":
		out, err = linkify.HTML(segs, linkOpts)
		if err != nil {
			return fmt.Errorf("failed to render HTML: %w", err)
		}
	default:
		out = linkify.Term(segs, linkOpts)
	}

	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintln(w, strings.TrimRight(out, "\n"))
	return nil
}
