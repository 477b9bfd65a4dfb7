// Package parse provides the parse command for inspecting text segments.
package parse

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/linkify-cli/internal/textin"
	"github.com/open-cli-collective/linkify-cli/internal/view"
	"github.com/open-cli-collective/linkify-cli/pkg/segment"
)

type parseOptions struct {
	text string
	file string
	html bool

	output  string
	noColor bool
}

// NewCmdParse creates the parse command.
func NewCmdParse() *cobra.Command {
	opts := &parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse [text]",
		Short: "Split text into typed segments",
		Long: `Split free-form text into typed segments: plain text, URLs,
@mentions, and #hashtags.

Text comes from the positional argument, --file, or stdin. Each segment
row shows its kind, the exact source content, and the extracted target
(the cleaned URL, the bare username, or the bare tag).`,
		Example: `  # Parse a post body
  lnk parse "Check out https://ragestate.com with @djshadow!"

  # Parse a file
  lnk parse --file post.txt

  # Parse stdin as JSON for scripting
  cat post.txt | lnk parse -o json

  # Parse a post stored as HTML
  lnk parse --html --file post.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.text = args[0]
			}
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runParse(opts, nil)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read input text from a file")
	cmd.Flags().BoolVar(&opts.html, "html", false, "Treat input as HTML and convert it before parsing")

	return cmd
}

func runParse(opts *parseOptions, w io.Writer) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	text, err := textin.Source{Arg: opts.text, File: opts.file, HTML: opts.html}.Read()
	if err != nil {
		return err
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if w != nil {
		renderer.SetWriter(w)
	}

	segs := segment.Parse(text)

	// JSON callers get the full segment objects, not the table rows.
	if opts.output == string(view.FormatJSON) {
		if segs == nil {
			segs = []segment.Segment{}
		}
		return renderer.RenderJSON(segs)
	}

	if len(segs) == 0 {
		renderer.RenderText("No segments.")
		return nil
	}

	headers := []string{"KIND", "CONTENT", "TARGET"}
	rows := make([][]string, 0, len(segs))
	for _, seg := range segs {
		rows = append(rows, []string{seg.Kind.String(), seg.Content, segTarget(seg)})
	}
	return renderer.RenderTable(headers, rows)
}

// segTarget returns the navigable value of a typed segment.
func segTarget(seg segment.Segment) string {
	switch seg.Kind {
	case segment.KindURL:
		return seg.URL
	case segment.KindMention:
		return seg.Username
	case segment.KindHashtag:
		return seg.Tag
	default:
		return ""
	}
}
