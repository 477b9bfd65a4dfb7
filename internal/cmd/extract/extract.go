// Package extract provides commands for pulling URLs, mentions, and
// hashtags out of text.
package extract

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/linkify-cli/internal/textin"
	"github.com/open-cli-collective/linkify-cli/internal/view"
	"github.com/open-cli-collective/linkify-cli/pkg/segment"
)

type extractOptions struct {
	text   string
	file   string
	html   bool
	unique bool

	output  string
	noColor bool
}

// NewCmdExtract creates the extract command.
func NewCmdExtract() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract URLs, mentions, or hashtags from text",
		Long: `Commands for extracting one class of token from free-form text.

Values are printed in order of appearance; pass --unique to keep only
the first occurrence of each value.`,
	}

	cmd.AddCommand(newSubcommand("urls", "URL",
		"Extract cleaned URLs from text",
		segment.ExtractURLs, segment.UniqueURLs))
	cmd.AddCommand(newSubcommand("mentions", "USERNAME",
		"Extract mentioned usernames from text",
		segment.ExtractMentions, segment.UniqueMentions))
	cmd.AddCommand(newSubcommand("tags", "TAG",
		"Extract hashtags from text",
		segment.ExtractHashtags, segment.UniqueHashtags))

	return cmd
}

// newSubcommand builds one extraction subcommand around an accessor
// pair: every occurrence, and first occurrences only.
func newSubcommand(use, header, short string, all, uniq func(string) []string) *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   use + " [text]",
		Short: short,
		Example: `  # One value per line
  lnk extract ` + use + ` "tickets https://ragestate.com @dj #rage" -o plain

  # Deduplicated, as JSON
  lnk extract ` + use + ` --unique -o json --file post.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.text = args[0]
			}
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runExtract(opts, header, all, uniq, nil)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read input text from a file")
	cmd.Flags().BoolVar(&opts.html, "html", false, "Treat input as HTML and convert it before parsing")
	cmd.Flags().BoolVarP(&opts.unique, "unique", "u", false, "Drop repeated values, keeping first occurrences")

	return cmd
}

func runExtract(opts *extractOptions, header string, all, uniq func(string) []string, w io.Writer) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	text, err := textin.Source{Arg: opts.text, File: opts.file, HTML: opts.html}.Read()
	if err != nil {
		return err
	}

	values := all(text)
	if opts.unique {
		values = uniq(text)
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if w != nil {
		renderer.SetWriter(w)
	}

	if len(values) == 0 && opts.output != string(view.FormatJSON) {
		renderer.RenderText("No matches.")
		return nil
	}
	return renderer.RenderValues(header, values)
}
