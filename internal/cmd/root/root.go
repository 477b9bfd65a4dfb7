// Package root provides the root command for the lnk CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/linkify-cli/internal/cmd/completion"
	"github.com/open-cli-collective/linkify-cli/internal/cmd/extract"
	"github.com/open-cli-collective/linkify-cli/internal/cmd/initcmd"
	"github.com/open-cli-collective/linkify-cli/internal/cmd/parse"
	"github.com/open-cli-collective/linkify-cli/internal/cmd/render"
	"github.com/open-cli-collective/linkify-cli/internal/version"
)

// NewCmdRoot creates the root command for lnk.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lnk",
		Short: "Segment social text into links, mentions, and hashtags",
		Long: `lnk splits free-form text (post bodies, comments, bios) into typed
segments: plain text, URLs, @mentions, and #hashtags.

It can list the segments, extract one token class, or render the text
with each token turned into a link. URL matches are cleaned of trailing
sentence punctuation so the address is always directly navigable.

Get started by running: lnk parse "hello @world"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/lnk/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "table", "output format: table, json, plain")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	// Set version template
	cmd.SetVersionTemplate("lnk version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(parse.NewCmdParse())
	cmd.AddCommand(extract.NewCmdExtract())
	cmd.AddCommand(render.NewCmdRender())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
