// Package initcmd provides the init command for lnk.
package initcmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/linkify-cli/internal/config"
)

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	var (
		mentionURL string
		hashtagURL string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize lnk configuration",
		Long: `Initialize lnk with your link destination templates and defaults.

Mention and hashtag templates decide where rendered links point. They
use the {username} and {tag} placeholders, for example:

  https://ragestate.com/u/{username}
  https://ragestate.com/tags/{tag}

Leave a template empty to render that token class as plain text. The
configuration is saved to ~/.config/lnk/config.yml.`,
		Example: `  # Interactive setup
  lnk init

  # Pre-populate the mention template
  lnk init --mention-url "https://ragestate.com/u/{username}"`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(mentionURL, hashtagURL)
		},
	}

	cmd.Flags().StringVar(&mentionURL, "mention-url", "", "Mention destination template with {username}")
	cmd.Flags().StringVar(&hashtagURL, "hashtag-url", "", "Hashtag destination template with {tag}")

	return cmd
}

func runInit(prefillMention, prefillHashtag string) error {
	configPath := config.DefaultConfigPath()

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Initialization cancelled.")
			return nil
		}
	}

	cfg := &config.Config{
		MentionURL: prefillMention,
		HashtagURL: prefillHashtag,
	}
	width := "0"

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Mention URL template").
				Description("Where mention links point; empty keeps mentions plain").
				Placeholder("https://ragestate.com/u/{username}").
				Value(&cfg.MentionURL).
				Validate(validateTemplate("{username}")),

			huh.NewInput().
				Title("Hashtag URL template").
				Description("Where hashtag links point; empty keeps hashtags plain").
				Placeholder("https://ragestate.com/tags/{tag}").
				Value(&cfg.HashtagURL).
				Validate(validateTemplate("{tag}")),

			huh.NewSelect[string]().
				Title("Default output format").
				Options(
					huh.NewOption("table", "table"),
					huh.NewOption("json", "json"),
					huh.NewOption("plain", "plain"),
				).
				Value(&cfg.OutputFormat),

			huh.NewInput().
				Title("URL display width").
				Description("Shorten rendered URLs to this many characters; 0 disables").
				Value(&width).
				Validate(func(s string) error {
					_, err := parseWidth(s)
					return err
				}),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("setup cancelled: %w", err)
	}

	cfg.URLWidth, _ = parseWidth(width)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Printf("Configuration saved to %s\n", configPath)
	return nil
}

// validateTemplate accepts an empty value or one containing placeholder.
func validateTemplate(placeholder string) func(string) error {
	return func(s string) error {
		if s != "" && !strings.Contains(s, placeholder) {
			return fmt.Errorf("template must contain %s", placeholder)
		}
		return nil
	}
}

// parseWidth parses a non-negative display width. Empty means zero.
func parseWidth(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	width, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("width must be a number")
	}
	if width < 0 {
		return 0, fmt.Errorf("width must not be negative")
	}
	return width, nil
}
