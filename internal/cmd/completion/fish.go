package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdFish creates the fish completion command.
func NewCmdFish() *cobra.Command {
	return &cobra.Command{
		Use:   "fish",
		Short: "Generate fish completion script",
		Long: `Generate fish completion script for lnk.

To load completions in your current shell session:

  lnk completion fish | source

To load completions for every new session:

  lnk completion fish > ~/.config/fish/completions/lnk.fish`,
		Example: `  # Load in current session
  lnk completion fish | source

  # Install permanently
  lnk completion fish > ~/.config/fish/completions/lnk.fish`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
		},
	}
}
