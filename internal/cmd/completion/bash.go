package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdBash creates the bash completion command.
func NewCmdBash() *cobra.Command {
	return &cobra.Command{
		Use:   "bash",
		Short: "Generate bash completion script",
		Long: `Generate bash completion script for lnk.

To load completions in your current shell session:

  source <(lnk completion bash)

To load completions for every new session:

  # Linux
  lnk completion bash > /etc/bash_completion.d/lnk

  # macOS (requires bash-completion)
  lnk completion bash > $(brew --prefix)/etc/bash_completion.d/lnk`,
		Example: `  # Load in current session
  source <(lnk completion bash)

  # Install permanently (Linux)
  lnk completion bash | sudo tee /etc/bash_completion.d/lnk > /dev/null

  # Install permanently (macOS with Homebrew)
  lnk completion bash > $(brew --prefix)/etc/bash_completion.d/lnk`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
		},
	}
}
