package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdPowerShell creates the powershell completion command.
func NewCmdPowerShell() *cobra.Command {
	return &cobra.Command{
		Use:   "powershell",
		Short: "Generate PowerShell completion script",
		Long: `Generate PowerShell completion script for lnk.

To load completions in your current shell session:

  lnk completion powershell | Out-String | Invoke-Expression

To load completions for every new session, add the output of the above
command to your PowerShell profile.`,
		Example: `  # Load in current session
  lnk completion powershell | Out-String | Invoke-Expression

  # Install permanently
  lnk completion powershell >> $PROFILE`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
		},
	}
}
