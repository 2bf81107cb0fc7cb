package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for netmat.

To load completions:

Bash:
  $ source <(netmat completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ netmat completion bash > /etc/bash_completion.d/netmat
  # macOS:
  $ netmat completion bash > $(brew --prefix)/etc/bash_completion.d/netmat

Zsh:
  $ netmat completion zsh > "${fpath[1]}/_netmat"

Fish:
  $ netmat completion fish | source

  # To load completions for each session, execute once:
  $ netmat completion fish > ~/.config/fish/completions/netmat.fish

PowerShell:
  PS> netmat completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
	return cmd
}
