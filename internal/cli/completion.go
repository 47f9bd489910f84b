package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// newCompletionCmd creates the completion command for generating shell completions.
func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for adproof.

To load completions:

Bash:
  $ source <(adproof completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ adproof completion bash > /etc/bash_completion.d/adproof
  # macOS:
  $ adproof completion bash > $(brew --prefix)/etc/bash_completion.d/adproof

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ adproof completion zsh > "${fpath[1]}/_adproof"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ adproof completion fish | source

  # To load completions for each session, execute once:
  $ adproof completion fish > ~/.config/fish/completions/adproof.fish

PowerShell:
  PS> adproof completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> adproof completion powershell > adproof.ps1
  # and source this file from your PowerShell profile.
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
