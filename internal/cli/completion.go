package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand generates shell completion scripts, covering the drawing
// subcommand tree and the persistent --drawing/--host flags.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for cadkit.

Bash:
  $ source <(cadkit completion bash)
  # Or install permanently:
  $ cadkit completion bash > /etc/bash_completion.d/cadkit

Zsh:
  $ cadkit completion zsh > "${fpath[1]}/_cadkit"
  # Requires compinit; enable once with:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

Fish:
  $ cadkit completion fish > ~/.config/fish/completions/cadkit.fish

PowerShell:
  PS> cadkit completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletion(os.Stdout)
			case "zsh":
				return root.GenZshCompletion(os.Stdout)
			case "fish":
				return root.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}
