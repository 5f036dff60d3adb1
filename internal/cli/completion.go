package cli

import (
	"github.com/spf13/cobra"
)

// documentExtensions are the file extensions offered when completing a
// document argument.
var documentExtensions = []string{"toml", "yaml", "yml", "json"}

// completeDocument completes the single document argument of layout, render
// and inspect to layout files.
func completeDocument(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return documentExtensions, cobra.ShellCompDirectiveFilterFileExt
}

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for flexlayout.

Document arguments of layout, render and inspect complete to .toml, .yaml,
.yml and .json files; --engine and --convention complete to their values.

Bash:
  $ source <(flexlayout completion bash)

Zsh:
  $ flexlayout completion zsh > "${fpath[1]}/_flexlayout"

Fish:
  $ flexlayout completion fish > ~/.config/fish/completions/flexlayout.fish

PowerShell:
  PS> flexlayout completion powershell | Out-String | Invoke-Expression

Then, for example:
  $ flexlayout layout examples/<TAB>
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return cmd
}
