package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/posthop/pkg/generate"
	"github.com/matzehuels/posthop/pkg/route"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for posthop, including algorithm and
policy names for flag values.

To load completions:

Bash:
  $ source <(posthop completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ posthop completion bash > /etc/bash_completion.d/posthop
  # macOS:
  $ posthop completion bash > $(brew --prefix)/etc/bash_completion.d/posthop

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ posthop completion zsh > "${fpath[1]}/_posthop"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ posthop completion fish | source

  # To load completions for each session, execute once:
  $ posthop completion fish > ~/.config/fish/completions/posthop.fish

PowerShell:
  PS> posthop completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> posthop completion powershell > posthop.ps1
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

// completeAlgorithms offers the canonical algorithm names and their aliases.
func completeAlgorithms(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, a := range route.Algorithms() {
		out = append(out, string(a)+"\t"+a.Label())
	}
	out = append(out, "bf\tBrute Force", "dc\tDivide and Conquer", "dp\tDynamic Programming")
	return out, cobra.ShellCompDirectiveNoFileComp
}

// completePolicies offers the generation policy names.
func completePolicies(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, p := range generate.Policies() {
		out = append(out, p.String())
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
