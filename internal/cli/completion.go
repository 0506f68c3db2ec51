package cli

import (
	"fmt"
	"os"

	"github.com/kilupskalvis/qsolog/internal/config"
	"github.com/kilupskalvis/qsolog/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for qsolog.

To load completions:

Bash:
  $ source <(qsolog completion bash)
  # Or add to ~/.bashrc:
  $ echo 'source <(qsolog completion bash)' >> ~/.bashrc

Zsh:
  $ source <(qsolog completion zsh)
  # Or add to ~/.zshrc:
  $ echo 'source <(qsolog completion zsh)' >> ~/.zshrc

Fish:
  $ qsolog completion fish > ~/.config/fish/completions/qsolog.fish

PowerShell:
  PS> qsolog completion powershell | Out-String | Invoke-Expression
`,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		DisableFlagsInUseLine: true,
		Run: func(cmd *cobra.Command, args []string) {
			switch args[0] {
			case "bash":
				rootCmd.GenBashCompletionV2(os.Stdout, true)
			case "zsh":
				rootCmd.GenZshCompletion(os.Stdout)
			case "fish":
				rootCmd.GenFishCompletion(os.Stdout, true)
			case "powershell":
				rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
			}
		},
	})
}

// completeProfileIDs offers existing profile ids for commands taking <id>.
// It must not exit, so it opens the store directly instead of via initContext.
func completeProfileIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	st, err := store.New(cfg.DatabasePath())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	defer st.Close()

	profiles, err := st.ListProfiles()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	ids := make([]string, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, fmt.Sprintf("%d\t%s", p.ID, p.Label()))
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}
