// Package completion provides shell completion generation commands.
package completion

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type shell struct {
	name    string
	install string
	gen     func(root *cobra.Command, w io.Writer) error
}

var shells = []shell{
	{
		name: "bash",
		install: `  # Load in current session
  source <(mdslides completion bash)

  # Install permanently (Linux)
  mdslides completion bash | sudo tee /etc/bash_completion.d/mdslides > /dev/null

  # Install permanently (macOS with Homebrew)
  mdslides completion bash > $(brew --prefix)/etc/bash_completion.d/mdslides`,
		gen: func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletion(w) },
	},
	{
		name: "zsh",
		install: `  # Enable completion if not already done
  echo "autoload -U compinit; compinit" >> ~/.zshrc

  # Install (Linux)
  mdslides completion zsh > "${fpath[1]}/_mdslides"

  # Install (macOS with Homebrew)
  mdslides completion zsh > $(brew --prefix)/share/zsh/site-functions/_mdslides`,
		gen: func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
	},
	{
		name: "fish",
		install: `  # Load in current session
  mdslides completion fish | source

  # Install permanently
  mdslides completion fish > ~/.config/fish/completions/mdslides.fish`,
		gen: func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	},
	{
		name: "powershell",
		install: `  # Load in current session
  mdslides completion powershell | Out-String | Invoke-Expression

  # Install permanently
  mdslides completion powershell >> $PROFILE`,
		gen: func(root *cobra.Command, w io.Writer) error { return root.GenPowerShellCompletionWithDesc(w) },
	},
}

// NewCmdCompletion creates the completion command.
func NewCmdCompletion() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for mdslides.

These scripts enable tab-completion for commands, flags, and arguments.
See each sub-command's help for installation instructions.`,
	}

	for _, s := range shells {
		cmd.AddCommand(newShellCmd(s))
	}

	return cmd
}

func newShellCmd(s shell) *cobra.Command {
	return &cobra.Command{
		Use:                   s.name,
		Short:                 fmt.Sprintf("Generate %s completion script", s.name),
		Long:                  fmt.Sprintf("Generate %s completion script for mdslides.", s.name),
		Example:               s.install,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.gen(cmd.Root(), cmd.OutOrStdout())
		},
	}
}
