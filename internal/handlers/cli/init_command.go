package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/csouza/aliasmgr/internal/adapters/shellio"
	"github.com/csouza/aliasmgr/internal/core/domain/shell"
)

// NewInitCommand creates the 'init' subcommand. It only renders the
// initialization script; it never reads the configuration or prompts.
func NewInitCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "init (bash|zsh)",
		Short: "Print the shell initialization script.",
		Long: `Prints the script that wires aliasmgr into the shell. Add this to your
shell rc file:

  eval "$(aliasmgr init bash)"   # or zsh`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, err := shell.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), shellio.InitScript(sh, configPath))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Custom location of the configuration file")
	cmd.Flags().MarkHidden("config")

	return cmd
}
