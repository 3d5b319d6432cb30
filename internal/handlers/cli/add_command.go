package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/csouza/aliasmgr/internal/core/domain/alias"
	"github.com/csouza/aliasmgr/internal/core/services/aliasops"
	"github.com/csouza/aliasmgr/internal/handlers/ui"
)

// NewAddCommand creates the 'add' subcommand.
func NewAddCommand(app *App) *cobra.Command {
	var group string
	var disabled, global bool

	cmd := &cobra.Command{
		Use:     "add NAME COMMAND",
		Aliases: []string{"a"},
		Short:   "Add a new alias or alias group.",
		Long: `Adds a new alias to the configuration and defines it in the running
shell session. If the alias already exists you are asked whether to
overwrite it; if the target group does not exist you are asked whether
to create it.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			a := alias.New(args[1], group, !disabled, global)
			out, err := app.runConfigOp(func(cfg *alias.Config) (aliasops.Outcome, error) {
				return app.Resolver.AddAlias(cfg, name, a)
			})
			if err != nil {
				return err
			}
			if out.Kind != aliasops.KindNoChanges {
				fmt.Printf("%s %s\n", ui.SuccessColor("Saved alias"), ui.AliasNameColor(name))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", "", "Add the alias to GROUP")
	cmd.Flags().BoolVar(&disabled, "disabled", false, "Create the alias disabled")
	cmd.Flags().BoolVar(&global, "global", false, "Create a global alias (zsh only)")

	cmd.AddCommand(newAddGroupCommand(app))
	return cmd
}

func newAddGroupCommand(app *App) *cobra.Command {
	var disabled bool

	cmd := &cobra.Command{
		Use:     "group NAME",
		Aliases: []string{"g"},
		Short:   "Create a new alias group.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			_, err := app.runConfigOp(func(cfg *alias.Config) (aliasops.Outcome, error) {
				return app.Resolver.AddGroup(cfg, name, !disabled)
			})
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n", ui.SuccessColor("Created group"), ui.GroupNameColor(name))
			return nil
		},
	}

	cmd.Flags().BoolVar(&disabled, "disabled", false, "Create the group disabled")
	return cmd
}
