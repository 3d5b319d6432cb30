package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/csouza/aliasmgr/internal/core/domain/alias"
	"github.com/csouza/aliasmgr/internal/core/services/aliasops"
	"github.com/csouza/aliasmgr/internal/handlers/ui"
)

// NewEnableCommand creates the 'enable' subcommand.
func NewEnableCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "enable NAME",
		Aliases: []string{"en"},
		Short:   "Enable an alias or alias group.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			out, err := app.runConfigOp(func(cfg *alias.Config) (aliasops.Outcome, error) {
				return app.Resolver.EnableAlias(cfg, name)
			})
			if err != nil {
				return err
			}
			if out.Kind == aliasops.KindNoChanges {
				fmt.Printf("Alias %s is already enabled.\n", ui.AliasNameColor(name))
			} else {
				fmt.Printf("%s %s\n", ui.SuccessColor("Enabled alias"), ui.AliasNameColor(name))
			}
			return nil
		},
	}

	groupCmd := &cobra.Command{
		Use:     "group NAME",
		Aliases: []string{"g"},
		Short:   "Enable all aliases in a group.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			out, err := app.runConfigOp(func(cfg *alias.Config) (aliasops.Outcome, error) {
				return app.Resolver.EnableGroup(cfg, name)
			})
			if err != nil {
				return err
			}
			if out.Kind == aliasops.KindNoChanges {
				fmt.Printf("Group %s is already enabled.\n", ui.GroupNameColor(name))
			} else {
				fmt.Printf("%s %s\n", ui.SuccessColor("Enabled group"), ui.GroupNameColor(name))
			}
			return nil
		},
	}

	cmd.AddCommand(groupCmd)
	return cmd
}
