package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/csouza/aliasmgr/internal/core/domain/alias"
	"github.com/csouza/aliasmgr/internal/core/services/aliasops"
	"github.com/csouza/aliasmgr/internal/handlers/ui"
)

// NewRenameCommand creates the 'rename' subcommand.
func NewRenameCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rename OLD NEW",
		Aliases: []string{"rn"},
		Short:   "Rename an existing alias or alias group.",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			oldName, newName := args[0], args[1]
			_, err := app.runConfigOp(func(cfg *alias.Config) (aliasops.Outcome, error) {
				return app.Resolver.RenameAlias(cfg, oldName, newName)
			})
			if err != nil {
				return err
			}
			fmt.Printf("%s %s -> %s\n", ui.SuccessColor("Renamed alias"), ui.AliasNameColor(oldName), ui.AliasNameColor(newName))
			return nil
		},
	}

	cmd.AddCommand(newRenameGroupCommand(app))
	return cmd
}

func newRenameGroupCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "group OLD NEW",
		Aliases: []string{"g"},
		Short:   "Rename a group, keeping its aliases attached.",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			oldName, newName := args[0], args[1]
			_, err := app.runConfigOp(func(cfg *alias.Config) (aliasops.Outcome, error) {
				return app.Resolver.RenameGroup(cfg, oldName, newName)
			})
			if err != nil {
				return err
			}
			fmt.Printf("%s %s -> %s\n", ui.SuccessColor("Renamed group"), ui.GroupNameColor(oldName), ui.GroupNameColor(newName))
			return nil
		},
	}
	return cmd
}
