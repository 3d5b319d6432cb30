package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/csouza/aliasmgr/internal/core/domain/alias"
	"github.com/csouza/aliasmgr/internal/core/services/aliasops"
	"github.com/csouza/aliasmgr/internal/handlers/ui"
)

// NewDisableCommand creates the 'disable' subcommand.
func NewDisableCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "disable NAME",
		Aliases: []string{"dis"},
		Short:   "Disable an alias or alias group.",
		Long: `Disables an alias. The alias stays in the configuration but is removed
from the running shell session and left out of future syncs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			out, err := app.runConfigOp(func(cfg *alias.Config) (aliasops.Outcome, error) {
				return app.Resolver.DisableAlias(cfg, name)
			})
			if err != nil {
				return err
			}
			if out.Kind == aliasops.KindNoChanges {
				fmt.Printf("Alias %s is already disabled.\n", ui.AliasNameColor(name))
			} else {
				fmt.Printf("%s %s\n", ui.SuccessColor("Disabled alias"), ui.AliasNameColor(name))
			}
			return nil
		},
	}

	groupCmd := &cobra.Command{
		Use:     "group NAME",
		Aliases: []string{"g"},
		Short:   "Disable all aliases in a group.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			out, err := app.runConfigOp(func(cfg *alias.Config) (aliasops.Outcome, error) {
				return app.Resolver.DisableGroup(cfg, name)
			})
			if err != nil {
				return err
			}
			if out.Kind == aliasops.KindNoChanges {
				fmt.Printf("Group %s is already disabled.\n", ui.GroupNameColor(name))
			} else {
				fmt.Printf("%s %s\n", ui.SuccessColor("Disabled group"), ui.GroupNameColor(name))
			}
			return nil
		},
	}

	cmd.AddCommand(groupCmd)
	return cmd
}
