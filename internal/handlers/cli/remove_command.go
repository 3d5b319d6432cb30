package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/csouza/aliasmgr/internal/core/domain/alias"
	"github.com/csouza/aliasmgr/internal/core/services/aliasops"
	"github.com/csouza/aliasmgr/internal/handlers/ui"
)

// NewRemoveCommand creates the 'remove' subcommand.
func NewRemoveCommand(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "remove NAME...",
		Aliases: []string{"rm"},
		Short:   "Remove aliases or an alias group.",
		Args: func(cmd *cobra.Command, args []string) error {
			if all && len(args) > 0 {
				return fmt.Errorf("cannot combine --all with alias names")
			}
			if !all && len(args) == 0 {
				return fmt.Errorf("requires at least one alias name, or --all")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := app.runConfigOp(func(cfg *alias.Config) (aliasops.Outcome, error) {
				if all {
					return app.Resolver.RemoveAll(cfg)
				}
				return app.Resolver.RemoveAliases(cfg, args)
			})
			if err != nil {
				return err
			}
			if all {
				fmt.Println(ui.SuccessColor("Removed all aliases and groups"))
			} else {
				fmt.Printf("%s %d alias(es)\n", ui.SuccessColor("Removed"), len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Remove all aliases and their groups")

	cmd.AddCommand(newRemoveGroupCommand(app))
	return cmd
}

func newRemoveGroupCommand(app *App) *cobra.Command {
	var keepAliases bool

	cmd := &cobra.Command{
		Use:     "group NAME",
		Aliases: []string{"g"},
		Short:   "Remove a group and its aliases.",
		Long: `Removes a group together with every alias in it. With --keep-aliases
the aliases survive and become ungrouped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			_, err := app.runConfigOp(func(cfg *alias.Config) (aliasops.Outcome, error) {
				return app.Resolver.RemoveGroup(cfg, name, keepAliases)
			})
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n", ui.SuccessColor("Removed group"), ui.GroupNameColor(name))
			return nil
		},
	}

	cmd.Flags().BoolVar(&keepAliases, "keep-aliases", false, "Keep the group's aliases as ungrouped aliases")
	return cmd
}
