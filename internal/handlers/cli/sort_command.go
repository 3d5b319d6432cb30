package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/csouza/aliasmgr/internal/core/domain/alias"
	"github.com/csouza/aliasmgr/internal/core/services/aliasops"
	"github.com/csouza/aliasmgr/internal/handlers/ui"
)

// NewSortCommand creates the 'sort' subcommand.
func NewSortCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort aliases or groups in the configuration file.",
	}

	cmd.AddCommand(newSortAliasesCommand(app))
	cmd.AddCommand(newSortGroupsCommand(app))
	return cmd
}

func newSortAliasesCommand(app *App) *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:     "aliases",
		Aliases: []string{"a"},
		Short:   "Sort aliases by name.",
		Long: `Sorts all aliases by name. With --group only that group's aliases are
sorted, in place, leaving every other entry where it is. An empty
--group value sorts the ungrouped aliases.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := app.runConfigOp(func(cfg *alias.Config) (aliasops.Outcome, error) {
				if !cmd.Flags().Changed("group") {
					return app.Resolver.SortAllAliases(cfg)
				}
				return app.Resolver.SortAliasesInGroup(cfg, group)
			})
			if err != nil {
				return err
			}
			fmt.Println(ui.SuccessColor("Sorted aliases"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", "", `Sort aliases in GROUP ("" for ungrouped aliases)`)
	return cmd
}

func newSortGroupsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "groups",
		Aliases: []string{"g"},
		Short:   "Sort groups by name.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := app.runConfigOp(func(cfg *alias.Config) (aliasops.Outcome, error) {
				return app.Resolver.SortGroups(cfg)
			})
			if err != nil {
				return err
			}
			fmt.Println(ui.SuccessColor("Sorted groups"))
			return nil
		},
	}
	return cmd
}
