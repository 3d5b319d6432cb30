package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/csouza/aliasmgr/internal/core/domain/alias"
	"github.com/csouza/aliasmgr/internal/core/services/aliasops"
	"github.com/csouza/aliasmgr/internal/handlers/ui"
)

// NewEditCommand creates the 'edit' subcommand. Flags that are not set
// keep the alias's current values, so a single field can be changed
// without restating the rest.
func NewEditCommand(app *App) *cobra.Command {
	var command, group string
	var enable, disable, global bool

	cmd := &cobra.Command{
		Use:     "edit NAME",
		Aliases: []string{"ed"},
		Short:   "Edit an existing alias.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			out, err := app.runConfigOp(func(cfg *alias.Config) (aliasops.Outcome, error) {
				current, ok := cfg.Aliases.Get(name)
				if !ok {
					return aliasops.NoChanges(), fmt.Errorf("alias %q: %w", name, aliasops.ErrAliasDoesNotExist)
				}
				edited := current
				if cmd.Flags().Changed("command") {
					edited.Command = command
				}
				if cmd.Flags().Changed("group") {
					edited.Group = group
				}
				if enable {
					edited.Enabled = true
				}
				if disable {
					edited.Enabled = false
				}
				if cmd.Flags().Changed("global") {
					edited.Global = global
				}
				return app.Resolver.EditAlias(cfg, name, edited)
			})
			if err != nil {
				return err
			}
			if out.Kind == aliasops.KindNoChanges {
				fmt.Println(ui.InfoColor("Nothing to change."))
			} else {
				fmt.Printf("%s %s\n", ui.SuccessColor("Updated alias"), ui.AliasNameColor(name))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&command, "command", "c", "", "Replacement command")
	cmd.Flags().StringVarP(&group, "group", "g", "", `Move the alias to GROUP ("" to ungroup)`)
	cmd.Flags().BoolVar(&enable, "enable", false, "Enable the alias")
	cmd.Flags().BoolVar(&disable, "disable", false, "Disable the alias")
	cmd.Flags().BoolVar(&global, "global", false, "Mark the alias global (--global=false to unmark)")
	cmd.MarkFlagsMutuallyExclusive("enable", "disable")

	return cmd
}
