package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/csouza/aliasmgr/internal/core/domain/alias"
	"github.com/csouza/aliasmgr/internal/core/services/aliasops"
	"github.com/csouza/aliasmgr/internal/handlers/ui"
)

// NewMoveCommand creates the 'move' subcommand.
func NewMoveCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "move NAME [GROUP]",
		Aliases: []string{"mv"},
		Short:   "Move an alias to another group.",
		Long: `Moves an alias into GROUP, asking to create the group when it does
not exist. Without GROUP the alias becomes ungrouped.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			group := ""
			if len(args) == 2 {
				group = args[1]
			}
			out, err := app.runConfigOp(func(cfg *alias.Config) (aliasops.Outcome, error) {
				return app.Resolver.MoveAlias(cfg, name, group)
			})
			if err != nil {
				return err
			}
			if out.Kind == aliasops.KindNoChanges {
				fmt.Println(ui.InfoColor("Nothing to change."))
			} else if group == "" {
				fmt.Printf("%s %s\n", ui.SuccessColor("Ungrouped alias"), ui.AliasNameColor(name))
			} else {
				fmt.Printf("%s %s -> %s\n", ui.SuccessColor("Moved alias"), ui.AliasNameColor(name), ui.GroupNameColor(group))
			}
			return nil
		},
	}
	return cmd
}
