package cli

import (
	"fmt"
	"os"
	"path"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/csouza/aliasmgr/internal/core/services/aliasops"
	"github.com/csouza/aliasmgr/internal/handlers/ui"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(app *App) *cobra.Command {
	var group string
	var enabled, disabled, global bool

	cmd := &cobra.Command{
		Use:     "list [PATTERN]",
		Aliases: []string{"ls"},
		Short:   "List aliases.",
		Long: `Lists aliases in configuration file order. PATTERN is a glob matched
against alias names. Filters combine: --group narrows to one group
("" for ungrouped aliases), --enabled and --disabled filter by the
effective state, which accounts for the owning group.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := ""
			if len(args) == 1 {
				pattern = args[0]
			}
			cfg, err := app.Repo.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("group") && group != "" && !cfg.Groups.Has(group) {
				return fmt.Errorf("group %q: %w", group, aliasops.ErrGroupDoesNotExist)
			}

			var rows [][]string
			for _, name := range cfg.Aliases.Keys() {
				a, _ := cfg.Aliases.Get(name)
				if pattern != "" {
					match, err := path.Match(pattern, name)
					if err != nil {
						return fmt.Errorf("invalid pattern %q: %w", pattern, err)
					}
					if !match {
						continue
					}
				}
				if cmd.Flags().Changed("group") && a.Group != group {
					continue
				}
				effective := a.Enabled && cfg.GroupEnabled(a.Group)
				if enabled && !effective {
					continue
				}
				if disabled && effective {
					continue
				}
				if global && !a.Global {
					continue
				}
				rows = append(rows, []string{
					ui.AliasNameColor(name),
					ui.AliasCmdColor(a.Command),
					ui.DetailColor(a.Group),
					stateCell(effective),
					stateCell(a.Global),
				})
			}

			if len(rows) == 0 {
				fmt.Println(ui.InfoColor("No aliases found."))
				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Alias", "Command", "Group", "Enabled", "Global"})
			table.SetBorder(true)
			table.SetColumnAlignment([]int{
				tablewriter.ALIGN_LEFT,
				tablewriter.ALIGN_LEFT,
				tablewriter.ALIGN_LEFT,
				tablewriter.ALIGN_CENTER,
				tablewriter.ALIGN_CENTER,
			})
			for _, row := range rows {
				table.Append(row)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", "", `List aliases in GROUP ("" for ungrouped aliases)`)
	cmd.Flags().BoolVarP(&enabled, "enabled", "e", false, "List only effectively enabled aliases")
	cmd.Flags().BoolVarP(&disabled, "disabled", "d", false, "List only effectively disabled aliases")
	cmd.Flags().BoolVar(&global, "global", false, "List only global aliases")
	cmd.MarkFlagsMutuallyExclusive("enabled", "disabled")

	return cmd
}

func stateCell(on bool) string {
	if on {
		return ui.SuccessColor("yes")
	}
	return ui.DetailColor("no")
}
