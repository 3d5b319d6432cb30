package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/csouza/aliasmgr/internal/adapters/aliaspacks"
	"github.com/csouza/aliasmgr/internal/core/domain/alias"
	"github.com/csouza/aliasmgr/internal/core/services/aliasops"
	"github.com/csouza/aliasmgr/internal/handlers/ui"
)

// NewImportCommand creates the 'import' subcommand.
func NewImportCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import aliases from a YAML alias pack.",
		Long: `Reads a YAML file of alias definitions and adds each one through the
usual add flow, so existing names and missing groups are resolved
interactively.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := aliaspacks.NewYAMLProvider(args[0])
			if err != nil {
				return err
			}
			entries, err := provider.GetPredefinedAliases()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println(ui.InfoColor("Alias pack is empty, nothing to import."))
				return nil
			}
			_, err = app.runConfigOp(func(cfg *alias.Config) (aliasops.Outcome, error) {
				return app.Resolver.ImportAliases(cfg, entries)
			})
			if err != nil {
				return err
			}
			fmt.Printf("%s %d alias(es) from %s\n", ui.SuccessColor("Imported"), len(entries), args[0])
			return nil
		},
	}
	return cmd
}
