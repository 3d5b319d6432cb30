package cli

import (
	"github.com/spf13/cobra"

	"github.com/csouza/aliasmgr/internal/core/domain/alias"
	"github.com/csouza/aliasmgr/internal/core/services/aliasops"
)

// NewSyncCommand creates the 'sync' subcommand. It regenerates the full
// alias script from the configuration and delivers it to the shell,
// replacing whatever aliases the session had.
func NewSyncCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Synchronize the shell session with the configuration file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := app.runConfigOp(func(cfg *alias.Config) (aliasops.Outcome, error) {
				return app.Resolver.Sync(cfg)
			})
			return err
		},
	}
	return cmd
}
