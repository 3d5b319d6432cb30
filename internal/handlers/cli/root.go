package cli

import (
	"go.uber.org/zap"

	"github.com/csouza/aliasmgr/internal/adapters/tomlconfig"
	"github.com/csouza/aliasmgr/internal/core/domain/shell"
	"github.com/csouza/aliasmgr/internal/core/ports"
	"github.com/csouza/aliasmgr/internal/core/services/aliasresolution"
	"github.com/spf13/cobra"
)

// App carries the wired dependencies of one CLI invocation. Log, Level,
// Prompter and Notifier are set by main; Shell, Repo and Resolver are
// wired in the root command's PersistentPreRunE, after flags are parsed
// and only for commands that actually touch the configuration.
type App struct {
	Version  string
	Log      *zap.SugaredLogger
	Level    zap.AtomicLevel
	Prompter ports.Prompter
	Notifier ports.ShellNotifier

	Shell    shell.Type
	Repo     ports.ConfigRepository
	Resolver ports.AliasResolutionService
}

// NewRootCommand creates the 'aliasmgr' root command with all
// subcommands attached.
func NewRootCommand(app *App) *cobra.Command {
	var verbose, quiet bool

	rootCmd := &cobra.Command{
		Use:   "aliasmgr",
		Short: "aliasmgr manages shell aliases from a single configuration file.",
		Long: `aliasmgr keeps your shell aliases in one configuration file, organizes
them into groups, and keeps the running shell session in sync without
restarting it. Source 'aliasmgr init' from your shell rc file to enable
live alias updates.`,
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				app.Level.SetLevel(zap.DebugLevel)
			}
			if quiet {
				app.Level.SetLevel(zap.ErrorLevel)
			}
			if !needsConfig(cmd) {
				return nil
			}
			app.Shell = shell.Determine(app.Log)
			path, err := tomlconfig.ResolvePath(app.Prompter.ConfirmMissingConfigFile)
			if err != nil {
				return err
			}
			app.Repo = tomlconfig.NewRepository(path, app.Log)
			app.Resolver = aliasresolution.NewService(app.Prompter, app.Shell, app.Log)
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only print errors")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.AddCommand(NewAddCommand(app))
	rootCmd.AddCommand(NewRemoveCommand(app))
	rootCmd.AddCommand(NewListCommand(app))
	rootCmd.AddCommand(NewEnableCommand(app))
	rootCmd.AddCommand(NewDisableCommand(app))
	rootCmd.AddCommand(NewRenameCommand(app))
	rootCmd.AddCommand(NewEditCommand(app))
	rootCmd.AddCommand(NewMoveCommand(app))
	rootCmd.AddCommand(NewSortCommand(app))
	rootCmd.AddCommand(NewSyncCommand(app))
	rootCmd.AddCommand(NewImportCommand(app))
	rootCmd.AddCommand(NewInitCommand())

	return rootCmd
}

// needsConfig reports whether the command reads or writes the alias
// configuration. init only renders a script and must never prompt.
func needsConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "init", "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}
