package ports

import (
	"github.com/csouza/aliasmgr/internal/core/domain/alias"
	"github.com/csouza/aliasmgr/internal/core/services/aliasops"
)

// AliasResolutionService is the single entry point the CLI uses to
// mutate a configuration. It wraps the core operations with bounded,
// single-retry recovery of name collisions and missing groups, driven by
// an injected Prompter. Every method returns the effect classification
// the caller must honor: Command means persist and forward the script to
// the shell, ConfigChanged means persist only, NoChanges means neither.
type AliasResolutionService interface {
	AddAlias(cfg *alias.Config, name string, a alias.Alias) (aliasops.Outcome, error)
	AddGroup(cfg *alias.Config, name string, enabled bool) (aliasops.Outcome, error)
	EditAlias(cfg *alias.Config, name string, a alias.Alias) (aliasops.Outcome, error)
	MoveAlias(cfg *alias.Config, name, newGroup string) (aliasops.Outcome, error)
	RemoveAliases(cfg *alias.Config, names []string) (aliasops.Outcome, error)
	RemoveGroup(cfg *alias.Config, name string, keepAliases bool) (aliasops.Outcome, error)
	RemoveAll(cfg *alias.Config) (aliasops.Outcome, error)
	RenameAlias(cfg *alias.Config, oldName, newName string) (aliasops.Outcome, error)
	RenameGroup(cfg *alias.Config, oldName, newName string) (aliasops.Outcome, error)
	EnableAlias(cfg *alias.Config, name string) (aliasops.Outcome, error)
	DisableAlias(cfg *alias.Config, name string) (aliasops.Outcome, error)
	EnableGroup(cfg *alias.Config, name string) (aliasops.Outcome, error)
	DisableGroup(cfg *alias.Config, name string) (aliasops.Outcome, error)
	SortAllAliases(cfg *alias.Config) (aliasops.Outcome, error)
	SortAliasesInGroup(cfg *alias.Config, group string) (aliasops.Outcome, error)
	SortGroups(cfg *alias.Config) (aliasops.Outcome, error)
	ImportAliases(cfg *alias.Config, entries []alias.PackEntry) (aliasops.Outcome, error)
	Sync(cfg *alias.Config) (aliasops.Outcome, error)
}
