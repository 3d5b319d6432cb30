package aliasops

import (
	"github.com/csouza/aliasmgr/internal/core/domain/alias"
	"github.com/csouza/aliasmgr/internal/core/domain/shell"
)

// RenameAlias moves the alias definition under a new key, preserving
// every field. Implemented as remove-then-reinsert, so the renamed
// alias takes the last position.
func RenameAlias(cfg *alias.Config, oldName, newName string, sh shell.Type) (Outcome, error) {
	a, ok := cfg.Aliases.Get(oldName)
	if !ok {
		return NoChanges(), ErrAliasDoesNotExist
	}
	if cfg.Aliases.Has(newName) {
		return NoChanges(), ErrAliasAlreadyExists
	}
	if err := validateAliasName(newName); err != nil {
		return NoChanges(), err
	}

	wasVisible := visible(cfg, a, sh)
	cfg.Aliases.Delete(oldName)
	cfg.Aliases.Set(newName, a)

	if wasVisible {
		return Command(UnaliasStatement(oldName) + "\n" + DefineStatement(newName, a)), nil
	}
	return ConfigChanged(), nil
}

// RenameGroup renames a group and repoints every member alias to the
// new name. Group names never reach the shell, so the result is always
// ConfigChanged.
func RenameGroup(cfg *alias.Config, oldName, newName string) (Outcome, error) {
	enabled, ok := cfg.Groups.Get(oldName)
	if !ok {
		return NoChanges(), ErrGroupDoesNotExist
	}
	if cfg.Groups.Has(newName) {
		return NoChanges(), ErrGroupAlreadyExists
	}

	cfg.Groups.Delete(oldName)
	cfg.Groups.Set(newName, enabled)

	for _, name := range cfg.Aliases.Keys() {
		a, _ := cfg.Aliases.Get(name)
		if a.Group == oldName {
			a.Group = newName
			cfg.Aliases.Set(name, a)
		}
	}
	return ConfigChanged(), nil
}
