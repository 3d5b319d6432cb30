package aliasops

import (
	"github.com/csouza/aliasmgr/internal/core/domain/alias"
	"github.com/csouza/aliasmgr/internal/core/domain/shell"
)

// AddAlias inserts a new alias under name. It fails with
// ErrAliasAlreadyExists when the name is taken and ErrGroupDoesNotExist
// when the alias references an absent group.
func AddAlias(cfg *alias.Config, name string, a alias.Alias, sh shell.Type) (Outcome, error) {
	if err := validateAliasName(name); err != nil {
		return NoChanges(), err
	}
	if a.Global && !sh.SupportsGlobalAliases() {
		return NoChanges(), ErrUnsupportedGlobalAlias
	}
	if cfg.Aliases.Has(name) {
		return NoChanges(), ErrAliasAlreadyExists
	}
	if a.Group != "" && !cfg.Groups.Has(a.Group) {
		return NoChanges(), ErrGroupDoesNotExist
	}

	cfg.Aliases.Set(name, a)
	if visible(cfg, a, sh) {
		return Command(DefineStatement(name, a)), nil
	}
	return ConfigChanged(), nil
}

// AddGroup inserts a new group. Groups alone are never shell-visible.
func AddGroup(cfg *alias.Config, name string, enabled bool) (Outcome, error) {
	if cfg.Groups.Has(name) {
		return NoChanges(), ErrGroupAlreadyExists
	}
	cfg.Groups.Set(name, enabled)
	return ConfigChanged(), nil
}
