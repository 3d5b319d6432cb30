package aliasops

import (
	"github.com/csouza/aliasmgr/internal/core/domain/alias"
	"github.com/csouza/aliasmgr/internal/core/domain/shell"
)

// EditAlias replaces the alias stored under name wholesale. Callers
// wanting a partial edit must read the existing alias and merge fields
// themselves. The classification compares shell visibility before and
// after the replacement.
func EditAlias(cfg *alias.Config, name string, a alias.Alias, sh shell.Type) (Outcome, error) {
	old, ok := cfg.Aliases.Get(name)
	if !ok {
		return NoChanges(), ErrAliasDoesNotExist
	}
	if a.Global && !sh.SupportsGlobalAliases() {
		return NoChanges(), ErrUnsupportedGlobalAlias
	}
	if a.Group != "" && !cfg.Groups.Has(a.Group) {
		return NoChanges(), ErrGroupDoesNotExist
	}
	if old == a {
		return NoChanges(), nil
	}

	wasVisible := visible(cfg, old, sh)
	cfg.Aliases.Set(name, a)

	switch {
	case visible(cfg, a, sh):
		return Command(DefineStatement(name, a)), nil
	case wasVisible:
		return Command(UnaliasStatement(name)), nil
	default:
		return ConfigChanged(), nil
	}
}
