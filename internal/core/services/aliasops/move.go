package aliasops

import "github.com/csouza/aliasmgr/internal/core/domain/alias"

// MoveAlias reassigns the alias to newGroup, or to the ungrouped set
// when newGroup is empty. A move alone never changes shell state, only
// future group enable/disable cascades and listing, so a successful
// move classifies as ConfigChanged.
func MoveAlias(cfg *alias.Config, name, newGroup string) (Outcome, error) {
	a, ok := cfg.Aliases.Get(name)
	if !ok {
		return NoChanges(), ErrAliasDoesNotExist
	}
	if newGroup != "" && !cfg.Groups.Has(newGroup) {
		return NoChanges(), ErrGroupDoesNotExist
	}
	if a.Group == newGroup {
		return NoChanges(), nil
	}

	a.Group = newGroup
	cfg.Aliases.Set(name, a)
	return ConfigChanged(), nil
}
