package aliasops

import (
	"github.com/csouza/aliasmgr/internal/core/domain/alias"
	"github.com/csouza/aliasmgr/internal/core/domain/shell"
)

// RemoveAlias deletes the named alias. The alias's entry position is
// given up; later entries shift forward.
func RemoveAlias(cfg *alias.Config, name string, sh shell.Type) (Outcome, error) {
	a, ok := cfg.Aliases.Get(name)
	if !ok {
		return NoChanges(), ErrAliasDoesNotExist
	}

	wasVisible := visible(cfg, a, sh)
	cfg.Aliases.Delete(name)
	if wasVisible {
		return Command(UnaliasStatement(name)), nil
	}
	return ConfigChanged(), nil
}

// RemoveAliases deletes every named alias, merging the per-alias
// outcomes. The first missing name aborts the batch.
func RemoveAliases(cfg *alias.Config, names []string, sh shell.Type) (Outcome, error) {
	out := NoChanges()
	for _, name := range names {
		o, err := RemoveAlias(cfg, name, sh)
		if err != nil {
			return NoChanges(), err
		}
		out = Merge(out, o)
	}
	return out, nil
}

// RemoveGroup deletes only the group entry. Member aliases are left
// untouched, keeping their (now dangling) group reference; higher
// layers decide whether to reassign them to ungrouped or remove them in
// bulk.
func RemoveGroup(cfg *alias.Config, name string) (Outcome, error) {
	if !cfg.Groups.Delete(name) {
		return NoChanges(), ErrGroupDoesNotExist
	}
	return ConfigChanged(), nil
}

// RemoveAllAliases clears every alias.
func RemoveAllAliases(cfg *alias.Config, sh shell.Type) (Outcome, error) {
	if cfg.Aliases.Len() == 0 {
		return NoChanges(), nil
	}
	anyVisible := false
	for _, name := range cfg.Aliases.Keys() {
		a, _ := cfg.Aliases.Get(name)
		if visible(cfg, a, sh) {
			anyVisible = true
			break
		}
	}
	cfg.Aliases.Clear()
	if anyVisible {
		return Command(UnaliasAll), nil
	}
	return ConfigChanged(), nil
}

// RemoveAllGroups clears every group entry.
func RemoveAllGroups(cfg *alias.Config) (Outcome, error) {
	if cfg.Groups.Len() == 0 {
		return NoChanges(), nil
	}
	cfg.Groups.Clear()
	return ConfigChanged(), nil
}

// RemoveAll clears the whole configuration. Aliases go first so
// visibility is judged against the groups that still exist.
func RemoveAll(cfg *alias.Config, sh shell.Type) (Outcome, error) {
	aliasOut, err := RemoveAllAliases(cfg, sh)
	if err != nil {
		return NoChanges(), err
	}
	groupOut, err := RemoveAllGroups(cfg)
	if err != nil {
		return NoChanges(), err
	}
	return Merge(aliasOut, groupOut), nil
}
