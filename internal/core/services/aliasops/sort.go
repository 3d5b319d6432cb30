package aliasops

import "github.com/csouza/aliasmgr/internal/core/domain/alias"

// SortAllAliases reorders every alias lexicographically by name.
func SortAllAliases(cfg *alias.Config) (Outcome, error) {
	cfg.Aliases.SortKeys()
	return ConfigChanged(), nil
}

// SortGroups reorders every group lexicographically by name.
func SortGroups(cfg *alias.Config) (Outcome, error) {
	cfg.Groups.SortKeys()
	return ConfigChanged(), nil
}

// SortAliasesInGroup sorts only the aliases inside the target scope: a
// named group, or the ungrouped set when group is empty. Aliases
// outside the scope keep their exact positions and matching aliases are
// not made contiguous; only the relative order among matches changes.
func SortAliasesInGroup(cfg *alias.Config, group string) (Outcome, error) {
	if group != "" && !cfg.Groups.Has(group) {
		return NoChanges(), ErrGroupDoesNotExist
	}
	cfg.Aliases.ReorderWithin(func(_ string, a alias.Alias) bool {
		return a.Group == group
	})
	return ConfigChanged(), nil
}
