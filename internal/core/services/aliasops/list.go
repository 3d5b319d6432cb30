package aliasops

import "github.com/csouza/aliasmgr/internal/core/domain/alias"

// AliasesInGroup returns the names of the aliases in the named group,
// or the ungrouped aliases when group is empty, in configuration order.
func AliasesInGroup(cfg *alias.Config, group string) ([]string, error) {
	if group != "" && !cfg.Groups.Has(group) {
		return nil, ErrGroupDoesNotExist
	}
	var names []string
	for _, name := range cfg.Aliases.Keys() {
		a, _ := cfg.Aliases.Get(name)
		if a.Group == group {
			names = append(names, name)
		}
	}
	return names, nil
}
