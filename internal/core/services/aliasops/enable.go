package aliasops

import (
	"strings"

	"github.com/csouza/aliasmgr/internal/core/domain/alias"
	"github.com/csouza/aliasmgr/internal/core/domain/shell"
)

// EnableAlias turns the alias on. If the alias's own group is disabled
// the alias stays invisible, so only the configuration changes.
func EnableAlias(cfg *alias.Config, name string, sh shell.Type) (Outcome, error) {
	a, ok := cfg.Aliases.Get(name)
	if !ok {
		return NoChanges(), ErrAliasDoesNotExist
	}
	if a.Enabled {
		return NoChanges(), nil
	}

	a.Enabled = true
	cfg.Aliases.Set(name, a)
	if visible(cfg, a, sh) {
		return Command(DefineStatement(name, a)), nil
	}
	return ConfigChanged(), nil
}

// DisableAlias turns the alias off. An alias that was never visible
// (group disabled, or not representable) needs no shell statement.
func DisableAlias(cfg *alias.Config, name string, sh shell.Type) (Outcome, error) {
	a, ok := cfg.Aliases.Get(name)
	if !ok {
		return NoChanges(), ErrAliasDoesNotExist
	}
	if !a.Enabled {
		return NoChanges(), nil
	}

	wasVisible := visible(cfg, a, sh)
	a.Enabled = false
	cfg.Aliases.Set(name, a)
	if wasVisible {
		return Command(UnaliasStatement(name)), nil
	}
	return ConfigChanged(), nil
}

// EnableGroup turns the group on and defines every member alias whose
// own Enabled flag is true, in configuration order.
func EnableGroup(cfg *alias.Config, name string, sh shell.Type) (Outcome, error) {
	enabled, ok := cfg.Groups.Get(name)
	if !ok {
		return NoChanges(), ErrGroupDoesNotExist
	}
	if enabled {
		return NoChanges(), nil
	}

	cfg.Groups.Set(name, true)
	stmts := memberStatements(cfg, name, sh, DefineStatement)
	if len(stmts) == 0 {
		return ConfigChanged(), nil
	}
	return Command(strings.Join(stmts, "\n")), nil
}

// DisableGroup turns the group off and removes every member alias that
// was visible, in configuration order.
func DisableGroup(cfg *alias.Config, name string, sh shell.Type) (Outcome, error) {
	enabled, ok := cfg.Groups.Get(name)
	if !ok {
		return NoChanges(), ErrGroupDoesNotExist
	}
	if !enabled {
		return NoChanges(), nil
	}

	cfg.Groups.Set(name, false)
	stmts := memberStatements(cfg, name, sh, func(n string, _ alias.Alias) string {
		return UnaliasStatement(n)
	})
	if len(stmts) == 0 {
		return ConfigChanged(), nil
	}
	return Command(strings.Join(stmts, "\n")), nil
}

// memberStatements builds one statement per enabled, representable
// member of the group, in configuration order.
func memberStatements(cfg *alias.Config, group string, sh shell.Type, build func(string, alias.Alias) string) []string {
	var stmts []string
	for _, name := range cfg.Aliases.Keys() {
		a, _ := cfg.Aliases.Get(name)
		if a.Group != group || !a.Enabled || !representable(a, sh) {
			continue
		}
		stmts = append(stmts, build(name, a))
	}
	return stmts
}
