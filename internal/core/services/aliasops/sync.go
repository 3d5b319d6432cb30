package aliasops

import (
	"strings"

	"github.com/csouza/aliasmgr/internal/core/domain/alias"
	"github.com/csouza/aliasmgr/internal/core/domain/shell"
)

// GenerateAliasScript builds the full resync payload evaluated by the
// shell on session startup: remove every alias, then redefine each
// alias that is enabled, whose owning group (if any) is enabled, and
// that is representable under the active dialect, in configuration
// order. The output depends only on cfg and sh.
func GenerateAliasScript(cfg *alias.Config, sh shell.Type) string {
	stmts := []string{UnaliasAll}
	for _, name := range cfg.Aliases.Keys() {
		a, _ := cfg.Aliases.Get(name)
		if visible(cfg, a, sh) {
			stmts = append(stmts, DefineStatement(name, a))
		}
	}
	return strings.Join(stmts, "\n")
}
