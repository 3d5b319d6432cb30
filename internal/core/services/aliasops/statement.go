package aliasops

import (
	"fmt"
	"strings"

	"github.com/csouza/aliasmgr/internal/core/domain/alias"
	"github.com/csouza/aliasmgr/internal/core/domain/shell"
)

// UnaliasAll removes every alias from the live shell. Emitted first in
// every full resync script.
const UnaliasAll = "unalias -a"

// quoteSingle wraps s in single quotes, escaping embedded single quotes
// the POSIX way.
func quoteSingle(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// DefineStatement builds the shell statement defining the alias.
func DefineStatement(name string, a alias.Alias) string {
	if a.Global {
		return fmt.Sprintf("alias -g -- %s=%s", quoteSingle(name), quoteSingle(a.Command))
	}
	return fmt.Sprintf("alias -- %s=%s", quoteSingle(name), quoteSingle(a.Command))
}

// UnaliasStatement builds the shell statement removing the named alias.
func UnaliasStatement(name string) string {
	return fmt.Sprintf("unalias %s", quoteSingle(name))
}

// representable reports whether the alias can exist at all under the
// given dialect. A global alias has no representation in a shell
// without global-alias support.
func representable(a alias.Alias, sh shell.Type) bool {
	return !a.Global || sh.SupportsGlobalAliases()
}

// visible reports whether the alias is currently defined in the live
// shell: enabled, with its owning group (if any) enabled, and
// representable under the active dialect.
func visible(cfg *alias.Config, a alias.Alias, sh shell.Type) bool {
	return a.Enabled && cfg.GroupEnabled(a.Group) && representable(a, sh)
}
