package shellio

import (
	"fmt"
	"strings"

	"github.com/csouza/aliasmgr/internal/adapters/tomlconfig"
	"github.com/csouza/aliasmgr/internal/core/domain/shell"
)

const wrapperFunction = `
# Define the aliasmgr shell function
# This function captures alias deltas from file descriptor 3

__aliasmgr_cmd="$(command -v aliasmgr)"

aliasmgr() {
    # Run aliasmgr and capture deltas from FD3
    local deltas

    # Capture output from FD3 without interfering with standard output
    {
        deltas="$("$__aliasmgr_cmd" "$@" 3>&1 1>&4)"
    } 4>&1

    # Apply alias deltas if any
    if [ -n "$deltas" ]; then
        eval "$deltas"
    fi
}
`

// InitScript renders the snippet users source from their shell rc file.
// It exports the shell dialect (and config path override when given),
// installs the wrapper function that captures the delta channel, and
// resyncs the session's aliases.
func InitScript(sh shell.Type, configPath string) string {
	var b strings.Builder
	b.WriteString("# Alias Manager Initialization Script\n")
	fmt.Fprintf(&b, "export %s=%s\n", shell.EnvVar, sh)
	if configPath != "" {
		fmt.Fprintf(&b, "export %s=%q\n", tomlconfig.ConfigPathEnvVar, configPath)
	}
	b.WriteString(wrapperFunction)
	b.WriteString("\n# Sync aliases on shell startup\naliasmgr sync\n")
	return b.String()
}
