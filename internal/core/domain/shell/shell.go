/*
Package shell identifies the shell dialect the current session runs
under. The dialect gates whether global aliases can be represented and
nothing else.
*/
package shell

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Type enumerates the supported shell dialects.
type Type string

const (
	Bash Type = "bash"
	Zsh  Type = "zsh"
)

// EnvVar is the environment variable the init script exports to record
// the active shell dialect.
const EnvVar = "ALIASMGR_SHELL"

// DefaultType is assumed when the environment does not say otherwise.
const DefaultType = Bash

func (t Type) String() string {
	return string(t)
}

// SupportsGlobalAliases reports whether the dialect can expand an alias
// anywhere in a command line, not only in leading position.
func (t Type) SupportsGlobalAliases() bool {
	return t == Zsh
}

// Parse converts a user-supplied dialect name, case-insensitively.
func Parse(s string) (Type, error) {
	switch strings.ToLower(s) {
	case "bash":
		return Bash, nil
	case "zsh":
		return Zsh, nil
	default:
		return "", fmt.Errorf("unsupported shell %q (expected bash or zsh)", s)
	}
}

// Determine reads the active dialect from the environment, falling back
// to the default with a warning when it is unset or invalid.
func Determine(log *zap.SugaredLogger) Type {
	val, ok := os.LookupEnv(EnvVar)
	if !ok {
		log.Warnf("%s is not set; run 'aliasmgr init' in your shell configuration. Assuming %s.", EnvVar, DefaultType)
		return DefaultType
	}
	t, err := Parse(val)
	if err != nil {
		log.Warnf("invalid %s value %q; assuming %s", EnvVar, val, DefaultType)
		return DefaultType
	}
	return t
}
