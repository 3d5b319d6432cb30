package aliasops

import (
	"errors"
	"fmt"
	"strings"
)

// Expected, recoverable-by-caller failure conditions. The resolution
// layer recovers ErrAliasAlreadyExists and ErrGroupDoesNotExist; the
// rest are surfaced to the user as rejected input.
var (
	ErrAliasDoesNotExist      = errors.New("alias does not exist")
	ErrAliasAlreadyExists     = errors.New("alias already exists")
	ErrGroupDoesNotExist      = errors.New("group does not exist")
	ErrGroupAlreadyExists     = errors.New("group already exists")
	ErrInvalidAliasName       = errors.New("invalid alias name")
	ErrUnsupportedGlobalAlias = errors.New("global aliases are not supported by this shell")
)

// validateAliasName rejects names the shell could not parse as a single
// alias identifier.
func validateAliasName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidAliasName)
	}
	if strings.ContainsAny(name, " \t\n=") {
		return fmt.Errorf("%w: %q contains whitespace or '='", ErrInvalidAliasName, name)
	}
	return nil
}
