package ports

import "github.com/csouza/aliasmgr/internal/core/domain/alias"

// PredefinedAliasProvider defines the interface for sourcing alias
// definitions from a predefined list, like an importable pack file.
type PredefinedAliasProvider interface {
	// GetPredefinedAliases loads alias entries from the pack source.
	GetPredefinedAliases() ([]alias.PackEntry, error)
}
