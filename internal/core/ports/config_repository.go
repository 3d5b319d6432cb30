package ports

import "github.com/csouza/aliasmgr/internal/core/domain/alias"

// ConfigRepository defines the contract for loading and persisting the
// alias configuration. One process performs one load, mutate, save cycle
// per invocation.
type ConfigRepository interface {
	// Load reads the persisted configuration. A missing file yields an
	// empty configuration, not an error.
	Load() (*alias.Config, error)

	// Save rewrites the whole configuration file.
	Save(cfg *alias.Config) error

	// Path returns the backing file path, for display.
	Path() string
}
