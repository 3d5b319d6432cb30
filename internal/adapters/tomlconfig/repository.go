package tomlconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/csouza/aliasmgr/internal/core/domain/alias"
	"github.com/csouza/aliasmgr/internal/core/ports"
)

// ConfigPathEnvVar overrides the default configuration file location.
const ConfigPathEnvVar = "ALIASMGR_CONFIG_PATH"

// Repository stores the configuration in a single TOML file.
type Repository struct {
	path string
	log  *zap.SugaredLogger
}

var _ ports.ConfigRepository = (*Repository)(nil)

func NewRepository(path string, log *zap.SugaredLogger) *Repository {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Repository{path: path, log: log}
}

func (r *Repository) Path() string {
	return r.path
}

func (r *Repository) Load() (*alias.Config, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		r.log.Debugf("config file %s does not exist, using empty config", r.path)
		return alias.NewConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", r.path, err)
	}
	cfg, err := Decode(string(data))
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", r.path, err)
	}
	return cfg, nil
}

func (r *Repository) Save(cfg *alias.Config) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(r.path, []byte(Encode(cfg)), 0o644); err != nil {
		return fmt.Errorf("writing config file %s: %w", r.path, err)
	}
	r.log.Debugf("saved config to %s", r.path)
	return nil
}

// ResolvePath picks the configuration file location. An explicit
// ALIASMGR_CONFIG_PATH wins; when its target is missing the user decides
// whether to proceed with it anyway. Without the override the file lives
// under the user config directory.
func ResolvePath(confirmMissing func(path string) bool) (string, error) {
	if path, ok := os.LookupEnv(ConfigPathEnvVar); ok && path != "" {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		if confirmMissing(path) {
			return path, nil
		}
		return "", fmt.Errorf("configuration file %q does not exist and was not accepted", path)
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("determining user config directory: %w", err)
	}
	return filepath.Join(dir, "aliasmgr", "aliases.toml"), nil
}
