package tomlconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csouza/aliasmgr/internal/core/domain/alias"
)

func TestRepositoryLoad(t *testing.T) {
	t.Run("missing file yields an empty config", func(t *testing.T) {
		repo := NewRepository(filepath.Join(t.TempDir(), "aliases.toml"), nil)

		cfg, err := repo.Load()
		require.NoError(t, err)
		assert.Equal(t, 0, cfg.Aliases.Len())
		assert.Equal(t, 0, cfg.Groups.Len())
	})

	t.Run("reads an existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "aliases.toml")
		require.NoError(t, os.WriteFile(path, []byte("ll = \"ls -la\"\n"), 0o644))

		repo := NewRepository(path, nil)
		cfg, err := repo.Load()
		require.NoError(t, err)

		a, ok := cfg.Aliases.Get("ll")
		require.True(t, ok)
		assert.Equal(t, "ls -la", a.Command)
	})

	t.Run("decode failure carries the file path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "aliases.toml")
		require.NoError(t, os.WriteFile(path, []byte("broken = \n"), 0o644))

		repo := NewRepository(path, nil)
		_, err := repo.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), path)
	})
}

func TestRepositorySave(t *testing.T) {
	t.Run("creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "aliases.toml")
		repo := NewRepository(path, nil)

		cfg := alias.NewConfig()
		cfg.Aliases.Set("ll", alias.New("ls -la", "", true, false))
		require.NoError(t, repo.Save(cfg))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "ll = \"ls -la\"\n", string(data))
	})

	t.Run("save then load round-trips", func(t *testing.T) {
		repo := NewRepository(filepath.Join(t.TempDir(), "aliases.toml"), nil)

		cfg := alias.NewConfig()
		cfg.Groups.Set("git", true)
		cfg.Aliases.Set("gs", alias.New("git status", "git", true, false))
		cfg.Aliases.Set("off", alias.New("x", "", false, false))
		require.NoError(t, repo.Save(cfg))

		loaded, err := repo.Load()
		require.NoError(t, err)
		if diff := cmp.Diff(cfg, loaded); diff != "" {
			t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestResolvePath(t *testing.T) {
	t.Run("env var pointing at an existing file wins", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "aliases.toml")
		require.NoError(t, os.WriteFile(path, nil, 0o644))
		t.Setenv(ConfigPathEnvVar, path)

		got, err := ResolvePath(func(string) bool { return false })
		require.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("missing override is used when accepted", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "absent.toml")
		t.Setenv(ConfigPathEnvVar, path)

		got, err := ResolvePath(func(p string) bool {
			assert.Equal(t, path, p)
			return true
		})
		require.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("missing override is an error when declined", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "absent.toml"))

		_, err := ResolvePath(func(string) bool { return false })
		require.Error(t, err)
	})

	t.Run("defaults to the user config directory", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "")

		got, err := ResolvePath(func(string) bool { return false })
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(got, filepath.Join("aliasmgr", "aliases.toml")), got)
	})
}
