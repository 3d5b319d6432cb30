package aliasops

import (
	"errors"
	"reflect"
	"testing"

	"github.com/csouza/aliasmgr/internal/core/domain/alias"
	"github.com/csouza/aliasmgr/internal/core/domain/shell"
)

func TestRenameAlias(t *testing.T) {
	t.Run("visible alias is undefined and redefined", func(t *testing.T) {
		cfg := alias.NewConfig()
		cfg.Aliases.Set("ll", alias.New("ls -la", "", true, false))

		out, err := RenameAlias(cfg, "ll", "la", shell.Bash)
		if err != nil {
			t.Fatalf("RenameAlias() unexpected error: %v", err)
		}
		want := "unalias 'll'\nalias -- 'la'='ls -la'"
		if out.Kind != KindCommand || out.Script != want {
			t.Errorf("RenameAlias() = %+v, want script %q", out, want)
		}
		if cfg.Aliases.Has("ll") || !cfg.Aliases.Has("la") {
			t.Error("rename did not move the entry")
		}
	})

	t.Run("hidden alias only changes the config", func(t *testing.T) {
		cfg := alias.NewConfig()
		cfg.Aliases.Set("ll", alias.New("ls -la", "", false, false))

		out, err := RenameAlias(cfg, "ll", "la", shell.Bash)
		if err != nil {
			t.Fatalf("RenameAlias() unexpected error: %v", err)
		}
		if out.Kind != KindConfigChanged {
			t.Errorf("RenameAlias() kind = %v, want %v", out.Kind, KindConfigChanged)
		}
	})

	t.Run("taken target name is rejected", func(t *testing.T) {
		cfg := alias.NewConfig()
		cfg.Aliases.Set("a", alias.New("cmd a", "", true, false))
		cfg.Aliases.Set("b", alias.New("cmd b", "", true, false))

		_, err := RenameAlias(cfg, "a", "b", shell.Bash)
		if !errors.Is(err, ErrAliasAlreadyExists) {
			t.Errorf("RenameAlias() error = %v, want %v", err, ErrAliasAlreadyExists)
		}
	})

	t.Run("invalid target name is rejected", func(t *testing.T) {
		cfg := alias.NewConfig()
		cfg.Aliases.Set("a", alias.New("cmd a", "", true, false))

		_, err := RenameAlias(cfg, "a", "b c", shell.Bash)
		if !errors.Is(err, ErrInvalidAliasName) {
			t.Errorf("RenameAlias() error = %v, want %v", err, ErrInvalidAliasName)
		}
	})

	t.Run("missing alias is rejected", func(t *testing.T) {
		cfg := alias.NewConfig()
		_, err := RenameAlias(cfg, "ghost", "b", shell.Bash)
		if !errors.Is(err, ErrAliasDoesNotExist) {
			t.Errorf("RenameAlias() error = %v, want %v", err, ErrAliasDoesNotExist)
		}
	})
}

func TestRenameGroup(t *testing.T) {
	t.Run("repoints member aliases", func(t *testing.T) {
		cfg := alias.NewConfig()
		cfg.Groups.Set("git", false)
		cfg.Aliases.Set("gs", alias.New("git status", "git", true, false))
		cfg.Aliases.Set("ll", alias.New("ls -la", "", true, false))

		out, err := RenameGroup(cfg, "git", "vcs")
		if err != nil {
			t.Fatalf("RenameGroup() unexpected error: %v", err)
		}
		if out.Kind != KindConfigChanged {
			t.Errorf("RenameGroup() kind = %v, want %v", out.Kind, KindConfigChanged)
		}
		if enabled, ok := cfg.Groups.Get("vcs"); !ok || enabled {
			t.Errorf("renamed group = %v, %v, want present and disabled", enabled, ok)
		}
		if a, _ := cfg.Aliases.Get("gs"); a.Group != "vcs" {
			t.Errorf("member group = %q, want %q", a.Group, "vcs")
		}
		if a, _ := cfg.Aliases.Get("ll"); a.Group != "" {
			t.Errorf("unrelated alias group = %q, want empty", a.Group)
		}
	})

	t.Run("taken target name is rejected", func(t *testing.T) {
		cfg := alias.NewConfig()
		cfg.Groups.Set("a", true)
		cfg.Groups.Set("b", true)

		_, err := RenameGroup(cfg, "a", "b")
		if !errors.Is(err, ErrGroupAlreadyExists) {
			t.Errorf("RenameGroup() error = %v, want %v", err, ErrGroupAlreadyExists)
		}
		if want := []string{"a", "b"}; !reflect.DeepEqual(cfg.Groups.Keys(), want) {
			t.Errorf("groups mutated by failed rename: %v", cfg.Groups.Keys())
		}
	})

	t.Run("missing group is rejected", func(t *testing.T) {
		cfg := alias.NewConfig()
		_, err := RenameGroup(cfg, "ghost", "b")
		if !errors.Is(err, ErrGroupDoesNotExist) {
			t.Errorf("RenameGroup() error = %v, want %v", err, ErrGroupDoesNotExist)
		}
	})
}
