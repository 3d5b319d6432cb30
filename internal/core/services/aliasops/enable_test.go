package aliasops

import (
	"errors"
	"testing"

	"github.com/csouza/aliasmgr/internal/core/domain/alias"
	"github.com/csouza/aliasmgr/internal/core/domain/shell"
)

func TestEnableAlias(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(cfg *alias.Config)
		aliasName  string
		wantKind   OutcomeKind
		wantScript string
		wantErr    error
	}{
		{
			name: "enabling a disabled alias yields a define",
			setup: func(cfg *alias.Config) {
				cfg.Aliases.Set("ll", alias.New("ls -la", "", false, false))
			},
			aliasName:  "ll",
			wantKind:   KindCommand,
			wantScript: "alias -- 'll'='ls -la'",
		},
		{
			name: "already enabled is a no-op",
			setup: func(cfg *alias.Config) {
				cfg.Aliases.Set("ll", alias.New("ls -la", "", true, false))
			},
			aliasName: "ll",
			wantKind:  KindNoChanges,
		},
		{
			name: "enabling inside a disabled group only changes the config",
			setup: func(cfg *alias.Config) {
				cfg.Groups.Set("git", false)
				cfg.Aliases.Set("gs", alias.New("git status", "git", false, false))
			},
			aliasName: "gs",
			wantKind:  KindConfigChanged,
		},
		{
			name:      "missing alias is rejected",
			aliasName: "ghost",
			wantErr:   ErrAliasDoesNotExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := alias.NewConfig()
			if tt.setup != nil {
				tt.setup(cfg)
			}

			out, err := EnableAlias(cfg, tt.aliasName, shell.Bash)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("EnableAlias() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("EnableAlias() unexpected error: %v", err)
			}
			if out.Kind != tt.wantKind || out.Script != tt.wantScript {
				t.Errorf("EnableAlias() = %+v, want kind %v script %q", out, tt.wantKind, tt.wantScript)
			}
		})
	}
}

func TestDisableAlias(t *testing.T) {
	t.Run("disabling a visible alias yields an unalias", func(t *testing.T) {
		cfg := alias.NewConfig()
		cfg.Aliases.Set("ll", alias.New("ls -la", "", true, false))

		out, err := DisableAlias(cfg, "ll", shell.Bash)
		if err != nil {
			t.Fatalf("DisableAlias() unexpected error: %v", err)
		}
		if out.Kind != KindCommand || out.Script != "unalias 'll'" {
			t.Errorf("DisableAlias() = %+v, want unalias command", out)
		}
	})

	t.Run("disabling inside a disabled group only changes the config", func(t *testing.T) {
		cfg := alias.NewConfig()
		cfg.Groups.Set("git", false)
		cfg.Aliases.Set("gs", alias.New("git status", "git", true, false))

		out, err := DisableAlias(cfg, "gs", shell.Bash)
		if err != nil {
			t.Fatalf("DisableAlias() unexpected error: %v", err)
		}
		if out.Kind != KindConfigChanged {
			t.Errorf("DisableAlias() kind = %v, want %v", out.Kind, KindConfigChanged)
		}
	})

	t.Run("already disabled is a no-op", func(t *testing.T) {
		cfg := alias.NewConfig()
		cfg.Aliases.Set("ll", alias.New("ls -la", "", false, false))

		out, err := DisableAlias(cfg, "ll", shell.Bash)
		if err != nil {
			t.Fatalf("DisableAlias() unexpected error: %v", err)
		}
		if out.Kind != KindNoChanges {
			t.Errorf("DisableAlias() kind = %v, want %v", out.Kind, KindNoChanges)
		}
	})
}

func TestEnableGroup(t *testing.T) {
	t.Run("defines every member with its own flag on", func(t *testing.T) {
		cfg := alias.NewConfig()
		cfg.Groups.Set("git", false)
		cfg.Aliases.Set("gs", alias.New("git status", "git", true, false))
		cfg.Aliases.Set("gd", alias.New("git diff", "git", false, false))
		cfg.Aliases.Set("gl", alias.New("git log", "git", true, false))

		out, err := EnableGroup(cfg, "git", shell.Bash)
		if err != nil {
			t.Fatalf("EnableGroup() unexpected error: %v", err)
		}
		want := "alias -- 'gs'='git status'\nalias -- 'gl'='git log'"
		if out.Kind != KindCommand || out.Script != want {
			t.Errorf("EnableGroup() = %+v, want script %q", out, want)
		}
	})

	t.Run("no visible members only changes the config", func(t *testing.T) {
		cfg := alias.NewConfig()
		cfg.Groups.Set("git", false)
		cfg.Aliases.Set("gd", alias.New("git diff", "git", false, false))

		out, err := EnableGroup(cfg, "git", shell.Bash)
		if err != nil {
			t.Fatalf("EnableGroup() unexpected error: %v", err)
		}
		if out.Kind != KindConfigChanged {
			t.Errorf("EnableGroup() kind = %v, want %v", out.Kind, KindConfigChanged)
		}
	})

	t.Run("already enabled is a no-op", func(t *testing.T) {
		cfg := alias.NewConfig()
		cfg.Groups.Set("git", true)

		out, err := EnableGroup(cfg, "git", shell.Bash)
		if err != nil {
			t.Fatalf("EnableGroup() unexpected error: %v", err)
		}
		if out.Kind != KindNoChanges {
			t.Errorf("EnableGroup() kind = %v, want %v", out.Kind, KindNoChanges)
		}
	})

	t.Run("missing group is rejected", func(t *testing.T) {
		cfg := alias.NewConfig()
		_, err := EnableGroup(cfg, "ghost", shell.Bash)
		if !errors.Is(err, ErrGroupDoesNotExist) {
			t.Errorf("EnableGroup() error = %v, want %v", err, ErrGroupDoesNotExist)
		}
	})
}

func TestDisableGroup(t *testing.T) {
	t.Run("removes every member that was visible", func(t *testing.T) {
		cfg := alias.NewConfig()
		cfg.Groups.Set("git", true)
		cfg.Aliases.Set("gs", alias.New("git status", "git", true, false))
		cfg.Aliases.Set("gd", alias.New("git diff", "git", false, false))
		cfg.Aliases.Set("gl", alias.New("git log", "git", true, false))

		out, err := DisableGroup(cfg, "git", shell.Bash)
		if err != nil {
			t.Fatalf("DisableGroup() unexpected error: %v", err)
		}
		want := "unalias 'gs'\nunalias 'gl'"
		if out.Kind != KindCommand || out.Script != want {
			t.Errorf("DisableGroup() = %+v, want script %q", out, want)
		}
	})

	t.Run("global members under bash are skipped", func(t *testing.T) {
		cfg := alias.NewConfig()
		cfg.Groups.Set("g", true)
		cfg.Aliases.Set("G", alias.New("| grep", "g", true, true))

		out, err := DisableGroup(cfg, "g", shell.Bash)
		if err != nil {
			t.Fatalf("DisableGroup() unexpected error: %v", err)
		}
		if out.Kind != KindConfigChanged {
			t.Errorf("DisableGroup() kind = %v, want %v", out.Kind, KindConfigChanged)
		}
	})

	t.Run("already disabled is a no-op", func(t *testing.T) {
		cfg := alias.NewConfig()
		cfg.Groups.Set("git", false)

		out, err := DisableGroup(cfg, "git", shell.Bash)
		if err != nil {
			t.Fatalf("DisableGroup() unexpected error: %v", err)
		}
		if out.Kind != KindNoChanges {
			t.Errorf("DisableGroup() kind = %v, want %v", out.Kind, KindNoChanges)
		}
	})
}
