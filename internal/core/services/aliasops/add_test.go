package aliasops

import (
	"errors"
	"testing"

	"github.com/csouza/aliasmgr/internal/core/domain/alias"
	"github.com/csouza/aliasmgr/internal/core/domain/shell"
)

func TestAddAlias(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(cfg *alias.Config)
		aliasName   string
		alias       alias.Alias
		sh          shell.Type
		wantKind    OutcomeKind
		wantScript  string
		wantErr     error
	}{
		{
			name:       "visible alias yields the define statement",
			aliasName:  "ll",
			alias:      alias.New("ls -la", "", true, false),
			sh:         shell.Bash,
			wantKind:   KindCommand,
			wantScript: "alias -- 'll'='ls -la'",
		},
		{
			name:      "disabled alias only changes the config",
			aliasName: "ll",
			alias:     alias.New("ls -la", "", false, false),
			sh:        shell.Bash,
			wantKind:  KindConfigChanged,
		},
		{
			name: "alias in a disabled group only changes the config",
			setup: func(cfg *alias.Config) {
				cfg.Groups.Set("git", false)
			},
			aliasName: "gs",
			alias:     alias.New("git status", "git", true, false),
			sh:        shell.Bash,
			wantKind:  KindConfigChanged,
		},
		{
			name: "alias in an enabled group yields the define statement",
			setup: func(cfg *alias.Config) {
				cfg.Groups.Set("git", true)
			},
			aliasName:  "gs",
			alias:      alias.New("git status", "git", true, false),
			sh:         shell.Bash,
			wantKind:   KindCommand,
			wantScript: "alias -- 'gs'='git status'",
		},
		{
			name:       "global alias under zsh yields the global define",
			aliasName:  "G",
			alias:      alias.New("| grep", "", true, true),
			sh:         shell.Zsh,
			wantKind:   KindCommand,
			wantScript: "alias -g -- 'G'='| grep'",
		},
		{
			name:      "global alias under bash is rejected",
			aliasName: "G",
			alias:     alias.New("| grep", "", true, true),
			sh:        shell.Bash,
			wantErr:   ErrUnsupportedGlobalAlias,
		},
		{
			name: "existing name is rejected",
			setup: func(cfg *alias.Config) {
				cfg.Aliases.Set("ll", alias.New("ls -l", "", true, false))
			},
			aliasName: "ll",
			alias:     alias.New("ls -la", "", true, false),
			sh:        shell.Bash,
			wantErr:   ErrAliasAlreadyExists,
		},
		{
			name:      "missing group is rejected",
			aliasName: "gs",
			alias:     alias.New("git status", "git", true, false),
			sh:        shell.Bash,
			wantErr:   ErrGroupDoesNotExist,
		},
		{
			name:      "invalid name is rejected",
			aliasName: "bad name",
			alias:     alias.New("ls", "", true, false),
			sh:        shell.Bash,
			wantErr:   ErrInvalidAliasName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := alias.NewConfig()
			if tt.setup != nil {
				tt.setup(cfg)
			}

			out, err := AddAlias(cfg, tt.aliasName, tt.alias, tt.sh)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("AddAlias() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("AddAlias() unexpected error: %v", err)
			}
			if out.Kind != tt.wantKind {
				t.Errorf("AddAlias() kind = %v, want %v", out.Kind, tt.wantKind)
			}
			if out.Script != tt.wantScript {
				t.Errorf("AddAlias() script = %q, want %q", out.Script, tt.wantScript)
			}
			if !cfg.Aliases.Has(tt.aliasName) {
				t.Errorf("alias %q was not stored", tt.aliasName)
			}
		})
	}
}

func TestAddGroup(t *testing.T) {
	cfg := alias.NewConfig()

	out, err := AddGroup(cfg, "git", true)
	if err != nil {
		t.Fatalf("AddGroup() unexpected error: %v", err)
	}
	if out.Kind != KindConfigChanged {
		t.Errorf("AddGroup() kind = %v, want %v", out.Kind, KindConfigChanged)
	}
	if enabled, ok := cfg.Groups.Get("git"); !ok || !enabled {
		t.Errorf("group not stored as enabled: %v, %v", enabled, ok)
	}

	_, err = AddGroup(cfg, "git", false)
	if !errors.Is(err, ErrGroupAlreadyExists) {
		t.Errorf("AddGroup() error = %v, want %v", err, ErrGroupAlreadyExists)
	}
}
