/*
Package tomlconfig persists the alias configuration as a TOML file. A
top-level entry is either a bare alias (string shorthand or an explicit
table with command, enabled and global fields) or a group table holding
its own enabled flag plus nested alias entries in the same two forms.
Grouping is one level deep; a group inside a group fails decoding.
*/
package tomlconfig

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/csouza/aliasmgr/internal/core/domain/alias"
)

// detailedSpec is the explicit on-disk form of an alias. Enabled
// defaults to true and Global to false when omitted.
type detailedSpec struct {
	Command string `toml:"command"`
	Enabled *bool  `toml:"enabled"`
	Global  bool   `toml:"global"`
}

func (s detailedSpec) toAlias(group string) alias.Alias {
	enabled := true
	if s.Enabled != nil {
		enabled = *s.Enabled
	}
	return alias.New(s.Command, group, enabled, s.Global)
}

// Decode parses TOML document text into a configuration, preserving the
// order entries appear in the document.
func Decode(data string) (*alias.Config, error) {
	var raw map[string]toml.Primitive
	md, err := toml.Decode(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("parsing aliases file: %w", err)
	}

	cfg := alias.NewConfig()
	for _, name := range keysAtDepth(md, nil) {
		prim := raw[name]

		var command string
		if err := md.PrimitiveDecode(prim, &command); err == nil {
			cfg.Aliases.Set(name, alias.New(command, "", true, false))
			continue
		}

		var table map[string]toml.Primitive
		if err := md.PrimitiveDecode(prim, &table); err != nil {
			return nil, fmt.Errorf("entry %q: expected a command string or a table: %w", name, err)
		}
		if _, isAlias := table["command"]; isAlias {
			a, err := decodeDetailed(md, prim, name, "")
			if err != nil {
				return nil, err
			}
			cfg.Aliases.Set(name, a)
			continue
		}
		if err := decodeGroup(md, cfg, name, table); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// decodeGroup registers the group and attributes every nested alias to
// it. A nested table without a command field is another group, which is
// unsupported.
func decodeGroup(md toml.MetaData, cfg *alias.Config, group string, table map[string]toml.Primitive) error {
	enabled := true
	if prim, ok := table["enabled"]; ok {
		if err := md.PrimitiveDecode(prim, &enabled); err != nil {
			return fmt.Errorf("group %q: enabled must be a boolean: %w", group, err)
		}
	}
	cfg.Groups.Set(group, enabled)

	for _, name := range keysAtDepth(md, []string{group}) {
		if name == "enabled" {
			continue
		}
		prim := table[name]

		var command string
		if err := md.PrimitiveDecode(prim, &command); err == nil {
			cfg.Aliases.Set(name, alias.New(command, group, true, false))
			continue
		}

		var sub map[string]toml.Primitive
		if err := md.PrimitiveDecode(prim, &sub); err != nil {
			return fmt.Errorf("group %q, entry %q: expected a command string or a table: %w", group, name, err)
		}
		if _, isAlias := sub["command"]; !isAlias {
			return fmt.Errorf("group %q, entry %q: nested groups are not supported", group, name)
		}
		a, err := decodeDetailed(md, prim, name, group)
		if err != nil {
			return err
		}
		cfg.Aliases.Set(name, a)
	}
	return nil
}

func decodeDetailed(md toml.MetaData, prim toml.Primitive, name, group string) (alias.Alias, error) {
	var spec detailedSpec
	if err := md.PrimitiveDecode(prim, &spec); err != nil {
		return alias.Alias{}, fmt.Errorf("alias %q: %w", name, err)
	}
	return spec.toAlias(group), nil
}

// keysAtDepth returns, in document order, the key names exactly one
// level below the given prefix.
func keysAtDepth(md toml.MetaData, prefix []string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, key := range md.Keys() {
		if len(key) != len(prefix)+1 {
			continue
		}
		match := true
		for i, p := range prefix {
			if key[i] != p {
				match = false
				break
			}
		}
		if !match || seen[key[len(prefix)]] {
			continue
		}
		seen[key[len(prefix)]] = true
		names = append(names, key[len(prefix)])
	}
	return names
}
