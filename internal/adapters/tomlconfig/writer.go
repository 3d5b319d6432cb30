package tomlconfig

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/csouza/aliasmgr/internal/core/domain/alias"
)

var bareKeyRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Encode renders the configuration back to TOML text. Insertion order
// is preserved so the file round-trips without churn: ungrouped aliases
// first, then one section per group carrying its enabled flag and its
// member aliases. Aliases pointing at a group that no longer exists are
// written at the top level without their group.
func Encode(cfg *alias.Config) string {
	var b strings.Builder

	for _, name := range cfg.Aliases.Keys() {
		a, _ := cfg.Aliases.Get(name)
		if a.Group != "" && cfg.Groups.Has(a.Group) {
			continue
		}
		writeAlias(&b, name, a)
	}

	for _, group := range cfg.Groups.Keys() {
		enabled, _ := cfg.Groups.Get(group)
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "[%s]\n", encodeKey(group))
		fmt.Fprintf(&b, "enabled = %t\n", enabled)
		for _, name := range cfg.Aliases.Keys() {
			a, _ := cfg.Aliases.Get(name)
			if a.Group != group {
				continue
			}
			writeAlias(&b, name, a)
		}
	}

	return b.String()
}

// writeAlias emits the shorthand string form when the alias carries no
// state beyond its command, and the explicit inline table otherwise.
func writeAlias(b *strings.Builder, name string, a alias.Alias) {
	if a.Enabled && !a.Global {
		fmt.Fprintf(b, "%s = %s\n", encodeKey(name), encodeString(a.Command))
		return
	}
	fields := []string{
		fmt.Sprintf("command = %s", encodeString(a.Command)),
		fmt.Sprintf("enabled = %t", a.Enabled),
	}
	if a.Global {
		fields = append(fields, "global = true")
	}
	fmt.Fprintf(b, "%s = { %s }\n", encodeKey(name), strings.Join(fields, ", "))
}

func encodeKey(key string) string {
	if bareKeyRe.MatchString(key) {
		return key
	}
	return encodeString(key)
}

// encodeString renders a TOML basic string.
func encodeString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
