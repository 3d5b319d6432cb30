/*
Package alias defines the core domain entities: a single Alias and the
Config holding every alias and group in the order they appear in the
configuration file.
*/
package alias

// Alias represents one named command substitution. Group is a weak
// reference into Config.Groups by name; an empty Group means the alias
// is ungrouped.
type Alias struct {
	Command string
	Group   string
	Enabled bool
	Global  bool
}

// New creates an Alias. An empty group means ungrouped.
func New(command, group string, enabled, global bool) Alias {
	return Alias{
		Command: command,
		Group:   group,
		Enabled: enabled,
		Global:  global,
	}
}

// Detailed reports whether the alias requires the explicit on-disk form.
// Only an enabled, non-global alias can be written as the bare command
// string shorthand. Derived at read time so it cannot drift from Enabled
// and Global.
func (a Alias) Detailed() bool {
	return !a.Enabled || a.Global
}

// PackEntry is one alias definition inside an importable alias pack file.
type PackEntry struct {
	Name     string `yaml:"alias"`
	Command  string `yaml:"command"`
	Group    string `yaml:"group,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty"`
	Global   bool   `yaml:"global,omitempty"`
}
