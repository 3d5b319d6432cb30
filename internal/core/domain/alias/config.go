package alias

// Config is the full alias configuration: an ordered mapping from alias
// name to Alias and an ordered mapping from group name to its enabled
// flag. Alias and group names live in independent name spaces; an alias
// and a group may share a name.
type Config struct {
	Aliases *OrderedMap[Alias]
	Groups  *OrderedMap[bool]
}

// NewConfig creates an empty configuration.
func NewConfig() *Config {
	return &Config{
		Aliases: NewOrderedMap[Alias](),
		Groups:  NewOrderedMap[bool](),
	}
}

// GroupEnabled reports whether the named group is enabled. The empty
// name (ungrouped) and a name with no matching group entry both count as
// enabled: an alias whose recorded group no longer exists degrades to
// ungrouped behavior instead of disappearing.
func (c *Config) GroupEnabled(name string) bool {
	if name == "" {
		return true
	}
	enabled, ok := c.Groups.Get(name)
	if !ok {
		return true
	}
	return enabled
}
