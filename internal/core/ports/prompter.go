package ports

// Prompter is the confirmation capability injected into the resolution
// layer. The core never talks to a terminal itself; it only calls these
// methods, so tests can substitute scripted answers.
type Prompter interface {
	// ConfirmOverwriteAlias asks whether an existing alias should be
	// replaced.
	ConfirmOverwriteAlias(name string) bool

	// ConfirmCreateGroup asks whether a missing group should be created.
	ConfirmCreateGroup(name string) bool

	// ConfirmMissingConfigFile asks whether a configured path that does
	// not exist should be used anyway.
	ConfirmMissingConfigFile(path string) bool
}
