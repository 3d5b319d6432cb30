package testutil

// MockPrompter is a mock implementation of ports.Prompter for testing.
// Unset funcs decline, so a zero MockPrompter answers no to everything.
type MockPrompter struct {
	ConfirmOverwriteAliasFunc    func(name string) bool
	ConfirmCreateGroupFunc       func(name string) bool
	ConfirmMissingConfigFileFunc func(path string) bool
}

func (m *MockPrompter) ConfirmOverwriteAlias(name string) bool {
	if m.ConfirmOverwriteAliasFunc != nil {
		return m.ConfirmOverwriteAliasFunc(name)
	}
	return false
}

func (m *MockPrompter) ConfirmCreateGroup(name string) bool {
	if m.ConfirmCreateGroupFunc != nil {
		return m.ConfirmCreateGroupFunc(name)
	}
	return false
}

func (m *MockPrompter) ConfirmMissingConfigFile(path string) bool {
	if m.ConfirmMissingConfigFileFunc != nil {
		return m.ConfirmMissingConfigFileFunc(path)
	}
	return false
}
