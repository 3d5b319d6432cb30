package testutil

// MockShellNotifier is a mock implementation of ports.ShellNotifier for
// testing. It records every script it was asked to deliver.
type MockShellNotifier struct {
	SendFunc func(script string) error

	Sent []string
}

func (m *MockShellNotifier) Send(script string) error {
	m.Sent = append(m.Sent, script)
	if m.SendFunc != nil {
		return m.SendFunc(script)
	}
	return nil
}
