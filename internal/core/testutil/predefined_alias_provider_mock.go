package testutil

import (
	"errors"

	"github.com/csouza/aliasmgr/internal/core/domain/alias"
)

// MockPredefinedAliasProvider is a mock implementation of
// ports.PredefinedAliasProvider for testing.
type MockPredefinedAliasProvider struct {
	GetPredefinedAliasesFunc func() ([]alias.PackEntry, error)
}

func (m *MockPredefinedAliasProvider) GetPredefinedAliases() ([]alias.PackEntry, error) {
	if m.GetPredefinedAliasesFunc != nil {
		return m.GetPredefinedAliasesFunc()
	}
	return nil, errors.New("MockPredefinedAliasProvider: GetPredefinedAliasesFunc not implemented")
}
