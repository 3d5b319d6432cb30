package testutil

import (
	"errors"

	"github.com/csouza/aliasmgr/internal/core/domain/alias"
)

// MockConfigRepository is a mock implementation of ports.ConfigRepository
// for testing.
type MockConfigRepository struct {
	LoadFunc func() (*alias.Config, error)
	SaveFunc func(cfg *alias.Config) error
	PathFunc func() string
}

func (m *MockConfigRepository) Load() (*alias.Config, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return nil, errors.New("MockConfigRepository: LoadFunc not implemented")
}

func (m *MockConfigRepository) Save(cfg *alias.Config) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(cfg)
	}
	return errors.New("MockConfigRepository: SaveFunc not implemented")
}

func (m *MockConfigRepository) Path() string {
	if m.PathFunc != nil {
		return m.PathFunc()
	}
	return ""
}
