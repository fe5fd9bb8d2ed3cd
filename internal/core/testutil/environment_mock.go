package testutil

import (
	"errors"

	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// MockEnvironment is a mock implementation of ports.Environment backed by a map
// and an in-memory working directory.
type MockEnvironment struct {
	Vars       map[string]string
	Dir        string
	ChdirFunc  func(dir string) error
	GetwdErr   error
	ChdirCalls []string
}

// LookupEnv returns the value from Vars.
func (m *MockEnvironment) LookupEnv(key string) (string, bool) {
	v, ok := m.Vars[key]
	return v, ok
}

// Chdir records the call and updates Dir unless ChdirFunc returns an error.
func (m *MockEnvironment) Chdir(dir string) error {
	m.ChdirCalls = append(m.ChdirCalls, dir)
	if m.ChdirFunc != nil {
		if err := m.ChdirFunc(dir); err != nil {
			return err
		}
	}
	m.Dir = dir
	return nil
}

// Getwd returns Dir, or GetwdErr when set.
func (m *MockEnvironment) Getwd() (string, error) {
	if m.GetwdErr != nil {
		return "", m.GetwdErr
	}
	if m.Dir == "" {
		return "", errors.New("MockEnvironment: working directory not set")
	}
	return m.Dir, nil
}

var _ ports.Environment = (*MockEnvironment)(nil)
