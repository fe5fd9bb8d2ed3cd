package testutil

import (
	"errors"

	"github.com/AntonioJCosta/minish/internal/core/domain/command"
)

// MockProcessLauncher is a mock implementation of ports.ProcessLauncher.
type MockProcessLauncher struct {
	LaunchFunc  func(args []string) (command.LaunchResult, error)
	LaunchCalls [][]string
}

// Launch records args and calls LaunchFunc.
func (m *MockProcessLauncher) Launch(args []string) (command.LaunchResult, error) {
	m.LaunchCalls = append(m.LaunchCalls, args)
	if m.LaunchFunc != nil {
		return m.LaunchFunc(args)
	}
	return command.LaunchResult{}, errors.New("MockProcessLauncher.LaunchFunc not implemented")
}
