package testutil

import (
	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// MockBuiltinDispatcher is a mock implementation of ports.BuiltinDispatcher.
type MockBuiltinDispatcher struct {
	DispatchFunc  func(args []string) command.Outcome
	DispatchCalls [][]string
}

// Dispatch records args and calls DispatchFunc. By default an empty vector is
// handled and everything else is delegated.
func (m *MockBuiltinDispatcher) Dispatch(args []string) command.Outcome {
	m.DispatchCalls = append(m.DispatchCalls, args)
	if m.DispatchFunc != nil {
		return m.DispatchFunc(args)
	}
	if len(args) == 0 {
		return command.Handled
	}
	return command.Delegate
}

var _ ports.BuiltinDispatcher = (*MockBuiltinDispatcher)(nil)
