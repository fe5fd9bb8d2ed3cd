package testutil

import (
	"github.com/AntonioJCosta/minish/internal/core/domain/history"
	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// MockHistoryBuffer is a mock implementation of the ports.HistoryBuffer interface.
// Appended lines are recorded in AppendCalls.
type MockHistoryBuffer struct {
	AppendCalls []string
	EntriesFunc func() []history.Entry
	TotalFunc   func() int
	Cap         int
}

// Append records the line.
func (m *MockHistoryBuffer) Append(line string) {
	m.AppendCalls = append(m.AppendCalls, line)
}

// Entries mocks the Entries method.
func (m *MockHistoryBuffer) Entries() []history.Entry {
	if m.EntriesFunc != nil {
		return m.EntriesFunc()
	}
	return []history.Entry{}
}

// Total mocks the Total method. By default it returns the number of Append calls.
func (m *MockHistoryBuffer) Total() int {
	if m.TotalFunc != nil {
		return m.TotalFunc()
	}
	return len(m.AppendCalls)
}

// Capacity returns Cap.
func (m *MockHistoryBuffer) Capacity() int {
	return m.Cap
}

var _ ports.HistoryBuffer = (*MockHistoryBuffer)(nil)
