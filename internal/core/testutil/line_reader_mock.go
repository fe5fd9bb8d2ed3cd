package testutil

import (
	"io"

	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// MockLineReader serves Lines in order and then io.EOF. An entry in Errors at
// the same index as a line is returned instead of that line.
type MockLineReader struct {
	Lines   []string
	Errors  map[int]error
	Prompts []string
	Closed  bool
	pos     int
}

// ReadLine returns the next scripted line.
func (m *MockLineReader) ReadLine(prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.pos >= len(m.Lines) {
		return "", io.EOF
	}
	i := m.pos
	m.pos++
	if err, ok := m.Errors[i]; ok {
		return "", err
	}
	return m.Lines[i], nil
}

// Close marks the reader as closed.
func (m *MockLineReader) Close() error {
	m.Closed = true
	return nil
}

var _ ports.LineReader = (*MockLineReader)(nil)
