package ports

import "github.com/AntonioJCosta/minish/internal/core/domain/history"

// HistoryBuffer is a bounded record of recently issued command lines.
type HistoryBuffer interface {
	// Append records line. Blank lines are ignored.
	Append(line string)
	// Entries returns the retained lines, oldest first, with absolute numbers.
	Entries() []history.Entry
	// Total returns how many lines were ever recorded.
	Total() int
	// Capacity returns the maximum number of retained lines.
	Capacity() int
}
