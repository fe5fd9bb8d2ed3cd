package history

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/AntonioJCosta/minish/internal/core/domain/history"
	"github.com/AntonioJCosta/minish/internal/core/ports"
)

/*
RingBuffer keeps the most recent command lines in a fixed-size circular array.
It implements the ports.HistoryBuffer interface.

Once total >= len(lines), next always points at the oldest retained entry,
which is also the next slot to be overwritten.
*/
type RingBuffer struct {
	lines        []string
	total        int // lines ever recorded
	next         int // slot written by the next Append
	maxLineBytes int
}

// NewRingBuffer creates an empty buffer holding up to capacity lines, each
// truncated to maxLineBytes. A non-positive maxLineBytes disables truncation.
func NewRingBuffer(capacity, maxLineBytes int) (ports.HistoryBuffer, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("history capacity must be at least 1, got %d", capacity)
	}
	return &RingBuffer{
		lines:        make([]string, capacity),
		maxLineBytes: maxLineBytes,
	}, nil
}

// Append stores a copy of line, evicting the oldest entry when full.
// Blank lines are ignored. Over-long lines are truncated silently.
func (rb *RingBuffer) Append(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	rb.lines[rb.next] = strings.Clone(truncate(line, rb.maxLineBytes))
	rb.next = (rb.next + 1) % len(rb.lines)
	rb.total++
}

// Entries returns the retained lines oldest first. Numbering is absolute: with
// capacity 10 and 15 recorded lines the result is numbered 6 through 15.
func (rb *RingBuffer) Entries() []history.Entry {
	capacity := len(rb.lines)
	count := min(rb.total, capacity)
	if count == 0 {
		return []history.Entry{}
	}

	startIndex := 0
	if rb.total >= capacity {
		startIndex = rb.next
	}
	startNumber := rb.total - count + 1

	entries := make([]history.Entry, 0, count)
	for i := 0; i < count; i++ {
		entries = append(entries, history.Entry{
			Number:  startNumber + i,
			Command: rb.lines[(startIndex+i)%capacity],
		})
	}
	return entries
}

// Total returns how many lines were ever recorded, including evicted ones.
func (rb *RingBuffer) Total() int {
	return rb.total
}

// Capacity returns the maximum number of retained lines.
func (rb *RingBuffer) Capacity() int {
	return len(rb.lines)
}

// truncate cuts s to at most limit bytes without splitting a UTF-8 sequence.
func truncate(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
