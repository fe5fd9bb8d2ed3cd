package tokenizer

import (
	"strings"

	"github.com/AntonioJCosta/minish/internal/core/domain/settings"
	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// WhitespaceTokenizer splits lines on spaces and tabs. It does not interpret
// quotes, escapes or any other shell syntax.
type WhitespaceTokenizer struct {
	maxArgs int
}

// NewWhitespaceTokenizer creates a tokenizer that keeps at most maxArgs-1 tokens,
// leaving one slot for the end-of-arguments marker. A maxArgs below 2 falls back
// to settings.DefaultMaxArgs.
func NewWhitespaceTokenizer(maxArgs int) ports.Tokenizer {
	if maxArgs < 2 {
		maxArgs = settings.DefaultMaxArgs
	}
	return &WhitespaceTokenizer{maxArgs: maxArgs}
}

/*
Tokenize splits line into fields separated by runs of ' ' and '\t'.

Tokens beyond the capacity are dropped silently; this truncation is policy and
not an error. An empty or separator-only line yields no tokens. The returned
strings are independent copies, so callers may keep using line afterwards.
*/
func (t *WhitespaceTokenizer) Tokenize(line string) []string {
	limit := t.maxArgs - 1
	var args []string
	start := -1

	for i := 0; i < len(line) && len(args) < limit; i++ {
		if isSeparator(line[i]) {
			if start >= 0 {
				args = append(args, strings.Clone(line[start:i]))
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 && len(args) < limit {
		args = append(args, strings.Clone(line[start:]))
	}
	return args
}

func isSeparator(b byte) bool {
	return b == ' ' || b == '\t'
}
