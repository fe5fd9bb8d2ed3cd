package linereader

import (
	"errors"
	"fmt"
	"os"

	"github.com/AntonioJCosta/minish/internal/core/ports"
	"github.com/abiosoft/readline"
	"github.com/mattn/go-isatty"
)

// ReadlineReader reads lines from a terminal with line editing.
type ReadlineReader struct {
	rl *readline.Instance
}

// NewReadlineReader creates a line editor on the process's terminal.
// Its own recall list (arrow keys) is kept separately from the shell's history.
func NewReadlineReader() (ports.LineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		InterruptPrompt: "^C",
	})
	if err != nil {
		return nil, fmt.Errorf("initializing line editor: %w", err)
	}
	return &ReadlineReader{rl: rl}, nil
}

// NewDefault picks a line editor when stdin is a terminal and a plain reader
// otherwise, so piped scripts and tests work without a TTY.
func NewDefault() (ports.LineReader, error) {
	fd := os.Stdin.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return NewReadlineReader()
	}
	return NewStreamReader(os.Stdin, os.Stdout), nil
}

func (r *ReadlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ports.ErrInterrupt
	}
	if err != nil {
		return "", err
	}
	return trimTerminator(line), nil
}

func (r *ReadlineReader) Close() error {
	return r.rl.Close()
}
