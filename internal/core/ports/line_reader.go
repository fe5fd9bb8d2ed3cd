package ports

import "errors"

// ErrInterrupt is returned by a LineReader when the user interrupts the
// current line (Ctrl-C). The partial line is discarded.
var ErrInterrupt = errors.New("interrupted")

// LineReader is the source of interactive input lines.
type LineReader interface {
	// ReadLine shows prompt and returns the next line without its terminator.
	// It returns io.EOF once input is exhausted.
	ReadLine(prompt string) (string, error)
	Close() error
}
