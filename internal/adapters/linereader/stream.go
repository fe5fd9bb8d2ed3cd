package linereader

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// StreamReader reads newline-terminated lines from any io.Reader and echoes
// the prompt to out.
type StreamReader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStreamReader creates a StreamReader. out may be io.Discard to suppress prompts.
func NewStreamReader(in io.Reader, out io.Writer) ports.LineReader {
	return &StreamReader{in: bufio.NewReader(in), out: out}
}

// ReadLine returns the next line. A final line without a terminator is still
// returned; io.EOF is reported on the following call.
func (r *StreamReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	line, err := r.in.ReadString('\n')
	if err == io.EOF && line != "" {
		return trimTerminator(line), nil
	}
	if err != nil {
		return "", err
	}
	return trimTerminator(line), nil
}

func (r *StreamReader) Close() error {
	return nil
}

// trimTerminator strips one trailing "\n" or "\r\n".
func trimTerminator(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
