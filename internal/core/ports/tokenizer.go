package ports

/*
Tokenizer defines the contract for splitting a raw input line into argument tokens.
This is a driven port, representing a domain capability.
*/
type Tokenizer interface {
	// Tokenize returns the tokens of line. The returned slice never aliases line.
	Tokenize(line string) []string
}
