package ports

import "github.com/AntonioJCosta/minish/internal/core/domain/command"

// BuiltinDispatcher decides whether a tokenized command is handled in-process.
type BuiltinDispatcher interface {
	Dispatch(args []string) command.Outcome
}
