package ports

import "github.com/AntonioJCosta/minish/internal/core/domain/command"

// ProcessLauncher runs an external program and waits for it to finish.
type ProcessLauncher interface {
	// Launch runs args[0] with args[1:] as its arguments. A non-zero exit status is
	// reported in the result; errors are reserved for launch and wait failures.
	Launch(args []string) (command.LaunchResult, error)
}
