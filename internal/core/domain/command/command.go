/*
Package command defines the domain types that flow between the interpreter's
dispatcher and the external process launcher.
*/
package command

import "errors"

// NotFoundStatus is the conventional exit status reported when a program could
// not be found or executed.
const NotFoundStatus = 127

// Outcome is the result of attempting builtin dispatch.
type Outcome int

const (
	// Delegate means the command is not a builtin and must be launched externally.
	Delegate Outcome = iota
	// Handled means a builtin ran (or there was nothing to do).
	Handled
	// Terminate means the interpreter should stop.
	Terminate
)

func (o Outcome) String() string {
	switch o {
	case Delegate:
		return "delegate"
	case Handled:
		return "handled"
	case Terminate:
		return "terminate"
	default:
		return "unknown"
	}
}

var (
	// ErrEmptyCommand is returned when the launcher receives no tokens.
	ErrEmptyCommand = errors.New("empty command")
	// ErrNotFound means the program could not be found or executed.
	ErrNotFound = errors.New("command not found")
	// ErrSpawn means the child process could not be created.
	ErrSpawn = errors.New("could not start process")
	// ErrWait means the child's exit status could not be retrieved.
	ErrWait = errors.New("could not wait for process")
)

// LaunchResult holds the outcome of running an external program.
type LaunchResult struct {
	Program  string
	Pid      int
	ExitCode int
	Signaled bool
	Signal   string // set when Signaled
}

// Success reports whether the child exited normally with status 0.
func (r LaunchResult) Success() bool {
	return !r.Signaled && r.ExitCode == 0
}
